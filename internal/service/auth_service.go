package service

import (
	"context"
	"fmt"

	"github.com/quizcrawler/quizcrawler-api/internal/domain"
	"github.com/quizcrawler/quizcrawler-api/internal/platform/googleauth"
	"github.com/quizcrawler/quizcrawler-api/internal/platform/logger"
	"github.com/quizcrawler/quizcrawler-api/internal/service/auth"
	"github.com/quizcrawler/quizcrawler-api/internal/store"
)

// UserInfoProvider resolves an OAuth access token into a user profile.
// Satisfied by *googleauth.Client; tests substitute a fake.
type UserInfoProvider interface {
	UserInfo(ctx context.Context, accessToken string) (*googleauth.UserInfo, error)
}

// AuthService handles the OAuth-exchange-for-session-token login flow.
type AuthService interface {
	// LoginWithGoogle exchanges a Google OAuth access token for a signed
	// session token, upserting the user record on the way. Returns
	// auth.ErrOAuthExchangeFailed when the provider rejects the token.
	LoginWithGoogle(ctx context.Context, accessToken string) (string, *domain.User, error)
}

type authService struct {
	userInfo   UserInfoProvider
	userStore  store.UserStore
	jwtService auth.JWTService
}

// NewAuthService creates an AuthService with the given dependencies.
func NewAuthService(
	userInfo UserInfoProvider,
	userStore store.UserStore,
	jwtService auth.JWTService,
) AuthService {
	return &authService{
		userInfo:   userInfo,
		userStore:  userStore,
		jwtService: jwtService,
	}
}

// LoginWithGoogle implements AuthService.LoginWithGoogle.
func (s *authService) LoginWithGoogle(ctx context.Context, accessToken string) (string, *domain.User, error) {
	log := logger.FromContext(ctx)

	info, err := s.userInfo.UserInfo(ctx, accessToken)
	if err != nil {
		log.Debug("OAuth exchange failed", "error", err)
		return "", nil, fmt.Errorf("%w: %v", auth.ErrOAuthExchangeFailed, err)
	}

	user, err := domain.NewUser(info.Email, info.Name, info.Picture)
	if err != nil {
		return "", nil, fmt.Errorf("invalid user profile from provider: %w", err)
	}

	// Upsert on every login: a returning user gets their name and picture
	// refreshed while keeping their stored ID and rating.
	stored, err := s.userStore.Upsert(ctx, user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(ctx, stored.ID, stored.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	log.Info("user logged in", "user_id", stored.ID, "email", stored.Email)
	return token, stored, nil
}
