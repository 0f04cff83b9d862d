// Package googleauth resolves Google OAuth access tokens into user profiles
// through the userinfo endpoint. It is the only contact point with the
// OAuth provider; token issuance and consent live entirely on Google's side.
package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// UserInfo is the profile triple returned by the userinfo endpoint.
type UserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// ErrUserInfoFailed is returned when the provider rejects the access token
// or the exchange fails for any reason.
var ErrUserInfoFailed = errors.New("failed to get user info from Google")

// Client fetches user profiles for OAuth access tokens.
type Client struct {
	userInfoURL string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates a userinfo client for the given endpoint URL.
func NewClient(logger *slog.Logger, userInfoURL string) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if userInfoURL == "" {
		return nil, errors.New("userinfo URL cannot be empty")
	}

	return &Client{
		userInfoURL: userInfoURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		logger:      logger,
	}, nil
}

// UserInfo exchanges an OAuth access token for the user's profile.
// Returns ErrUserInfoFailed when the provider does not accept the token.
func (c *Client) UserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserInfoFailed, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "failed to close userinfo response body", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		c.logger.DebugContext(ctx, "userinfo request rejected", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUserInfoFailed, resp.StatusCode)
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUserInfoFailed, err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("%w: response carries no email", ErrUserInfoFailed)
	}

	return &info, nil
}
