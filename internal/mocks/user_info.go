package mocks

import (
	"context"

	"github.com/quizcrawler/quizcrawler-api/internal/platform/googleauth"
)

// MockUserInfoProvider implements service.UserInfoProvider for testing
type MockUserInfoProvider struct {
	UserInfoFn func(ctx context.Context, accessToken string) (*googleauth.UserInfo, error)

	// Default values used when UserInfoFn isn't defined
	Info *googleauth.UserInfo
	Err  error
}

// UserInfo implements the service.UserInfoProvider interface
func (m *MockUserInfoProvider) UserInfo(
	ctx context.Context,
	accessToken string,
) (*googleauth.UserInfo, error) {
	if m.UserInfoFn != nil {
		return m.UserInfoFn(ctx, accessToken)
	}
	return m.Info, m.Err
}
