package googleauth_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizcrawler/quizcrawler-api/internal/platform/googleauth"
)

func TestUserInfoSuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-token-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"jo@example.com","name":"Jo","picture":"https://example.com/jo.png"}`))
	}))
	defer server.Close()

	client, err := googleauth.NewClient(slog.Default(), server.URL)
	require.NoError(t, err)

	info, err := client.UserInfo(context.Background(), "access-token-123")
	require.NoError(t, err)
	assert.Equal(t, "jo@example.com", info.Email)
	assert.Equal(t, "Jo", info.Name)
	assert.Equal(t, "https://example.com/jo.png", info.Picture)
}

func TestUserInfoRejectedToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_token"}`))
	}))
	defer server.Close()

	client, err := googleauth.NewClient(slog.Default(), server.URL)
	require.NoError(t, err)

	_, err = client.UserInfo(context.Background(), "bad-token")
	assert.ErrorIs(t, err, googleauth.ErrUserInfoFailed)
}

func TestUserInfoMissingEmail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Jo"}`))
	}))
	defer server.Close()

	client, err := googleauth.NewClient(slog.Default(), server.URL)
	require.NoError(t, err)

	_, err = client.UserInfo(context.Background(), "token")
	assert.ErrorIs(t, err, googleauth.ErrUserInfoFailed)
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	_, err := googleauth.NewClient(nil, "https://example.com")
	assert.Error(t, err)

	_, err = googleauth.NewClient(slog.Default(), "")
	assert.Error(t, err)
}
