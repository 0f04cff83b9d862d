package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizcrawler/quizcrawler-api/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid profile", func(t *testing.T) {
		t.Parallel()
		user, err := domain.NewUser("jo@example.com", "Jo", "https://example.com/jo.png")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "jo@example.com", user.Email)
		assert.Equal(t, "Jo", user.Name)
		assert.Nil(t, user.Rating)
		assert.False(t, user.CreatedAt.IsZero())
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	})

	t.Run("empty name and picture are allowed", func(t *testing.T) {
		t.Parallel()
		user, err := domain.NewUser("jo@example.com", "", "")
		require.NoError(t, err)
		assert.Empty(t, user.Name)
	})

	t.Run("empty email", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewUser("", "Jo", "")
		assert.ErrorIs(t, err, domain.ErrEmptyEmail)
	})

	t.Run("malformed email", func(t *testing.T) {
		t.Parallel()
		for _, email := range []string{"no-at-sign", "@example.com", "jo@", "jo@nodot", "jo@.com"} {
			_, err := domain.NewUser(email, "Jo", "")
			assert.ErrorIs(t, err, domain.ErrInvalidEmail, "email %q", email)
		}
	})
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	user := &domain.User{Email: "jo@example.com"}
	assert.ErrorIs(t, user.Validate(), domain.ErrEmptyUserID)

	user.ID = uuid.New()
	assert.NoError(t, user.Validate())
}
