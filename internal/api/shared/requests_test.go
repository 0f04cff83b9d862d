package shared_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizcrawler/quizcrawler-api/internal/api/shared"
)

type taggedRequest struct {
	Name string `json:"name" validate:"required"`
}

type selfValidatingRequest struct {
	Value int `json:"value"`
}

var errValueOutOfRange = errors.New("value out of range")

func (r selfValidatingRequest) Validate() error {
	if r.Value < 0 {
		return errValueOutOfRange
	}
	return nil
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"name":"ok"}`))
	var decoded taggedRequest
	require.NoError(t, shared.DecodeJSON(req, &decoded))
	assert.Equal(t, "ok", decoded.Name)

	bad := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{name`))
	assert.Error(t, shared.DecodeJSON(bad, &decoded))
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	t.Run("struct tags", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, shared.ValidateRequest(taggedRequest{Name: "ok"}))

		err := shared.ValidateRequest(taggedRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("own Validate method wins over tags", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, shared.ValidateRequest(selfValidatingRequest{Value: 1}))
		assert.ErrorIs(t, shared.ValidateRequest(selfValidatingRequest{Value: -1}), errValueOutOfRange)
	})
}
