package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Is(t *testing.T) {
	err := InvalidParameter("%s property must be set", "address")

	assert.True(t, stderrors.Is(err, ErrInvalidParameter))
	assert.False(t, stderrors.Is(err, ErrRequestFailed))

	wrapped := fmt.Errorf("geo: %w", err)
	assert.True(t, stderrors.Is(wrapped, ErrInvalidParameter))

	var appErr *AppError
	require.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, "address property must be set", appErr.Message)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}

func TestConstructors_DoNotMutateSentinels(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")

	err := RequestFailed("request failed", 503, cause)
	assert.Equal(t, 503, err.Details["status"])
	assert.ErrorIs(t, err, cause)

	_ = Decode("invalid json", cause)
	_ = Configuration("key property must be set")
	_ = ErrInvalidParameter.WithDetails(map[string]interface{}{"field": "city"})

	assert.Equal(t, "Upstream request failed", ErrRequestFailed.Message)
	assert.Empty(t, ErrRequestFailed.Details)
	assert.Nil(t, ErrRequestFailed.Err)
	assert.Equal(t, "Invalid request parameters", ErrInvalidParameter.Message)
	assert.Empty(t, ErrInvalidParameter.Details)
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "DECODE_ERROR: bad body: boom", Decode("bad body", stderrors.New("boom")).Error())
	assert.Equal(t, "CONFIGURATION_ERROR: key property must be set", Configuration("key property must be set").Error())

	noStatus := RequestFailed("timeout", 0, nil)
	_, ok := noStatus.Details["status"]
	assert.False(t, ok)
}
