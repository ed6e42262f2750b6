package imgbb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrIO, ErrInvalidEncoding, ErrInvalidExpiration, ErrMissingData,
		ErrConsumed, ErrNetwork, ErrTimeout, ErrInvalidAPIKey,
		ErrImageTooLarge, ErrInvalidImage, ErrRateLimited, ErrParse,
		ErrAPI, ErrDeleteFailed,
	}

	for i := 0; i < len(sentinels); i++ {
		for j := i + 1; j < len(sentinels); j++ {
			assert.NotErrorIs(t, sentinels[i], sentinels[j],
				"sentinels %d and %d should be distinct", i, j)
		}
	}
}

func TestError_StringWithWrappedError(t *testing.T) {
	inner := fmt.Errorf("connection reset")
	err := networkError(inner)
	assert.Contains(t, err.Error(), "NETWORK_ERROR")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestError_StringWithoutWrappedError(t *testing.T) {
	err := &Error{Code: "API_ERROR", Message: "something odd"}
	assert.Equal(t, "API_ERROR: something odd", err.Error())
}

func TestError_UnwrapSupportsErrorsIs(t *testing.T) {
	err := invalidAPIKey(400, 100, "invalid api key")
	assert.True(t, errors.Is(err, ErrInvalidAPIKey))
	assert.False(t, errors.Is(err, ErrAPI))
}

func TestError_AsRecoversContext(t *testing.T) {
	var typed *Error
	err := error(imageTooLarge(400, 313, "too large"))
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, 400, typed.Status)
	assert.Equal(t, 313, typed.APICode)
	assert.Equal(t, "too large", typed.Message)
}

func TestIOError_WrapsUnderlyingCause(t *testing.T) {
	underlying := errors.New("permission denied")
	err := ioError(underlying)
	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, underlying))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate([]byte("short"), 10))

	long := truncate([]byte("0123456789abcdef"), 8)
	assert.Equal(t, "01234567...(truncated)", long)
}
