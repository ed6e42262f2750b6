package imgbb

import (
	"errors"
	"fmt"
)

// Sentinel errors for every failure kind the client can produce. Callers
// should match with errors.Is; the full context (HTTP status, service error
// code, message) is available via errors.As on *Error.
var (
	// ErrIO reports a local filesystem read failure before any network I/O.
	ErrIO = errors.New("local read failed")
	// ErrInvalidEncoding reports base64 input that does not decode.
	ErrInvalidEncoding = errors.New("invalid base64 data")
	// ErrInvalidExpiration reports a structurally invalid expiration value.
	ErrInvalidExpiration = errors.New("invalid expiration")
	// ErrMissingData reports a dispatch attempt with no image data set.
	ErrMissingData = errors.New("missing image data")
	// ErrConsumed reports a second dispatch of a single-use uploader.
	ErrConsumed = errors.New("uploader already dispatched")
	// ErrNetwork reports a transport-level failure other than a timeout.
	ErrNetwork = errors.New("network failure")
	// ErrTimeout reports that the configured request timeout elapsed.
	ErrTimeout = errors.New("request timed out")
	// ErrInvalidAPIKey reports that the service rejected the API key.
	ErrInvalidAPIKey = errors.New("invalid api key")
	// ErrImageTooLarge reports that the payload exceeds the service limit.
	ErrImageTooLarge = errors.New("image too large")
	// ErrInvalidImage reports that the service rejected the payload as
	// malformed or unsupported image data.
	ErrInvalidImage = errors.New("invalid image")
	// ErrRateLimited reports that the service throttled the request.
	ErrRateLimited = errors.New("rate limited")
	// ErrParse reports a 2xx response whose body is not the expected envelope.
	ErrParse = errors.New("unparseable response")
	// ErrAPI reports a structured service error not covered by a more
	// specific sentinel.
	ErrAPI = errors.New("api error")
	// ErrDeleteFailed reports that an image deletion did not succeed.
	ErrDeleteFailed = errors.New("delete failed")
)

// Error is the structured error returned by all fallible operations. It wraps
// one of the package sentinels and carries whatever diagnostic context the
// failure produced. The API key is never part of any Error field.
type Error struct {
	// Code is a stable machine-readable kind, e.g. "INVALID_API_KEY".
	Code string
	// Message is human-readable diagnostic text, service-provided when
	// available.
	Message string
	// Status is the HTTP status of the response, or 0 when the failure
	// happened before a response was received.
	Status int
	// APICode is the numeric error code from the service envelope, or 0.
	APICode int
	// Err is the wrapped sentinel or underlying cause.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ioError(err error) *Error {
	return &Error{
		Code:    "IO_ERROR",
		Message: err.Error(),
		Err:     fmt.Errorf("%w: %w", ErrIO, err),
	}
}

func invalidEncoding(err error) *Error {
	return &Error{
		Code:    "INVALID_ENCODING",
		Message: err.Error(),
		Err:     fmt.Errorf("%w: %w", ErrInvalidEncoding, err),
	}
}

func invalidExpiration(seconds int64) *Error {
	return &Error{
		Code:    "INVALID_EXPIRATION",
		Message: fmt.Sprintf("expiration must be non-negative, got %d", seconds),
		Err:     ErrInvalidExpiration,
	}
}

func missingData() *Error {
	return &Error{
		Code:    "MISSING_DATA",
		Message: "no image data set before dispatch",
		Err:     ErrMissingData,
	}
}

func consumed() *Error {
	return &Error{
		Code:    "ALREADY_DISPATCHED",
		Message: "uploader is single-use and was already dispatched",
		Err:     ErrConsumed,
	}
}

func networkError(err error) *Error {
	return &Error{
		Code:    "NETWORK_ERROR",
		Message: err.Error(),
		Err:     fmt.Errorf("%w: %w", ErrNetwork, err),
	}
}

func timeoutError(err error) *Error {
	return &Error{
		Code:    "TIMEOUT",
		Message: err.Error(),
		Err:     fmt.Errorf("%w: %w", ErrTimeout, err),
	}
}

func invalidAPIKey(status, code int, message string) *Error {
	return &Error{
		Code:    "INVALID_API_KEY",
		Message: message,
		Status:  status,
		APICode: code,
		Err:     ErrInvalidAPIKey,
	}
}

func imageTooLarge(status, code int, message string) *Error {
	return &Error{
		Code:    "IMAGE_TOO_LARGE",
		Message: message,
		Status:  status,
		APICode: code,
		Err:     ErrImageTooLarge,
	}
}

func invalidImage(status, code int, message string) *Error {
	return &Error{
		Code:    "INVALID_IMAGE",
		Message: message,
		Status:  status,
		APICode: code,
		Err:     ErrInvalidImage,
	}
}

func rateLimited(status, code int, message string) *Error {
	return &Error{
		Code:    "RATE_LIMITED",
		Message: message,
		Status:  status,
		APICode: code,
		Err:     ErrRateLimited,
	}
}

func apiError(status, code int, message string) *Error {
	return &Error{
		Code:    "API_ERROR",
		Message: message,
		Status:  status,
		APICode: code,
		Err:     ErrAPI,
	}
}

func parseError(status int, body []byte) *Error {
	return &Error{
		Code:    "PARSE_ERROR",
		Message: fmt.Sprintf("unexpected response body: %s", truncate(body, maxDiagnosticBytes)),
		Status:  status,
		Err:     ErrParse,
	}
}

func deleteFailed(status int, message string) *Error {
	return &Error{
		Code:    "DELETE_FAILED",
		Message: message,
		Status:  status,
		Err:     ErrDeleteFailed,
	}
}

// maxDiagnosticBytes bounds how much of a raw response body is carried in an
// error message.
const maxDiagnosticBytes = 1024

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "...(truncated)"
}
