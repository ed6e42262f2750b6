package imgbb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/utafrali/imgbb-go/internal/transport"
)

// Service error code for a rejected API key. The service documents no stable
// codes for size or format rejections, so those are classified from the
// message text instead.
const apiCodeInvalidKey = 100

// classifyTransport translates a transport-level failure into the typed
// taxonomy, distinguishing an elapsed timeout from other network failures.
func classifyTransport(err error) *Error {
	if transport.IsTimeout(err) {
		return timeoutError(err)
	}
	return networkError(err)
}

// interpretUpload maps a raw HTTP status and body into a populated Response
// or a typed error, applying the rules in order: unparseable 2xx bodies are
// parse errors, parseable envelopes with an error block (or a success:false
// flag, or a non-2xx status) are service errors, everything else is success.
func interpretUpload(status int, body []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		if is2xx(status) {
			return nil, parseError(status, body)
		}
		return nil, apiError(status, 0, fmt.Sprintf("unexpected response: %s", truncate(body, maxDiagnosticBytes)))
	}

	if resp.Error != nil || !is2xx(status) || (resp.Success != nil && !*resp.Success) {
		return nil, mapServiceError(status, resp.Error)
	}

	return &resp, nil
}

// mapServiceError translates the service's numeric error code and message
// into the matching error kind, preserving code and message verbatim.
func mapServiceError(status int, info *ErrorInfo) *Error {
	code := 0
	message := "unknown error"
	if info != nil {
		if info.Code != nil {
			code = *info.Code
		}
		if info.Message != nil {
			message = *info.Message
		}
	}

	switch {
	case code == apiCodeInvalidKey:
		return invalidAPIKey(status, code, message)
	case code == http.StatusTooManyRequests || status == http.StatusTooManyRequests:
		return rateLimited(status, code, message)
	case isTooLargeMessage(message):
		return imageTooLarge(status, code, message)
	case isInvalidImageMessage(message):
		return invalidImage(status, code, message)
	default:
		return apiError(status, code, message)
	}
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

func isTooLargeMessage(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "too large") ||
		strings.Contains(m, "exceed") ||
		strings.Contains(m, "maximum allowed size")
}

func isInvalidImageMessage(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "invalid image") ||
		strings.Contains(m, "format not supported") ||
		strings.Contains(m, "unsupported image")
}
