package imgbb

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"github.com/utafrali/imgbb-go/internal/logging"
)

// Delete removes a previously uploaded image using the delete locator
// returned in Response.Data.DeleteURL. The locator is opaque and not
// validated beyond non-emptiness; an empty locator is rejected locally
// before any network call.
//
// The deletion endpoint does not return a structured error consistently, so
// the result is interpreted heuristically: a structured error envelope is
// mapped like an upload error, any other 2xx is success regardless of body
// content, and any other non-2xx becomes ErrDeleteFailed carrying whatever
// diagnostic text is available.
func (c *Client) Delete(ctx context.Context, deleteURL string) error {
	if strings.TrimSpace(deleteURL) == "" {
		return deleteFailed(0, "delete url is empty")
	}

	form := url.Values{}
	form.Set("key", c.apiKey)

	log := logging.WithContext(ctx, c.logger)
	log.DebugContext(ctx, "dispatching delete")

	res, err := c.transport.DeleteForm(ctx, "delete", deleteURL, form)
	if err != nil {
		return classifyTransport(err)
	}

	if err := interpretDelete(res.Status, res.Body); err != nil {
		log.DebugContext(ctx, "delete rejected", slog.Int("status", res.Status))
		return err
	}

	log.InfoContext(ctx, "delete succeeded", slog.Int("status", res.Status))
	return nil
}

func interpretDelete(status int, body []byte) error {
	var resp Response
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != nil {
		return mapServiceError(status, resp.Error)
	}

	if is2xx(status) {
		return nil
	}
	return deleteFailed(status, truncate(body, maxDiagnosticBytes))
}
