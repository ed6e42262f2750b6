package imgbb

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/utafrali/imgbb-go/internal/logging"
)

// Uploader accumulates one upload incrementally: image data plus optional
// name, title, album and expiration. Setters chain and overwrite any earlier
// value for the same field. An Uploader belongs to a single caller and is
// single-use: Upload dispatches exactly once and a second call fails with
// ErrConsumed.
//
// Setters that can fail (File, Data, Expiration) record the first failure
// instead of breaking the chain; Upload surfaces it before any network I/O.
type Uploader struct {
	client  *Client
	data    string
	hasData bool

	name       *string
	title      *string
	album      *string
	expiration *int64

	err  *Error
	done bool
}

// File reads the file at path and sets its encoded contents as the payload.
func (u *Uploader) File(path string) *Uploader {
	data, ferr := readFilePayload(path)
	if ferr != nil {
		u.fail(ferr)
		return u
	}
	u.data = data
	u.hasData = true
	return u
}

// Bytes encodes raw image bytes and sets them as the payload.
func (u *Uploader) Bytes(data []byte) *Uploader {
	u.data = encodePayload(data)
	u.hasData = true
	return u
}

// Data sets already-encoded image data as the payload, verifying that it is
// well-formed base64.
func (u *Uploader) Data(data string) *Uploader {
	if err := verifyBase64(data); err != nil {
		u.fail(invalidEncoding(err))
		return u
	}
	u.data = data
	u.hasData = true
	return u
}

// Name sets the stored file name.
func (u *Uploader) Name(name string) *Uploader {
	u.name = &name
	return u
}

// Title sets the image title.
func (u *Uploader) Title(title string) *Uploader {
	u.title = &title
	return u
}

// Album sets the album identifier to add the image to.
func (u *Uploader) Album(album string) *Uploader {
	u.album = &album
	return u
}

// Expiration sets the time in seconds until the image expires. A negative
// value records ErrInvalidExpiration and leaves any previously set expiration
// untouched; no upper bound is enforced here, the service rejects values
// outside its accepted range.
func (u *Uploader) Expiration(seconds int64) *Uploader {
	if seconds < 0 {
		u.fail(invalidExpiration(seconds))
		return u
	}
	u.expiration = &seconds
	return u
}

// fail records the first setter failure for Upload to surface.
func (u *Uploader) fail(err *Error) {
	if u.err == nil {
		u.err = err
	}
}

// Upload serializes the accumulated state into one form-encoded request and
// dispatches it. Local failures (recorded setter errors, missing data) are
// returned before any network call. The uploader is consumed whether or not
// the request succeeds.
func (u *Uploader) Upload(ctx context.Context) (*Response, error) {
	if u.done {
		return nil, consumed()
	}
	u.done = true

	if u.err != nil {
		return nil, u.err
	}
	if !u.hasData {
		return nil, missingData()
	}

	form := url.Values{}
	form.Set("key", u.client.apiKey)
	form.Set("image", u.data)
	if u.name != nil {
		form.Set("name", *u.name)
	}
	if u.title != nil {
		form.Set("title", *u.title)
	}
	if u.album != nil {
		form.Set("album", *u.album)
	}
	if u.expiration != nil {
		form.Set("expiration", strconv.FormatInt(*u.expiration, 10))
	}

	log := logging.WithContext(ctx, u.client.logger)
	log.DebugContext(ctx, "dispatching upload",
		slog.Int("payload_bytes", len(u.data)),
		slog.Bool("has_name", u.name != nil),
		slog.Bool("has_title", u.title != nil),
		slog.Bool("has_album", u.album != nil),
		slog.Bool("has_expiration", u.expiration != nil),
	)

	res, err := u.client.transport.PostForm(ctx, "upload", u.client.baseURL, form)
	if err != nil {
		return nil, classifyTransport(err)
	}

	resp, ierr := interpretUpload(res.Status, res.Body)
	if ierr != nil {
		log.DebugContext(ctx, "upload rejected", slog.Int("status", res.Status))
		return nil, ierr
	}

	log.InfoContext(ctx, "upload succeeded", slog.Int("status", res.Status))
	return resp, nil
}
