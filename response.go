package imgbb

// Response mirrors the service's JSON envelope. Every field the service may
// omit is a pointer so that absence and an explicit zero value stay
// distinguishable; nothing is ever defaulted.
type Response struct {
	Data    *Data      `json:"data,omitempty"`
	Success *bool      `json:"success,omitempty"`
	Status  *int       `json:"status,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// Data is the payload record of a successful upload.
type Data struct {
	ID         *string       `json:"id,omitempty"`
	Title      *string       `json:"title,omitempty"`
	URLViewer  *string       `json:"url_viewer,omitempty"`
	URL        *string       `json:"url,omitempty"`
	DisplayURL *string       `json:"display_url,omitempty"`
	Width      *int          `json:"width,omitempty"`
	Height     *int          `json:"height,omitempty"`
	Size       *int64        `json:"size,omitempty"`
	Time       *int64        `json:"time,omitempty"`
	Expiration *int64        `json:"expiration,omitempty"`
	Image      *ImageVariant `json:"image,omitempty"`
	Thumb      *ImageVariant `json:"thumb,omitempty"`
	Medium     *ImageVariant `json:"medium,omitempty"`
	DeleteURL  *string       `json:"delete_url,omitempty"`
}

// ImageVariant describes one rendition of the stored image (original,
// thumbnail or medium).
type ImageVariant struct {
	Filename  *string `json:"filename,omitempty"`
	Name      *string `json:"name,omitempty"`
	MIME      *string `json:"mime,omitempty"`
	Extension *string `json:"extension,omitempty"`
	URL       *string `json:"url,omitempty"`
}

// ErrorInfo is the structured error block of the envelope.
type ErrorInfo struct {
	Code    *int    `json:"code,omitempty"`
	Message *string `json:"message,omitempty"`
}
