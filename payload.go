package imgbb

import (
	"encoding/base64"
	"os"
)

// encodePayload converts raw image bytes into the canonical transport form,
// standard base64. Encoding is deterministic: equivalent bytes always yield
// identical output regardless of which source they arrived from.
func encodePayload(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// verifyBase64 checks that s is well-formed standard base64 by decoding it.
func verifyBase64(s string) error {
	_, err := base64.StdEncoding.DecodeString(s)
	return err
}

// readFilePayload loads the file at path fully into memory and encodes it.
// The file handle is released before any request is issued. No size limit is
// enforced here; the service is the authority on payload validity.
func readFilePayload(path string) (string, *Error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", ioError(err)
	}
	return encodePayload(raw), nil
}
