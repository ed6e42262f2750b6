package imgbb

import (
	"encoding/base64"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
var testPNG = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x04, 0x00, 0x00, 0x00, 0xB5, 0x1C, 0x0C, 0x02, 0x00, 0x00, 0x00,
	0x0B, 0x49, 0x44, 0x41, 0x54, 0x08, 0xD7, 0x63, 0x64, 0xF8, 0x07, 0x00,
	0x01, 0x05, 0x01, 0x01, 0x27, 0x18, 0xE3, 0x76, 0x00, 0x00, 0x00, 0x00,
	0x49, 0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82,
}

func writeTestImage(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_image.png")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestNormalization_AllSourcesProduceIdenticalPayload(t *testing.T) {
	client := New("test_key")
	path := writeTestImage(t, testPNG)
	encoded := base64.StdEncoding.EncodeToString(testPNG)

	fromFile, err := client.ReadFile(path)
	require.NoError(t, err)

	fromBytes := client.ReadBytes(testPNG)

	fromBase64, err := client.ReadBase64(encoded)
	require.NoError(t, err)

	assert.Equal(t, fromBytes.data, fromFile.data)
	assert.Equal(t, fromBytes.data, fromBase64.data)
	assert.NotEmpty(t, fromBytes.data)
}

func TestNormalization_RoundTrip(t *testing.T) {
	large := make([]byte, 1536*1024) // > 1 MB
	_, err := rand.New(rand.NewSource(42)).Read(large)
	require.NoError(t, err)

	cases := map[string][]byte{
		"single byte": {0x42},
		"small":       testPNG,
		"large":       large,
	}

	client := New("test_key")
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			u := client.ReadBytes(raw)
			decoded, err := base64.StdEncoding.DecodeString(u.data)
			require.NoError(t, err)
			assert.Equal(t, raw, decoded)
		})
	}
}

func TestReadBytes_EmptyInputIsPermitted(t *testing.T) {
	// The service, not the client, is the authority on minimum size.
	u := New("test_key").ReadBytes(nil)
	assert.True(t, u.hasData)
	assert.Empty(t, u.data)
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := New("test_key").ReadFile(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}

func TestReadBase64_InvalidEncoding(t *testing.T) {
	_, err := New("test_key").ReadBase64("not@valid@base64!!")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestReadBase64_ValidPassthrough(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(testPNG)
	u, err := New("test_key").ReadBase64(encoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, u.data)
}
