package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/dailyhub/internal/encoding"
)

func decodeAll(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "Date,Description,Amount\n2025-01-15,Café,5.50\n"
	assert.Equal(t, input, decodeAll(t, []byte(input)))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date,Amount\n")...)
	assert.Equal(t, "Date,Amount\n", decodeAll(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()

	input, err := enc.Bytes([]byte("Date,Café\n"))
	require.NoError(t, err)

	assert.Equal(t, "Date,Café\n", decodeAll(t, input))
}

func TestNewUTF8Reader_Windows1252Fallback(t *testing.T) {
	// "Café" in Windows-1252: é = 0xE9.
	input := []byte{'C', 'a', 'f', 0xE9, '\n'}
	assert.Equal(t, "Café\n", decodeAll(t, input))
}

func TestNewUTF8Reader_EmptyInput(t *testing.T) {
	assert.Empty(t, decodeAll(t, nil))
}
