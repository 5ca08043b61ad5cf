// Package encoding normalizes uploaded CSV files to UTF-8 before
// parsing. Bank and card exports arrive in a mix of UTF-8 (with and
// without BOM), UTF-16 and legacy Windows codepages.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// peekSize covers BOM detection plus enough text for charset
// heuristics.
const peekSize = 4096

type bom struct {
	prefix  []byte
	decoder *encoding.Decoder // nil means strip the prefix and pass through
}

func boms() []bom {
	return []bom{
		{prefix: []byte{0xEF, 0xBB, 0xBF}},
		{prefix: []byte{0xFF, 0xFE}, decoder: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()},
		{prefix: []byte{0xFE, 0xFF}, decoder: unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()},
	}
}

// NewUTF8Reader wraps r in a reader that yields UTF-8, detecting the
// source encoding from a BOM, UTF-8 validity, or a chardet heuristic,
// in that order. Undetectable input falls back to Windows-1252.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	for _, b := range boms() {
		if !bytes.HasPrefix(head, b.prefix) {
			continue
		}

		if b.decoder == nil {
			_, _ = br.Discard(len(b.prefix))

			return br, nil
		}

		return transform.NewReader(br, b.decoder), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	return transform.NewReader(br, guessDecoder(head)), nil
}

func guessDecoder(head []byte) *encoding.Decoder {
	result, err := chardet.NewTextDetector().DetectBest(head)
	if err == nil {
		switch result.Charset {
		case "ISO-8859-9":
			return charmap.ISO8859_9.NewDecoder()
		case "ISO-8859-15":
			return charmap.ISO8859_15.NewDecoder()
		}
	}

	return charmap.Windows1252.NewDecoder()
}
