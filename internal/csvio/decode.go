package csvio

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decode converts data to UTF-8 and returns the detected encoding name.
// BOM-marked UTF-8 and UTF-16 are honored; other input that is not valid
// UTF-8 is read as Windows-1252, which is what spreadsheet exports use.
func decode(data []byte) (string, string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8),
		bytes.HasPrefix(data, bomUTF16LE),
		bytes.HasPrefix(data, bomUTF16BE):
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return "", "", fmt.Errorf("decoding BOM-marked input: %w", err)
		}

		return string(out), encodingName(data), nil
	case utf8.Valid(data):
		return string(data), "utf-8", nil
	default:
		out, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", "", fmt.Errorf("decoding windows-1252 input: %w", err)
		}

		return string(out), "windows-1252", nil
	}
}

func encodingName(data []byte) string {
	switch {
	case bytes.HasPrefix(data, bomUTF16LE):
		return "utf-16le"
	case bytes.HasPrefix(data, bomUTF16BE):
		return "utf-16be"
	default:
		return "utf-8-bom"
	}
}
