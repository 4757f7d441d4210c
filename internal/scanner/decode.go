package scanner

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ReadText reads the file at path as UTF-8, falling back to Latin-1 when the
// content is not valid UTF-8. Legacy BIRD configs in the wild still carry
// Latin-1 comments; every byte is a valid Latin-1 character, so the fallback
// always succeeds. Output written back is UTF-8 either way.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s as latin-1: %w", path, err)
	}
	return string(decoded), nil
}
