package dictionary

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// decodeReader wraps r so that it yields UTF-8 for the named charset.
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(r), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, encoding)
}

// ValidateEncoding reports whether encoding names a supported charset.
func ValidateEncoding(encoding string) error {
	_, err := decodeReader(strings.NewReader(""), encoding)
	return err
}
