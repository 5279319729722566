package dictionary

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

var ErrUnknownFormat = errors.New("unknown word list format")

// FileFormat represents the word list source dialects
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // comma and newline separated words
	FormatJSON               // every word wrapped in a double quote pair
)

func (f FileFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	}
	return "unknown"
}

// ParseFormat maps a config/flag value to a FileFormat.
// "" and "auto" return FormatUnknown, meaning detect from the file name.
func ParseFormat(s string) (FileFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatUnknown, nil
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatInfo contains metadata about a word list format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt", ".csv", ".lst", ".dic", ""},
		MinSize:     1,
	},
	FormatJSON: {
		Format:      FormatJSON,
		Description: "JSON Quoted Word List",
		Extensions:  []string{".json"},
		MinSize:     2, // at least one quote pair
	},
}

// ValidateFileFormat checks that a file can be read as the expected format
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}

	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("%w: %v", ErrUnknownFormat, expectedFormat)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	validExt := false
	for _, validExtension := range formatInfo.Extensions {
		if ext == validExtension {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
			filename, ext, formatInfo.Description, formatInfo.Extensions)
	}

	if expectedFormat == FormatJSON {
		return validateJSONFormat(filename)
	}
	return nil
}

// validateJSONFormat checks that the head of the file carries a quote
func validateJSONFormat(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	buffer := make([]byte, 1024)
	n, err := file.Read(buffer)
	if err != nil {
		return fmt.Errorf("failed to read from json file %s: %w", filename, err)
	}
	if !bytes.ContainsRune(buffer[:n], '"') {
		return fmt.Errorf("file %s has no quoted words in its first %d bytes", filename, n)
	}

	log.Debugf("JSON word list %s validated", filename)
	return nil
}

// DetectFileFormat picks the format from the file extension
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range []FileFormat{FormatJSON, FormatText} {
		for _, e := range supportedFormats[f].Extensions {
			if e == ext {
				return f, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%w: unable to detect format for file %s", ErrUnknownFormat, filename)
}
