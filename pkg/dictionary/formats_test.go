package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    FileFormat
		wantErr bool
	}{
		{"", FormatUnknown, false},
		{"auto", FormatUnknown, false},
		{"TEXT", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFileFormat(t *testing.T) {
	f, err := DetectFileFormat("data/words_dictionary.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = DetectFileFormat("data/wordlist.TXT")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = DetectFileFormat("data/words")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = DetectFileFormat("data/words.gz")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestValidateFileFormat(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	assert.Error(t, ValidateFileFormat(empty, FormatText))

	assert.Error(t, ValidateFileFormat(dir, FormatText))

	words := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(words, []byte("cat\n"), 0o644))
	assert.NoError(t, ValidateFileFormat(words, FormatText))
	assert.Error(t, ValidateFileFormat(words, FormatJSON))
	assert.ErrorIs(t, ValidateFileFormat(words, FormatUnknown), ErrUnknownFormat)
}

func TestValidateEncoding(t *testing.T) {
	for _, enc := range []string{"", "UTF-8", "latin1", "ISO-8859-1", "windows-1252"} {
		assert.NoError(t, ValidateEncoding(enc), enc)
	}
	assert.ErrorIs(t, ValidateEncoding("koi8-r"), ErrUnsupportedEncoding)
}
