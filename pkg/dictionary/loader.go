// Package dictionary builds a trie from word list sources.
//
// Word lists are line oriented. Each line holds one or more comma separated
// tokens; the JSON dialect additionally wraps every token in a quote pair.
// Tokens are inserted with shared-prefix backtracking, so sorted lists only
// walk the characters that differ from the previous word.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordcheck/pkg/trie"
	"github.com/charmbracelet/log"
)

var ErrMalformedRecord = errors.New("malformed record")

const (
	readBufferSize = 64 * 1024
	maxLineSize    = 1024 * 1024
	progressEvery  = 100000
)

// Options controls how a word list is read.
type Options struct {
	// Format selects the dialect. FormatUnknown detects it from the file name
	// in LoadFile and means plain text in Load.
	Format FileFormat
	// Encoding names the source charset, empty for UTF-8.
	Encoding string
}

// Stats describes a finished load.
type Stats struct {
	Lines    int
	Tokens   int
	Accepted int
	Skipped  int
	Words    int
	Nodes    int
	Elapsed  time.Duration
}

// Loader inserts an ordered token stream into a fresh trie.
type Loader struct {
	opts  Options
	trie  *trie.Trie
	prev  []rune
	stats Stats
}

func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts}
}

// Stats returns the counters of the most recent Load.
func (l *Loader) Stats() Stats { return l.stats }

// Load reads every line of r and returns the populated trie. Any read or
// decoding failure aborts the load and returns a nil trie.
func (l *Loader) Load(r io.Reader) (*trie.Trie, error) {
	start := time.Now()
	l.trie = trie.New()
	l.prev = nil
	l.stats = Stats{}

	src, err := decodeReader(r, l.opts.Encoding)
	if err != nil {
		l.trie = nil
		return nil, err
	}

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, readBufferSize), maxLineSize)

	for scanner.Scan() {
		l.stats.Lines++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			l.trie = nil
			return nil, fmt.Errorf("%w: line %d is not valid UTF-8", ErrMalformedRecord, l.stats.Lines)
		}
		for _, tok := range strings.Split(line, ",") {
			l.stats.Tokens++
			word, ok := NormalizeToken(tok, l.opts.Format)
			if !ok {
				l.stats.Skipped++
				continue
			}
			l.insert([]rune(word))
			l.stats.Accepted++
		}
		if l.stats.Lines%progressEvery == 0 {
			log.Debugf("Read %d lines, %d words so far", l.stats.Lines, l.trie.WordCount())
		}
	}
	if err := scanner.Err(); err != nil {
		l.trie = nil
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, l.stats.Lines+1, err)
		}
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	t := l.trie
	l.stats.Words = t.WordCount()
	l.stats.Nodes = t.NodeCount()
	l.stats.Elapsed = time.Since(start)
	l.trie = nil
	l.prev = nil
	return t, nil
}

// insert backtracks from the previous word's last node to the deepest node
// shared with word, then extends the remaining suffix.
func (l *Loader) insert(word []rune) {
	shared := 0
	if l.prev != nil {
		shared = sharedPrefixLen(l.prev, word)
	}
	if shared == 0 {
		l.trie.ResetPointer()
	} else {
		l.trie.Ascend(len(l.prev) - shared)
	}
	l.trie.Extend(word[shared:])
	l.prev = word
}

func sharedPrefixLen(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// NormalizeToken applies the word list token rules and reports whether the
// token is a word. JSON tokens keep only the text inside the first quote pair.
func NormalizeToken(tok string, format FileFormat) (string, bool) {
	tok = strings.TrimSpace(tok)
	if format == FormatJSON {
		first := strings.IndexByte(tok, '"')
		if first < 0 {
			return "", false
		}
		second := strings.IndexByte(tok[first+1:], '"')
		if second < 0 {
			return "", false
		}
		tok = strings.TrimSpace(tok[first+1 : first+1+second])
	}
	if tok == "" || strings.ContainsRune(tok, '"') {
		return "", false
	}
	// trailing dash marks a prefix entry, not a word
	if strings.HasSuffix(tok, "-") {
		return "", false
	}
	tok = strings.ToLower(tok)
	if utf8.RuneCountInString(tok) == 1 && tok != "a" && tok != "i" {
		return "", false
	}
	return tok, true
}

// Load reads r with the given options.
func Load(r io.Reader, opts Options) (*trie.Trie, Stats, error) {
	l := NewLoader(opts)
	t, err := l.Load(r)
	return t, l.Stats(), err
}

// LoadFile validates and loads the word list at path. An unknown format is
// detected from the extension.
func LoadFile(path string, opts Options) (*trie.Trie, Stats, error) {
	if opts.Format == FormatUnknown {
		format, err := DetectFileFormat(path)
		if err != nil {
			return nil, Stats{}, err
		}
		opts.Format = format
	}
	if err := ValidateFileFormat(path, opts.Format); err != nil {
		return nil, Stats{}, fmt.Errorf("invalid word list: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	log.Debugf("Loading %s word list from %s", opts.Format, path)
	t, stats, err := Load(file, opts)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to load %s: %w", path, err)
	}
	log.Debugf("Word list loaded: %d words, %d nodes, %d skipped tokens in %v",
		stats.Words, stats.Nodes, stats.Skipped, stats.Elapsed)
	return t, stats, nil
}
