// Package suggest finds known words near a misspelled query by enumerating
// small edits and probing the trie for each candidate.
package suggest

import (
	"github.com/bastiangx/wordcheck/pkg/trie"
	"github.com/charmbracelet/log"
)

// Fixed entries appended to every suggestion list.
const (
	ManualEntry = "Manual Entry"
	Ignore      = "Ignore"
)

// fallbackThreshold gates the two lowest priority strategies.
const fallbackThreshold = 5

// Strategy names the edit that produced a suggestion.
type Strategy int

const (
	MissTypedCharacter Strategy = iota
	ExtraPrefix
	MissingPrefix
	ExtraSuffix
	MissingMiddle
	MissingSuffix
	ExtraMiddle
)

var strategyNames = [...]string{
	MissTypedCharacter: "miss_typed",
	ExtraPrefix:        "extra_prefix",
	MissingPrefix:      "missing_prefix",
	ExtraSuffix:        "extra_suffix",
	MissingMiddle:      "missing_middle",
	MissingSuffix:      "missing_suffix",
	ExtraMiddle:        "extra_middle",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "unknown"
	}
	return strategyNames[s]
}

// Suggestion is a candidate word and the strategy that found it.
type Suggestion struct {
	Word     string
	Strategy Strategy
}

// Engine runs the suggestion strategies against a trie. It only reads the
// trie through Find-style probes and never moves the shared pointer.
type Engine struct {
	trie *trie.Trie
}

func NewEngine(t *trie.Trie) *Engine {
	return &Engine{trie: t}
}

// isWord accepts candidates that spell a stored word.
func (e *Engine) isWord(candidate []rune) bool {
	return e.trie.IsEndOfWord(e.trie.FindRunes(candidate))
}

// isPath accepts any candidate that exists as a path, word or not.
func (e *Engine) isPath(candidate []rune) bool {
	return e.trie.FindRunes(candidate) != trie.NoNode
}

func prepare(word string) []rune {
	return []rune(trie.Normalize(word))
}

// FindMissingPrefix prepends 1 to 3 characters to word.
func (e *Engine) FindMissingPrefix(word string) (string, bool) {
	w := prepare(word)
	if len(w) == 0 {
		return "", false
	}
	for k := 1; k <= maxEdit; k++ {
		if s, ok := insertions(w, 0, k, insertAlphabet, e.isWord); ok {
			return s, true
		}
	}
	return "", false
}

// FindMissingSuffix appends 1 to 3 characters to word.
func (e *Engine) FindMissingSuffix(word string) (string, bool) {
	w := prepare(word)
	if len(w) == 0 {
		return "", false
	}
	for k := 1; k <= maxEdit; k++ {
		if s, ok := insertions(w, len(w), k, insertAlphabet, e.isWord); ok {
			return s, true
		}
	}
	return "", false
}

// FindMissingMiddle inserts 1 to 3 characters at each interior position,
// positions ascending and then run length ascending.
func (e *Engine) FindMissingMiddle(word string) (string, bool) {
	w := prepare(word)
	for pos := 1; pos < len(w); pos++ {
		for k := 1; k <= maxEdit; k++ {
			if s, ok := insertions(w, pos, k, insertAlphabet, e.isWord); ok {
				return s, true
			}
		}
	}
	return "", false
}

// FindExtraPrefix drops 1 to 3 leading characters, always keeping one.
func (e *Engine) FindExtraPrefix(word string) (string, bool) {
	w := prepare(word)
	for k := 1; k <= maxEdit && k < len(w); k++ {
		if c, ok := deletion(w, 0, k); ok && e.isWord(c) {
			return string(c), true
		}
	}
	return "", false
}

// FindExtraSuffix drops 1 to 3 trailing characters, always keeping one.
func (e *Engine) FindExtraSuffix(word string) (string, bool) {
	w := prepare(word)
	for k := 1; k <= maxEdit && k < len(w); k++ {
		if c, ok := deletion(w, len(w)-k, k); ok && e.isWord(c) {
			return string(c), true
		}
	}
	return "", false
}

// FindExtraMiddle drops an interior run of 1 to 3 characters.
//
// Unlike every other strategy, a hit only needs to exist as a path in the
// trie; it does not have to be a stored word.
func (e *Engine) FindExtraMiddle(word string) (string, bool) {
	w := prepare(word)
	for pos := 1; pos < len(w)-1; pos++ {
		for k := 1; k <= maxEdit && pos+k < len(w); k++ {
			if c, ok := deletion(w, pos, k); ok && e.isPath(c) {
				return string(c), true
			}
		}
	}
	return "", false
}

// FindMissTypedCharacter substitutes one character with 'a'..'z', trying the
// last position, then the first, then interior positions left to right.
func (e *Engine) FindMissTypedCharacter(word string) (string, bool) {
	w := prepare(word)
	n := len(w)
	if n == 0 {
		return "", false
	}
	if s, ok := substitutions(w, n-1, substituteAlphabet, e.isWord); ok {
		return s, true
	}
	if s, ok := substitutions(w, 0, substituteAlphabet, e.isWord); ok {
		return s, true
	}
	for pos := 1; pos < n-1; pos++ {
		if s, ok := substitutions(w, pos, substituteAlphabet, e.isWord); ok {
			return s, true
		}
	}
	return "", false
}

type finder func(string) (string, bool)

// Suggestions runs every strategy in priority order and returns the hits.
// The missing-suffix and extra-middle strategies only run while fewer than
// five hits have been collected. Results are not deduplicated.
func (e *Engine) Suggestions(word string) []Suggestion {
	primary := []struct {
		s Strategy
		f finder
	}{
		{MissTypedCharacter, e.FindMissTypedCharacter},
		{ExtraPrefix, e.FindExtraPrefix},
		{MissingPrefix, e.FindMissingPrefix},
		{ExtraSuffix, e.FindExtraSuffix},
		{MissingMiddle, e.FindMissingMiddle},
	}
	fallback := []struct {
		s Strategy
		f finder
	}{
		{MissingSuffix, e.FindMissingSuffix},
		{ExtraMiddle, e.FindExtraMiddle},
	}

	var out []Suggestion
	for _, st := range primary {
		if w, ok := st.f(word); ok {
			out = append(out, Suggestion{Word: w, Strategy: st.s})
		}
	}
	for _, st := range fallback {
		if len(out) >= fallbackThreshold {
			break
		}
		if w, ok := st.f(word); ok {
			out = append(out, Suggestion{Word: w, Strategy: st.s})
		}
	}
	log.Debugf("Found %d suggestions for '%s'", len(out), word)
	return out
}

// WordSuggestions returns the suggestion words followed by ManualEntry and
// Ignore, which are always present.
func (e *Engine) WordSuggestions(word string) []string {
	found := e.Suggestions(word)
	out := make([]string, 0, len(found)+2)
	for _, s := range found {
		out = append(out, s.Word)
	}
	return append(out, ManualEntry, Ignore)
}
