package suggest

import (
	"testing"

	"github.com/bastiangx/wordcheck/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newEngine(words ...string) *Engine {
	t := trie.New()
	for _, w := range words {
		t.Add(w)
	}
	return NewEngine(t)
}

func TestAlphabets(t *testing.T) {
	assert.Len(t, insertAlphabet, 31+26)
	assert.Equal(t, '"', insertAlphabet[0])
	assert.Equal(t, 'z', insertAlphabet[len(insertAlphabet)-1])
	assert.Contains(t, insertAlphabet, '@')
	assert.Contains(t, insertAlphabet, '\'')
	assert.Contains(t, insertAlphabet, '7')
	for r := 'A'; r <= 'Z'; r++ {
		assert.NotContains(t, insertAlphabet, r)
	}
	assert.NotContains(t, insertAlphabet, '[')
	assert.NotContains(t, insertAlphabet, ' ')

	assert.Len(t, substituteAlphabet, 26)
}

func TestSingleStrategies(t *testing.T) {
	testCases := []struct {
		description string
		words       []string
		find        func(e *Engine, word string) (string, bool)
		input       string
		expected    string
		found       bool
	}{
		{"missing prefix", []string{"cat"}, (*Engine).FindMissingPrefix, "at", "cat", true},
		{"missing prefix of two", []string{"scat"}, (*Engine).FindMissingPrefix, "at", "scat", true},
		{"missing prefix none", []string{"cat"}, (*Engine).FindMissingPrefix, "dog", "", false},
		{"missing suffix", []string{"cat"}, (*Engine).FindMissingSuffix, "ca", "cat", true},
		{"missing suffix of three", []string{"cattle"}, (*Engine).FindMissingSuffix, "cat", "cattle", true},
		{"missing middle", []string{"cat"}, (*Engine).FindMissingMiddle, "ct", "cat", true},
		{"missing middle run", []string{"castle"}, (*Engine).FindMissingMiddle, "cle", "castle", true},
		{"extra prefix", []string{"cat"}, (*Engine).FindExtraPrefix, "xcat", "cat", true},
		{"extra prefix keeps one char", []string{"t"}, (*Engine).FindExtraPrefix, "at", "t", true},
		{"extra prefix single char", []string{"a"}, (*Engine).FindExtraPrefix, "a", "", false},
		{"extra suffix", []string{"cat"}, (*Engine).FindExtraSuffix, "catxyz", "cat", true},
		{"extra suffix beyond three", []string{"cat"}, (*Engine).FindExtraSuffix, "catwxyz", "", false},
		{"extra middle", []string{"cart"}, (*Engine).FindExtraMiddle, "caxrt", "cart", true},
		{"miss typed last", []string{"cab", "bat", "cot"}, (*Engine).FindMissTypedCharacter, "cat", "cab", true},
		{"miss typed first", []string{"bat", "cot"}, (*Engine).FindMissTypedCharacter, "cat", "bat", true},
		{"miss typed middle", []string{"cot"}, (*Engine).FindMissTypedCharacter, "cat", "cot", true},
		{"miss typed none", []string{"dog"}, (*Engine).FindMissTypedCharacter, "cat", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			e := newEngine(tc.words...)
			result, ok := tc.find(e, tc.input)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestInsertionOrder(t *testing.T) {
	// the leftmost inserted character is the outer loop, punctuation and
	// digits come before letters
	e := newEngine("abx", "1ax")
	s, ok := e.FindMissingPrefix("x")
	require.True(t, ok)
	assert.Equal(t, "1ax", s)

	e = newEngine("abx", "bax")
	s, _ = e.FindMissingPrefix("x")
	assert.Equal(t, "abx", s)

	// shorter insertions win over earlier characters
	e = newEngine("aax", "zx")
	s, _ = e.FindMissingPrefix("x")
	assert.Equal(t, "zx", s)
}

func TestUppercaseIsNeverInserted(t *testing.T) {
	tr := trie.New()
	// force an uppercase node past Normalize to prove it is never probed
	tr.SetPointer(tr.Root())
	tr.Extend([]rune("Qat"))
	e := NewEngine(tr)

	_, ok := e.FindMissingPrefix("at")
	assert.False(t, ok)
}

func TestExtraMiddleAcceptsPrefixPaths(t *testing.T) {
	// "cart" is only a path inside "cartoon", yet it is still returned
	e := newEngine("cartoon")
	s, ok := e.FindExtraMiddle("caxrt")
	require.True(t, ok)
	assert.Equal(t, "cart", s)

	// the sibling strategies insist on stored words
	_, ok = e.FindExtraSuffix("cartxy")
	assert.False(t, ok)
}

func TestMissTypedMayReturnQuery(t *testing.T) {
	e := newEngine("cat")
	s, ok := e.FindMissTypedCharacter("cat")
	require.True(t, ok)
	assert.Equal(t, "cat", s)
}

func TestWordSuggestions(t *testing.T) {
	testCases := []struct {
		description string
		words       []string
		input       string
		expected    []string
	}{
		{
			"single substitution",
			[]string{"cat"},
			"xat",
			[]string{"cat", ManualEntry, Ignore},
		},
		{
			"known word is not excluded",
			[]string{"cat", "at", "cats", "scat"},
			"cat",
			[]string{"cat", "at", "scat", "cats", ManualEntry, Ignore},
		},
		{
			"five primary hits skip the fallbacks",
			[]string{"abce", "bcd", "zabcd", "abc", "axbcd", "abcde"},
			"abcd",
			[]string{"abce", "bcd", "zabcd", "abc", "axbcd", ManualEntry, Ignore},
		},
		{
			"four primary hits run missing suffix",
			[]string{"abce", "zabcd", "abc", "axbcd", "abcde"},
			"abcd",
			[]string{"abce", "zabcd", "abc", "axbcd", "abcde", ManualEntry, Ignore},
		},
		{
			"nothing found",
			[]string{"dog"},
			"cat",
			[]string{ManualEntry, Ignore},
		},
		{
			"empty query",
			[]string{"cat"},
			"",
			[]string{ManualEntry, Ignore},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			e := newEngine(tc.words...)
			assert.Equal(t, tc.expected, e.WordSuggestions(tc.input))
		})
	}
}

func TestSuggestionStrategies(t *testing.T) {
	e := newEngine("cat", "at", "cats", "scat")
	got := e.Suggestions("cat")
	require.Len(t, got, 4)

	var strategies []Strategy
	for _, s := range got {
		strategies = append(strategies, s.Strategy)
	}
	assert.Equal(t, []Strategy{MissTypedCharacter, ExtraPrefix, MissingPrefix, MissingSuffix}, strategies)
	assert.Equal(t, "missing_suffix", MissingSuffix.String())
	assert.Equal(t, "unknown", Strategy(42).String())
}

func TestEmptyQueries(t *testing.T) {
	e := newEngine("a", "cat")
	finders := map[string]func(string) (string, bool){
		"missingPrefix": e.FindMissingPrefix,
		"missingSuffix": e.FindMissingSuffix,
		"missingMiddle": e.FindMissingMiddle,
		"extraPrefix":   e.FindExtraPrefix,
		"extraSuffix":   e.FindExtraSuffix,
		"extraMiddle":   e.FindExtraMiddle,
		"missTyped":     e.FindMissTypedCharacter,
	}
	for name, f := range finders {
		t.Run(name, func(t *testing.T) {
			s, ok := f("")
			assert.False(t, ok)
			assert.Empty(t, s)
		})
	}
}

func TestQueryIsNormalized(t *testing.T) {
	e := newEngine("cat")
	s, ok := e.FindMissingPrefix("  AT ")
	require.True(t, ok)
	assert.Equal(t, "cat", s)
}
