package suggest

// IChecker defines the interface used by the CLI and the IPC server.
type IChecker interface {
	// Check reports whether word is a known word
	Check(word string) bool

	// Suggest returns the suggestion list for word, ending with ManualEntry and Ignore
	Suggest(word string) []string

	// AddWord stores a word, reporting whether it was new
	AddWord(word string) bool

	// Stats returns counters about the loaded vocabulary and the cache
	Stats() map[string]int
}
