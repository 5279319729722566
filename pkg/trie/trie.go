package trie

import (
	"strings"
)

const rootID NodeID = 0

// Trie owns the node arena, the running node/word totals and a shared
// traversal pointer.
//
// The pointer is single-writer state: Add, the bulk-load helpers and the
// Next/Prev family all overwrite it. Lookups (Find, FindWord) and Cursor
// values never touch it. A Trie is not safe for concurrent use.
type Trie struct {
	nodes     []node
	nodeCount int
	wordCount int
	pointer   NodeID
}

// New creates an empty Trie holding only the root sentinel.
func New() *Trie {
	return NewWithCapacity(0)
}

// NewWithCapacity preallocates room for n nodes.
func NewWithCapacity(n int) *Trie {
	nodes := make([]node, 1, n+1)
	nodes[rootID] = newNode(0, NoNode, false)
	return &Trie{
		nodes:   nodes,
		pointer: rootID,
	}
}

func (t *Trie) Root() NodeID { return rootID }

// IsRoot reports whether id is the root sentinel.
func (t *Trie) IsRoot(id NodeID) bool { return id == rootID }

// NodeCount is the number of nodes below the root.
func (t *Trie) NodeCount() int { return t.nodeCount }

// WordCount is the number of distinct stored words.
func (t *Trie) WordCount() int { return t.wordCount }

// Size is an alias for NodeCount.
func (t *Trie) Size() int { return t.nodeCount }

func (t *Trie) IsEmpty() bool { return t.nodeCount == 0 }

func (t *Trie) incNodeCount() { t.nodeCount++ }

func (t *Trie) incWordCount() { t.wordCount++ }

// Normalize trims surrounding whitespace and lowercases s. Add and Find both
// apply it, so stored and probed forms always agree.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Add inserts word from the root and returns the node of its last character,
// or NoNode for an empty word. Re-adding a stored word changes no counter.
func (t *Trie) Add(word string) NodeID {
	word = Normalize(word)
	if word == "" {
		return NoNode
	}
	t.ResetPointer()
	return t.Extend([]rune(word))
}

// Extend inserts suffix below the shared pointer, advancing the pointer to
// each node it visits, and marks the final node end-of-word. An empty suffix
// marks the pointer itself, unless the pointer is the root.
func (t *Trie) Extend(suffix []rune) NodeID {
	if t.pointer == NoNode {
		t.pointer = rootID
	}
	if len(suffix) == 0 {
		if t.pointer != rootID && !t.nodes[t.pointer].endOfWord {
			t.nodes[t.pointer].endOfWord = true
			t.incWordCount()
		}
		return t.pointer
	}
	last := len(suffix) - 1
	for i, r := range suffix {
		id, created, completed := t.addChild(t.pointer, r, i == last)
		if created {
			t.incNodeCount()
		}
		if completed {
			t.incWordCount()
		}
		t.pointer = id
	}
	return t.pointer
}

// FindChild scans the children of at front to back for r. The chain is
// sorted, so the scan stops at the first larger value.
func (t *Trie) FindChild(at NodeID, r rune) NodeID {
	if !t.valid(at) {
		return NoNode
	}
	n := &t.nodes[at]
	child := n.firstChild
	for i := 0; i < n.childCount && child != NoNode; i++ {
		v := t.nodes[child].value
		if v == r {
			return child
		}
		if v > r {
			return NoNode
		}
		child = t.nodes[child].next
	}
	return NoNode
}

// FindFrom descends from at along s and returns the node of its last
// character, or NoNode if any character is missing or s is empty.
func (t *Trie) FindFrom(at NodeID, s string) NodeID {
	s = Normalize(s)
	if s == "" {
		return NoNode
	}
	id := at
	for _, r := range s {
		if id = t.FindChild(id, r); id == NoNode {
			return NoNode
		}
	}
	return id
}

// Find descends from the root along s.
func (t *Trie) Find(s string) NodeID {
	return t.FindFrom(rootID, s)
}

// FindRunes descends from the root along rs without normalizing.
// It is the probe used by the suggestion engine.
func (t *Trie) FindRunes(rs []rune) NodeID {
	if len(rs) == 0 {
		return NoNode
	}
	id := rootID
	for _, r := range rs {
		if id = t.FindChild(id, r); id == NoNode {
			return NoNode
		}
	}
	return id
}

// FindWord reports whether s is a stored word. A string that only exists as
// a prefix of other words is not.
func (t *Trie) FindWord(s string) bool {
	return t.IsEndOfWord(t.Find(s))
}

// Walk visits every stored word in ascending order until fn returns false.
func (t *Trie) Walk(fn func(word string) bool) {
	var buf []rune
	var visit func(id NodeID) bool
	visit = func(id NodeID) bool {
		for c := t.nodes[id].firstChild; c != NoNode; c = t.nodes[c].next {
			buf = append(buf, t.nodes[c].value)
			if t.nodes[c].endOfWord && !fn(string(buf)) {
				return false
			}
			if !visit(c) {
				return false
			}
			buf = buf[:len(buf)-1]
		}
		return true
	}
	visit(rootID)
}

// Words returns every stored word in ascending order.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.wordCount)
	t.Walk(func(w string) bool {
		words = append(words, w)
		return true
	})
	return words
}
