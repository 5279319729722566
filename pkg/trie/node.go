// Package trie implements a character trie with ordered sibling chains.
//
// Nodes live in an arena owned by the Trie and are addressed by NodeID handles.
// Parent, first/last child and sibling links are handles into that arena, so
// navigating up, down or sideways is O(1) and no node is ever aliased.
package trie

// NodeID addresses a node in a Trie's arena.
type NodeID int32

// NoNode is the "not found" handle.
const NoNode NodeID = -1

// node is a single character slot.
// Children form a doubly linked chain sorted ascending by value, no duplicates.
type node struct {
	value      rune
	parent     NodeID
	firstChild NodeID
	lastChild  NodeID
	prev       NodeID
	next       NodeID
	childCount int
	endOfWord  bool
}

func newNode(value rune, parent NodeID, endOfWord bool) node {
	return node{
		value:      value,
		parent:     parent,
		firstChild: NoNode,
		lastChild:  NoNode,
		prev:       NoNode,
		next:       NoNode,
		endOfWord:  endOfWord,
	}
}

// addChild returns the child of parent holding value, creating it if absent.
// created reports a new node; completed reports that the child became
// end-of-word during this call.
func (t *Trie) addChild(parent NodeID, value rune, endOfWord bool) (id NodeID, created, completed bool) {
	p := &t.nodes[parent]

	// Walk back from the last child. Anything greater is skipped, an equal
	// value is a duplicate, and the first smaller value is our predecessor.
	pred := p.lastChild
	for steps := p.childCount; steps > 0 && pred != NoNode; steps-- {
		sib := &t.nodes[pred]
		if sib.value < value {
			break
		}
		if sib.value == value {
			if endOfWord && !sib.endOfWord {
				sib.endOfWord = true
				return pred, false, true
			}
			return pred, false, false
		}
		pred = sib.prev
	}

	id = NodeID(len(t.nodes))
	t.nodes = append(t.nodes, newNode(value, parent, endOfWord))
	// append may have moved the arena
	p = &t.nodes[parent]
	child := &t.nodes[id]

	switch {
	case p.childCount == 0:
		p.firstChild = id
		p.lastChild = id
	case pred == NoNode:
		child.next = p.firstChild
		t.nodes[p.firstChild].prev = id
		p.firstChild = id
	case pred == p.lastChild:
		child.prev = pred
		t.nodes[pred].next = id
		p.lastChild = id
	default:
		succ := t.nodes[pred].next
		child.prev = pred
		child.next = succ
		t.nodes[pred].next = id
		t.nodes[succ].prev = id
	}
	p.childCount++
	return id, true, endOfWord
}

// Value returns the character stored at id, or 0 for the root and NoNode.
func (t *Trie) Value(id NodeID) rune {
	if !t.valid(id) {
		return 0
	}
	return t.nodes[id].value
}

// Parent returns the parent of id. The root has no parent.
func (t *Trie) Parent(id NodeID) NodeID {
	if !t.valid(id) {
		return NoNode
	}
	return t.nodes[id].parent
}

func (t *Trie) FirstChild(id NodeID) NodeID {
	if !t.valid(id) {
		return NoNode
	}
	return t.nodes[id].firstChild
}

func (t *Trie) LastChild(id NodeID) NodeID {
	if !t.valid(id) {
		return NoNode
	}
	return t.nodes[id].lastChild
}

// NextSibling returns the next larger sibling of id.
func (t *Trie) NextSibling(id NodeID) NodeID {
	if !t.valid(id) {
		return NoNode
	}
	return t.nodes[id].next
}

// PrevSibling returns the next smaller sibling of id.
func (t *Trie) PrevSibling(id NodeID) NodeID {
	if !t.valid(id) {
		return NoNode
	}
	return t.nodes[id].prev
}

// ChildCount returns the number of direct children of id.
func (t *Trie) ChildCount(id NodeID) int {
	if !t.valid(id) {
		return 0
	}
	return t.nodes[id].childCount
}

// IsEndOfWord reports whether the path from the root to id spells a stored word.
func (t *Trie) IsEndOfWord(id NodeID) bool {
	return t.valid(id) && t.nodes[id].endOfWord
}

// Word rebuilds the string spelled from the root down to id.
// It returns "" for the root and for NoNode. Cost is O(depth).
func (t *Trie) Word(id NodeID) string {
	if !t.valid(id) || id == rootID {
		return ""
	}
	var buf []rune
	for n := id; n != rootID; n = t.nodes[n].parent {
		buf = append(buf, t.nodes[n].value)
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Length returns the depth of id, i.e. the character count of Word(id).
func (t *Trie) Length(id NodeID) int {
	if !t.valid(id) {
		return 0
	}
	depth := 0
	for n := id; n != rootID; n = t.nodes[n].parent {
		depth++
	}
	return depth
}

func (t *Trie) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}
