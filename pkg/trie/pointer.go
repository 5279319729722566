package trie

// Shared pointer navigation. These methods read and overwrite the Trie's
// single pointer and exist for the exclusive bulk-load path; concurrent or
// interleaved read-only traversals should use Cursor instead.

// Pointer returns the node most recently visited by insertion or navigation.
func (t *Trie) Pointer() NodeID {
	if t.pointer == NoNode {
		return rootID
	}
	return t.pointer
}

// SetPointer moves the pointer to id. Invalid handles reset it to the root.
func (t *Trie) SetPointer(id NodeID) NodeID {
	if !t.valid(id) {
		id = rootID
	}
	t.pointer = id
	return id
}

func (t *Trie) ResetPointer() { t.pointer = rootID }

// Ascend moves the pointer up by steps parents, stopping at the root.
func (t *Trie) Ascend(steps int) NodeID {
	p := t.Pointer()
	for ; steps > 0 && p != rootID; steps-- {
		p = t.nodes[p].parent
	}
	t.pointer = p
	return p
}

func (t *Trie) HasNext() bool {
	return t.nodes[t.Pointer()].next != NoNode
}

// Next moves the pointer to its next sibling and returns it. At the end of
// the chain the pointer becomes NoNode and Pointer reports the root.
func (t *Trie) Next() NodeID {
	t.pointer = t.nodes[t.Pointer()].next
	return t.pointer
}

func (t *Trie) HasPrev() bool {
	return t.nodes[t.Pointer()].prev != NoNode
}

// Prev moves the pointer to its previous sibling and returns it.
func (t *Trie) Prev() NodeID {
	t.pointer = t.nodes[t.Pointer()].prev
	return t.pointer
}
