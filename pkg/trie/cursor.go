package trie

// Cursor is an independently owned position in a Trie. Moving a Cursor
// returns a new value and never touches the Trie's shared pointer, so any
// number of read-only traversals can coexist.
type Cursor struct {
	t  *Trie
	id NodeID
}

// Cursor returns a cursor at the root.
func (t *Trie) Cursor() Cursor { return Cursor{t: t, id: rootID} }

// CursorAt returns a cursor at id.
func (t *Trie) CursorAt(id NodeID) Cursor {
	if !t.valid(id) {
		id = NoNode
	}
	return Cursor{t: t, id: id}
}

// Valid reports whether the cursor points at a node.
func (c Cursor) Valid() bool { return c.t != nil && c.t.valid(c.id) }

func (c Cursor) Node() NodeID { return c.id }

func (c Cursor) Value() rune { return c.t.Value(c.id) }

func (c Cursor) Word() string { return c.t.Word(c.id) }

func (c Cursor) IsEndOfWord() bool { return c.t.IsEndOfWord(c.id) }

func (c Cursor) ChildCount() int { return c.t.ChildCount(c.id) }

func (c Cursor) HasNext() bool { return c.t.NextSibling(c.id) != NoNode }

func (c Cursor) HasPrev() bool { return c.t.PrevSibling(c.id) != NoNode }

func (c Cursor) Next() Cursor { return c.move(c.t.NextSibling(c.id)) }

func (c Cursor) Prev() Cursor { return c.move(c.t.PrevSibling(c.id)) }

func (c Cursor) Parent() Cursor { return c.move(c.t.Parent(c.id)) }

func (c Cursor) FirstChild() Cursor { return c.move(c.t.FirstChild(c.id)) }

func (c Cursor) LastChild() Cursor { return c.move(c.t.LastChild(c.id)) }

// Child descends to the child holding r.
func (c Cursor) Child(r rune) Cursor { return c.move(c.t.FindChild(c.id, r)) }

// Children returns the values of the direct children in chain order.
func (c Cursor) Children() []rune {
	out := make([]rune, 0, c.ChildCount())
	for ch := c.FirstChild(); ch.Valid(); ch = ch.Next() {
		out = append(out, ch.Value())
	}
	return out
}

func (c Cursor) move(id NodeID) Cursor { return Cursor{t: c.t, id: id} }
