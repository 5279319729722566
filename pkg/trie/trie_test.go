package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCountsNodesAndWords(t *testing.T) {
	tr := New()
	tr.Add("bat")
	tr.Add("bats")
	tr.Add("cat")

	assert.Equal(t, 7, tr.NodeCount())
	assert.Equal(t, 3, tr.WordCount())
	assert.False(t, tr.FindWord("ba"))
	assert.True(t, tr.FindWord("bat"))
	assert.True(t, tr.FindWord("bats"))
	assert.True(t, tr.FindWord("cat"))
}

func TestReAddLeavesCountersUnchanged(t *testing.T) {
	tr := New()
	first := tr.Add("hello")
	nodes, words := tr.NodeCount(), tr.WordCount()

	again := tr.Add("hello")
	assert.Equal(t, first, again)
	assert.Equal(t, nodes, tr.NodeCount())
	assert.Equal(t, words, tr.WordCount())
}

func TestPrefixPromotedToWord(t *testing.T) {
	tr := New()
	tr.Add("cars")
	require.NotEqual(t, NoNode, tr.Find("car"))
	assert.False(t, tr.FindWord("car"))

	tr.Add("car")
	assert.True(t, tr.FindWord("car"))
	assert.Equal(t, 4, tr.NodeCount())
	assert.Equal(t, 2, tr.WordCount())

	// promotion is one way
	tr.Add("cars")
	assert.True(t, tr.FindWord("car"))
}

func TestPrefixesExistButAreNotWords(t *testing.T) {
	tr := New()
	tr.Add("example")
	for _, p := range []string{"e", "ex", "exa", "exam", "examp", "exampl"} {
		t.Run(p, func(t *testing.T) {
			assert.NotEqual(t, NoNode, tr.Find(p))
			assert.False(t, tr.FindWord(p))
		})
	}
	assert.True(t, tr.FindWord("example"))
	assert.Equal(t, NoNode, tr.Find("examples"))
	assert.Equal(t, NoNode, tr.Find("x"))
}

func TestSiblingsStaySorted(t *testing.T) {
	tr := New()
	for _, w := range []string{"m", "z", "a", "q", "b", "y", "-", "'", "c", "a", "z"} {
		tr.Add(w)
	}
	c := tr.Cursor()
	assert.Equal(t, []rune{'\'', '-', 'a', 'b', 'c', 'm', 'q', 'y', 'z'}, c.Children())
	assert.Equal(t, 9, c.ChildCount())
	assert.Equal(t, '\'', c.FirstChild().Value())
	assert.Equal(t, 'z', c.LastChild().Value())

	// walking backwards yields the reverse
	var back []rune
	for ch := c.LastChild(); ch.Valid(); ch = ch.Prev() {
		back = append(back, ch.Value())
	}
	assert.Equal(t, []rune{'z', 'y', 'q', 'm', 'c', 'b', 'a', '-', '\''}, back)
}

func TestSortedOrderInvariantHoldsEverywhere(t *testing.T) {
	tr := New()
	for _, w := range []string{"delta", "alpha", "dog", "door", "ant", "alp", "dot", "anchor", "do"} {
		tr.Add(w)
	}
	var check func(c Cursor)
	check = func(c Cursor) {
		kids := c.Children()
		require.Len(t, kids, c.ChildCount())
		for i := 1; i < len(kids); i++ {
			require.Less(t, kids[i-1], kids[i], "children of %q", c.Word())
		}
		for ch := c.FirstChild(); ch.Valid(); ch = ch.Next() {
			require.Equal(t, c.Node(), ch.Parent().Node())
			check(ch)
		}
	}
	check(tr.Cursor())
}

func TestWordAndLength(t *testing.T) {
	tr := New()
	id := tr.Add("kitten")
	assert.Equal(t, "kitten", tr.Word(id))
	assert.Equal(t, 6, tr.Length(id))
	assert.Equal(t, "kit", tr.Word(tr.Parent(tr.Parent(tr.Parent(id)))))

	assert.Equal(t, "", tr.Word(tr.Root()))
	assert.Equal(t, 0, tr.Length(tr.Root()))
	assert.Equal(t, "", tr.Word(NoNode))
}

func TestEmptyAndNormalizedInput(t *testing.T) {
	tr := New()
	assert.Equal(t, NoNode, tr.Add(""))
	assert.Equal(t, NoNode, tr.Add("   "))
	assert.True(t, tr.IsEmpty())
	assert.Equal(t, NoNode, tr.Find(""))
	assert.False(t, tr.FindWord(""))

	tr.Add("  Hello ")
	assert.True(t, tr.FindWord("hello"))
	assert.True(t, tr.FindWord("HELLO"))
	assert.Equal(t, 1, tr.WordCount())
}

func TestFindChildStopsEarly(t *testing.T) {
	tr := New()
	tr.Add("b")
	tr.Add("d")
	assert.Equal(t, NoNode, tr.FindChild(tr.Root(), 'a'))
	assert.Equal(t, NoNode, tr.FindChild(tr.Root(), 'c'))
	assert.Equal(t, NoNode, tr.FindChild(tr.Root(), 'e'))
	assert.Equal(t, 'd', tr.Value(tr.FindChild(tr.Root(), 'd')))
	assert.Equal(t, NoNode, tr.FindChild(NoNode, 'd'))
}

func TestSharedPointerNavigation(t *testing.T) {
	tr := New()
	for _, w := range []string{"a", "b", "c"} {
		tr.Add(w)
	}
	tr.SetPointer(tr.FirstChild(tr.Root()))
	assert.False(t, tr.HasPrev())
	assert.True(t, tr.HasNext())

	assert.Equal(t, 'b', tr.Value(tr.Next()))
	assert.Equal(t, 'c', tr.Value(tr.Next()))
	assert.False(t, tr.HasNext())
	assert.True(t, tr.HasPrev())
	assert.Equal(t, 'b', tr.Value(tr.Prev()))

	tr.SetPointer(tr.Find("c"))
	assert.Equal(t, NoNode, tr.Next())
	assert.Equal(t, tr.Root(), tr.Pointer())
}

func TestAscendAndExtend(t *testing.T) {
	tr := New()
	tr.Add("cat")
	require.Equal(t, "cat", tr.Word(tr.Pointer()))

	assert.Equal(t, "ca", tr.Word(tr.Ascend(1)))
	id := tr.Extend([]rune("r"))
	assert.Equal(t, "car", tr.Word(id))
	assert.Equal(t, 4, tr.NodeCount())
	assert.Equal(t, 2, tr.WordCount())

	assert.True(t, tr.IsRoot(tr.Ascend(10)))

	// empty suffix marks the pointer as a word
	tr.SetPointer(tr.Find("ca"))
	tr.Extend(nil)
	assert.True(t, tr.FindWord("ca"))
	assert.Equal(t, 3, tr.WordCount())
}

func TestCursorDoesNotMoveSharedPointer(t *testing.T) {
	tr := New()
	tr.Add("ab")
	tr.Add("ac")
	p := tr.Pointer()

	c := tr.Cursor().Child('a').FirstChild()
	assert.Equal(t, "ab", c.Word())
	c2 := c.Next()
	assert.Equal(t, "ac", c2.Word())
	assert.True(t, c2.IsEndOfWord())
	assert.Equal(t, "ab", c.Word())
	assert.Equal(t, p, tr.Pointer())

	assert.False(t, tr.Cursor().Child('z').Valid())
	assert.False(t, tr.CursorAt(NodeID(999)).Valid())
}

func TestWordsAreOrdered(t *testing.T) {
	tr := New()
	for _, w := range []string{"pear", "apple", "app", "peach", "banana"} {
		tr.Add(w)
	}
	assert.Equal(t, []string{"app", "apple", "banana", "peach", "pear"}, tr.Words())

	var first []string
	tr.Walk(func(w string) bool {
		first = append(first, w)
		return len(first) < 2
	})
	assert.Equal(t, []string{"app", "apple"}, first)
}
