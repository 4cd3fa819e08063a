package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedTreeOffsetsAndParents(t *testing.T) {
	root := NewRootNode(buildExprTree(t))

	require.Nil(t, root.Parent())
	require.Equal(t, TextRange{Start: 0, End: 5}, root.Range())

	kids := root.Children()
	require.Len(t, kids, 2)

	ident, lit := kids[0], kids[1]
	require.Equal(t, IDENTIFIER, ident.Kind())
	require.Equal(t, TextRange{Start: 0, End: 1}, ident.Range())
	require.Equal(t, LITERAL, lit.Kind())
	require.Equal(t, TextRange{Start: 4, End: 5}, lit.Range())

	require.Same(t, root, ident.Parent())
	require.Same(t, root, lit.Parent())
}

func TestRedTreeSiblings(t *testing.T) {
	root := NewRootNode(buildExprTree(t))
	kids := root.ChildrenWithTokens()
	require.Len(t, kids, 5)

	// IDENTIFIER -> WS -> '+' -> WS -> LITERAL
	require.Equal(t, WHITESPACE, kids[0].NextSibling().Kind())
	require.Equal(t, PLUS, kids[1].NextSibling().Kind())
	require.Nil(t, kids[4].NextSibling())
	require.Nil(t, kids[0].PrevSibling())
	require.Equal(t, WHITESPACE, kids[4].PrevSibling().Kind())

	// Cached traversal returns the same red instances.
	again := root.ChildrenWithTokens()
	require.Same(t, kids[0], again[0])
}

func TestFirstLastTokenSpanRange(t *testing.T) {
	root := NewRootNode(buildExprTree(t))

	first := root.FirstToken()
	last := root.LastToken()
	require.Equal(t, "a", first.Text())
	require.Equal(t, "1", last.Text())

	// text_range(N) equals the span of first through last token.
	require.Equal(t, root.Range(), TextRange{
		Start: first.Range().Start,
		End:   last.Range().End,
	})
}

func TestSameNodeComparison(t *testing.T) {
	green := buildExprTree(t)
	a := NewRootNode(green).Children()[0]
	b := NewRootNode(green).Children()[0]

	// Distinct constructions never compare by pointer; kind+range is the
	// contract.
	require.NotSame(t, a, b)
	require.True(t, a.SameNode(b))
}

func TestNodePtrResolve(t *testing.T) {
	green := buildExprTree(t)
	root := NewRootNode(green)
	lit := root.Children()[1]

	ptr := PtrFor(lit)
	fresh := NewRootNode(green)
	got, err := ptr.Resolve(fresh)
	require.NoError(t, err)
	require.True(t, lit.SameNode(got))

	// A pointer that matches nothing reports an error.
	bogus := NodePtr{Kind: BIN_EXPR, Range: TextRange{Start: 1, End: 2}}
	_, err = bogus.Resolve(fresh)
	require.Error(t, err)
}

func TestPreorderAndTokens(t *testing.T) {
	root := NewRootNode(buildExprTree(t))

	var kinds []Kind
	Preorder(root, func(n *Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	require.Equal(t, []Kind{BIN_EXPR, IDENTIFIER, LITERAL}, kinds)

	toks := TokensInSubtree(root)
	var text string
	for _, tok := range toks {
		text += tok.Text()
	}
	require.Equal(t, "a + 1", text)
}
