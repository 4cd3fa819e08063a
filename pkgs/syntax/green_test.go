package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildExprTree assembles the tree for "a + 1" by hand:
// BIN_EXPR(IDENTIFIER(a), WS, +, WS, LITERAL(1)).
func buildExprTree(t *testing.T) *GreenNode {
	t.Helper()
	b := NewBuilder()
	b.StartNode(BIN_EXPR)
	b.StartNode(IDENTIFIER)
	b.Token(IDENT, "a")
	b.FinishNode()
	b.Token(WHITESPACE, " ")
	b.Token(PLUS, "+")
	b.Token(WHITESPACE, " ")
	b.StartNode(LITERAL)
	b.Token(INT_NUMBER, "1")
	b.FinishNode()
	b.FinishNode()
	root, err := b.Finish()
	require.NoError(t, err)
	return root
}

func TestGreenWidthsAndText(t *testing.T) {
	root := buildExprTree(t)

	require.Equal(t, BIN_EXPR, root.Kind())
	require.Equal(t, len("a + 1"), root.TextLen())
	require.Equal(t, "a + 1", root.Text())

	// Child widths sum to the parent width.
	sum := 0
	for _, c := range root.Children() {
		sum += c.TextLen()
	}
	require.Equal(t, root.TextLen(), sum)
}

func TestBuilderBalancing(t *testing.T) {
	b := NewBuilder()
	b.StartNode(SOURCE_FILE)
	_, err := b.Finish()
	require.Error(t, err, "unfinished node must be rejected")

	b = NewBuilder()
	b.StartNode(SOURCE_FILE)
	b.FinishNode()
	root, err := b.Finish()
	require.NoError(t, err)
	require.Equal(t, SOURCE_FILE, root.Kind())
	require.Equal(t, 0, root.TextLen())
}

func TestBuilderInternsTokens(t *testing.T) {
	b := NewBuilder()
	b.StartNode(SOURCE_FILE)
	b.Token(IDENT, "q")
	b.Token(WHITESPACE, " ")
	b.Token(IDENT, "q")
	b.FinishNode()
	root, err := b.Finish()
	require.NoError(t, err)

	first := root.Child(0).(*GreenToken)
	second := root.Child(2).(*GreenToken)
	require.Same(t, first, second, "identical tokens should share one allocation")
}

func TestStructurallyEqual(t *testing.T) {
	a := buildExprTree(t)
	b := buildExprTree(t)
	require.True(t, StructurallyEqual(a, b))

	c := NewGreenNode(BIN_EXPR, []GreenElement{NewGreenToken(IDENT, "x")})
	require.False(t, StructurallyEqual(a, c))
}

func TestReplaceChildShares(t *testing.T) {
	root := buildExprTree(t)
	repl := NewGreenToken(INT_NUMBER, "2")

	lastIdx := root.NumChildren() - 1
	next := root.ReplaceChild(lastIdx, repl)

	// Original unchanged, untouched children shared by pointer.
	require.Equal(t, "a + 1", root.Text())
	require.Equal(t, "a + 2", next.Text())
	for i := 0; i < lastIdx; i++ {
		require.Equal(t, root.Child(i), next.Child(i))
	}
}

func TestInsertChild(t *testing.T) {
	root := buildExprTree(t)
	next := root.InsertChild(0, NewGreenToken(WHITESPACE, "  "))
	require.Equal(t, "  a + 1", next.Text())
	require.Equal(t, "a + 1", root.Text())
}
