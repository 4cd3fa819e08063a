package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qirlab/oq3/pkgs/ast"
	"github.com/qirlab/oq3/pkgs/syntax"
)

func TestParenthesize(t *testing.T) {
	root := parseRoot(t, "x = a + b * c;")

	// Wrap the product.
	var mul ast.Expr
	syntax.Preorder(root, func(n *syntax.Node) bool {
		if n.Kind() == syntax.BIN_EXPR {
			if be, ok := ast.CastBinExpr(n); ok {
				if op := be.OpToken(); op != nil && op.Kind() == syntax.STAR {
					mul, _ = ast.CastExpr(n)
				}
			}
		}
		return true
	})
	require.NotNil(t, mul.Syntax())

	wrapped := ast.Parenthesize(mul)
	require.Equal(t, "x = a + (b * c);", wrapped.Text())

	// The input tree is untouched.
	require.Equal(t, "x = a + b * c;", root.Text())

	// Subtrees off the rebuilt spine are shared between old and new root.
	// The spine runs root -> stmt -> assignment -> sum -> product, so the
	// assignment's left-hand identifier is reused by pointer.
	oldAssign := root.GreenNode().Child(0).(*syntax.GreenNode).Child(0).(*syntax.GreenNode)
	newAssign := wrapped.Child(0).(*syntax.GreenNode).Child(0).(*syntax.GreenNode)
	require.Same(t, oldAssign.Child(0), newAssign.Child(0))
}

func TestStripKeepsNecessaryParens(t *testing.T) {
	root := parseRoot(t, "x = (a + b) * c;")
	stripped := ast.StripRedundantParens(root)
	require.Equal(t, "x = (a + b) * c;", stripped.Text())
}

func TestStripRemovesRedundantParens(t *testing.T) {
	root := parseRoot(t, "x = a + (b * c);")
	stripped := ast.StripRedundantParens(root)
	require.Equal(t, "x = a + b * c;", stripped.Text())
}

func TestStripIsIdempotent(t *testing.T) {
	inputs := []string{
		"x = a + (b * c);",
		"x = (a + b) * c;",
		"f((a), (b + c));",
		"x = ((a));",
		"(a);",
	}
	for _, input := range inputs {
		root := parseRoot(t, input)
		once := ast.StripRedundantParens(root)
		twice := ast.StripRedundantParens(syntax.NewRootNode(once))
		require.True(t, syntax.StructurallyEqual(once, twice),
			"strip not idempotent for %q: %q vs %q", input, once.Text(), twice.Text())
	}
}

// Wrapping then simplifying returns to the original rendering.
func TestWrapThenStripRoundTrips(t *testing.T) {
	root := parseRoot(t, "x = a + b * c;")

	var mul ast.Expr
	syntax.Preorder(root, func(n *syntax.Node) bool {
		if be, ok := ast.CastBinExpr(n); ok {
			if op := be.OpToken(); op != nil && op.Kind() == syntax.STAR {
				mul, _ = ast.CastExpr(n)
			}
		}
		return true
	})
	wrapped := ast.Parenthesize(mul)
	stripped := ast.StripRedundantParens(syntax.NewRootNode(wrapped))
	require.Equal(t, "x = a + b * c;", stripped.Text())
}
