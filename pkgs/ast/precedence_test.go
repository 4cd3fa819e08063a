package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qirlab/oq3/pkgs/ast"
	"github.com/qirlab/oq3/pkgs/syntax"
)

// exprOfKind finds the first expression of the given kind in preorder.
func exprOfKind(t *testing.T, root *syntax.Node, kind syntax.Kind) ast.Expr {
	t.Helper()
	e, ok := ast.CastExpr(findNode(t, root, kind))
	require.True(t, ok)
	return e
}

func TestOperatorTiersAreOrdered(t *testing.T) {
	// Operator classes from loosest to tightest. Within the convention,
	// class a binds tighter than class b exactly when a.R > b.L.
	tiers := [][]syntax.Kind{
		{syntax.EQ, syntax.PLUS_EQ, syntax.SHR_EQ, syntax.CARET_EQ},
		{syntax.PIPE_PIPE},
		{syntax.AMP_AMP},
		{syntax.EQ_EQ, syntax.NEQ, syntax.LT, syntax.LT_EQ, syntax.GT, syntax.GT_EQ},
		{syntax.PIPE},
		{syntax.CARET},
		{syntax.AMP},
		{syntax.SHL, syntax.SHR},
		{syntax.PLUS, syntax.MINUS, syntax.DOUBLE_PLUS},
		{syntax.STAR, syntax.SLASH, syntax.PERCENT},
	}
	for i, tier := range tiers {
		var tierL, tierR uint8
		for j, op := range tier {
			l, r, ok := syntax.InfixBindingPower(op)
			require.True(t, ok, "%s has no binding power", op)
			if j == 0 {
				tierL, tierR = l, r
				continue
			}
			require.Equal(t, tierL, l, "%s disagrees with its tier", op)
			require.Equal(t, tierR, r, "%s disagrees with its tier", op)
		}
		for _, looser := range tiers[:i] {
			ll, _, _ := syntax.InfixBindingPower(looser[0])
			require.Greater(t, tierR, ll,
				"tier %d must bind tighter than tier of %s", i, looser[0])
		}
	}

	// Exact anchor values from the table.
	l, r, _ := syntax.InfixBindingPower(syntax.EQ)
	require.Equal(t, [2]uint8{4, 3}, [2]uint8{l, r})
	l, r, _ = syntax.InfixBindingPower(syntax.EQ_EQ)
	require.Equal(t, [2]uint8{11, 11}, [2]uint8{l, r})
	l, r, _ = syntax.InfixBindingPower(syntax.PLUS)
	require.Equal(t, [2]uint8{21, 22}, [2]uint8{l, r})
}

func TestClassification(t *testing.T) {
	root := parseRoot(t, "x = f(a)[0] + (b - -c);")

	call := exprOfKind(t, root, syntax.CALL_EXPR)
	require.True(t, call.IsPostfix())

	index := exprOfKind(t, root, syntax.INDEX_EXPR)
	require.True(t, index.IsPostfix())

	paren := exprOfKind(t, root, syntax.PAREN_EXPR)
	require.True(t, paren.IsParenLike())

	prefix := exprOfKind(t, root, syntax.PREFIX_EXPR)
	require.True(t, prefix.IsPrefix())

	bin := exprOfKind(t, root, syntax.BIN_EXPR)
	require.False(t, bin.IsPrefix())
	require.False(t, bin.IsPostfix())
	require.False(t, bin.IsParenLike())
	require.True(t, bin.RequiresSemiToBeStmt())

	root = parseRoot(t, "return 1;")
	ret := exprOfKind(t, root, syntax.RETURN_EXPR)
	require.True(t, ret.IsPrefix())
	l, r := ret.BindingPower()
	require.Equal(t, [2]uint8{0, 1}, [2]uint8{l, r})

	root = parseRoot(t, "box { x q; }")
	box := exprOfKind(t, root, syntax.BOX_EXPR)
	require.True(t, box.IsPrefix())
	_, r = box.BindingPower()
	require.Equal(t, uint8(27), r)
}

// Scenario: a + b * c — the tighter product never needs parentheses under
// the sum.
func TestNeedsParensTighterChild(t *testing.T) {
	root := parseRoot(t, "x = a + b * c;")
	outer := exprOfKind(t, root, syntax.BIN_EXPR) // the assignment
	sum, ok := ast.CastBinExpr(outer.Syntax())
	require.True(t, ok)
	rhs, ok := sum.Rhs() // a + b * c
	require.True(t, ok)
	add, ok := ast.CastBinExpr(rhs.Syntax())
	require.True(t, ok)
	mul, ok := add.Rhs()
	require.True(t, ok)
	require.Equal(t, syntax.BIN_EXPR, mul.Kind())

	require.False(t, mul.NeedsParensIn(rhs.Syntax()))
}

// Scenario: a = b = 1 — the right-hand assignment is fine bare; as a left
// child it must keep its parentheses.
func TestNeedsParensAssignmentAssociativity(t *testing.T) {
	root := parseRoot(t, "a = b = 1;")
	outer := exprOfKind(t, root, syntax.BIN_EXPR)
	be, ok := ast.CastBinExpr(outer.Syntax())
	require.True(t, ok)
	inner, ok := be.Rhs()
	require.True(t, ok)
	require.Equal(t, syntax.BIN_EXPR, inner.Kind())
	require.False(t, inner.NeedsParensIn(outer.Syntax()))

	// Swapped: the inner assignment as the left child.
	root = parseRoot(t, "(a = b) = 1;")
	outer = exprOfKind(t, root, syntax.BIN_EXPR)
	paren := exprOfKind(t, root, syntax.PAREN_EXPR)
	pe, ok := ast.CastParenExpr(paren.Syntax())
	require.True(t, ok)
	lhs, ok := pe.Expr()
	require.True(t, ok)
	require.Equal(t, syntax.BIN_EXPR, lhs.Kind())
	require.True(t, lhs.NeedsParensIn(outer.Syntax()))
}

// Scenario: a bare return where a block is expected needs fencing.
func TestNeedsParensBlockHead(t *testing.T) {
	root := parseRoot(t, "if (c) return; else return 1;")
	ifNode := findNode(t, root, syntax.IF_STMT)

	bare := exprOfKind(t, root, syntax.RETURN_EXPR)
	require.True(t, bare.NeedsParensIn(ifNode))

	// The valued return in the else branch is not a bare prefix form.
	var valued ast.Expr
	syntax.Preorder(root, func(n *syntax.Node) bool {
		if n.Kind() == syntax.RETURN_EXPR {
			if e, ok := ast.CastExpr(n); ok {
				valued = e
			}
		}
		return true
	})
	require.NotNil(t, valued.Syntax())
	require.False(t, valued.NeedsParensIn(ifNode))
}

func TestNeedsParensArgList(t *testing.T) {
	root := parseRoot(t, "f(a + b);")
	arg := exprOfKind(t, root, syntax.BIN_EXPR)
	argList := findNode(t, root, syntax.ARG_LIST)
	require.False(t, arg.NeedsParensIn(argList))
}

func TestNeedsParensStatementRule(t *testing.T) {
	// A braced form at statement level starts a statement on its own.
	root := parseRoot(t, "{ x q; }")
	block := exprOfKind(t, root, syntax.BLOCK_EXPR)
	require.True(t, block.NeedsParensIn(root))

	// An ordinary expression does not.
	root = parseRoot(t, "a + b;")
	sum := exprOfKind(t, root, syntax.BIN_EXPR)
	stmt := findNode(t, root, syntax.EXPR_STMT)
	require.False(t, sum.NeedsParensIn(stmt))
}

// A false NeedsParensIn answer must survive re-parsing: rendering without
// the parentheses keeps the node's kind at the same position.
func TestNeedsParensReparseProperty(t *testing.T) {
	cases := []struct {
		withParens    string
		withoutParens string
		kind          syntax.Kind
	}{
		{"x = a + (b * c);", "x = a + b * c;", syntax.BIN_EXPR},
		{"x = (a) + b;", "x = a + b;", syntax.IDENTIFIER},
		{"f((a + b));", "f(a + b);", syntax.BIN_EXPR},
		{"x = a = (b = 1);", "x = a = b = 1;", syntax.BIN_EXPR},
	}
	for _, tc := range cases {
		root := parseRoot(t, tc.withParens)
		paren := findNode(t, root, syntax.PAREN_EXPR)
		pe, ok := ast.CastParenExpr(paren)
		require.True(t, ok)
		inner, ok := pe.Expr()
		require.True(t, ok)

		require.False(t, inner.NeedsParensIn(paren.Parent()),
			"parens should be redundant in %q", tc.withParens)

		stripped := ast.StripRedundantParens(root)
		require.Equal(t, tc.withoutParens, stripped.Text())

		// The inner node survives at the same kind in the re-parse.
		reparsed := parseRoot(t, tc.withoutParens)
		findNode(t, reparsed, tc.kind)
	}
}
