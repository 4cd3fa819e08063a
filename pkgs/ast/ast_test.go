package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qirlab/oq3/pkgs/ast"
	"github.com/qirlab/oq3/pkgs/syntax"
	"github.com/qirlab/oq3/runtime/parser"
)

// parseRoot parses source that must be error-free and returns the red root.
func parseRoot(t *testing.T, src string) *syntax.Node {
	t.Helper()
	green, tree, err := parser.ParseToGreen([]byte(src))
	require.NoError(t, err)
	require.Empty(t, tree.Errors, "unexpected parse errors in %q", src)
	return syntax.NewRootNode(green)
}

// findNode returns the first node of the given kind in preorder.
func findNode(t *testing.T, root *syntax.Node, kind syntax.Kind) *syntax.Node {
	t.Helper()
	var found *syntax.Node
	syntax.Preorder(root, func(n *syntax.Node) bool {
		if found == nil && n.Kind() == kind {
			found = n
		}
		return found == nil
	})
	require.NotNil(t, found, "no %s node", kind)
	return found
}

func TestSourceFileItems(t *testing.T) {
	root := parseRoot(t, "OPENQASM 3.0;\nqubit q;\nh q;\n")
	file, ok := ast.CastSourceFile(root)
	require.True(t, ok)

	vs, ok := file.Version()
	require.True(t, ok)
	v, ok := vs.Version()
	require.True(t, ok)
	require.Equal(t, "3.0", v.Text())

	items := file.Items()
	require.Len(t, items, 3)
	require.Equal(t, syntax.VERSION_STRING, items[0].Kind())
	require.Equal(t, syntax.QUANTUM_DECLARATION_STATEMENT, items[1].Kind())
	require.Equal(t, syntax.GATE_CALL_STMT, items[2].Kind())

	// Statements exclude the version header.
	require.Len(t, file.Statements(), 2)
}

// Gate's two same-shaped lists must resolve to distinct children in source
// order.
func TestGateParamListsDistinct(t *testing.T) {
	root := parseRoot(t, "gate h q { U(pi, 0, pi) q; }")
	g, ok := ast.CastGate(findNode(t, root, syntax.GATE))
	require.True(t, ok)

	name, ok := g.Name()
	require.True(t, ok)
	require.Equal(t, "h", name.Text())

	angle, ok := g.AngleParams()
	require.True(t, ok)
	qubits, ok := g.QubitArgs()
	require.True(t, ok)

	require.Empty(t, angle.Params(), "angle params are empty for gate h")
	require.Len(t, qubits.Params(), 1)

	// Distinct children in source order.
	require.NotEqual(t, angle.Syntax().Range(), qubits.Syntax().Range())
	require.LessOrEqual(t, angle.Syntax().Range().Start, qubits.Syntax().Range().Start)

	p, ok := qubits.Params()[0].Name()
	require.True(t, ok)
	require.Equal(t, "q", p.Text())
}

// The Measure node's expression covers only through its operand; the arrow
// target belongs to the statement.
func TestMeasureRanges(t *testing.T) {
	src := "measure q -> c;"
	root := parseRoot(t, src)

	m, ok := ast.CastMeasure(findNode(t, root, syntax.MEASURE))
	require.True(t, ok)

	me, ok := m.MeasureExpression()
	require.True(t, ok)
	require.Equal(t, "measure q", me.Syntax().Text())
	require.Equal(t, syntax.TextRange{Start: 0, End: len("measure q")}, me.Syntax().Range())

	operand, ok := me.Operand()
	require.True(t, ok)
	require.Equal(t, syntax.IDENTIFIER, operand.Kind())
	require.Equal(t, "q", operand.Syntax().Text())

	target, ok := m.Target()
	require.True(t, ok)
	require.Equal(t, "c", target.Syntax().Text())
}

func TestForStmtAccessors(t *testing.T) {
	root := parseRoot(t, "for i in 0:1:10 { x q[i]; }")
	f, ok := ast.CastForStmt(findNode(t, root, syntax.FOR_STMT))
	require.True(t, ok)

	v, ok := f.LoopVar()
	require.True(t, ok)
	require.Equal(t, "i", v.Text())

	it, ok := f.Iterable()
	require.True(t, ok)
	require.Equal(t, syntax.RANGE_EXPR, it.Kind())

	l, r := it.BindingPower()
	require.Equal(t, uint8(5), l)
	require.Equal(t, uint8(5), r)

	rng, ok := ast.CastRangeExpr(it.Syntax())
	require.True(t, ok)
	start, ok := rng.TheStart()
	require.True(t, ok)
	step, ok := rng.Step()
	require.True(t, ok)
	stop, ok := rng.Stop()
	require.True(t, ok)
	require.Equal(t, "0", start.Syntax().Text())
	require.Equal(t, "1", step.Syntax().Text())
	require.Equal(t, "10", stop.Syntax().Text())

	body, ok := f.LoopBody()
	require.True(t, ok)
	require.Len(t, body.Statements(), 1)
	require.Equal(t, syntax.GATE_CALL_STMT, body.Statements()[0].Kind())
}

func TestIfBranches(t *testing.T) {
	root := parseRoot(t, "if (c) { x q; } else { y q; }")
	v, ok := ast.CastIfStmt(findNode(t, root, syntax.IF_STMT))
	require.True(t, ok)

	cond, ok := v.Condition()
	require.True(t, ok)
	require.Equal(t, "c", cond.Syntax().Text())

	then, ok := v.ThenBranch()
	require.True(t, ok)
	require.Equal(t, syntax.BLOCK_EXPR, then.Kind())

	els, ok := v.ElseBranch()
	require.True(t, ok)
	require.Equal(t, syntax.BLOCK_EXPR, els.Kind())
	require.Less(t, then.Syntax().Range().Start, els.Syntax().Range().Start)

	// Without an else the accessor reports absence.
	root = parseRoot(t, "if (c) { x q; }")
	v, _ = ast.CastIfStmt(findNode(t, root, syntax.IF_STMT))
	_, ok = v.ElseBranch()
	require.False(t, ok)
}

func TestLetConcatenationNormalizes(t *testing.T) {
	root := parseRoot(t, "let a = b ++ c ++ d;")
	let, ok := ast.CastLetStmt(findNode(t, root, syntax.LET_STMT))
	require.True(t, ok)
	require.Equal(t, "a", let.NameText())

	val, ok := let.Value()
	require.True(t, ok)
	require.Equal(t, syntax.CONCATENATION_EXPR, val.Kind())

	flatFromAlias := ast.FlattenConcatenation(val)
	require.Len(t, flatFromAlias, 3)

	// The BinExpr shape of the same operands flattens identically.
	root2 := parseRoot(t, "x = b ++ c ++ d;")
	assign, ok := ast.CastAssignmentStmt(findNode(t, root2, syntax.ASSIGNMENT_STMT))
	require.True(t, ok)
	ae, ok := assign.Expr()
	require.True(t, ok)
	rhs, ok := ast.CastBinExpr(ae.Syntax())
	require.True(t, ok)
	chain, ok := rhs.Rhs()
	require.True(t, ok)
	flatFromBin := ast.FlattenConcatenation(chain)
	require.Len(t, flatFromBin, 3)

	for i := range flatFromAlias {
		require.Equal(t, flatFromAlias[i].Syntax().Text(), flatFromBin[i].Syntax().Text())
	}
}

func TestFilePathPayload(t *testing.T) {
	root := parseRoot(t, `include "stdgates.inc";`)
	inc, ok := ast.CastInclude(findNode(t, root, syntax.INCLUDE))
	require.True(t, ok)
	fp, ok := inc.FilePath()
	require.True(t, ok)
	require.Equal(t, "stdgates.inc", fp.Text())
}

func TestEnumViews(t *testing.T) {
	root := parseRoot(t, "cx q[0], $1;")
	call, ok := ast.CastGateCallStmt(findNode(t, root, syntax.GATE_CALL_STMT))
	require.True(t, ok)

	qubits, ok := call.Qubits()
	require.True(t, ok)
	ops := qubits.Operands()
	require.Len(t, ops, 2)
	require.Equal(t, syntax.INDEXED_IDENTIFIER, ops[0].Kind())
	require.Equal(t, syntax.HARDWARE_QUBIT, ops[1].Kind())

	idx, ok := ast.CastIndexedIdentifier(ops[0].Syntax())
	require.True(t, ok)
	require.Len(t, idx.Indexes(), 1)
	kind, ok := idx.Indexes()[0].IndexKind()
	require.True(t, ok)
	require.Equal(t, syntax.EXPRESSION_LIST, kind.Kind())

	// A statement-shaped node is visible through both enum views.
	root = parseRoot(t, "while (c) { x q; }")
	w := findNode(t, root, syntax.WHILE_STMT)
	_, ok = ast.CastStmt(w)
	require.True(t, ok)
	we, ok := ast.CastExpr(w)
	require.True(t, ok)
	require.True(t, we.IsParenLike())
	require.False(t, we.RequiresSemiToBeStmt())
}

func TestClassicalDeclarationAccessors(t *testing.T) {
	root := parseRoot(t, "const float[64] theta = pi / 4;")
	d, ok := ast.CastClassicalDeclarationStatement(
		findNode(t, root, syntax.CLASSICAL_DECLARATION_STATEMENT))
	require.True(t, ok)

	require.NotNil(t, d.ConstToken())

	typ, ok := d.Type()
	require.True(t, ok)
	st, ok := ast.CastScalarType(typ.Syntax())
	require.True(t, ok)
	require.Equal(t, syntax.FLOAT_KW, st.TypeToken().Kind())

	name, ok := d.Name()
	require.True(t, ok)
	require.Equal(t, "theta", name.Text())

	init, ok := d.Initializer()
	require.True(t, ok)
	require.Equal(t, syntax.BIN_EXPR, init.Kind())
}
