package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qirlab/oq3/pkgs/syntax"
)

func TestLoadEmbeddedGrammar(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, g.Productions)

	for _, name := range []string{
		"SourceFile", "Expr", "Stmt", "Item", "BinExpr", "RangeExpr",
		"Gate", "GateOperand", "IndexKind", "EndStmt",
	} {
		_, ok := g.Production(name)
		require.True(t, ok, "production %s missing", name)
	}
}

func TestValidateTerminals(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)
	require.NoError(t, Validate(g, DefaultKinds))

	// A grammar with an undeclared terminal fails validation.
	bad, err := Parse("Thing = 'bogus_token' ';'")
	require.NoError(t, err)
	require.Error(t, Validate(bad, DefaultKinds))
}

func TestLowerClassifiesProductions(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)
	s, err := Lower(g)
	require.NoError(t, err)

	expr, ok := s.Node("Expr")
	require.True(t, ok)
	require.Equal(t, EnumNode, expr.Class)
	require.Contains(t, expr.Variants, "BinExpr")
	require.Contains(t, expr.Variants, "RangeExpr")
	require.Contains(t, expr.Variants, "MeasureExpression")

	operand, ok := s.Node("GateOperand")
	require.True(t, ok)
	require.Equal(t, EnumNode, operand.Class)
	require.Equal(t, []string{"Identifier", "IndexedIdentifier", "HardwareQubit"}, operand.Variants)

	version, ok := s.Node("Version")
	require.True(t, ok)
	require.Equal(t, TokenSetNode, version.Class)
	require.Equal(t, []string{"int_number", "float_number"}, version.Tokens)

	bin, ok := s.Node("BinExpr")
	require.True(t, ok)
	require.Equal(t, StructNode, bin.Class)
	require.Contains(t, bin.Tokens, "++")
	require.Contains(t, bin.Tokens, ">>=")
	var labels []string
	for _, f := range bin.Fields {
		labels = append(labels, f.Name)
	}
	require.Equal(t, []string{"lhs", "rhs"}, labels)

	gate, ok := s.Node("Gate")
	require.True(t, ok)
	require.True(t, gate.Manual, "Gate is on the exclusion list")

	rng, ok := s.Node("RangeExpr")
	require.True(t, ok)
	require.True(t, rng.Manual)
	var rngLabels []string
	for _, f := range rng.Fields {
		rngLabels = append(rngLabels, f.Name)
	}
	require.Contains(t, rngLabels, "thestart")

	list, ok := s.Node("ExpressionList")
	require.True(t, ok)
	require.Equal(t, StructNode, list.Class)
	require.Len(t, list.Fields, 1)
	require.Equal(t, Many, list.Fields[0].Cardinality)
}

func TestLowerRejectsAmbiguousSiblings(t *testing.T) {
	g, err := Parse("Pair = 'if' Thing Thing\nThing = 'ident'")
	require.NoError(t, err)
	_, err = Lower(g)
	require.Error(t, err)
	require.Contains(t, err.Error(), "two unlabeled Thing children")
}

func TestMethodNames(t *testing.T) {
	name, ok := MethodName("++")
	require.True(t, ok)
	require.Equal(t, "double_plus", name)

	name, ok = MethodName(">>=")
	require.True(t, ok)
	require.Equal(t, "shr_eq", name)

	name, ok = MethodName("measure")
	require.True(t, ok)
	require.Equal(t, "measure", name)

	_, ok = MethodName("not_a_terminal")
	require.False(t, ok)
}

func TestTokenKindMapping(t *testing.T) {
	cases := map[string]syntax.Kind{
		"++":      syntax.DOUBLE_PLUS,
		">>=":     syntax.SHR_EQ,
		"measure": syntax.MEASURE_KW,
		"qubit":   syntax.QUBIT_KW,
		"ident":   syntax.IDENT,
		"end":     syntax.END_KW,
	}
	for text, want := range cases {
		got, ok := TokenKind(text)
		require.True(t, ok, "no kind for %q", text)
		require.Equal(t, want, got)
	}

	// Every terminal the grammar uses resolves to a kind.
	g, err := Load()
	require.NoError(t, err)
	for _, prod := range g.Productions {
		walkTokens(prod.Rule, func(text string) {
			_, ok := TokenKind(text)
			require.True(t, ok, "terminal %q (in %s) has no kind", text, prod.Name)
		})
	}
}
