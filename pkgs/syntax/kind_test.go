package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindClassification(t *testing.T) {
	require.True(t, WHITESPACE.IsTrivia())
	require.True(t, COMMENT.IsTrivia())
	require.False(t, IDENT.IsTrivia())

	require.True(t, SEMICOLON.IsPunct())
	require.True(t, SHR_EQ.IsPunct())
	require.False(t, GATE_KW.IsPunct())

	require.True(t, MEASURE_KW.IsKeyword())
	require.True(t, QUBIT_KW.IsKeyword())
	require.True(t, QUBIT_KW.IsTypeKeyword())
	require.False(t, MEASURE_KW.IsTypeKeyword())

	require.True(t, INT_NUMBER.IsLiteral())
	require.True(t, TRUE_KW.IsLiteral())
	require.False(t, IDENTIFIER.IsLiteral())

	require.True(t, BIN_EXPR.IsNode())
	require.True(t, ERROR.IsNode())
	require.False(t, BIN_EXPR.IsToken())
	require.True(t, EOF.IsToken())
}

func TestKindNamesComplete(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		require.NotEqual(t, "UNKNOWN", k.String(), "kind %d has no name", uint16(k))
	}
	require.Equal(t, "UNKNOWN", kindCount.String())
}

func TestKeywordTableMatchesKinds(t *testing.T) {
	for text, kind := range Keywords {
		require.True(t, kind.IsKeyword(), "%s maps to non-keyword kind %s", text, kind)
	}
	// Contextual keywords are resolved by the tokenizer like any other.
	for _, text := range []string{"measure", "reset", "barrier", "gphase", "gate",
		"def", "defcal", "cal", "defcalgrammar", "box", "include"} {
		_, ok := Keywords[text]
		require.True(t, ok, "contextual keyword %s missing from table", text)
	}
}
