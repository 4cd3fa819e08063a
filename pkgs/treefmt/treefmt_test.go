package treefmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qirlab/oq3/pkgs/syntax"
	"github.com/qirlab/oq3/runtime/parser"
)

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"",
		"OPENQASM 3.0;\nqubit[2] q;\nh q[0];\ncx q[0], q[1];\n",
		"// comment only\n",
		"gate h q { U(pi/2, 0, pi) q; }",
		"let a = b ++ c; measure q -> c[0];",
	}
	for _, src := range sources {
		green, _, err := parser.ParseToGreen([]byte(src))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, green))

		back, err := Read(&buf)
		require.NoError(t, err)

		require.True(t, syntax.StructurallyEqual(green, back),
			"structural mismatch for %q", src)
		require.Equal(t, src, back.Text())
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("NOPE\x01\x00\x00\x00")))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid magic")
}

func TestReadRejectsBadVersion(t *testing.T) {
	green, _, err := parser.ParseToGreen([]byte("h q;"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, green))
	raw := buf.Bytes()
	raw[4] = 0xFF // corrupt the version field

	_, err = Read(bytes.NewReader(raw))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported version")
}

func TestReadRejectsTruncatedPayload(t *testing.T) {
	green, _, err := parser.ParseToGreen([]byte("h q;"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, green))
	raw := buf.Bytes()

	_, err = Read(bytes.NewReader(raw[:len(raw)-3]))
	require.Error(t, err)
}
