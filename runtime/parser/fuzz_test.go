package parser

import "testing"

// FuzzParseRoundTrip feeds arbitrary bytes through the parser and checks
// the two properties that must hold for any input: the parser terminates
// without panicking, and the built tree reproduces the input byte for
// byte.
func FuzzParseRoundTrip(f *testing.F) {
	seeds := []string{
		"",
		"OPENQASM 3.0;\nqubit q;\nh q;\n",
		"gate h q { U(pi/2, 0, pi) q; }",
		"for i in 0:1:10 { x q[i]; }",
		"let a = b ++ c;",
		"measure q -> c;",
		"int[8](x);",
		"x = (a + b) * c;",
		"?? garbage \x00\xff {{{",
		"cal { anything at all }",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tree := Parse(data)
		green, err := BuildTree(tree)
		if err != nil {
			t.Fatalf("BuildTree: %v", err)
		}
		if got := green.Text(); got != string(data) {
			t.Fatalf("round-trip mismatch:\n in  %q\n out %q", data, got)
		}
	})
}
