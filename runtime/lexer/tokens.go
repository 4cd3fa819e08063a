package lexer

import "github.com/qirlab/oq3/pkgs/syntax"

// Token is one lexed token: kind, exact source text, and absolute byte
// offset. Trivia (whitespace, comments) appears in the stream like any
// other token so the parser can keep the tree lossless.
type Token struct {
	Kind   syntax.Kind
	Text   string
	Offset int
}

// End returns the byte offset just past the token.
func (t Token) End() int { return t.Offset + len(t.Text) }

// IsTrivia reports whether the token is whitespace or a comment.
func (t Token) IsTrivia() bool { return t.Kind.IsTrivia() }

// SingleCharTokens maps single bytes to their token kinds.
var SingleCharTokens = map[byte]syntax.Kind{
	';': syntax.SEMICOLON,
	',': syntax.COMMA,
	'(': syntax.L_PAREN,
	')': syntax.R_PAREN,
	'[': syntax.L_BRACKET,
	']': syntax.R_BRACKET,
	'{': syntax.L_BRACE,
	'}': syntax.R_BRACE,
	':': syntax.COLON,
	'@': syntax.AT,
	'+': syntax.PLUS,
	'-': syntax.MINUS,
	'*': syntax.STAR,
	'/': syntax.SLASH,
	'%': syntax.PERCENT,
	'^': syntax.CARET,
	'&': syntax.AMP,
	'|': syntax.PIPE,
	'!': syntax.BANG,
	'~': syntax.TILDE,
	'=': syntax.EQ,
	'<': syntax.LT,
	'>': syntax.GT,
}

// TwoCharTokens maps two-byte sequences to their token kinds.
var TwoCharTokens = map[string]syntax.Kind{
	"->": syntax.ARROW,
	"==": syntax.EQ_EQ,
	"!=": syntax.NEQ,
	"<=": syntax.LT_EQ,
	">=": syntax.GT_EQ,
	"<<": syntax.SHL,
	">>": syntax.SHR,
	"&&": syntax.AMP_AMP,
	"||": syntax.PIPE_PIPE,
	"++": syntax.DOUBLE_PLUS,
	"+=": syntax.PLUS_EQ,
	"-=": syntax.MINUS_EQ,
	"*=": syntax.STAR_EQ,
	"/=": syntax.SLASH_EQ,
	"%=": syntax.PERCENT_EQ,
	"&=": syntax.AMP_EQ,
	"|=": syntax.PIPE_EQ,
	"^=": syntax.CARET_EQ,
}

// ThreeCharTokens maps three-byte sequences to their token kinds. Checked
// before the two-byte table so "<<=" wins over "<<".
var ThreeCharTokens = map[string]syntax.Kind{
	"<<=": syntax.SHL_EQ,
	">>=": syntax.SHR_EQ,
}

// timingSuffixes lists the duration suffixes that turn a number into a
// timing literal. "µs" is the only multi-byte spelling.
var timingSuffixes = []string{"dt", "ns", "us", "µs", "ms", "s"}
