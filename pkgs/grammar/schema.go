package grammar

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/qirlab/oq3/pkgs/syntax"
)

// NodeClass tells the generator what surface a production gets.
type NodeClass int

const (
	// StructNode gets one accessor per field.
	StructNode NodeClass = iota
	// EnumNode is an alternation of nonterminals: a polymorphic view.
	EnumNode
	// TokenSetNode is an alternation of terminals: a predicate accessor.
	TokenSetNode
)

// Cardinality of a field.
type Cardinality int

const (
	One Cardinality = iota
	Optional
	Many
)

// Field is one labeled or derived child accessor.
type Field struct {
	Name        string // accessor name: the label, or the target name
	Target      string // referenced production
	Cardinality Cardinality
	Labeled     bool
}

// NodeSchema is the lowered form of one production.
type NodeSchema struct {
	Name     string
	Class    NodeClass
	Fields   []Field  // StructNode
	Variants []string // EnumNode
	Tokens   []string // TokenSetNode, and operator token sets inside structs
	Manual   bool     // on the generator's exclusion list
}

// Schema is the full lowered grammar, the code generator's input.
type Schema struct {
	Nodes []NodeSchema
}

// Node returns the named node schema, when present.
func (s *Schema) Node(name string) (NodeSchema, bool) {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return NodeSchema{}, false
}

// manualImpls is the generator's exclusion list: productions whose
// accessors are hand-written because the grammar cannot disambiguate them.
var manualImpls = map[string]bool{
	"Gate":      true, // angle_params and qubit_args share a kind
	"IfStmt":    true, // then_branch and else_branch are positional
	"ForStmt":   true, // iterable resolves relative to 'in'
	"RangeExpr": true, // thestart label dodges the generator's name pass
	"FilePath":  true, // extracts a string payload
}

// Lower classifies every production and derives its accessor fields.
// Productions that hide two unlabeled same-kind children are rejected
// unless they are on the exclusion list.
func Lower(g *Grammar) (*Schema, error) {
	s := &Schema{}
	for _, prod := range g.Productions {
		warnSuspectLiteral(prod)
		node, err := lowerProduction(prod)
		if err != nil {
			return nil, err
		}
		s.Nodes = append(s.Nodes, node)
	}
	return s, nil
}

// warnSuspectLiteral flags the EndStmt production, which the upstream
// grammar spells with the 'break' token. The schema keeps the literal as
// written; downstream consumers get a warning instead of a silent
// surprise.
func warnSuspectLiteral(prod Production) {
	if prod.Name != "EndStmt" {
		return
	}
	if containsToken(prod.Rule, "break") {
		logrus.WithField("production", prod.Name).
			Warn("grammar defines EndStmt with the 'break' token; treating the literal as written")
	}
}

func containsToken(r Rule, text string) bool {
	switch r := r.(type) {
	case TokenRule:
		return r.Text == text
	case NodeRule:
		return false
	case SeqRule:
		for _, c := range r {
			if containsToken(c, text) {
				return true
			}
		}
	case AltRule:
		for _, c := range r {
			if containsToken(c, text) {
				return true
			}
		}
	case OptRule:
		return containsToken(r.Inner, text)
	case RepRule:
		return containsToken(r.Inner, text)
	case LabelRule:
		return containsToken(r.Inner, text)
	}
	return false
}

func lowerProduction(prod Production) (NodeSchema, error) {
	node := NodeSchema{Name: prod.Name, Manual: manualImpls[prod.Name]}

	if alt, ok := prod.Rule.(AltRule); ok {
		allNodes, allTokens := true, true
		for _, branch := range alt {
			switch branch.(type) {
			case NodeRule:
				allTokens = false
			case TokenRule:
				allNodes = false
			default:
				allNodes, allTokens = false, false
			}
		}
		if allNodes {
			node.Class = EnumNode
			for _, branch := range alt {
				node.Variants = append(node.Variants, branch.(NodeRule).Name)
			}
			return node, nil
		}
		if allTokens {
			node.Class = TokenSetNode
			for _, branch := range alt {
				node.Tokens = append(node.Tokens, branch.(TokenRule).Text)
			}
			return node, nil
		}
	}
	if nr, ok := prod.Rule.(NodeRule); ok {
		// A single-reference production is a one-variant enum.
		node.Class = EnumNode
		node.Variants = []string{nr.Name}
		return node, nil
	}
	if tr, ok := prod.Rule.(TokenRule); ok {
		node.Class = TokenSetNode
		node.Tokens = []string{tr.Text}
		return node, nil
	}

	node.Class = StructNode
	collectFields(&node, prod.Rule, One)
	if err := checkAmbiguity(node); err != nil {
		return NodeSchema{}, err
	}
	return node, nil
}

// collectFields walks a struct production's rule, deriving one field per
// nonterminal reference and one token-set entry per terminal alternation.
func collectFields(node *NodeSchema, r Rule, card Cardinality) {
	switch r := r.(type) {
	case NodeRule:
		addField(node, Field{
			Name:        r.Name,
			Target:      r.Name,
			Cardinality: card,
		})
	case TokenRule:
		// Lone tokens become structural punctuation, not accessors.
	case LabelRule:
		inner, innerCard := unwrapCardinality(r.Inner, card)
		switch inner := inner.(type) {
		case NodeRule:
			node.Fields = append(node.Fields, Field{
				Name:        r.Label,
				Target:      inner.Name,
				Cardinality: innerCard,
				Labeled:     true,
			})
		case AltRule:
			// A labeled token alternation is an operator accessor.
			for _, branch := range inner {
				if t, ok := branch.(TokenRule); ok {
					node.Tokens = append(node.Tokens, t.Text)
				}
			}
		}
	case SeqRule:
		for _, c := range r {
			collectFields(node, c, card)
		}
	case AltRule:
		// Inside a struct node, each branch's children are present only
		// when that branch matched.
		inner := card
		if inner == One {
			inner = Optional
		}
		for _, c := range r {
			collectFields(node, c, inner)
		}
	case OptRule:
		inner := card
		if inner == One {
			inner = Optional
		}
		collectFields(node, r.Inner, inner)
	case RepRule:
		collectFields(node, r.Inner, Many)
	}
}

// addField appends a derived field. A second unlabeled reference coming
// from a repetition folds into the first as a Many field — `Expr (','
// Expr)*` is one repeated child, not two. A second reference at the same
// level stays duplicated so checkAmbiguity can reject it.
func addField(node *NodeSchema, f Field) {
	if !f.Labeled {
		for i := range node.Fields {
			ex := &node.Fields[i]
			if ex.Name != f.Name || ex.Target != f.Target || ex.Labeled {
				continue
			}
			if f.Cardinality == Many || ex.Cardinality == Many {
				ex.Cardinality = Many
				return
			}
			if f.Cardinality == Optional && ex.Cardinality == Optional {
				return
			}
		}
	}
	node.Fields = append(node.Fields, f)
}

func unwrapCardinality(r Rule, card Cardinality) (Rule, Cardinality) {
	switch r := r.(type) {
	case OptRule:
		return unwrapCardinality(r.Inner, Optional)
	case RepRule:
		return unwrapCardinality(r.Inner, Many)
	}
	return r, card
}

// checkAmbiguity rejects struct nodes with two unlabeled fields of the
// same target kind; a naive generator would give both the same accessor.
func checkAmbiguity(node NodeSchema) error {
	if node.Manual {
		return nil
	}
	seen := map[string]int{}
	for _, f := range node.Fields {
		if f.Labeled {
			continue
		}
		seen[f.Target]++
		if seen[f.Target] > 1 {
			return fmt.Errorf(
				"grammar: %s has two unlabeled %s children; label them or add the production to the exclusion list",
				node.Name, f.Target)
		}
	}
	return nil
}

// KindsSrc enumerates every terminal the grammar may reference, split the
// way the generator consumes them. Non-identifier punctuation carries a
// method-safe name.
type KindsSrc struct {
	Punct              [][2]string // text, method-safe name
	Keywords           []string
	ContextualKeywords []string
	Literals           []string
	Named              []string // spelled token classes like 'ident'
}

// DefaultKinds is the terminal list for the OpenQASM 3 grammar.
var DefaultKinds = KindsSrc{
	Punct: [][2]string{
		{";", "semicolon"}, {",", "comma"},
		{"(", "l_paren"}, {")", "r_paren"},
		{"[", "l_bracket"}, {"]", "r_bracket"},
		{"{", "l_curly"}, {"}", "r_curly"},
		{":", "colon"}, {"->", "arrow"}, {"@", "at"},
		{"+", "plus"}, {"-", "minus"}, {"*", "star"}, {"/", "slash"},
		{"%", "percent"}, {"^", "caret"}, {"&", "amp"}, {"|", "pipe"},
		{"&&", "amp_amp"}, {"||", "pipe_pipe"},
		{"!", "bang"}, {"~", "tilde"},
		{"=", "eq"}, {"==", "eq_eq"}, {"!=", "neq"},
		{"<", "l_angle"}, {"<=", "lt_eq"}, {">", "r_angle"}, {">=", "gt_eq"},
		{"<<", "shl"}, {">>", "shr"},
		{"++", "double_plus"},
		{"+=", "plus_eq"}, {"-=", "minus_eq"}, {"*=", "star_eq"},
		{"/=", "slash_eq"}, {"%=", "percent_eq"},
		{"<<=", "shl_eq"}, {">>=", "shr_eq"},
		{"&=", "amp_eq"}, {"|=", "pipe_eq"}, {"^=", "caret_eq"},
	},
	Keywords: []string{
		"OPENQASM", "for", "in", "while", "if", "else", "return",
		"break", "continue", "end", "let", "const", "input", "output",
		"creg", "qreg", "true", "false",
		"bit", "int", "uint", "float", "angle", "bool", "duration",
		"stretch", "complex", "qubit", "array",
	},
	ContextualKeywords: []string{
		"measure", "reset", "barrier", "gphase", "gate", "def", "defcal",
		"cal", "defcalgrammar", "box", "include",
	},
	Literals: []string{
		"int_number", "float_number", "timing_int_number",
		"timing_float_number", "string", "bit_string",
	},
	Named: []string{"ident", "hardware_ident"},
}

// tokenKinds maps grammar terminal spellings to syntax kinds.
var tokenKinds = map[string]syntax.Kind{
	";": syntax.SEMICOLON, ",": syntax.COMMA,
	"(": syntax.L_PAREN, ")": syntax.R_PAREN,
	"[": syntax.L_BRACKET, "]": syntax.R_BRACKET,
	"{": syntax.L_BRACE, "}": syntax.R_BRACE,
	":": syntax.COLON, "->": syntax.ARROW, "@": syntax.AT,
	"+": syntax.PLUS, "-": syntax.MINUS, "*": syntax.STAR, "/": syntax.SLASH,
	"%": syntax.PERCENT, "^": syntax.CARET, "&": syntax.AMP, "|": syntax.PIPE,
	"&&": syntax.AMP_AMP, "||": syntax.PIPE_PIPE,
	"!": syntax.BANG, "~": syntax.TILDE,
	"=": syntax.EQ, "==": syntax.EQ_EQ, "!=": syntax.NEQ,
	"<": syntax.LT, "<=": syntax.LT_EQ, ">": syntax.GT, ">=": syntax.GT_EQ,
	"<<": syntax.SHL, ">>": syntax.SHR,
	"++": syntax.DOUBLE_PLUS,
	"+=": syntax.PLUS_EQ, "-=": syntax.MINUS_EQ, "*=": syntax.STAR_EQ,
	"/=": syntax.SLASH_EQ, "%=": syntax.PERCENT_EQ,
	"<<=": syntax.SHL_EQ, ">>=": syntax.SHR_EQ,
	"&=": syntax.AMP_EQ, "|=": syntax.PIPE_EQ, "^=": syntax.CARET_EQ,

	"OPENQASM": syntax.OPENQASM_KW, "for": syntax.FOR_KW, "in": syntax.IN_KW,
	"while": syntax.WHILE_KW, "if": syntax.IF_KW, "else": syntax.ELSE_KW,
	"return": syntax.RETURN_KW, "break": syntax.BREAK_KW,
	"continue": syntax.CONTINUE_KW, "end": syntax.END_KW,
	"let": syntax.LET_KW, "const": syntax.CONST_KW,
	"input": syntax.INPUT_KW, "output": syntax.OUTPUT_KW,
	"creg": syntax.CREG_KW, "qreg": syntax.QREG_KW,
	"true": syntax.TRUE_KW, "false": syntax.FALSE_KW,
	"bit": syntax.BIT_KW, "int": syntax.INT_KW, "uint": syntax.UINT_KW,
	"float": syntax.FLOAT_KW, "angle": syntax.ANGLE_KW, "bool": syntax.BOOL_KW,
	"duration": syntax.DURATION_KW, "stretch": syntax.STRETCH_KW,
	"complex": syntax.COMPLEX_KW, "qubit": syntax.QUBIT_KW,
	"array": syntax.ARRAY_KW,

	"measure": syntax.MEASURE_KW, "reset": syntax.RESET_KW,
	"barrier": syntax.BARRIER_KW, "gphase": syntax.GPHASE_KW,
	"gate": syntax.GATE_KW, "def": syntax.DEF_KW, "defcal": syntax.DEFCAL_KW,
	"cal": syntax.CAL_KW, "defcalgrammar": syntax.DEFCALGRAMMAR_KW,
	"box": syntax.BOX_KW, "include": syntax.INCLUDE_KW,

	"int_number": syntax.INT_NUMBER, "float_number": syntax.FLOAT_NUMBER,
	"timing_int_number":   syntax.TIMING_INT_NUMBER,
	"timing_float_number": syntax.TIMING_FLOAT_NUMBER,
	"string": syntax.STRING, "bit_string": syntax.BIT_STRING,
	"ident": syntax.IDENT, "hardware_ident": syntax.HARDWARE_IDENT,
}

// TokenKind resolves a grammar terminal spelling to its syntax kind.
func TokenKind(text string) (syntax.Kind, bool) {
	k, ok := tokenKinds[text]
	return k, ok
}

// MethodName returns the method-safe name for a terminal: the punct table
// name for operators, the spelling itself for word-shaped terminals.
func MethodName(text string) (string, bool) {
	for _, p := range DefaultKinds.Punct {
		if p[0] == text {
			return p[1], true
		}
	}
	if _, ok := tokenKinds[text]; ok {
		return text, true
	}
	return "", false
}

// Validate checks that every terminal used by the grammar is declared in
// the kinds table, the KINDS_SRC contract.
func Validate(g *Grammar, kinds KindsSrc) error {
	declared := map[string]bool{}
	for _, p := range kinds.Punct {
		declared[p[0]] = true
	}
	for _, group := range [][]string{kinds.Keywords, kinds.ContextualKeywords, kinds.Literals, kinds.Named} {
		for _, k := range group {
			declared[k] = true
		}
	}
	var missing []string
	seen := map[string]bool{}
	for _, prod := range g.Productions {
		walkTokens(prod.Rule, func(text string) {
			if !declared[text] && !seen[text] {
				seen[text] = true
				missing = append(missing, fmt.Sprintf("%s (in %s)", text, prod.Name))
			}
		})
	}
	if len(missing) > 0 {
		return fmt.Errorf("grammar: terminals missing from kinds table: %v", missing)
	}
	return nil
}

func walkTokens(r Rule, visit func(string)) {
	switch r := r.(type) {
	case TokenRule:
		visit(r.Text)
	case SeqRule:
		for _, c := range r {
			walkTokens(c, visit)
		}
	case AltRule:
		for _, c := range r {
			walkTokens(c, visit)
		}
	case OptRule:
		walkTokens(r.Inner, visit)
	case RepRule:
		walkTokens(r.Inner, visit)
	case LabelRule:
		walkTokens(r.Inner, visit)
	}
}
