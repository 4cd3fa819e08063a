package parser

import (
	"fmt"

	"github.com/qirlab/oq3/pkgs/syntax"
	"github.com/qirlab/oq3/runtime/lexer"
)

// ParserConfig holds parser configuration
type ParserConfig struct {
	maxErrors int // cap on recorded errors; zero means unlimited
}

// ParserOpt represents a parser configuration option
type ParserOpt func(*ParserConfig)

// WithMaxErrors caps the number of recorded parse errors. Parsing still
// covers the whole input; only the error list stops growing.
func WithMaxErrors(n int) ParserOpt {
	return func(c *ParserConfig) {
		c.maxErrors = n
	}
}

// Parse parses the input bytes and returns a parse tree.
// Takes []byte directly for zero-copy performance.
func Parse(source []byte, opts ...ParserOpt) *ParseTree {
	config := &ParserConfig{}
	for _, opt := range opts {
		opt(config)
	}

	lex := lexer.NewLexer()
	lex.Init(source)
	tokens := lex.GetTokens()

	// Heuristic: ~3 events per token (Open, Token, Close for simple nodes)
	eventCap := len(tokens) * 3
	if eventCap < 16 {
		eventCap = 16
	}

	p := &parser{
		source: source,
		tokens: tokens,
		events: make([]Event, 0, eventCap),
		errors: make([]ParseError, 0, 4), // Most parses have 0-4 errors
		config: config,
	}

	p.file()

	return &ParseTree{
		Source: source,
		Tokens: tokens,
		Events: p.events,
		Errors: p.errors,
	}
}

// ParseString is a convenience wrapper for tests
func ParseString(input string, opts ...ParserOpt) *ParseTree {
	return Parse([]byte(input), opts...)
}

// ParseToGreen parses and immediately builds the green tree.
func ParseToGreen(source []byte, opts ...ParserOpt) (*syntax.GreenNode, *ParseTree, error) {
	t := Parse(source, opts...)
	g, err := BuildTree(t)
	return g, t, err
}

// parser is the internal parser state
type parser struct {
	source []byte
	tokens []lexer.Token
	pos    int // index of the next unconsumed token; may sit on trivia
	events []Event
	errors []ParseError
	config *ParserConfig
}

// sigIndex returns the index of the n-th significant (non-trivia) token at
// or after pos, or len(tokens) when the stream is exhausted.
func (p *parser) sigIndex(n int) int {
	i := p.pos
	for i < len(p.tokens) {
		if !p.tokens[i].IsTrivia() {
			if n == 0 {
				return i
			}
			n--
		}
		i++
	}
	return len(p.tokens)
}

// current returns the current significant token, or a synthesized EOF.
func (p *parser) current() lexer.Token {
	idx := p.sigIndex(0)
	if idx >= len(p.tokens) {
		return lexer.Token{Kind: syntax.EOF, Offset: len(p.source)}
	}
	return p.tokens[idx]
}

// nth peeks at the kind of the n-th significant token ahead.
func (p *parser) nth(n int) syntax.Kind {
	idx := p.sigIndex(n)
	if idx >= len(p.tokens) {
		return syntax.EOF
	}
	return p.tokens[idx].Kind
}

// at checks if the current significant token is of the given kind
func (p *parser) at(kind syntax.Kind) bool {
	return p.nth(0) == kind
}

// atAny checks the current token against a set of kinds.
func (p *parser) atAny(kinds ...syntax.Kind) bool {
	cur := p.nth(0)
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

// bump emits a Token event for the current significant token and advances.
// At EOF it is a no-op.
func (p *parser) bump() {
	idx := p.sigIndex(0)
	if idx >= len(p.tokens) {
		return
	}
	p.events = append(p.events, Event{Kind: EventToken, Data: uint32(idx)})
	p.pos = idx + 1
}

// start emits an Open event with the given node kind and returns it for matching finish
func (p *parser) start(kind syntax.Kind) syntax.Kind {
	p.events = append(p.events, Event{Kind: EventOpen, Data: uint32(kind)})
	return kind
}

// finish emits a Close event with the given node kind
func (p *parser) finish(kind syntax.Kind) {
	p.events = append(p.events, Event{Kind: EventClose, Data: uint32(kind)})
}

// mark returns a checkpoint in the event stream. startAt later wraps
// everything emitted since the checkpoint into a new node.
func (p *parser) mark() int {
	return len(p.events)
}

// startAt inserts an Open event at the checkpoint, so the node opened there
// contains every event emitted since. Pair it with finish.
func (p *parser) startAt(mark int, kind syntax.Kind) {
	p.events = append(p.events, Event{})
	copy(p.events[mark+1:], p.events[mark:])
	p.events[mark] = Event{Kind: EventOpen, Data: uint32(kind)}
}

// expect consumes a token of the given kind or records an error without
// consuming anything.
func (p *parser) expect(kind syntax.Kind) bool {
	if p.at(kind) {
		p.bump()
		return true
	}
	p.errorf("unexpected %s, expected %s", p.nth(0), kind)
	return false
}

func (p *parser) errorf(format string, args ...interface{}) {
	if p.config.maxErrors > 0 && len(p.errors) >= p.config.maxErrors {
		return
	}
	p.errors = append(p.errors, ParseError{
		Message: fmt.Sprintf(format, args...),
		Offset:  p.current().Offset,
	})
}

// file parses the whole translation unit into a SOURCE_FILE node.
func (p *parser) file() {
	kind := p.start(syntax.SOURCE_FILE)

	if p.at(syntax.OPENQASM_KW) {
		p.versionString()
	}
	for !p.at(syntax.EOF) {
		p.statement()
	}

	p.finish(kind)
}

// versionString parses `OPENQASM <version> ;`. The version is kept as one
// opaque numeric token inside a VERSION node.
func (p *parser) versionString() {
	kind := p.start(syntax.VERSION_STRING)
	p.bump() // OPENQASM
	if p.atAny(syntax.INT_NUMBER, syntax.FLOAT_NUMBER) {
		v := p.start(syntax.VERSION)
		p.bump()
		p.finish(v)
	} else {
		p.errorf("unexpected %s, expected version number", p.nth(0))
	}
	p.expect(syntax.SEMICOLON)
	p.finish(kind)
}

// statement parses one statement or item. Used both at top level and
// inside blocks; the grammar does not restrict nesting, later passes do.
func (p *parser) statement() {
	switch p.nth(0) {
	case syntax.INCLUDE_KW:
		p.include()
	case syntax.DEFCALGRAMMAR_KW:
		p.defCalGrammar()
	case syntax.GATE_KW:
		p.gate()
	case syntax.DEF_KW:
		p.def()
	case syntax.DEFCAL_KW:
		p.defCal()
	case syntax.CAL_KW:
		p.cal()
	case syntax.LET_KW:
		p.letStmt()
	case syntax.QUBIT_KW:
		p.quantumDeclaration()
	case syntax.QREG_KW, syntax.CREG_KW:
		p.oldStyleDeclaration()
	case syntax.INPUT_KW, syntax.OUTPUT_KW:
		p.ioDeclaration()
	case syntax.CONST_KW:
		p.classicalDeclaration()
	case syntax.MEASURE_KW:
		p.measure()
	case syntax.RESET_KW:
		p.reset()
	case syntax.BARRIER_KW:
		p.barrier()
	case syntax.GPHASE_KW:
		p.gphaseCall()
	case syntax.FOR_KW:
		p.forStmt()
	case syntax.WHILE_KW:
		p.whileStmt()
	case syntax.IF_KW:
		p.ifStmt()
	case syntax.BOX_KW:
		p.boxStmt()
	case syntax.BREAK_KW:
		p.simpleStmt(syntax.BREAK_STMT)
	case syntax.CONTINUE_KW:
		p.simpleStmt(syntax.CONTINUE_STMT)
	case syntax.END_KW:
		p.simpleStmt(syntax.END_STMT)
	case syntax.RETURN_KW:
		p.returnStmt()
	case syntax.L_BRACE:
		p.block()
	case syntax.SEMICOLON:
		// Stray semicolon: empty expression statement keeps it in the tree.
		k := p.start(syntax.EXPR_STMT)
		p.bump()
		p.finish(k)
	default:
		if p.nth(0).IsTypeKeyword() || p.nth(0) == syntax.ARRAY_KW {
			p.typeHeadedStatement()
			return
		}
		if p.atAny(syntax.IDENT, syntax.HARDWARE_IDENT, syntax.INT_NUMBER, syntax.FLOAT_NUMBER,
			syntax.TIMING_INT_NUMBER, syntax.TIMING_FLOAT_NUMBER, syntax.BIT_STRING, syntax.STRING,
			syntax.TRUE_KW, syntax.FALSE_KW, syntax.L_PAREN, syntax.MINUS, syntax.BANG, syntax.TILDE) {
			p.exprStatement()
			return
		}
		p.errorStatement()
	}
}

// statementRecovery lists the kinds that terminate error recovery: a
// statement ender or a token that can begin a fresh statement.
var statementRecovery = []syntax.Kind{
	syntax.SEMICOLON, syntax.R_BRACE,
	syntax.INCLUDE_KW, syntax.DEFCALGRAMMAR_KW, syntax.GATE_KW, syntax.DEF_KW,
	syntax.DEFCAL_KW, syntax.CAL_KW, syntax.LET_KW, syntax.CONST_KW,
	syntax.INPUT_KW, syntax.OUTPUT_KW, syntax.QUBIT_KW, syntax.QREG_KW,
	syntax.CREG_KW, syntax.MEASURE_KW, syntax.RESET_KW, syntax.BARRIER_KW,
	syntax.GPHASE_KW, syntax.FOR_KW, syntax.WHILE_KW, syntax.IF_KW,
	syntax.BOX_KW, syntax.BREAK_KW, syntax.CONTINUE_KW, syntax.END_KW,
	syntax.RETURN_KW,
}

// errorStatement wraps unexpected tokens in an ERROR node and advances to a
// synchronization point. No input is dropped.
func (p *parser) errorStatement() {
	p.errorf("unexpected %s, expected statement", p.nth(0))
	kind := p.start(syntax.ERROR)
	consumed := false
	for !p.at(syntax.EOF) && !p.atAny(statementRecovery...) {
		p.bump()
		consumed = true
	}
	if p.at(syntax.SEMICOLON) {
		p.bump()
		consumed = true
	}
	// A stray recovery token (an unmatched closing brace, say) still has to
	// move into the tree, or the caller would loop on it forever.
	if !consumed && !p.at(syntax.EOF) {
		p.bump()
	}
	p.finish(kind)
}

// include parses `include "file.inc" ;`.
func (p *parser) include() {
	kind := p.start(syntax.INCLUDE)
	p.bump() // include
	p.filePath()
	p.expect(syntax.SEMICOLON)
	p.finish(kind)
}

// defCalGrammar parses `defcalgrammar "openpulse" ;`.
func (p *parser) defCalGrammar() {
	kind := p.start(syntax.DEF_CAL_GRAMMAR)
	p.bump() // defcalgrammar
	p.filePath()
	p.expect(syntax.SEMICOLON)
	p.finish(kind)
}

func (p *parser) filePath() {
	if p.atAny(syntax.STRING, syntax.BIT_STRING) {
		kind := p.start(syntax.FILE_PATH)
		p.bump()
		p.finish(kind)
		return
	}
	p.errorf("unexpected %s, expected string literal", p.nth(0))
}

// gate parses a gate definition. Gates carry two parameter lists: the
// optional parenthesized angle parameters and the bare qubit arguments.
// Both PARAM_LIST nodes are always present so the two accessors stay
// positional even when the angle list is empty.
func (p *parser) gate() {
	kind := p.start(syntax.GATE)
	p.bump() // gate
	p.identifier()

	angle := p.start(syntax.PARAM_LIST)
	if p.at(syntax.L_PAREN) {
		p.bump()
		p.paramSeq()
		p.expect(syntax.R_PAREN)
	}
	p.finish(angle)

	qubits := p.start(syntax.PARAM_LIST)
	p.paramSeq()
	p.finish(qubits)

	p.block()
	p.finish(kind)
}

// paramSeq parses a comma-separated run of PARAM nodes. Stops at anything
// that cannot continue the list.
func (p *parser) paramSeq() {
	for p.at(syntax.IDENT) {
		kind := p.start(syntax.PARAM)
		p.identifier()
		p.finish(kind)
		if !p.at(syntax.COMMA) {
			break
		}
		p.bump()
	}
}

// def parses a subroutine definition with typed parameters and an optional
// return signature.
func (p *parser) def() {
	kind := p.start(syntax.DEF)
	p.bump() // def
	p.identifier()
	if p.at(syntax.L_PAREN) {
		list := p.start(syntax.PARAM_LIST)
		p.bump()
		for !p.atAny(syntax.R_PAREN, syntax.EOF) {
			p.typedParam()
			if !p.at(syntax.COMMA) {
				break
			}
			p.bump()
		}
		p.expect(syntax.R_PAREN)
		p.finish(list)
	}
	if p.at(syntax.ARROW) {
		p.returnSignature()
	}
	p.block()
	p.finish(kind)
}

func (p *parser) typedParam() {
	kind := p.start(syntax.TYPED_PARAM)
	p.typeSpec()
	p.identifier()
	p.finish(kind)
}

func (p *parser) returnSignature() {
	kind := p.start(syntax.RETURN_SIGNATURE)
	p.bump() // ->
	p.typeSpec()
	p.finish(kind)
}

// defCal parses a defcal declaration. The body is foreign grammar; its
// tokens are consumed raw inside the block with brace balancing.
func (p *parser) defCal() {
	kind := p.start(syntax.DEF_CAL)
	p.bump() // defcal
	p.identifier()
	if p.at(syntax.L_PAREN) {
		list := p.start(syntax.PARAM_LIST)
		p.bump()
		for !p.atAny(syntax.R_PAREN, syntax.EOF) {
			p.bump()
		}
		p.expect(syntax.R_PAREN)
		p.finish(list)
	}
	// Qubit operands, hardware or named.
	list := p.start(syntax.QUBIT_LIST)
	for p.atAny(syntax.IDENT, syntax.HARDWARE_IDENT) {
		p.gateOperand()
		if !p.at(syntax.COMMA) {
			break
		}
		p.bump()
	}
	p.finish(list)
	if p.at(syntax.ARROW) {
		p.returnSignature()
	}
	p.rawBlock()
	p.finish(kind)
}

// cal parses `cal { ... }` with a raw, brace-balanced body.
func (p *parser) cal() {
	kind := p.start(syntax.CAL)
	p.bump() // cal
	p.rawBlock()
	p.finish(kind)
}

// rawBlock consumes a brace-balanced token run without interpreting it.
func (p *parser) rawBlock() {
	if !p.at(syntax.L_BRACE) {
		p.errorf("unexpected %s, expected {", p.nth(0))
		return
	}
	kind := p.start(syntax.BLOCK_EXPR)
	p.bump() // {
	depth := 1
	for depth > 0 && !p.at(syntax.EOF) {
		switch p.nth(0) {
		case syntax.L_BRACE:
			depth++
		case syntax.R_BRACE:
			depth--
			if depth == 0 {
				p.bump()
				p.finish(kind)
				return
			}
		}
		p.bump()
	}
	p.errorf("unexpected EOF, expected }")
	p.finish(kind)
}

// letStmt parses `let name = alias ;` where alias may be a flat `++`
// concatenation.
func (p *parser) letStmt() {
	kind := p.start(syntax.LET_STMT)
	p.bump() // let
	p.identifier()
	p.expect(syntax.EQ)
	p.aliasExpression()
	p.expect(syntax.SEMICOLON)
	p.finish(kind)
}

// aliasExpression parses `expr (++ expr)*`. One or more `++` operators
// produce a single flat CONCATENATION_EXPR; a lone operand stays bare.
func (p *parser) aliasExpression() {
	mark := p.mark()
	p.expr(doublePlusRight) // stop below ++ so operands stay separate
	if !p.at(syntax.DOUBLE_PLUS) {
		return
	}
	for p.at(syntax.DOUBLE_PLUS) {
		p.bump()
		p.expr(doublePlusRight)
	}
	p.startAt(mark, syntax.CONCATENATION_EXPR)
	p.finish(syntax.CONCATENATION_EXPR)
}

// quantumDeclaration parses `qubit q;` or `qubit[n] q;`.
func (p *parser) quantumDeclaration() {
	kind := p.start(syntax.QUANTUM_DECLARATION_STATEMENT)
	t := p.start(syntax.QUBIT_TYPE)
	p.bump() // qubit
	if p.at(syntax.L_BRACKET) {
		p.designator()
	}
	p.finish(t)
	p.identifier()
	p.expect(syntax.SEMICOLON)
	p.finish(kind)
}

// oldStyleDeclaration parses OpenQASM 2 style `qreg q[4];` / `creg c[4];`.
func (p *parser) oldStyleDeclaration() {
	kind := p.start(syntax.TYPE_DECLARATION_STMT)
	p.bump() // qreg or creg
	p.identifier()
	if p.at(syntax.L_BRACKET) {
		p.designator()
	}
	p.expect(syntax.SEMICOLON)
	p.finish(kind)
}

// ioDeclaration parses `input int[8] x;` / `output bit b;`.
func (p *parser) ioDeclaration() {
	kind := p.start(syntax.I_O_DECLARATION_STATEMENT)
	p.bump() // input or output
	p.typeSpec()
	p.identifier()
	p.declInitializer()
	p.expect(syntax.SEMICOLON)
	p.finish(kind)
}

// classicalDeclaration parses `const? type name (= init)? ;`.
func (p *parser) classicalDeclaration() {
	kind := p.start(syntax.CLASSICAL_DECLARATION_STATEMENT)
	if p.at(syntax.CONST_KW) {
		p.bump()
	}
	p.typeSpec()
	p.identifier()
	p.declInitializer()
	p.expect(syntax.SEMICOLON)
	p.finish(kind)
}

// declInitializer parses an optional `= value` where value is an
// expression, an array literal, or a measure expression.
func (p *parser) declInitializer() {
	if !p.at(syntax.EQ) {
		return
	}
	p.bump()
	switch {
	case p.at(syntax.L_BRACE):
		p.arrayLiteral()
	default:
		p.expr(0)
	}
}

// typeHeadedStatement disambiguates a statement that starts with a type
// keyword: `int[8] x = 1;` is a declaration, `int[8](x);` is a cast
// expression statement.
func (p *parser) typeHeadedStatement() {
	// Scan past the optional designator to see what follows the type.
	n := 1
	if p.nth(1) == syntax.L_BRACKET {
		depth := 0
		for {
			k := p.nth(n)
			if k == syntax.EOF {
				break
			}
			if k == syntax.L_BRACKET {
				depth++
			}
			if k == syntax.R_BRACKET {
				depth--
				if depth == 0 {
					n++
					break
				}
			}
			n++
		}
	}
	if p.nth(n) == syntax.L_PAREN {
		p.exprStatement()
		return
	}
	p.classicalDeclaration()
}

// typeSpec parses a scalar, qubit, or array type.
func (p *parser) typeSpec() {
	switch {
	case p.at(syntax.ARRAY_KW):
		kind := p.start(syntax.ARRAY_TYPE)
		p.bump()
		p.expect(syntax.L_BRACKET)
		p.typeSpec()
		for p.at(syntax.COMMA) {
			p.bump()
			list := p.start(syntax.EXPRESSION_LIST)
			p.expr(0)
			p.finish(list)
		}
		p.expect(syntax.R_BRACKET)
		p.finish(kind)
	case p.at(syntax.QUBIT_KW):
		kind := p.start(syntax.QUBIT_TYPE)
		p.bump()
		if p.at(syntax.L_BRACKET) {
			p.designator()
		}
		p.finish(kind)
	case p.nth(0).IsTypeKeyword():
		kind := p.start(syntax.SCALAR_TYPE)
		p.bump()
		if p.at(syntax.L_BRACKET) {
			p.designator()
		}
		p.finish(kind)
	default:
		p.errorf("unexpected %s, expected type", p.nth(0))
	}
}

// designator parses `[ expr-or-type ]`, as in `int[32]` or
// `complex[float[64]]`.
func (p *parser) designator() {
	kind := p.start(syntax.DESIGNATOR)
	p.bump() // [
	if p.nth(0).IsTypeKeyword() {
		p.typeSpec()
	} else {
		p.expr(0)
	}
	p.expect(syntax.R_BRACKET)
	p.finish(kind)
}

// measure parses the measurement statement. The MEASURE node is the
// enclosing statement; the MEASURE_EXPRESSION child covers only `measure`
// and its operand, so an arrow target never widens the expression.
func (p *parser) measure() {
	kind := p.start(syntax.MEASURE)
	m := p.start(syntax.MEASURE_EXPRESSION)
	p.bump() // measure
	p.gateOperand()
	p.finish(m)
	if p.at(syntax.ARROW) {
		p.bump()
		p.gateOperand()
	}
	p.expect(syntax.SEMICOLON)
	p.finish(kind)
}

// reset parses `reset q;`.
func (p *parser) reset() {
	kind := p.start(syntax.RESET)
	p.bump() // reset
	p.gateOperand()
	p.expect(syntax.SEMICOLON)
	p.finish(kind)
}

// barrier parses `barrier;` or `barrier q, $0;`.
func (p *parser) barrier() {
	kind := p.start(syntax.BARRIER)
	p.bump() // barrier
	if !p.at(syntax.SEMICOLON) {
		p.qubitList()
	}
	p.expect(syntax.SEMICOLON)
	p.finish(kind)
}

// gphaseCall parses `gphase(theta);` with optional qubit operands.
func (p *parser) gphaseCall() {
	kind := p.start(syntax.G_PHASE_CALL_STMT)
	p.bump() // gphase
	if p.at(syntax.L_PAREN) {
		list := p.start(syntax.ARG_LIST)
		p.bump()
		for !p.atAny(syntax.R_PAREN, syntax.EOF) {
			p.expr(0)
			if !p.at(syntax.COMMA) {
				break
			}
			p.bump()
		}
		p.expect(syntax.R_PAREN)
		p.finish(list)
	}
	if !p.at(syntax.SEMICOLON) {
		p.qubitList()
	}
	p.expect(syntax.SEMICOLON)
	p.finish(kind)
}

// qubitList parses a comma-separated run of gate operands.
func (p *parser) qubitList() {
	kind := p.start(syntax.QUBIT_LIST)
	for p.atAny(syntax.IDENT, syntax.HARDWARE_IDENT) {
		p.gateOperand()
		if !p.at(syntax.COMMA) {
			break
		}
		p.bump()
	}
	p.finish(kind)
}

// gateOperand parses a qubit reference: a named identifier, an indexed
// identifier, or a hardware qubit.
func (p *parser) gateOperand() {
	switch {
	case p.at(syntax.HARDWARE_IDENT):
		kind := p.start(syntax.HARDWARE_QUBIT)
		p.bump()
		p.finish(kind)
	case p.at(syntax.IDENT) && p.nth(1) == syntax.L_BRACKET:
		kind := p.start(syntax.INDEXED_IDENTIFIER)
		p.identifier()
		for p.at(syntax.L_BRACKET) {
			p.indexOperator()
		}
		p.finish(kind)
	case p.at(syntax.IDENT):
		p.identifier()
	default:
		p.errorf("unexpected %s, expected qubit operand", p.nth(0))
	}
}

// indexOperator parses `[ ... ]` holding an expression list or a set.
func (p *parser) indexOperator() {
	kind := p.start(syntax.INDEX_OPERATOR)
	p.bump() // [
	if p.at(syntax.L_BRACE) {
		p.setExpr()
	} else {
		list := p.start(syntax.EXPRESSION_LIST)
		for !p.atAny(syntax.R_BRACKET, syntax.EOF) {
			p.expr(0)
			if !p.at(syntax.COMMA) {
				break
			}
			p.bump()
		}
		p.finish(list)
	}
	p.expect(syntax.R_BRACKET)
	p.finish(kind)
}

// setExpr parses `{ expr, expr, ... }`.
func (p *parser) setExpr() {
	kind := p.start(syntax.SET_EXPR)
	p.bump() // {
	for !p.atAny(syntax.R_BRACE, syntax.EOF) {
		p.expr(0)
		if !p.at(syntax.COMMA) {
			break
		}
		p.bump()
	}
	p.expect(syntax.R_BRACE)
	p.finish(kind)
}

// arrayLiteral parses `{ ... }` in initializer position; elements may be
// nested literals.
func (p *parser) arrayLiteral() {
	kind := p.start(syntax.ARRAY_LITERAL)
	p.bump() // {
	for !p.atAny(syntax.R_BRACE, syntax.EOF) {
		if p.at(syntax.L_BRACE) {
			p.arrayLiteral()
		} else {
			p.expr(0)
		}
		if !p.at(syntax.COMMA) {
			break
		}
		p.bump()
	}
	p.expect(syntax.R_BRACE)
	p.finish(kind)
}

// forStmt parses `for type? var in iterable body`.
func (p *parser) forStmt() {
	kind := p.start(syntax.FOR_STMT)
	p.bump() // for
	if p.nth(0).IsTypeKeyword() {
		p.typeSpec()
	}
	p.identifier()
	p.expect(syntax.IN_KW)
	p.forIterable()
	if p.at(syntax.L_BRACE) {
		p.block()
	} else {
		p.statement()
	}
	p.finish(kind)
}

// forIterable parses the loop iterable: a set, or any expression
// (identifiers, ranges, index expressions).
func (p *parser) forIterable() {
	if p.at(syntax.L_BRACE) {
		p.setExpr()
		return
	}
	p.expr(0)
}

// whileStmt parses `while ( cond ) body`.
func (p *parser) whileStmt() {
	kind := p.start(syntax.WHILE_STMT)
	p.bump() // while
	p.expect(syntax.L_PAREN)
	p.expr(0)
	p.expect(syntax.R_PAREN)
	if p.at(syntax.L_BRACE) {
		p.block()
	} else {
		p.statement()
	}
	p.finish(kind)
}

// ifStmt parses `if ( cond ) then else?`. The then and else branches are
// positional; the typed AST resolves them by skipping the condition.
func (p *parser) ifStmt() {
	kind := p.start(syntax.IF_STMT)
	p.bump() // if
	p.expect(syntax.L_PAREN)
	p.expr(0)
	p.expect(syntax.R_PAREN)
	if p.at(syntax.L_BRACE) {
		p.block()
	} else {
		p.statement()
	}
	if p.at(syntax.ELSE_KW) {
		p.bump()
		if p.at(syntax.L_BRACE) {
			p.block()
		} else {
			p.statement()
		}
	}
	p.finish(kind)
}

// boxStmt parses `box designator? { ... }` as an expression statement
// holding a BOX_EXPR.
func (p *parser) boxStmt() {
	kind := p.start(syntax.EXPR_STMT)
	p.boxExpr()
	p.finish(kind)
}

func (p *parser) boxExpr() {
	kind := p.start(syntax.BOX_EXPR)
	p.bump() // box
	if p.at(syntax.L_BRACKET) {
		p.designator()
	}
	p.block()
	p.finish(kind)
}

// simpleStmt parses `break;`, `continue;`, `end;`.
func (p *parser) simpleStmt(kind syntax.Kind) {
	k := p.start(kind)
	p.bump()
	p.expect(syntax.SEMICOLON)
	p.finish(k)
}

// returnStmt parses `return expr? ;` as an expression statement holding a
// RETURN_EXPR.
func (p *parser) returnStmt() {
	kind := p.start(syntax.EXPR_STMT)
	r := p.start(syntax.RETURN_EXPR)
	p.bump() // return
	if !p.atAny(syntax.SEMICOLON, syntax.R_BRACE, syntax.EOF) {
		p.expr(returnRight)
	}
	p.finish(r)
	p.expect(syntax.SEMICOLON)
	p.finish(kind)
}

// block parses `{ statements }` into a BLOCK_EXPR.
func (p *parser) block() {
	if !p.at(syntax.L_BRACE) {
		p.errorf("unexpected %s, expected {", p.nth(0))
		return
	}
	kind := p.start(syntax.BLOCK_EXPR)
	p.bump() // {
	for !p.atAny(syntax.R_BRACE, syntax.EOF) {
		p.statement()
	}
	p.expect(syntax.R_BRACE)
	p.finish(kind)
}

// identifier wraps the next IDENT token in an IDENTIFIER node.
func (p *parser) identifier() {
	if !p.at(syntax.IDENT) {
		p.errorf("unexpected %s, expected identifier", p.nth(0))
		return
	}
	kind := p.start(syntax.IDENTIFIER)
	p.bump()
	p.finish(kind)
}
