package parser

import "github.com/qirlab/oq3/pkgs/syntax"

// Binding powers for the Pratt loop. Infix powers live in infixBP; these
// constants cover the prefix and postfix tables and the range special case.
const (
	returnRight     = 1  // return/break value binds weakest
	rangeLeft       = 5  // a:b:c, non-associative
	rangeOperandMin = 6  // range operands stop at the next colon, keeping ranges flat
	doublePlusRight = 22 // ++ shares the additive tier
	prefixRight     = 25 // unary - ! ~
	postfixLeft     = 29 // call and index
)

// infixBP delegates to the shared operator table so the parser and the
// precedence engine can never disagree on binding powers.
func infixBP(k syntax.Kind) (left, right uint8, ok bool) {
	return syntax.InfixBindingPower(k)
}

// isAssignOp reports whether the token is `=` or a compound assignment.
func isAssignOp(k syntax.Kind) bool {
	return syntax.IsAssignOp(k)
}

// exprResult summarizes what the Pratt loop produced, enough for the
// statement layer to pick its wrapper node.
type exprResult struct {
	kind   syntax.Kind // kind of the topmost expression node
	assign bool        // topmost operator was an assignment
}

// exprStatement parses an expression and wraps it in the right statement
// node: GATE_CALL_STMT when gate operands follow (the gate-vs-function
// call policy), ASSIGNMENT_STMT when the top operator assigns, EXPR_STMT
// otherwise.
func (p *parser) exprStatement() {
	mark := p.mark()
	res := p.expr(0)

	callee := res.kind == syntax.CALL_EXPR || res.kind == syntax.IDENTIFIER ||
		res.kind == syntax.INDEX_EXPR
	if callee && p.atAny(syntax.IDENT, syntax.HARDWARE_IDENT) {
		p.startAt(mark, syntax.GATE_CALL_STMT)
		p.qubitList()
		p.expect(syntax.SEMICOLON)
		p.finish(syntax.GATE_CALL_STMT)
		return
	}

	wrapper := syntax.EXPR_STMT
	if res.assign {
		wrapper = syntax.ASSIGNMENT_STMT
	}
	p.startAt(mark, wrapper)
	p.expect(syntax.SEMICOLON)
	p.finish(wrapper)
}

// expr runs the Pratt loop: parse a left-hand side (prefix forms and
// postfix chains included), then fold binary operators while their left
// binding power reaches minBP.
func (p *parser) expr(minBP uint8) exprResult {
	mark := p.mark()
	res := p.lhs()
	if res.kind == syntax.ERROR {
		return res
	}

	// Postfix chain: call and index bind tightest.
	for {
		if p.at(syntax.L_PAREN) && postfixLeft >= minBP {
			p.startAt(mark, syntax.CALL_EXPR)
			p.argList()
			p.finish(syntax.CALL_EXPR)
			res = exprResult{kind: syntax.CALL_EXPR}
			continue
		}
		if p.at(syntax.L_BRACKET) && postfixLeft >= minBP {
			p.startAt(mark, syntax.INDEX_EXPR)
			p.indexOperator()
			p.finish(syntax.INDEX_EXPR)
			res = exprResult{kind: syntax.INDEX_EXPR}
			continue
		}
		break
	}

	// Infix loop.
	for {
		op := p.nth(0)

		if op == syntax.COLON {
			if rangeLeft < minBP {
				break
			}
			// Ranges are flat: a:b and a:b:c live in one RANGE_EXPR node.
			// Operands stop below the colon tier so nesting needs parens.
			p.bump()
			p.expr(rangeOperandMin)
			if p.at(syntax.COLON) {
				p.bump()
				p.expr(rangeOperandMin)
			}
			p.startAt(mark, syntax.RANGE_EXPR)
			p.finish(syntax.RANGE_EXPR)
			res = exprResult{kind: syntax.RANGE_EXPR}
			continue
		}

		l, r, ok := infixBP(op)
		if !ok || l < minBP {
			break
		}
		p.bump()
		p.expr(r)
		p.startAt(mark, syntax.BIN_EXPR)
		p.finish(syntax.BIN_EXPR)
		res = exprResult{kind: syntax.BIN_EXPR, assign: isAssignOp(op)}
	}
	return res
}

// exprCloser reports tokens an expression never starts with but which a
// caller is waiting to consume. The error path must not swallow them.
func exprCloser(k syntax.Kind) bool {
	switch k {
	case syntax.R_PAREN, syntax.R_BRACKET, syntax.R_BRACE, syntax.COMMA,
		syntax.SEMICOLON, syntax.EOF:
		return true
	}
	return false
}

// lhs parses a prefix form or an atom.
func (p *parser) lhs() exprResult {
	switch k := p.nth(0); {
	case k == syntax.IDENT:
		p.identifier()
		return exprResult{kind: syntax.IDENTIFIER}

	case k == syntax.HARDWARE_IDENT:
		kind := p.start(syntax.HARDWARE_QUBIT)
		p.bump()
		p.finish(kind)
		return exprResult{kind: syntax.HARDWARE_QUBIT}

	case k.IsLiteral():
		kind := p.start(syntax.LITERAL)
		p.bump()
		p.finish(kind)
		return exprResult{kind: syntax.LITERAL}

	case k == syntax.L_PAREN:
		kind := p.start(syntax.PAREN_EXPR)
		p.bump()
		p.expr(0)
		p.expect(syntax.R_PAREN)
		p.finish(kind)
		return exprResult{kind: syntax.PAREN_EXPR}

	case k == syntax.MINUS || k == syntax.BANG || k == syntax.TILDE:
		kind := p.start(syntax.PREFIX_EXPR)
		p.bump()
		p.expr(prefixRight)
		p.finish(kind)
		return exprResult{kind: syntax.PREFIX_EXPR}

	case k == syntax.MEASURE_KW:
		kind := p.start(syntax.MEASURE_EXPRESSION)
		p.bump()
		p.gateOperand()
		p.finish(kind)
		return exprResult{kind: syntax.MEASURE_EXPRESSION}

	case k == syntax.BOX_KW:
		p.boxExpr()
		return exprResult{kind: syntax.BOX_EXPR}

	case k == syntax.RETURN_KW:
		kind := p.start(syntax.RETURN_EXPR)
		p.bump()
		if !p.atAny(syntax.SEMICOLON, syntax.R_BRACE, syntax.EOF) {
			p.expr(returnRight)
		}
		p.finish(kind)
		return exprResult{kind: syntax.RETURN_EXPR}

	case k == syntax.BREAK_KW:
		kind := p.start(syntax.BREAK_EXPR)
		p.bump()
		p.finish(kind)
		return exprResult{kind: syntax.BREAK_EXPR}

	case k == syntax.CONTINUE_KW:
		kind := p.start(syntax.CONTINUE_EXPR)
		p.bump()
		p.finish(kind)
		return exprResult{kind: syntax.CONTINUE_EXPR}

	case k.IsTypeKeyword():
		return p.castExpression()

	default:
		p.errorf("unexpected %s, expected expression", p.nth(0))
		if !exprCloser(k) {
			kind := p.start(syntax.ERROR)
			p.bump()
			p.finish(kind)
		}
		return exprResult{kind: syntax.ERROR}
	}
}

// castExpression parses `type ( expr )`, e.g. `int[8](x)`.
func (p *parser) castExpression() exprResult {
	kind := p.start(syntax.CAST_EXPRESSION)
	p.typeSpec()
	p.expect(syntax.L_PAREN)
	p.expr(0)
	p.expect(syntax.R_PAREN)
	p.finish(kind)
	return exprResult{kind: syntax.CAST_EXPRESSION}
}

// argList parses `( expr, expr, ... )` for a call.
func (p *parser) argList() {
	kind := p.start(syntax.ARG_LIST)
	p.bump() // (
	for !p.atAny(syntax.R_PAREN, syntax.EOF) {
		p.expr(0)
		if !p.at(syntax.COMMA) {
			break
		}
		p.bump()
	}
	p.expect(syntax.R_PAREN)
	p.finish(kind)
}
