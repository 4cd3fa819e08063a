package ast

import "github.com/qirlab/oq3/pkgs/syntax"

// Binding-power convention: the middle tiers are odd, so N+1 > N expresses
// left associativity and N-1 < N expresses right associativity. (0,0) is
// paren-like, (0,N) prefix, (N,0) postfix, (N,N) non-associative infix.

// BindingPower returns the (left, right) binding powers of the expression.
func (e Expr) BindingPower() (left, right uint8) {
	switch e.Kind() {
	case syntax.BIN_EXPR:
		be := BinExpr{node: e.node}
		if op := be.OpToken(); op != nil {
			if l, r, ok := syntax.InfixBindingPower(op.Kind()); ok {
				return l, r
			}
		}
		return 0, 0
	case syntax.CONCATENATION_EXPR:
		// Flat ++ shares the additive tier with its BinExpr shape.
		l, r, _ := syntax.InfixBindingPower(syntax.DOUBLE_PLUS)
		return l, r
	case syntax.RANGE_EXPR:
		return 5, 5
	case syntax.CALL_EXPR, syntax.GATE_CALL_EXPR, syntax.INDEX_EXPR:
		return 29, 0
	case syntax.RETURN_EXPR, syntax.BREAK_EXPR:
		return 0, 1
	case syntax.BOX_EXPR:
		return 0, 27
	case syntax.PREFIX_EXPR:
		return 0, 25
	default:
		// Atoms, parenthesized and braced forms, and the statement-shaped
		// expressions are all self-delimiting.
		return 0, 0
	}
}

// IsParenLike reports whether the expression is self-delimiting on both
// sides.
func (e Expr) IsParenLike() bool {
	l, r := e.BindingPower()
	return l == 0 && r == 0
}

// IsPrefix reports whether the expression binds only to its right.
func (e Expr) IsPrefix() bool {
	l, r := e.BindingPower()
	return l == 0 && r != 0
}

// IsPostfix reports whether the expression binds only to its left.
func (e Expr) IsPostfix() bool {
	l, r := e.BindingPower()
	return l != 0 && r == 0
}

// RequiresSemiToBeStmt reports whether the expression needs a trailing
// semicolon to stand as a statement. Braced forms do not.
func (e Expr) RequiresSemiToBeStmt() bool {
	switch e.Kind() {
	case syntax.IF_EXPR, syntax.IF_STMT, syntax.WHILE_EXPR, syntax.WHILE_STMT,
		syntax.FOR_EXPR, syntax.FOR_STMT, syntax.BLOCK_EXPR:
		return false
	}
	return true
}

// hasValue reports whether a return/break/continue carries an operand.
func (e Expr) hasValue() bool {
	_, ok := nthChildExpr(e.node, 0)
	return ok
}

// isBareJump reports a value-less return/break/continue.
func (e Expr) isBareJump() bool {
	switch e.Kind() {
	case syntax.RETURN_EXPR:
		return !e.hasValue()
	case syntax.BREAK_EXPR, syntax.CONTINUE_EXPR:
		return true
	}
	return false
}

// operatorOffset returns the text offset that orders the expression among
// its siblings: the operator token for infix/postfix forms, the node start
// for everything else.
func operatorOffset(e Expr) int {
	switch e.Kind() {
	case syntax.BIN_EXPR:
		if op := (BinExpr{node: e.node}).OpToken(); op != nil {
			return op.Range().Start
		}
	case syntax.CONCATENATION_EXPR:
		if t := e.node.FirstTokenOfKind(syntax.DOUBLE_PLUS); t != nil {
			return t.Range().Start
		}
	case syntax.RANGE_EXPR:
		if t := e.node.FirstTokenOfKind(syntax.COLON); t != nil {
			return t.Range().Start
		}
	case syntax.CALL_EXPR, syntax.GATE_CALL_EXPR:
		if a := e.node.FirstChildOfKind(syntax.ARG_LIST); a != nil {
			return a.Range().Start
		}
	case syntax.INDEX_EXPR:
		if i := e.node.FirstChildOfKind(syntax.INDEX_OPERATOR); i != nil {
			return i.Range().Start
		}
	}
	return e.node.Range().Start
}

// blockHeadKind reports whether the parent has a child position immediately
// followed by a block: the if/while/for heads.
func blockHeadKind(k syntax.Kind) bool {
	switch k {
	case syntax.IF_EXPR, syntax.IF_STMT, syntax.WHILE_EXPR, syntax.WHILE_STMT,
		syntax.FOR_EXPR, syntax.FOR_STMT:
		return true
	}
	return false
}

// rangeEndsInBlock reports a RangeExpr whose final operand is a BlockExpr.
func rangeEndsInBlock(e Expr) bool {
	if e.Kind() != syntax.RANGE_EXPR {
		return false
	}
	if end, ok := lastChildExpr(e.node); ok {
		return end.Kind() == syntax.BLOCK_EXPR
	}
	return false
}

// argListKind reports list parents whose children are already delimited by
// commas and brackets.
func argListKind(k syntax.Kind) bool {
	switch k {
	case syntax.ARG_LIST, syntax.EXPRESSION_LIST, syntax.PARAM_LIST,
		syntax.QUBIT_LIST, syntax.SET_EXPR, syntax.ARRAY_LITERAL,
		syntax.ARRAY_EXPR, syntax.INDEX_OPERATOR, syntax.DESIGNATOR:
		return true
	}
	return false
}

// stmtListKind reports statement-list parents.
func stmtListKind(k syntax.Kind) bool {
	return k == syntax.BLOCK_EXPR || k == syntax.SOURCE_FILE
}

// NeedsParensIn reports whether removing parentheses around e while placed
// under parent would change the parse. Conservative on meaning, tight on
// parentheses: a false answer guarantees the reparse keeps e's position and
// kind spine.
func (e Expr) NeedsParensIn(parent *syntax.Node) bool {
	if parent == nil {
		return false
	}
	pk := parent.Kind()

	// Argument lists delimit their children already.
	if argListKind(pk) {
		return false
	}

	// Statement position: a leading statement-shaped subexpression would be
	// re-parsed as its own statement.
	if stmtListKind(pk) || pk == syntax.EXPR_STMT || pk == syntax.ASSIGNMENT_STMT {
		return e.needsParensAsStmt()
	}

	p, ok := CastExpr(parent)
	if !ok {
		// Non-expression parents (declarations, measure targets, ...)
		// delimit their children with keywords and punctuation.
		return false
	}

	// A head position followed by a block rejects trailing bare prefix
	// forms: `if (return) {}` would steal the block.
	if blockHeadKind(pk) {
		switch e.Kind() {
		case syntax.RETURN_EXPR, syntax.BREAK_EXPR:
			if !e.hasValue() {
				return true
			}
		}
		if rangeEndsInBlock(e) {
			return true
		}
		return false
	}

	// A bare jump under a postfix parent keeps its shape: the postfix
	// operator binds tighter than the empty operand position.
	if e.isBareJump() && p.IsPostfix() {
		return false
	}

	if e.IsParenLike() || p.IsParenLike() {
		return false
	}

	selfFirst := operatorOffset(e) < operatorOffset(p)

	if e.IsPrefix() && (p.IsPrefix() || !selfFirst) {
		return false
	}
	if e.IsPostfix() && (p.IsPostfix() || selfFirst) {
		return false
	}

	var left, right Expr
	inv := false
	if selfFirst {
		left, right = e, p
	} else {
		left, right, inv = p, e, true
	}
	_, lr := left.BindingPower()
	rl, _ := right.BindingPower()
	return (lr < rl) != inv
}

// needsParensAsStmt walks the leftmost spine; any node on it that stands
// as a statement without a semicolon must be fenced off with parentheses.
func (e Expr) needsParensAsStmt() bool {
	cur := e
	for {
		if !cur.RequiresSemiToBeStmt() {
			return true
		}
		var next Expr
		var ok bool
		switch cur.Kind() {
		case syntax.BIN_EXPR:
			next, ok = BinExpr{node: cur.node}.Lhs()
		case syntax.CALL_EXPR:
			next, ok = CallExpr{node: cur.node}.Callee()
		case syntax.GATE_CALL_EXPR:
			next, ok = GateCallExpr{node: cur.node}.Callee()
		case syntax.INDEX_EXPR:
			next, ok = IndexExpr{node: cur.node}.Base()
		default:
			return false
		}
		if !ok {
			return false
		}
		cur = next
	}
}
