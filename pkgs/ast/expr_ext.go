package ast

import (
	"strings"

	"github.com/qirlab/oq3/pkgs/syntax"
)

// Accessors the generator cannot derive from the grammar. Two same-kind
// children (Gate's parameter lists), positional branches (IfStmt), and
// intercepted labels (RangeExpr's `thestart`) resolve by indexed child
// lookup here.

// AngleParams returns the parenthesized angle parameter list, the first of
// the gate's two PARAM_LIST children.
func (v Gate) AngleParams() (ParamList, bool) {
	lists := v.node.ChildrenOfKind(syntax.PARAM_LIST)
	if len(lists) < 1 {
		return ParamList{}, false
	}
	return ParamList{node: lists[0]}, true
}

// QubitArgs returns the bare qubit argument list, the second of the gate's
// two PARAM_LIST children.
func (v Gate) QubitArgs() (ParamList, bool) {
	lists := v.node.ChildrenOfKind(syntax.PARAM_LIST)
	if len(lists) < 2 {
		return ParamList{}, false
	}
	return ParamList{node: lists[1]}, true
}

// ThenBranch returns the statement taken when the condition holds: the
// first statement child after the closing paren of the condition.
func (v IfStmt) ThenBranch() (Stmt, bool) {
	branches := v.branches()
	if len(branches) < 1 {
		return Stmt{}, false
	}
	return branches[0], true
}

// ElseBranch returns the else statement, when present.
func (v IfStmt) ElseBranch() (Stmt, bool) {
	branches := v.branches()
	if len(branches) < 2 {
		return Stmt{}, false
	}
	return branches[1], true
}

// branches collects the statement children that follow the condition. The
// condition sits between the if-parens, so any statement child after the
// closing paren is a branch.
func (v IfStmt) branches() []Stmt {
	var out []Stmt
	pastCond := false
	for _, c := range v.node.ChildrenWithTokens() {
		switch c := c.(type) {
		case *syntax.Token:
			if c.Kind() == syntax.R_PAREN {
				pastCond = true
			}
		case *syntax.Node:
			if !pastCond {
				continue
			}
			if s, ok := CastStmt(c); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// Iterable returns the loop's iterable: the expression child between the
// `in` keyword and the body.
func (v ForStmt) Iterable() (Expr, bool) {
	if n := childAfterToken(v.node, syntax.IN_KW); n != nil {
		return CastExpr(n)
	}
	return Expr{}, false
}

// Body returns the loop body as a statement, whether braced or not: the
// statement child after the iterable.
func (v ForStmt) Body() (Stmt, bool) {
	it, ok := v.Iterable()
	if !ok {
		return Stmt{}, false
	}
	for _, c := range v.node.Children() {
		if c.Range().Start < it.Syntax().Range().End {
			continue
		}
		if c.SameNode(it.Syntax()) {
			continue
		}
		if s, ok := CastStmt(c); ok {
			return s, true
		}
	}
	return Stmt{}, false
}

// TheStart returns the range's first operand. The accessor keeps the
// grammar label `thestart`; the plain name is intercepted by the
// generator.
func (v RangeExpr) TheStart() (Expr, bool) { return nthChildExpr(v.node, 0) }

// Stop returns the range's final operand.
func (v RangeExpr) Stop() (Expr, bool) {
	es := childExprs(v.node)
	if len(es) < 2 {
		return Expr{}, false
	}
	return es[len(es)-1], true
}

// Step returns the middle operand of a three-part range.
func (v RangeExpr) Step() (Expr, bool) {
	es := childExprs(v.node)
	if len(es) != 3 {
		return Expr{}, false
	}
	return es[1], true
}

// Text returns the path payload with the surrounding quotes stripped.
func (v FilePath) Text() string {
	t := v.node.FirstToken()
	if t == nil {
		return ""
	}
	s := t.Text()
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// NameText returns the statement's declared name as plain text, a convenience
// shared by diagnostics.
func (v LetStmt) NameText() string {
	if id, ok := v.Name(); ok {
		return id.Text()
	}
	return ""
}

// OperandTexts returns the flattened operand spellings of a concatenation,
// used when normalizing the two `++` shapes for comparison.
func (v ConcatenationExpr) OperandTexts() []string {
	var out []string
	for _, e := range v.Operands() {
		out = append(out, strings.TrimSpace(e.Syntax().Text()))
	}
	return out
}

// FlattenConcatenation normalizes either `++` shape — a flat
// CONCATENATION_EXPR or nested BIN_EXPR over `++` — into the operand list
// in source order. Both shapes of the same source normalize identically.
func FlattenConcatenation(e Expr) []Expr {
	switch e.Kind() {
	case syntax.CONCATENATION_EXPR:
		var out []Expr
		for _, op := range (ConcatenationExpr{node: e.node}).Operands() {
			out = append(out, FlattenConcatenation(op)...)
		}
		return out
	case syntax.BIN_EXPR:
		be := BinExpr{node: e.node}
		if op := be.OpToken(); op != nil && op.Kind() == syntax.DOUBLE_PLUS {
			var out []Expr
			if l, ok := be.Lhs(); ok {
				out = append(out, FlattenConcatenation(l)...)
			}
			if r, ok := be.Rhs(); ok {
				out = append(out, FlattenConcatenation(r)...)
			}
			return out
		}
	}
	return []Expr{e}
}
