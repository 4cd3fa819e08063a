// Package ast provides typed views over the red syntax tree. Views are
// thin non-owning wrappers: they hold a node pointer, cast by kind, and
// expose the labeled children the grammar declares. Enum views (Expr, Stmt,
// Item, Type, GateOperand, IndexKind) are polymorphic over their grammar
// alternatives.
package ast

import "github.com/qirlab/oq3/pkgs/syntax"

// AstNode is implemented by every typed view.
type AstNode interface {
	Syntax() *syntax.Node
}

// exprKinds is the Expr sum. The statement forms of if/while/for/block are
// members too: one underlying node backs both the Stmt and the Expr view,
// so the precedence engine can reason uniformly.
var exprKinds = map[syntax.Kind]bool{
	syntax.ARRAY_EXPR:         true,
	syntax.ARRAY_LITERAL:      true,
	syntax.BIN_EXPR:           true,
	syntax.BLOCK_EXPR:         true,
	syntax.BOX_EXPR:           true,
	syntax.BREAK_EXPR:         true,
	syntax.CALL_EXPR:          true,
	syntax.CAST_EXPRESSION:    true,
	syntax.CONCATENATION_EXPR: true,
	syntax.CONTINUE_EXPR:      true,
	syntax.FOR_EXPR:           true,
	syntax.FOR_STMT:           true,
	syntax.GATE_CALL_EXPR:     true,
	syntax.HARDWARE_QUBIT:     true,
	syntax.IDENTIFIER:         true,
	syntax.IF_EXPR:            true,
	syntax.IF_STMT:            true,
	syntax.INDEXED_IDENTIFIER: true,
	syntax.INDEX_EXPR:         true,
	syntax.LITERAL:            true,
	syntax.MEASURE_EXPRESSION: true,
	syntax.PAREN_EXPR:         true,
	syntax.PREFIX_EXPR:        true,
	syntax.RANGE_EXPR:         true,
	syntax.RETURN_EXPR:        true,
	syntax.SET_EXPR:           true,
	syntax.WHILE_EXPR:         true,
	syntax.WHILE_STMT:         true,
}

var stmtKinds = map[syntax.Kind]bool{
	syntax.ASSIGNMENT_STMT:                 true,
	syntax.BARRIER:                         true,
	syntax.BLOCK_EXPR:                      true,
	syntax.BREAK_STMT:                      true,
	syntax.CLASSICAL_DECLARATION_STATEMENT: true,
	syntax.CONTINUE_STMT:                   true,
	syntax.END_STMT:                        true,
	syntax.EXPR_STMT:                       true,
	syntax.FOR_STMT:                        true,
	syntax.GATE_CALL_STMT:                  true,
	syntax.G_PHASE_CALL_STMT:               true,
	syntax.IF_STMT:                         true,
	syntax.I_O_DECLARATION_STATEMENT:       true,
	syntax.LET_STMT:                        true,
	syntax.MEASURE:                         true,
	syntax.QUANTUM_DECLARATION_STATEMENT:   true,
	syntax.RESET:                           true,
	syntax.TYPE_DECLARATION_STMT:           true,
	syntax.WHILE_STMT:                      true,
}

var itemOnlyKinds = map[syntax.Kind]bool{
	syntax.CAL:             true,
	syntax.DEF:             true,
	syntax.DEF_CAL:         true,
	syntax.DEF_CAL_GRAMMAR: true,
	syntax.GATE:            true,
	syntax.INCLUDE:         true,
	syntax.VERSION_STRING:  true,
}

// Expr is the polymorphic expression view.
type Expr struct {
	node *syntax.Node
}

// CastExpr wraps n when its kind belongs to the Expr sum.
func CastExpr(n *syntax.Node) (Expr, bool) {
	if n != nil && exprKinds[n.Kind()] {
		return Expr{node: n}, true
	}
	return Expr{}, false
}

// Syntax returns the underlying red node.
func (e Expr) Syntax() *syntax.Node { return e.node }

// Kind returns the concrete node kind, the Expr discriminator.
func (e Expr) Kind() syntax.Kind { return e.node.Kind() }

// Stmt is the polymorphic statement view.
type Stmt struct {
	node *syntax.Node
}

// CastStmt wraps n when its kind belongs to the Stmt sum.
func CastStmt(n *syntax.Node) (Stmt, bool) {
	if n != nil && stmtKinds[n.Kind()] {
		return Stmt{node: n}, true
	}
	return Stmt{}, false
}

// Syntax returns the underlying red node.
func (s Stmt) Syntax() *syntax.Node { return s.node }

// Kind returns the concrete node kind, the Stmt discriminator.
func (s Stmt) Kind() syntax.Kind { return s.node.Kind() }

// Item is the polymorphic top-level view: every statement plus the
// definition forms.
type Item struct {
	node *syntax.Node
}

// CastItem wraps n when its kind can appear at the top level.
func CastItem(n *syntax.Node) (Item, bool) {
	if n != nil && (stmtKinds[n.Kind()] || itemOnlyKinds[n.Kind()]) {
		return Item{node: n}, true
	}
	return Item{}, false
}

// Syntax returns the underlying red node.
func (i Item) Syntax() *syntax.Node { return i.node }

// Kind returns the concrete node kind, the Item discriminator.
func (i Item) Kind() syntax.Kind { return i.node.Kind() }

// Type is the polymorphic type view.
type Type struct {
	node *syntax.Node
}

// CastType wraps n when it is a scalar, array, or qubit type node.
func CastType(n *syntax.Node) (Type, bool) {
	if n == nil {
		return Type{}, false
	}
	switch n.Kind() {
	case syntax.SCALAR_TYPE, syntax.ARRAY_TYPE, syntax.QUBIT_TYPE:
		return Type{node: n}, true
	}
	return Type{}, false
}

// Syntax returns the underlying red node.
func (t Type) Syntax() *syntax.Node { return t.node }

// Kind returns the concrete node kind.
func (t Type) Kind() syntax.Kind { return t.node.Kind() }

// GateOperand is the polymorphic qubit-reference view.
type GateOperand struct {
	node *syntax.Node
}

// CastGateOperand wraps identifiers, indexed identifiers, and hardware
// qubits.
func CastGateOperand(n *syntax.Node) (GateOperand, bool) {
	if n == nil {
		return GateOperand{}, false
	}
	switch n.Kind() {
	case syntax.IDENTIFIER, syntax.INDEXED_IDENTIFIER, syntax.HARDWARE_QUBIT:
		return GateOperand{node: n}, true
	}
	return GateOperand{}, false
}

// Syntax returns the underlying red node.
func (g GateOperand) Syntax() *syntax.Node { return g.node }

// Kind returns the concrete node kind.
func (g GateOperand) Kind() syntax.Kind { return g.node.Kind() }

// IndexKind is the polymorphic index payload view: an expression list or a
// set.
type IndexKind struct {
	node *syntax.Node
}

// CastIndexKind wraps expression lists and set expressions.
func CastIndexKind(n *syntax.Node) (IndexKind, bool) {
	if n == nil {
		return IndexKind{}, false
	}
	switch n.Kind() {
	case syntax.EXPRESSION_LIST, syntax.SET_EXPR:
		return IndexKind{node: n}, true
	}
	return IndexKind{}, false
}

// Syntax returns the underlying red node.
func (k IndexKind) Syntax() *syntax.Node { return k.node }

// Kind returns the concrete node kind.
func (k IndexKind) Kind() syntax.Kind { return k.node.Kind() }

// Child lookup helpers shared by the accessor surface.

// nthChildExpr returns the i-th child that casts to Expr.
func nthChildExpr(n *syntax.Node, i int) (Expr, bool) {
	for _, c := range n.Children() {
		if e, ok := CastExpr(c); ok {
			if i == 0 {
				return e, true
			}
			i--
		}
	}
	return Expr{}, false
}

// childExprs returns all children that cast to Expr, in source order.
func childExprs(n *syntax.Node) []Expr {
	var out []Expr
	for _, c := range n.Children() {
		if e, ok := CastExpr(c); ok {
			out = append(out, e)
		}
	}
	return out
}

// lastChildExpr returns the final Expr child.
func lastChildExpr(n *syntax.Node) (Expr, bool) {
	es := childExprs(n)
	if len(es) == 0 {
		return Expr{}, false
	}
	return es[len(es)-1], true
}

// childAfterToken returns the first node child positioned after the first
// child token of the given kind. Used for accessors like the measure arrow
// target, whose position is defined by the token before it.
func childAfterToken(n *syntax.Node, tok syntax.Kind) *syntax.Node {
	seen := false
	for _, c := range n.ChildrenWithTokens() {
		switch c := c.(type) {
		case *syntax.Token:
			if c.Kind() == tok {
				seen = true
			}
		case *syntax.Node:
			if seen {
				return c
			}
		}
	}
	return nil
}
