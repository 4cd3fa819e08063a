package ast

import "github.com/qirlab/oq3/pkgs/syntax"

// Tree rewrites. Every edit produces a fresh green root sharing all
// unchanged subtrees; the input tree stays valid for any holder.

// replaceInRoot rebuilds the spine from n to the root with n's green
// element swapped for repl, and returns the new root.
func replaceInRoot(n *syntax.Node, repl syntax.GreenElement) *syntax.GreenNode {
	cur := repl
	for node := n; node.Parent() != nil; node = node.Parent() {
		cur = node.Parent().GreenNode().ReplaceChild(node.IndexInParent(), cur)
	}
	root, ok := cur.(*syntax.GreenNode)
	if !ok {
		// n was the root and repl is a token; wrap it to keep a node root.
		root = syntax.NewGreenNode(n.Kind(), []syntax.GreenElement{repl})
	}
	return root
}

// Parenthesize wraps the expression in a ParenExpr and returns the new
// green root.
func Parenthesize(e Expr) *syntax.GreenNode {
	n := e.Syntax()
	wrapped := syntax.NewGreenNode(syntax.PAREN_EXPR, []syntax.GreenElement{
		syntax.NewGreenToken(syntax.L_PAREN, "("),
		n.Green(),
		syntax.NewGreenToken(syntax.R_PAREN, ")"),
	})
	return replaceInRoot(n, wrapped)
}

// StripRedundantParens removes every ParenExpr whose inner expression does
// not need parentheses under the ParenExpr's parent, and returns the new
// green root. The operation reaches a fixpoint: applying it to its own
// output changes nothing.
func StripRedundantParens(root *syntax.Node) *syntax.GreenNode {
	green := root.GreenNode()
	for {
		red := syntax.NewRootNode(green)
		target := findRedundantParen(red)
		if target == nil {
			return green
		}
		inner := target.FirstChildOfKind(innerExprKind(target))
		green = replaceInRoot(target, inner.Green())
	}
}

// findRedundantParen returns the first ParenExpr, in preorder, whose inner
// expression stays well-placed without the parentheses.
func findRedundantParen(root *syntax.Node) *syntax.Node {
	var found *syntax.Node
	syntax.Preorder(root, func(n *syntax.Node) bool {
		if found != nil {
			return false
		}
		if n.Kind() != syntax.PAREN_EXPR || n.Parent() == nil {
			return true
		}
		pe := ParenExpr{node: n}
		inner, ok := pe.Expr()
		if !ok {
			return true
		}
		if !inner.NeedsParensIn(n.Parent()) {
			found = n
			return false
		}
		return true
	})
	return found
}

// innerExprKind returns the kind of the paren's inner expression node.
func innerExprKind(paren *syntax.Node) syntax.Kind {
	if inner, ok := (ParenExpr{node: paren}).Expr(); ok {
		return inner.Kind()
	}
	return syntax.ERROR
}
