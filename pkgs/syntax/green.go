package syntax

import "strings"

// GreenElement is either a *GreenNode or a *GreenToken. Green elements are
// immutable after construction; identical subtrees may be shared between
// trees, so holders must never mutate them.
type GreenElement interface {
	Kind() Kind
	TextLen() int
	writeText(sb *strings.Builder)
}

// GreenToken is a leaf of the lossless tree. It owns the exact source text
// it was lexed from, trivia included.
type GreenToken struct {
	kind Kind
	text string
}

// NewGreenToken builds a token leaf.
func NewGreenToken(kind Kind, text string) *GreenToken {
	return &GreenToken{kind: kind, text: text}
}

// Kind returns the token kind.
func (t *GreenToken) Kind() Kind { return t.kind }

// TextLen returns the byte length of the token text.
func (t *GreenToken) TextLen() int { return len(t.text) }

// Text returns the exact source text of the token.
func (t *GreenToken) Text() string { return t.text }

func (t *GreenToken) writeText(sb *strings.Builder) { sb.WriteString(t.text) }

// GreenNode is an interior node of the lossless tree. Its width is the sum
// of its children's widths; concatenating the child texts left to right
// reproduces the covered source substring exactly.
type GreenNode struct {
	kind     Kind
	textLen  int
	children []GreenElement
}

// NewGreenNode builds a node from already-built children. The child slice
// is owned by the node afterwards.
func NewGreenNode(kind Kind, children []GreenElement) *GreenNode {
	width := 0
	for _, c := range children {
		width += c.TextLen()
	}
	return &GreenNode{kind: kind, textLen: width, children: children}
}

// Kind returns the node kind.
func (n *GreenNode) Kind() Kind { return n.kind }

// TextLen returns the total byte width of the node.
func (n *GreenNode) TextLen() int { return n.textLen }

// NumChildren returns the child count.
func (n *GreenNode) NumChildren() int { return len(n.children) }

// Child returns the i-th child element.
func (n *GreenNode) Child(i int) GreenElement { return n.children[i] }

// Children returns the child slice. Callers must not mutate it.
func (n *GreenNode) Children() []GreenElement { return n.children }

// Text reconstructs the source substring covered by the node.
func (n *GreenNode) Text() string {
	var sb strings.Builder
	sb.Grow(n.textLen)
	n.writeText(&sb)
	return sb.String()
}

func (n *GreenNode) writeText(sb *strings.Builder) {
	for _, c := range n.children {
		c.writeText(sb)
	}
}

// ReplaceChild returns a copy of n with the i-th child replaced. All other
// children are shared with the original node; n itself is not modified.
func (n *GreenNode) ReplaceChild(i int, repl GreenElement) *GreenNode {
	children := make([]GreenElement, len(n.children))
	copy(children, n.children)
	children[i] = repl
	return NewGreenNode(n.kind, children)
}

// InsertChild returns a copy of n with repl inserted before index i.
func (n *GreenNode) InsertChild(i int, repl GreenElement) *GreenNode {
	children := make([]GreenElement, 0, len(n.children)+1)
	children = append(children, n.children[:i]...)
	children = append(children, repl)
	children = append(children, n.children[i:]...)
	return NewGreenNode(n.kind, children)
}

// StructurallyEqual reports whether two green elements have the same kind,
// shape, and token texts. Shared subtrees compare equal by pointer fast
// path.
func StructurallyEqual(a, b GreenElement) bool {
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() || a.TextLen() != b.TextLen() {
		return false
	}
	at, aok := a.(*GreenToken)
	bt, bok := b.(*GreenToken)
	if aok != bok {
		return false
	}
	if aok {
		return at.text == bt.text
	}
	an := a.(*GreenNode)
	bn := b.(*GreenNode)
	if len(an.children) != len(bn.children) {
		return false
	}
	for i := range an.children {
		if !StructurallyEqual(an.children[i], bn.children[i]) {
			return false
		}
	}
	return true
}
