package parser

import (
	"fmt"

	"github.com/qirlab/oq3/pkgs/syntax"
	"github.com/qirlab/oq3/runtime/lexer"
)

// ParseTree represents the result of parsing: the source, the full token
// vector (trivia included), the event stream describing tree construction,
// and any errors met along the way. The parser always covers the whole
// input; errors become ERROR nodes in the tree, never gaps.
type ParseTree struct {
	Source []byte        // Original source (for reference)
	Tokens []lexer.Token // Tokens from lexer, trivia included
	Events []Event       // Parse events
	Errors []ParseError  // Parse errors
}

// Event represents a parse tree construction event
type Event struct {
	Kind EventKind
	Data uint32
}

// EventKind represents the type of parse event
type EventKind uint8

const (
	EventOpen  EventKind = iota // Open syntax node; Data is a syntax.Kind
	EventClose                  // Close syntax node; Data is a syntax.Kind
	EventToken                  // Consume token; Data indexes ParseTree.Tokens
)

// ParseError represents a parse error with its source offset.
type ParseError struct {
	Message string
	Offset  int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d: %s", e.Offset, e.Message)
}

// HasErrors reports whether any parse or lex errors were recorded.
func (t *ParseTree) HasErrors() bool { return len(t.Errors) > 0 }

// BuildTree replays the event stream into a green tree. Trivia tokens,
// which the parser never mentions in events, are attached in front of the
// following significant token; trivia after the last significant token is
// flushed at file level before the root closes.
func BuildTree(t *ParseTree) (*syntax.GreenNode, error) {
	b := syntax.NewBuilder()
	cursor := 0 // next unemitted token index, trivia included

	flushTriviaBefore := func(idx int) {
		for cursor < idx && cursor < len(t.Tokens) {
			tok := t.Tokens[cursor]
			if !tok.IsTrivia() {
				break
			}
			b.Token(tok.Kind, tok.Text)
			cursor++
		}
	}

	depth := 0
	for i, ev := range t.Events {
		switch ev.Kind {
		case EventOpen:
			// Flushing before the open keeps leading trivia outside the
			// new node, attached at the outermost position in front of
			// the token that follows. The root open must stay first, so
			// file-leading trivia flushes after it instead.
			if depth > 0 {
				flushTriviaBefore(len(t.Tokens))
			}
			b.StartNode(syntax.Kind(ev.Data))
			depth++
		case EventClose:
			// The final close seals the root; trailing trivia must land
			// inside it to keep the tree lossless.
			if i == len(t.Events)-1 {
				flushTriviaBefore(len(t.Tokens))
			}
			b.FinishNode()
			depth--
		case EventToken:
			idx := int(ev.Data)
			flushTriviaBefore(idx)
			if idx != cursor {
				return nil, fmt.Errorf("parser: event emits token %d but cursor is at %d", idx, cursor)
			}
			tok := t.Tokens[idx]
			b.Token(tok.Kind, tok.Text)
			cursor = idx + 1
		}
	}
	return b.Finish()
}
