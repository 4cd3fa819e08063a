// Package treefmt serializes green trees to a compact binary format:
// a fixed preamble (magic, version, flags) followed by a CBOR payload.
// Round-tripping reproduces a structurally equal tree, so the format can
// serve as a parse cache or feed external tooling.
//
// Kind tags are written as raw enumeration values; the format version must
// be bumped whenever the kind table changes shape.
package treefmt

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/qirlab/oq3/pkgs/syntax"
)

const (
	// Magic is the file magic number "OQ3T" (4 bytes)
	Magic = "OQ3T"

	// Version is the format version (uint16, little-endian).
	// Read accepts only this exact value; there is no major/minor split.
	Version uint16 = 0x0001
)

// Flags is a bitmask for optional features. None are defined yet; the
// field reserves the space in the preamble.
type Flags uint16

// wireElement is the CBOR shape of one green element. A non-nil Text means
// token; otherwise the element is a node carrying Children.
type wireElement struct {
	Kind     uint16        `cbor:"1,keyasint"`
	Text     *string       `cbor:"2,keyasint,omitempty"`
	Children []wireElement `cbor:"3,keyasint,omitempty"`
}

// Write writes the green tree to w.
func Write(w io.Writer, root *syntax.GreenNode) error {
	if _, err := w.Write([]byte(Magic)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, Version); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
		return err
	}
	enc, err := cbor.Marshal(toWire(root))
	if err != nil {
		return fmt.Errorf("treefmt: encode: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(enc))); err != nil {
		return err
	}
	_, err = w.Write(enc)
	return err
}

// Read reads a green tree from r.
func Read(r io.Reader) (*syntax.GreenNode, error) {
	var preamble [8]byte
	if _, err := io.ReadFull(r, preamble[:]); err != nil {
		return nil, fmt.Errorf("treefmt: read preamble: %w", err)
	}
	if string(preamble[0:4]) != Magic {
		return nil, fmt.Errorf("treefmt: invalid magic %q, expected %q", preamble[0:4], Magic)
	}
	version := binary.LittleEndian.Uint16(preamble[4:6])
	if version != Version {
		return nil, fmt.Errorf("treefmt: unsupported version 0x%04x, expected 0x%04x", version, Version)
	}
	var size [4]byte
	if _, err := io.ReadFull(r, size[:]); err != nil {
		return nil, fmt.Errorf("treefmt: read payload size: %w", err)
	}
	payload := make([]byte, binary.LittleEndian.Uint32(size[:]))
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("treefmt: read payload: %w", err)
	}
	var wire wireElement
	if err := cbor.Unmarshal(payload, &wire); err != nil {
		return nil, fmt.Errorf("treefmt: decode: %w", err)
	}
	elem, err := fromWire(wire)
	if err != nil {
		return nil, err
	}
	root, ok := elem.(*syntax.GreenNode)
	if !ok {
		return nil, fmt.Errorf("treefmt: root element is a token, expected a node")
	}
	return root, nil
}

func toWire(e syntax.GreenElement) wireElement {
	switch e := e.(type) {
	case *syntax.GreenToken:
		text := e.Text()
		return wireElement{Kind: uint16(e.Kind()), Text: &text}
	case *syntax.GreenNode:
		out := wireElement{Kind: uint16(e.Kind())}
		for _, c := range e.Children() {
			out.Children = append(out.Children, toWire(c))
		}
		return out
	}
	return wireElement{}
}

func fromWire(w wireElement) (syntax.GreenElement, error) {
	kind := syntax.Kind(w.Kind)
	if w.Text != nil {
		if !kind.IsToken() {
			return nil, fmt.Errorf("treefmt: kind %s carries token text but is not a token kind", kind)
		}
		return syntax.NewGreenToken(kind, *w.Text), nil
	}
	if !kind.IsNode() {
		return nil, fmt.Errorf("treefmt: kind %s is not a node kind", kind)
	}
	children := make([]syntax.GreenElement, 0, len(w.Children))
	for _, c := range w.Children {
		elem, err := fromWire(c)
		if err != nil {
			return nil, err
		}
		children = append(children, elem)
	}
	return syntax.NewGreenNode(kind, children), nil
}
