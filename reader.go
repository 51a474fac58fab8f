package asn1ber

import "io"

// NodeReader is the top-level entry point (§4.3): it reads exactly one
// TLV from a Source, producing either a typed variant (when the tag
// matches a row of the dispatch table) or a generic PrimitiveNode /
// ConstructedNode.
//
// Parsing is two-phase: readTag and readNodeFromTag perform the shared,
// type-agnostic framing (tag-field, length-field, value-field/children)
// and typeifyPrimitive/typeifyConstructed re-interpret the resulting
// generic node into its typed arm.
type NodeReader struct{}

// Read parses exactly one TLV from src and dispatches it to its typed
// variant, per §4.3.
func (NodeReader) Read(src Source) (Node, error) {
	return readNode(src)
}

func readNode(src Source) (Node, error) {
	tag, tagField, info, err := readTag(src)
	if err != nil {
		return nil, err
	}
	return readNodeFromTag(src, tag, tagField, info)
}

// readChildrenDefinite recursively parses value, a definite-length
// constructed value-field, into its children (§4.5).
func readChildrenDefinite(value []byte) ([]Node, error) {
	src := NewBufferSource(value)
	children := make([]Node, 0, len(value)/2)
	for src.Position() < src.Limit() {
		child, err := readNode(src)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// readChildrenIndefinite recursively parses children directly from src
// until the end-of-contents sentinel (tag 0x00, length 0x00) is consumed
// (§4.2, §4.10).
func readChildrenIndefinite(src Source) ([]Node, error) {
	var children []Node
	for {
		tag, tagField, info, err := readTag(src)
		if err != nil {
			return nil, err
		}

		if tag == TagEndOfContents && !info.constructed {
			length, _, err := readLength(src)
			if err != nil {
				return nil, err
			}
			if length != 0 {
				return nil, fatalf(ErrInvalidArgument, "end-of-contents marker must have zero length, got %d", length)
			}
			return children, nil
		}

		child, err := readNodeFromTag(src, tag, tagField, info)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

// readNodeFromTag continues parsing a TLV whose tag-field has already
// been consumed from src, used when readChildrenIndefinite peeks a tag to
// test for the end-of-contents sentinel.
func readNodeFromTag(src Source, tag Tag, tagField []byte, info tagInfo) (Node, error) {
	length, _, err := readLength(src)
	if err != nil {
		return nil, err
	}

	if !info.constructed {
		if length == lengthIndefinite {
			return nil, fatalf(ErrIndefiniteForbidden, "tag %s", tag)
		}
		value, err := src.ReadN(length)
		if err != nil {
			return nil, wrapReadErr(err, "reading value-field")
		}
		prim := PrimitiveNode{base: newBase(tag, tagField, nil), valueField: value}
		return typeifyPrimitive(tag, prim), nil
	}

	if isPrimitiveOnlyUniversalTag(tag) {
		return nil, fatalf(ErrConstructedForPrimitive, "tag %s: constructed encoding (PC bit set) for a tag the dispatch table designates primitive-only", tag)
	}

	var children []Node
	if length == lengthIndefinite {
		children, err = readChildrenIndefinite(src)
		if err != nil {
			return nil, err
		}
	} else {
		value, err := src.ReadN(length)
		if err != nil {
			return nil, wrapReadErr(err, "reading value-field")
		}
		children, err = readChildrenDefinite(value)
		if err != nil {
			return nil, err
		}
	}

	cons := ConstructedNode{base: newBase(tag, tagField, nil), children: children}
	return typeifyConstructed(tag, cons), nil
}

// Parse parses a complete BER/DER encoding from src and returns the
// single top-level Node (§6 "parse(source) -> Node").
func Parse(src Source) (Node, error) {
	return readNode(src)
}

// ParseBytes is a convenience wrapper over Parse for an in-memory buffer
// (§6 "parse(bytes) -> Node").
func ParseBytes(b []byte) (Node, error) {
	return Parse(NewBufferSource(b))
}

// Encode renders node's canonical TLV encoding (§6 "encode(node) -> bytes").
func Encode(node Node) []byte {
	return node.Encoded()
}

// EncodeTo writes node's canonical TLV encoding to w (§6 "encodeTo").
func EncodeTo(node Node, w io.Writer) (int, error) {
	return node.EncodedTo(w)
}
