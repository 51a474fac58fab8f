package asn1ber

// OctetString implements the ASN.1 OCTET STRING type (tag 4, §4.9).
type OctetString struct {
	PrimitiveNode
}

// NewOctetString constructs an OctetString directly from raw bytes.
func NewOctetString(content []byte) OctetString {
	tag, tagField := newTag(ClassUniversal, false, 4)
	node, _ := NewPrimitiveNode(tag, tagField, content)
	return OctetString{PrimitiveNode: node}
}

// GetDecoded returns a defensive copy of the content bytes.
func (o OctetString) GetDecoded() []byte { return o.ValueField() }

// Comment implements Node (§4.9 "getComment").
func (o OctetString) Comment() string {
	return " # OCTETSTRING"
}

// NestedChildren attempts to parse the content as a sequence of
// consecutive TLVs, returning them (and true) if the entire content is
// consumed by valid framing. Used by toStringTree's recursive rendering
// (§4.9: "if the octet-string content parses as one or more valid
// TLV-objects, they are shown nested beneath a delimiter band").
func (o OctetString) NestedChildren() ([]Node, bool) {
	value := o.ValueField()
	if len(value) == 0 {
		return nil, false
	}

	children, err := readChildrenDefinite(value)
	if err != nil || len(children) == 0 {
		return nil, false
	}
	return children, true
}

func decodeOctetString(node PrimitiveNode) Node {
	return OctetString{PrimitiveNode: node}
}
