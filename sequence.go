package asn1ber

import "strconv"

// Sequence implements the ASN.1 SEQUENCE type (tag 0x30, §4.13). Children
// preserve insertion order with no additional constraint beyond what
// ConstructedNode already enforces.
type Sequence struct {
	ConstructedNode
}

// NewSequence constructs a Sequence directly from an ordered list of
// children.
func NewSequence(children ...Node) Sequence {
	tag, tagField := newTag(ClassUniversal, true, 16)
	node, _ := NewConstructedNode(tag, tagField, children)
	return Sequence{ConstructedNode: node}
}

// Add returns a new Sequence with child appended (§4.5).
func (s Sequence) Add(child Node) Sequence {
	return Sequence{ConstructedNode: s.ConstructedNode.Add(child)}
}

// Comment implements Node (§4.13, matching the S6 scenario's wording).
func (s Sequence) Comment() string {
	return " # SEQUENCE with " + strconv.Itoa(len(s.children)) + " elements"
}

func decodeSequence(node ConstructedNode) Node {
	return Sequence{ConstructedNode: node}
}
