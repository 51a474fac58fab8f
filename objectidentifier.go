package asn1ber

import (
	"strconv"
	"strings"
)

// findingIncompleteArc is raised when an OBJECT IDENTIFIER's value-field
// ends with a continuation octet still expecting more bytes.
const findingIncompleteArc = "incomplete arc"

// ObjectIdentifier implements the ASN.1 OBJECT IDENTIFIER type (tag 6).
// The dispatch table (§4.3) names this type but spec.md's §4 has no
// semantic subsection for it; decoding here follows the standard BER
// base-128 arc encoding (grounded in JesseCoretta/go-asn1plus's oid.go),
// supplementing rather than overriding the spec's silence.
type ObjectIdentifier struct {
	PrimitiveNode
	arcs []uint64
}

// NewObjectIdentifier constructs an ObjectIdentifier directly from its
// arc values. There must be at least two arcs, and the first arc must be
// 0, 1, or 2 (with the second arc <= 39 when the first is 0 or 1), per
// the standard OID encoding rules.
func NewObjectIdentifier(arcs ...uint64) (ObjectIdentifier, error) {
	if len(arcs) < 2 {
		return ObjectIdentifier{}, fatalf(ErrInvalidArgument, "an OBJECT IDENTIFIER must have at least two arcs")
	}
	if arcs[0] > 2 || (arcs[0] < 2 && arcs[1] > 39) {
		return ObjectIdentifier{}, fatalf(ErrInvalidArgument, "invalid leading OBJECT IDENTIFIER arcs %d.%d", arcs[0], arcs[1])
	}

	value := encodeOidArcs(arcs)
	tag, tagField := newTag(ClassUniversal, false, 6)
	node, _ := NewPrimitiveNode(tag, tagField, value)

	return ObjectIdentifier{PrimitiveNode: node, arcs: append([]uint64(nil), arcs...)}, nil
}

// Arcs returns a defensive copy of the decoded arc values.
func (o ObjectIdentifier) Arcs() []uint64 { return append([]uint64(nil), o.arcs...) }

// String renders the dotted-decimal form, e.g. "1.2.840.113549".
func (o ObjectIdentifier) String() string {
	parts := make([]string, len(o.arcs))
	for i, a := range o.arcs {
		parts[i] = strconv.FormatUint(a, 10)
	}
	return strings.Join(parts, ".")
}

// Comment implements Node.
func (o ObjectIdentifier) Comment() string {
	s := " # OBJECT IDENTIFIER := " + o.String()
	if !o.IsValid() {
		s += ", findings: " + o.findings[0]
	}
	return s
}

func decodeObjectIdentifier(node PrimitiveNode) Node {
	var findings []string
	var arcs []uint64

	switch {
	case node.LengthOfValueField() == 0:
		findings = append(findings, findingValueFieldAbsent)
	default:
		var err error
		arcs, err = decodeOidArcs(node.valueField)
		if err != nil {
			findings = append(findings, findingIncompleteArc)
		}
	}

	node.findings = findings
	return ObjectIdentifier{PrimitiveNode: node, arcs: arcs}
}

func decodeOidArcs(data []byte) ([]uint64, error) {
	var arcs []uint64

	var current uint64
	haveByte := false
	for _, b := range data {
		current = (current << 7) | uint64(b&0x7F)
		haveByte = true
		if b&0x80 == 0 {
			arcs = append(arcs, current)
			current = 0
			haveByte = false
		}
	}
	if haveByte {
		return nil, fatalf(ErrInvalidArgument, findingIncompleteArc)
	}

	if len(arcs) == 0 {
		return nil, fatalf(ErrInvalidArgument, findingIncompleteArc)
	}

	first := arcs[0]
	var leading []uint64
	switch {
	case first < 80:
		leading = []uint64{first / 40, first % 40}
	default:
		leading = []uint64{2, first - 80}
	}

	return append(leading, arcs[1:]...), nil
}

func encodeOidArcs(arcs []uint64) []byte {
	first := arcs[0]*40 + arcs[1]
	encoded := append([]uint64{first}, arcs[2:]...)

	var out []byte
	for _, arc := range encoded {
		out = append(out, encodeBase128(arc)...)
	}
	return out
}

func encodeBase128(v uint64) []byte {
	if v == 0 {
		return []byte{0x00}
	}
	var groups []byte
	for v > 0 {
		groups = append([]byte{byte(v & 0x7F)}, groups...)
		v >>= 7
	}
	for i := range groups[:len(groups)-1] {
		groups[i] |= 0x80
	}
	return groups
}
