package asn1ber

import "strconv"

// Symbolic finding constants from §4.8.
const (
	findingUnusedBitsOutOfRange = "numberOfUnusedBits out of range"
	findingUnusedBitsNonEmpty   = "numberOfUnusedBits > 0 but empty bit-string"
)

// BitString implements the ASN.1 BIT STRING type (tag 3, §4.8). The
// value-field is one "unused-bits" octet in [0,7] followed by zero or
// more content octets.
type BitString struct {
	PrimitiveNode
	unusedBits int
	content    []byte
}

// NewBitString constructs a BitString directly from an unused-bits count
// and content bytes, validating both the way the value-field's decoder
// does (§4.8): unusedBits must be in [0,7], and a non-zero unusedBits is
// only legal alongside non-empty content.
func NewBitString(unusedBits int, content []byte) (BitString, error) {
	if unusedBits < 0 || unusedBits > 7 {
		return BitString{}, fatalf(ErrInvalidArgument, findingUnusedBitsOutOfRange)
	}
	if unusedBits > 0 && len(content) == 0 {
		return BitString{}, fatalf(ErrInvalidArgument, findingUnusedBitsNonEmpty)
	}

	value := append([]byte{byte(unusedBits)}, cloneBytes(content)...)
	tag, tagField := newTag(ClassUniversal, false, 3)
	node, _ := NewPrimitiveNode(tag, tagField, value)

	return BitString{PrimitiveNode: node, unusedBits: unusedBits, content: cloneBytes(content)}, nil
}

// UnusedBits returns the number of unused bits in the final content octet.
func (bs BitString) UnusedBits() int { return bs.unusedBits }

// Content returns a defensive copy of the content octets.
func (bs BitString) Content() []byte { return cloneBytes(bs.content) }

// Comment implements Node (§4.8 "getComment").
func (bs BitString) Comment() string {
	unit := "bits"
	if bs.unusedBits == 1 {
		unit = "bit"
	}
	s := " # BITSTRING: " + strconv.Itoa(bs.unusedBits) + " unused " + unit + ": '" + toBitString(bs.unusedBits, bs.content) + "'"
	if !bs.IsValid() {
		s += ", findings: " + bs.findings[0]
	}
	return s
}

// toBitString renders content as groups of 8 bits separated by a space,
// with the final group truncated to 8*len(content)-unusedBits bits
// (§4.8). If unusedBits >= 8*len(content), the empty string is returned.
func toBitString(unusedBits int, content []byte) string {
	totalBits := 8 * len(content)
	if unusedBits >= totalBits {
		return ""
	}

	keepBits := totalBits - unusedBits

	var out []byte
	bit := 0
	for _, b := range content {
		for i := 7; i >= 0; i-- {
			if bit >= keepBits {
				break
			}
			if (b>>uint(i))&1 == 1 {
				out = append(out, '1')
			} else {
				out = append(out, '0')
			}
			bit++
		}
		if bit < keepBits {
			out = append(out, ' ')
		}
	}

	return string(out)
}

func decodeBitString(node PrimitiveNode) Node {
	var findings []string
	var unusedBits int
	var content []byte

	switch {
	case node.LengthOfValueField() == 0:
		findings = append(findings, findingValueFieldAbsent)
	default:
		unusedBits = int(node.valueField[0])
		content = cloneBytes(node.valueField[1:])

		if unusedBits > 7 {
			findings = append(findings, findingUnusedBitsOutOfRange)
		}
		if unusedBits > 0 && len(content) == 0 {
			findings = append(findings, findingUnusedBitsNonEmpty)
		}
	}

	node.findings = findings
	return BitString{PrimitiveNode: node, unusedBits: unusedBits, content: content}
}
