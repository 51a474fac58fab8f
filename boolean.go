package asn1ber

const findingValueFieldAbsent = "value-field absent"
const findingNonCanonicalTrue = "non-canonical TRUE encoding"

// Boolean implements the ASN.1 BOOLEAN type (tag 1, §4.6).
type Boolean struct {
	PrimitiveNode
	value bool
}

// TRUE and FALSE are the canonical Boolean singletons.
var TRUE Boolean
var FALSE Boolean

func init() {
	tag, tagField := newTag(ClassUniversal, false, 1)
	trueNode, _ := NewPrimitiveNode(tag, tagField, []byte{0xFF})
	falseNode, _ := NewPrimitiveNode(tag, tagField, []byte{0x00})
	TRUE = Boolean{PrimitiveNode: trueNode, value: true}
	FALSE = Boolean{PrimitiveNode: falseNode, value: false}
}

// NewBoolean constructs a canonical Boolean value directly.
func NewBoolean(value bool) Boolean {
	if value {
		return TRUE
	}
	return FALSE
}

// Value returns the decoded Boolean value.
func (b Boolean) Value() bool { return b.value }

// Comment implements Node (§4.6 "getComment").
func (b Boolean) Comment() string {
	s := " # BOOLEAN := " + boolString(b.value)
	if !b.IsValid() {
		s += ", findings: " + b.findings[0]
	}
	return s
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func decodeEndOfContents(node PrimitiveNode) Node {
	return EndOfContents{PrimitiveNode: node}
}

func decodeBoolean(node PrimitiveNode) Node {
	var findings []string
	var value bool

	switch {
	case node.LengthOfValueField() == 0:
		findings = append(findings, findingValueFieldAbsent)
	default:
		b := node.valueField[0]
		switch b {
		case 0x00:
			value = false
		case 0xFF:
			value = true
		default:
			value = true
			findings = append(findings, findingNonCanonicalTrue)
		}
	}

	node.findings = findings
	return Boolean{PrimitiveNode: node, value: value}
}
