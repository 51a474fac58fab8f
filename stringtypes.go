package asn1ber

import "strings"

const findingInvalidEncoding = "invalid encoding"
const findingInvalidCharacter = "invalid character"
const replacementChar = '�'

// Utf8String implements the ASN.1 UTF8String type (tag 12, §4.11).
type Utf8String struct {
	PrimitiveNode
	value string
}

// NewUtf8String constructs a Utf8String directly from a Go string.
func NewUtf8String(value string) Utf8String {
	tag, tagField := newTag(ClassUniversal, false, 12)
	node, _ := NewPrimitiveNode(tag, tagField, []byte(value))
	return Utf8String{PrimitiveNode: node, value: value}
}

// Value returns the decoded string.
func (s Utf8String) Value() string { return s.value }

// Comment implements Node (§4.11 "getComment").
func (s Utf8String) Comment() string {
	return ` # UTF8String := "` + s.value + `"`
}

func decodeUtf8String(node PrimitiveNode) Node {
	decoded, ok := validateUTF8(node.valueField)

	var findings []string
	if !ok {
		findings = append(findings, findingInvalidEncoding)
	}

	node.findings = findings
	return Utf8String{PrimitiveNode: node, value: decoded}
}

// validateUTF8 walks data code-unit by code-unit per §4.11's exact
// validity rules, substituting U+FFFD for any byte sequence that is
// overlong, a 5/6-byte lead, a surrogate, out of the Unicode range, or
// structurally malformed. It returns the decoded string and whether it
// was fully valid (i.e. whether no substitution occurred).
func validateUTF8(data []byte) (string, bool) {
	var sb strings.Builder
	valid := true
	i := 0

	for i < len(data) {
		b0 := data[i]
		switch {
		case b0&0x80 == 0:
			sb.WriteByte(b0)
			i++

		case b0&0xE0 == 0xC0:
			cp, n, ok := decodeUtf8Seq(data[i:], 2, rune(b0&0x1F), 0x80)
			i += writeUtf8Result(&sb, cp, n, ok, &valid)

		case b0&0xF0 == 0xE0:
			cp, n, ok := decodeUtf8Seq(data[i:], 3, rune(b0&0x0F), 0x800)
			if ok && isSurrogate(cp) {
				ok = false
			}
			i += writeUtf8Result(&sb, cp, n, ok, &valid)

		case b0&0xF8 == 0xF0:
			cp, n, ok := decodeUtf8Seq(data[i:], 4, rune(b0&0x07), 0x10000)
			if ok && cp > 0x10FFFF {
				ok = false
			}
			i += writeUtf8Result(&sb, cp, n, ok, &valid)

		default:
			// A standalone continuation byte, or a 5/6-byte lead
			// (11111xxx/111110xx): never valid in UTF-8.
			sb.WriteRune(replacementChar)
			valid = false
			i++
		}
	}

	return sb.String(), valid
}

func writeUtf8Result(sb *strings.Builder, cp rune, n int, ok bool, valid *bool) int {
	if ok {
		sb.WriteRune(cp)
	} else {
		sb.WriteRune(replacementChar)
		*valid = false
	}
	if n <= 0 {
		return 1
	}
	return n
}

// decodeUtf8Seq decodes a length-byte multi-byte sequence whose leading
// byte has already contributed leadBits of the code-point. It returns
// the code-point, the number of bytes consumed, and whether the sequence
// was well-formed (correct continuation bytes and not overlong relative
// to minValue). On a broken continuation byte, only the bytes up to (not
// including) the bad byte are consumed, so the caller re-examines it on
// its own.
func decodeUtf8Seq(data []byte, length int, leadBits rune, minValue rune) (rune, int, bool) {
	if len(data) < length {
		return 0, len(data), false
	}

	cp := leadBits
	for i := 1; i < length; i++ {
		b := data[i]
		if b&0xC0 != 0x80 {
			return 0, i, false
		}
		cp = (cp << 6) | rune(b&0x3F)
	}

	if cp < minValue {
		return cp, length, false
	}
	return cp, length, true
}

func isSurrogate(cp rune) bool {
	return cp >= 0xD800 && cp <= 0xDFFF
}

// PrintableString implements the ASN.1 PrintableString type (tag 19).
// Not covered by a semantic subsection in spec.md §4 (only named in the
// §4.3 dispatch table); validated here against the standard PrintableString
// charset, supplementing rather than overriding the spec's silence.
type PrintableString struct {
	PrimitiveNode
	value string
}

// NewPrintableString constructs a PrintableString directly.
func NewPrintableString(value string) PrintableString {
	tag, tagField := newTag(ClassUniversal, false, 19)
	node, _ := NewPrimitiveNode(tag, tagField, []byte(value))
	return PrintableString{PrimitiveNode: node, value: value}
}

// Value returns the decoded string.
func (s PrintableString) Value() string { return s.value }

// Comment implements Node.
func (s PrintableString) Comment() string {
	c := ` # PrintableString := "` + s.value + `"`
	if !s.IsValid() {
		c += ", findings: " + s.findings[0]
	}
	return c
}

func decodePrintableString(node PrimitiveNode) Node {
	var findings []string
	for _, b := range node.valueField {
		if !isPrintableStringChar(b) {
			findings = append(findings, findingInvalidCharacter)
			break
		}
	}
	node.findings = findings
	return PrintableString{PrimitiveNode: node, value: string(node.valueField)}
}

func isPrintableStringChar(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

// Ia5String implements the ASN.1 IA5String type (tag 22). Not covered by
// a semantic subsection in spec.md §4; validated here as 7-bit ASCII,
// supplementing the spec's silence.
type Ia5String struct {
	PrimitiveNode
	value string
}

// NewIa5String constructs an Ia5String directly.
func NewIa5String(value string) Ia5String {
	tag, tagField := newTag(ClassUniversal, false, 22)
	node, _ := NewPrimitiveNode(tag, tagField, []byte(value))
	return Ia5String{PrimitiveNode: node, value: value}
}

// Value returns the decoded string.
func (s Ia5String) Value() string { return s.value }

// Comment implements Node.
func (s Ia5String) Comment() string {
	c := ` # IA5String := "` + s.value + `"`
	if !s.IsValid() {
		c += ", findings: " + s.findings[0]
	}
	return c
}

func decodeIa5String(node PrimitiveNode) Node {
	var findings []string
	for _, b := range node.valueField {
		if b >= 0x80 {
			findings = append(findings, findingInvalidCharacter)
			break
		}
	}
	node.findings = findings
	return Ia5String{PrimitiveNode: node, value: string(node.valueField)}
}

// TeletexString implements the ASN.1 TeletexString (T61String) type (tag
// 20). spec.md §1's Non-goals explicitly exclude "generic ... charset
// conversion" as an external collaborator, and T.61 has no single agreed
// Go mapping anywhere in the retrieval pack, so this type is treated as
// opaque bytes with no charset finding.
type TeletexString struct {
	PrimitiveNode
}

// NewTeletexString constructs a TeletexString directly from raw bytes.
func NewTeletexString(content []byte) TeletexString {
	tag, tagField := newTag(ClassUniversal, false, 20)
	node, _ := NewPrimitiveNode(tag, tagField, content)
	return TeletexString{PrimitiveNode: node}
}

// Comment implements Node.
func (s TeletexString) Comment() string {
	return " # TeletexString"
}

func decodeTeletexString(node PrimitiveNode) Node {
	return TeletexString{PrimitiveNode: node}
}
