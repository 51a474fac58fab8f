package asn1ber

import "math/big"

// findingNonMinimalInteger is the EM_9 symbolic constant from §4.7: the
// first 9 bits of the value-field are all-zero or all-one, meaning the
// encoding carries a redundant leading octet.
const findingNonMinimalInteger = "9 MSBit all equal"

// Integer implements the unbounded ASN.1 INTEGER type (tag 2, §4.7),
// holding a two's-complement big-endian value in minimal form.
type Integer struct {
	PrimitiveNode
	value *big.Int
}

// NewInteger constructs an Integer directly from a *big.Int, encoding it
// as the shortest two's-complement representation (at least one byte).
func NewInteger(value *big.Int) Integer {
	tag, tagField := newTag(ClassUniversal, false, 2)
	node, _ := NewPrimitiveNode(tag, tagField, encodeTwosComplement(value))
	return Integer{PrimitiveNode: node, value: new(big.Int).Set(value)}
}

// Value returns the decoded value as a *big.Int. The returned pointer is
// independent of the receiver's internal state.
func (i Integer) Value() *big.Int { return new(big.Int).Set(i.value) }

// Comment implements Node (§4.7 "getComment").
func (i Integer) Comment() string {
	s := " # INTEGER := " + i.value.String()
	if !i.IsValid() {
		s += ", findings: " + i.findings[0]
	}
	return s
}

func decodeInteger(node PrimitiveNode) Node {
	var findings []string
	value := new(big.Int)

	switch {
	case node.LengthOfValueField() == 0:
		findings = append(findings, findingValueFieldAbsent)
	default:
		value = decodeTwosComplement(node.valueField)
		if nonMinimalTwosComplement(node.valueField) {
			findings = append(findings, findingNonMinimalInteger)
		}
	}

	node.findings = findings
	return Integer{PrimitiveNode: node, value: value}
}

// nonMinimalTwosComplement reports whether the first 9 bits of data are
// all-zero or all-one, which would indicate a non-canonical, non-minimal
// two's-complement encoding (§4.7 EM_9).
func nonMinimalTwosComplement(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	if data[0] == 0x00 && data[1]&0x80 == 0 {
		return true
	}
	if data[0] == 0xFF && data[1]&0x80 != 0 {
		return true
	}
	return false
}

// decodeTwosComplement interprets data as a big-endian two's-complement
// integer.
func decodeTwosComplement(data []byte) *big.Int {
	value := new(big.Int).SetBytes(data)
	if len(data) > 0 && data[0]&0x80 != 0 {
		bitLen := uint(len(data) * 8)
		twoPow := new(big.Int).Lsh(big.NewInt(1), bitLen)
		value.Sub(value, twoPow)
	}
	return value
}

// encodeTwosComplement renders value as the shortest big-endian two's
// complement representation, at least one byte long.
func encodeTwosComplement(value *big.Int) []byte {
	if value.Sign() == 0 {
		return []byte{0x00}
	}

	if value.Sign() > 0 {
		b := value.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	abs := new(big.Int).Abs(value)
	n := (abs.BitLen() + 7) / 8

	min := new(big.Int).Lsh(big.NewInt(1), uint(8*n-1))
	min.Neg(min)
	if value.Cmp(min) < 0 {
		n++
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	twosComplement := new(big.Int).Add(mod, value)
	out := twosComplement.Bytes()

	// big.Int.Bytes trims leading zero bytes; pad back to n octets.
	if len(out) < n {
		padded := make([]byte, n)
		copy(padded[n-len(out):], out)
		out = padded
	}
	return out
}
