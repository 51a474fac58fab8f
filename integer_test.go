package asn1ber

import (
	"math/big"
	"testing"
)

func TestEncodeTwosComplement(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		expected []byte
	}{
		{name: "zero", value: 0, expected: []byte{0x00}},
		{name: "positive needs no padding", value: 1, expected: []byte{0x01}},
		{name: "positive needs padding to stay non-negative", value: 128, expected: []byte{0x00, 0x80}},
		{name: "negative one", value: -1, expected: []byte{0xFF}},
		{name: "negative 128", value: -128, expected: []byte{0x80}},
		{name: "negative 129 needs extra octet", value: -129, expected: []byte{0xFF, 0x7F}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := encodeTwosComplement(big.NewInt(tc.value))
			if string(got) != string(tc.expected) {
				t.Errorf("expected: %v, got: %v", tc.expected, got)
			}
		})
	}
}

func TestDecodeTwosComplement(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected int64
	}{
		{name: "zero", data: []byte{0x00}, expected: 0},
		{name: "positive", data: []byte{0x01}, expected: 1},
		{name: "negative one", data: []byte{0xFF}, expected: -1},
		{name: "negative 128", data: []byte{0x80}, expected: -128},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := decodeTwosComplement(tc.data)
			if got.Int64() != tc.expected {
				t.Errorf("expected: %d, got: %s", tc.expected, got.String())
			}
		})
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, 128, -128, -129, 1 << 40, -(1 << 40)} {
		value := big.NewInt(v)
		node := NewInteger(value)

		parsed, err := ParseBytes(node.Encoded())
		if err != nil {
			t.Fatalf("value %d: expected: no error, got: %v", v, err)
		}
		i, ok := parsed.(Integer)
		if !ok {
			t.Fatalf("value %d: expected Integer, got: %T", v, parsed)
		}
		if i.Value().Cmp(value) != 0 {
			t.Errorf("value %d: expected %s, got: %s", v, value.String(), i.Value().String())
		}
	}
}

func TestDecodeIntegerNonMinimal(t *testing.T) {
	// 0x00 0x7F: leading zero octet followed by a byte whose high bit is
	// clear -- the leading octet was redundant (EM_9).
	node, err := ParseBytes([]byte{0x02, 0x02, 0x00, 0x7F})
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}
	i := node.(Integer)
	if i.IsValid() {
		t.Error("expected non-minimal encoding to be invalid")
	}
}

func TestIntegerValueIsDefensiveCopy(t *testing.T) {
	i := NewInteger(big.NewInt(5))
	v := i.Value()
	v.SetInt64(999)

	if i.Value().Int64() != 5 {
		t.Error("Value must return a copy independent of internal state")
	}
}
