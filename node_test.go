package asn1ber

import (
	"bytes"
	"testing"
)

func TestNewPrimitiveNodeRejectsConstructedTag(t *testing.T) {
	tag, field := newTag(ClassUniversal, true, 16)
	_, err := NewPrimitiveNode(tag, field, nil)
	if err == nil {
		t.Fatal("expected: error, got: no error")
	}
}

func TestNewConstructedNodeRejectsPrimitiveTag(t *testing.T) {
	tag, field := newTag(ClassUniversal, false, 2)
	_, err := NewConstructedNode(tag, field, nil)
	if err == nil {
		t.Fatal("expected: error, got: no error")
	}
}

func TestPrimitiveNodeEncodedRoundTrip(t *testing.T) {
	tag, field := newTag(ClassUniversal, false, 4)
	node, err := NewPrimitiveNode(tag, field, []byte{0x01, 0x02, 0x03})
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}

	encoded := node.Encoded()
	expected := []byte{0x04, 0x03, 0x01, 0x02, 0x03}
	if !bytes.Equal(encoded, expected) {
		t.Errorf("expected: %v, got: %v", expected, encoded)
	}

	parsed, err := ParseBytes(encoded)
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}
	if !bytes.Equal(parsed.Encoded(), expected) {
		t.Errorf("round-trip mismatch: %v", parsed.Encoded())
	}
}

func TestPrimitiveNodeEncodedIsDefensiveCopy(t *testing.T) {
	tag, field := newTag(ClassUniversal, false, 4)
	node, _ := NewPrimitiveNode(tag, field, []byte{0x01})

	first := node.Encoded()
	first[0] = 0xFF

	second := node.Encoded()
	if second[0] == 0xFF {
		t.Error("Encoded must return a fresh defensive copy each call")
	}
}

func TestPrimitiveNodeEqual(t *testing.T) {
	tag, field := newTag(ClassUniversal, false, 4)
	a, _ := NewPrimitiveNode(tag, field, []byte{0x01, 0x02})
	b, _ := NewPrimitiveNode(tag, field, []byte{0x01, 0x02})
	c, _ := NewPrimitiveNode(tag, field, []byte{0x01, 0x03})

	if !a.Equal(b) {
		t.Error("expected a.Equal(b) to be true")
	}
	if a.Equal(c) {
		t.Error("expected a.Equal(c) to be false")
	}
}

func TestConstructedNodeAddLeavesReceiverUnchanged(t *testing.T) {
	tag, field := newTag(ClassUniversal, true, 16)
	first, err := NewConstructedNode(tag, field, []Node{NULLV})
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}

	originalEncoded := first.Encoded()

	second := first.Add(NULLV)

	if len(first.GetTemplate()) != 1 {
		t.Errorf("expected receiver to retain 1 child, got: %d", len(first.GetTemplate()))
	}
	if len(second.GetTemplate()) != 2 {
		t.Errorf("expected new node to have 2 children, got: %d", len(second.GetTemplate()))
	}
	if !bytes.Equal(first.Encoded(), originalEncoded) {
		t.Error("Add must not mutate the receiver's already-memoized encoding")
	}
}

func TestConstructedNodeGet(t *testing.T) {
	tag, field := newTag(ClassUniversal, true, 16)
	node, _ := NewConstructedNode(tag, field, []Node{NULLV, TRUE})

	found, ok := node.Get(TRUE.Tag())
	if !ok {
		t.Fatal("expected to find TRUE's tag")
	}
	if _, isBool := found.(Boolean); !isBool {
		t.Errorf("expected a Boolean, got: %T", found)
	}

	_, ok = node.Get(Tag(0x99))
	if ok {
		t.Error("expected not to find an unrelated tag")
	}
}

func TestConstructedNodeIsValid(t *testing.T) {
	tag, field := newTag(ClassUniversal, true, 16)

	valid, _ := NewConstructedNode(tag, field, []Node{NULLV})
	if !valid.IsValid() {
		t.Error("expected a constructed node of only valid children to be valid")
	}

	invalidChild, _ := NewPrimitiveNode(TagBoolean, []byte{0x01}, nil)
	invalidChild.findings = []string{findingValueFieldAbsent}
	invalid, _ := NewConstructedNode(tag, field, []Node{invalidChild})
	if invalid.IsValid() {
		t.Error("expected a constructed node with an invalid child to be invalid")
	}
}
