package asn1ber

import (
	"errors"
	"testing"
)

func TestNewSetSortsCanonically(t *testing.T) {
	privateTag, privateField := newTag(ClassPrivate, false, 1)
	private, _ := NewPrimitiveNode(privateTag, privateField, nil)

	s, err := NewSet(private, TRUE, NULLV)
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}

	children := s.GetTemplate()
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got: %d", len(children))
	}
	// UNIVERSAL (Boolean tag 1, Null tag 5) sort before PRIVATE.
	if children[0].Tag() != TRUE.Tag() {
		t.Errorf("expected Boolean first, got tag %s", children[0].Tag())
	}
	if children[1].Tag() != NULLV.Tag() {
		t.Errorf("expected Null second, got tag %s", children[1].Tag())
	}
	if children[2].Tag() != private.Tag() {
		t.Errorf("expected PRIVATE tag last, got tag %s", children[2].Tag())
	}
}

func TestNewSetRejectsDuplicateTags(t *testing.T) {
	_, err := NewSet(TRUE, TRUE)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected: ErrInvalidArgument, got: %v", err)
	}
}

func TestSetAddRejectsExistingTag(t *testing.T) {
	s, _ := NewSet(TRUE)
	_, err := s.Add(FALSE)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected: ErrInvalidArgument, got: %v", err)
	}
}

func TestSetAdd(t *testing.T) {
	s, _ := NewSet(TRUE)
	s2, err := s.Add(NULLV)
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}
	if len(s2.GetTemplate()) != 2 {
		t.Errorf("expected 2 children, got: %d", len(s2.GetTemplate()))
	}
}

func TestSetAddReSortsCanonically(t *testing.T) {
	// NULL (tag 5) added to a Set already containing BOOLEAN (tag 1):
	// appending would leave [TRUE, NULL], already sorted by luck, so add
	// in the order that would expose a blind-append bug instead.
	s, _ := NewSet(NULLV)
	s2, err := s.Add(TRUE)
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}

	children := s2.GetTemplate()
	if len(children) != 2 || children[0].Tag() != TRUE.Tag() || children[1].Tag() != NULLV.Tag() {
		t.Fatalf("expected [BOOLEAN, NULL] canonical order, got: %v, %v", children[0].Tag(), children[1].Tag())
	}
	if !s2.IsValid() {
		t.Error("expected a canonically re-sorted Set to be valid")
	}
}

func TestSetAddRoundTrips(t *testing.T) {
	s, _ := NewSet(NULLV)
	s2, err := s.Add(TRUE)
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}

	parsed, err := ParseBytes(s2.Encoded())
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}
	if !parsed.(Set).IsValid() {
		t.Error("expected parse(encode(Set.Add(...))) to remain valid (round-trip property)")
	}
}

func TestDecodeSetFindsNotSorted(t *testing.T) {
	// NULL (tag 5) before BOOLEAN (tag 1) violates canonical order.
	data := []byte{0x31, 0x05, 0x05, 0x00, 0x01, 0x01, 0xFF}
	node, err := ParseBytes(data)
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}
	set := node.(Set)
	if set.IsValid() {
		t.Error("expected an out-of-order SET to be invalid")
	}
}

func TestSortDedupesFirstOccurrenceWins(t *testing.T) {
	first, _ := NewPrimitiveNode(TagBoolean, []byte{0x01}, []byte{0xFF})
	second, _ := NewPrimitiveNode(TagBoolean, []byte{0x01}, []byte{0x00})

	sorted := Sort([]Node{first, second})
	if len(sorted) != 1 {
		t.Fatalf("expected deduplication to 1 element, got: %d", len(sorted))
	}
	if !sorted[0].(PrimitiveNode).Equal(first) {
		t.Error("expected the first occurrence to win")
	}
}
