package asn1ber

import (
	"bytes"
	"testing"
)

func TestNewOctetString(t *testing.T) {
	o := NewOctetString([]byte{0x47, 0x14})
	if !bytes.Equal(o.GetDecoded(), []byte{0x47, 0x14}) {
		t.Errorf("unexpected decoded content: %v", o.GetDecoded())
	}
	if got := o.Comment(); got != " # OCTETSTRING" {
		t.Errorf("unexpected comment: %q", got)
	}
}

func TestOctetStringNestedChildren(t *testing.T) {
	// content is itself one valid TLV: NULL
	o := NewOctetString([]byte{0x05, 0x00})

	children, ok := o.NestedChildren()
	if !ok {
		t.Fatal("expected content to parse as nested TLVs")
	}
	if len(children) != 1 {
		t.Fatalf("expected 1 nested child, got: %d", len(children))
	}
}

func TestOctetStringNestedChildrenNotTLV(t *testing.T) {
	o := NewOctetString([]byte{0x01, 0x02, 0x03})

	_, ok := o.NestedChildren()
	if ok {
		t.Error("expected content that is not valid TLV framing to report ok=false")
	}
}
