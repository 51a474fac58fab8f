package asn1ber

import "testing"

func TestEndOfContentsSingleton(t *testing.T) {
	if EOC.Comment() != " # EndOfContent" {
		t.Errorf("unexpected comment: %q", EOC.Comment())
	}
	if EOC.LengthOfValueField() != 0 {
		t.Errorf("expected empty value-field, got length %d", EOC.LengthOfValueField())
	}
}

func TestNullSingleton(t *testing.T) {
	if NULLV.Comment() != " # NULL" {
		t.Errorf("unexpected comment: %q", NULLV.Comment())
	}
	if !NULLV.IsValid() {
		t.Error("expected NULLV to be valid")
	}
}

func TestDecodeNull(t *testing.T) {
	node, err := ParseBytes([]byte{0x05, 0x00})
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}
	if _, ok := node.(Null); !ok {
		t.Fatalf("expected Null, got: %T", node)
	}
}
