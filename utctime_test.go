package asn1ber

import (
	"testing"
	"time"
)

func TestNewUtcTimeRoundTrip(t *testing.T) {
	when := time.Date(2026, time.July, 31, 12, 30, 0, 0, time.UTC)
	u := NewUtcTime(when)

	parsed, err := ParseBytes(u.Encoded())
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}
	got, ok := parsed.(UtcTime)
	if !ok {
		t.Fatalf("expected UtcTime, got: %T", parsed)
	}
	if !got.When().Equal(when) {
		t.Errorf("expected: %s, got: %s", when, got.When())
	}
}

func TestDecodeUtcTimeWithOffset(t *testing.T) {
	node, err := ParseBytes([]byte{0x17, 0x0F, '2', '6', '0', '7', '3', '1', '1', '2', '3', '0', '+', '0', '1', '0', '0'})
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}
	u := node.(UtcTime)
	if !u.IsValid() {
		t.Error("expected a UTCTime with a numeric offset to be valid")
	}

	want := time.Date(2026, time.July, 31, 11, 30, 0, 0, time.UTC)
	if !u.When().Equal(want) {
		t.Errorf("expected: %s, got: %s", want, u.When())
	}
}

func TestDecodeUtcTimeYearPivot(t *testing.T) {
	node, err := ParseBytes([]byte{0x17, 0x0B, '4', '9', '0', '1', '0', '1', '0', '0', '0', '0', 'Z'})
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}
	u := node.(UtcTime)
	if u.When().Year() != 2049 {
		t.Errorf("expected year pivot to 2049, got: %d", u.When().Year())
	}
}

func TestDecodeUtcTimeWrongFormat(t *testing.T) {
	node, err := ParseBytes([]byte{0x17, 0x03, 'x', 'y', 'z'})
	if err != nil {
		t.Fatalf("expected: no error, got: %v", err)
	}
	u := node.(UtcTime)
	if u.IsValid() {
		t.Error("expected a malformed value-field to be invalid")
	}
}
