package asn1ber

import (
	"fmt"

	"github.com/pkg/errors"
)

// packageTag prefixes every wrapped error so that a caller chaining
// multiple BER/DER libraries can tell where a failure originated.
const packageTag string = "skythen/asn1ber"

// Fatal error sentinels (§7 of the specification). Every fatal error
// constructed anywhere in this package wraps one of these with
// errors.Wrap, so callers can test the cause with errors.Is.
var (
	// ErrUnderflow is returned when a random-access source is read past its limit.
	ErrUnderflow = errors.New("source exhausted (underflow)")
	// ErrEndOfStream is returned when a streaming source closes prematurely.
	ErrEndOfStream = errors.New("stream closed before expected bytes were read")
	// ErrLengthOverflow is returned when a decoded length-field exceeds the
	// implementation's addressable maximum.
	ErrLengthOverflow = errors.New("length too big")
	// ErrTagTooLong is returned when a tag-field exceeds the 8-byte ceiling
	// this implementation can pack into a 64-bit tag.
	ErrTagTooLong = errors.New("tag too long for this implementation")
	// ErrIndefiniteForbidden is returned when the indefinite length-form
	// (0x80) is used for a primitive TLV.
	ErrIndefiniteForbidden = errors.New("indefinite form for length-field not allowed")
	// ErrConstructedForPrimitive is returned when a tag whose PC bit
	// indicates "constructed" is handed to a primitive-only constructor.
	ErrConstructedForPrimitive = errors.New("constructed encoding indicated for primitive type")
	// ErrInvalidArgument is returned by value-constructors whose
	// preconditions are violated (e.g. BitString(unusedBits, bytes), or a
	// Set built from children sharing a tag).
	ErrInvalidArgument = errors.New("invalid argument")
)

// fatalf wraps one of the sentinel errors above with a formatted,
// package-tagged message, mirroring the teacher's errors.Wrap(err,
// fmt.Sprintf(...)) convention.
func fatalf(sentinel error, format string, args ...any) error {
	return errors.Wrap(sentinel, fmt.Sprintf("%s: %s", packageTag, fmt.Sprintf(format, args...)))
}

// causeOf unwraps err down to the sentinel it was built from, so a
// Source's already-wrapped ErrUnderflow/ErrEndOfStream can be rewrapped
// with additional context (e.g. "while reading tag-field") without losing
// its identity for errors.Is.
func causeOf(err error) error {
	return errors.Cause(err)
}
