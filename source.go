package asn1ber

import (
	"io"
)

// Source is the uniform read interface NodeReader parses from (§4.2,
// §6 "Source surface"). Two concrete implementations are provided:
// BufferSource (random-access, non-blocking) and ReaderSource
// (streaming, may block on I/O). Both report exhaustion through the
// fatal sentinels ErrUnderflow / ErrEndOfStream respectively, wrapped by
// fatalf so the caller can still errors.Is against the sentinel.
type Source interface {
	// ReadByte reads and consumes exactly one byte.
	ReadByte() (byte, error)
	// ReadN reads and consumes exactly n bytes. It never returns a short
	// read: either all n bytes are produced, or an error is returned.
	ReadN(n int) ([]byte, error)
}

// BufferSource is a random-access Source over an in-memory buffer. A
// read past the buffer's limit fails with ErrUnderflow. Per §5 "Source
// aliasing", the buffer is advanced past the TLV as it is read, and
// callers may reuse the remaining bytes; BufferSource never aliases its
// backing array in values it hands back to its own internal storage
// (readers that need to retain bytes always copy).
type BufferSource struct {
	buf      []byte
	position int
}

// NewBufferSource wraps b as a random-access Source starting at
// position 0. b is not copied; the caller retains ownership of b and
// must not mutate it while the Source is in use.
func NewBufferSource(b []byte) *BufferSource {
	return &BufferSource{buf: b}
}

// Position returns the current read cursor.
func (s *BufferSource) Position() int { return s.position }

// Limit returns the number of bytes available in the underlying buffer.
func (s *BufferSource) Limit() int { return len(s.buf) }

// ReadByte implements Source.
func (s *BufferSource) ReadByte() (byte, error) {
	if s.position >= len(s.buf) {
		return 0, fatalf(ErrUnderflow, "read 1 byte at position %d, limit %d", s.position, len(s.buf))
	}
	b := s.buf[s.position]
	s.position++
	return b, nil
}

// ReadN implements Source.
func (s *BufferSource) ReadN(n int) ([]byte, error) {
	if n < 0 || s.position+n > len(s.buf) {
		return nil, fatalf(ErrUnderflow, "read %d bytes at position %d, limit %d", n, s.position, len(s.buf))
	}
	out := make([]byte, n)
	copy(out, s.buf[s.position:s.position+n])
	s.position += n
	return out, nil
}

// Remaining returns a copy of the bytes not yet consumed.
func (s *BufferSource) Remaining() []byte {
	out := make([]byte, len(s.buf)-s.position)
	copy(out, s.buf[s.position:])
	return out
}

// ReaderSource is a streaming Source wrapping an io.Reader. Premature
// closure or exhaustion of the underlying reader fails with
// ErrEndOfStream. Suspension (§5) is delegated entirely to the wrapped
// io.Reader: a blocking Read blocks ReadN/ReadByte, and closing the
// underlying stream causes the next read to fail.
type ReaderSource struct {
	r io.Reader
}

// NewReaderSource wraps r as a streaming Source.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// ReadByte implements Source.
func (s *ReaderSource) ReadByte() (byte, error) {
	b, err := s.ReadN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadN implements Source.
func (s *ReaderSource) ReadN(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(s.r, buf)
	if err != nil {
		return nil, fatalf(ErrEndOfStream, "expected %d bytes, got %d: %s", n, read, err.Error())
	}
	return buf, nil
}
