package asn1ber

import (
	"bytes"
	"hash/fnv"
	"io"
	"sync"
)

// Node is the capability set shared by every TLV node, whether a generic
// PrimitiveNode/ConstructedNode returned for an unrecognized tag, or one
// of the typed variants in §4.6-§4.14. This is the "tagged variant" sum
// type called for by §9 Design Notes, expressed as a small interface
// rather than a closed enum: each concrete Go type is one arm.
type Node interface {
	// Tag returns the packed tag identity (§3).
	Tag() Tag
	// TagField returns a defensive copy of the raw tag-field octets.
	TagField() []byte
	// LengthOfValueField returns the length of the value-field: the byte
	// count for a primitive node, or the summed encoded length of all
	// children for a constructed node.
	LengthOfValueField() int
	// LengthField returns a defensive copy of the canonical length-field
	// octets (lazily derived from LengthOfValueField, §3).
	LengthField() []byte
	// Findings returns a defensive copy of the node's diagnostic findings.
	// An empty, non-nil slice is returned when there are none.
	Findings() []string
	// IsValid reports whether Findings is empty and, for a constructed
	// node, every child is also valid (§3).
	IsValid() bool
	// Encoded returns the canonical TLV encoding of the node.
	Encoded() []byte
	// EncodedTo writes the canonical TLV encoding to w, returning the
	// number of bytes written.
	EncodedTo(w io.Writer) (int, error)
	// Comment returns the per-type human-readable annotation used by
	// toStringTree (§4.6-§4.14 "getComment").
	Comment() string
}

// cache holds the memoized, lazily-computed fields of a node (§3
// "cachedHash, cachedEncoding"). It is allocated once per logical node
// and shared (via pointer) across any value-copies of the owning struct,
// so sync.Once's compute-once semantics are never violated by Go's
// pass-by-value struct semantics (§5 "safe-publication discipline").
type cache struct {
	encodeOnce sync.Once
	encoded    []byte

	hashOnce sync.Once
	hashVal  uint64
}

// base is the shared payload embedded by PrimitiveNode and ConstructedNode
// (§9 "two shared record structures for primitive and constructed
// payloads"). It is never exported directly; callers interact with it
// through the Node interface.
type base struct {
	tag      Tag
	tagField []byte
	findings []string
	c        *cache
}

func newBase(tag Tag, tagField []byte, findings []string) base {
	return base{
		tag:      tag,
		tagField: cloneBytes(tagField),
		findings: cloneStrings(findings),
		c:        &cache{},
	}
}

func (b base) Tag() Tag { return b.tag }

func (b base) TagField() []byte { return cloneBytes(b.tagField) }

func (b base) Findings() []string {
	if len(b.findings) == 0 {
		return []string{}
	}
	return cloneStrings(b.findings)
}

// memoizedEncode computes and caches the full TLV encoding using compute,
// which is supplied by PrimitiveNode/ConstructedNode since only they know
// how to render their own value-field. Every call returns a fresh
// defensive copy (§3 "defensive copying").
func (b base) memoizedEncode(compute func() []byte) []byte {
	b.c.encodeOnce.Do(func() {
		b.c.encoded = compute()
	})
	return cloneBytes(b.c.encoded)
}

// memoizedHash computes and caches the FNV-1a hash of valueBytes combined
// with the tag halves per the formula in §4.4: ((msInt*31)+lsInt)*31 +
// arrayHash(valueField). Constructed nodes apply the same formula to the
// concatenation of their children's encodings, since that concatenation
// plays the role of "valueField" for a constructed node (§3).
func (b base) memoizedHash(valueBytes func() []byte) uint64 {
	b.c.hashOnce.Do(func() {
		ms := uint32(uint64(b.tag) >> 32)
		ls := uint32(uint64(b.tag))
		b.c.hashVal = (uint64(ms)*31+uint64(ls))*31 + arrayHash(valueBytes())
	})
	return b.c.hashVal
}

func arrayHash(b []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}

func (b base) encodedTo(w io.Writer, encoded []byte) (int, error) {
	return w.Write(encoded)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// PrimitiveNode is the generic arm for a primitive TLV whose tag is not
// one of the recognized UNIVERSAL types (§4.4), or is used directly as
// the shared payload embedded by every primitive typed variant.
type PrimitiveNode struct {
	base
	valueField []byte
}

// NewPrimitiveNode builds a generic PrimitiveNode directly from a tag and
// value-field, bypassing parsing. It returns ErrConstructedForPrimitive
// if tag's PC bit indicates a constructed encoding (§4.4).
func NewPrimitiveNode(tag Tag, tagField []byte, value []byte) (PrimitiveNode, error) {
	if tag.IsConstructed() {
		return PrimitiveNode{}, fatalf(ErrConstructedForPrimitive, "tag %s", tag)
	}
	return PrimitiveNode{base: newBase(tag, tagField, nil), valueField: cloneBytes(value)}, nil
}

// ValueField returns a defensive copy of the raw value-field bytes.
func (n PrimitiveNode) ValueField() []byte { return cloneBytes(n.valueField) }

// LengthOfValueField implements Node.
func (n PrimitiveNode) LengthOfValueField() int { return len(n.valueField) }

// LengthField implements Node.
func (n PrimitiveNode) LengthField() []byte { return encodeLength(len(n.valueField)) }

// IsValid implements Node.
func (n PrimitiveNode) IsValid() bool { return len(n.findings) == 0 }

// Encoded implements Node.
func (n PrimitiveNode) Encoded() []byte {
	return n.memoizedEncode(func() []byte {
		return n.render()
	})
}

func (n PrimitiveNode) render() []byte {
	lengthField := encodeLength(len(n.valueField))
	out := make([]byte, 0, len(n.tagField)+len(lengthField)+len(n.valueField))
	out = append(out, n.tagField...)
	out = append(out, lengthField...)
	out = append(out, n.valueField...)
	return out
}

// EncodedTo implements Node.
func (n PrimitiveNode) EncodedTo(w io.Writer) (int, error) {
	return n.encodedTo(w, n.Encoded())
}

// Comment implements Node with a generic, tag-only annotation; typed
// variants override this with their own getComment semantics.
func (n PrimitiveNode) Comment() string {
	return genericComment(n.tag)
}

// Hash returns the node's memoized hash per the §4.4 formula.
func (n PrimitiveNode) Hash() uint64 {
	return n.memoizedHash(func() []byte { return n.valueField })
}

// Equal reports whether n and other are the same tag with byte-equal
// value-fields (§4.4).
func (n PrimitiveNode) Equal(other PrimitiveNode) bool {
	return n.tag == other.tag && bytes.Equal(n.valueField, other.valueField)
}

func genericComment(tag Tag) string {
	return " # " + tag.String()
}

// ConstructedNode is the generic arm for a constructed TLV whose tag is
// not one of the recognized UNIVERSAL container types (§4.5), or is used
// directly as the shared payload embedded by Sequence/Set.
type ConstructedNode struct {
	base
	children []Node
}

// NewConstructedNode builds a generic ConstructedNode from a tag and an
// ordered list of children. It returns ErrConstructedForPrimitive if
// tag's PC bit does not indicate a constructed encoding, for symmetry
// with NewPrimitiveNode (the name refers to the mismatch direction, not
// the specific tag kind).
func NewConstructedNode(tag Tag, tagField []byte, children []Node) (ConstructedNode, error) {
	if !tag.IsConstructed() {
		return ConstructedNode{}, fatalf(ErrConstructedForPrimitive, "tag %s is not constructed", tag)
	}
	return ConstructedNode{base: newBase(tag, tagField, nil), children: cloneNodes(children)}, nil
}

func cloneNodes(children []Node) []Node {
	if children == nil {
		return nil
	}
	out := make([]Node, len(children))
	copy(out, children)
	return out
}

// LengthOfValueField implements Node: the sum of each child's total
// encoded length (§3).
func (n ConstructedNode) LengthOfValueField() int {
	total := 0
	for _, c := range n.children {
		total += len(c.Encoded())
	}
	return total
}

// LengthField implements Node.
func (n ConstructedNode) LengthField() []byte {
	return encodeLength(n.LengthOfValueField())
}

// IsValid implements Node: findings empty AND every child valid (§3).
func (n ConstructedNode) IsValid() bool {
	if len(n.findings) != 0 {
		return false
	}
	for _, c := range n.children {
		if !c.IsValid() {
			return false
		}
	}
	return true
}

// GetTemplate returns a read-only view of the child list (§4.5).
func (n ConstructedNode) GetTemplate() []Node {
	out := make([]Node, len(n.children))
	copy(out, n.children)
	return out
}

// Get returns the first child whose tag matches, if any (§4.5).
func (n ConstructedNode) Get(tag Tag) (Node, bool) {
	for _, c := range n.children {
		if c.Tag() == tag {
			return c, true
		}
	}
	return nil, false
}

// Add returns a new ConstructedNode whose children are the receiver's
// children plus child, appended in order (§4.5). The receiver is left
// unchanged, including its already-memoized encoding (§8 property 5).
func (n ConstructedNode) Add(child Node) ConstructedNode {
	next := make([]Node, len(n.children)+1)
	copy(next, n.children)
	next[len(n.children)] = child

	return ConstructedNode{
		base:     newBase(n.tag, n.tagField, n.findings),
		children: next,
	}
}

func (n ConstructedNode) valueBytes() []byte {
	var buf bytes.Buffer
	for _, c := range n.children {
		buf.Write(c.Encoded())
	}
	return buf.Bytes()
}

// Encoded implements Node.
func (n ConstructedNode) Encoded() []byte {
	return n.memoizedEncode(func() []byte {
		value := n.valueBytes()
		lengthField := encodeLength(len(value))
		out := make([]byte, 0, len(n.tagField)+len(lengthField)+len(value))
		out = append(out, n.tagField...)
		out = append(out, lengthField...)
		out = append(out, value...)
		return out
	})
}

// EncodedTo implements Node.
func (n ConstructedNode) EncodedTo(w io.Writer) (int, error) {
	return n.encodedTo(w, n.Encoded())
}

// Comment implements Node with a generic, tag-only annotation;
// Sequence/Set override this with their own wording.
func (n ConstructedNode) Comment() string {
	return genericComment(n.tag)
}

// Hash returns the node's memoized hash, applying the §4.4 formula to the
// concatenation of the node's children's encodings.
func (n ConstructedNode) Hash() uint64 {
	return n.memoizedHash(n.valueBytes)
}
