package asn1ber

// EndOfContents implements the end-of-contents marker (tag 0, §4.10),
// used as the terminator of indefinite-length constructed encodings.
type EndOfContents struct {
	PrimitiveNode
}

// EOC is the stand-alone EndOfContents singleton (§4.10).
var EOC EndOfContents

// Comment implements Node (§4.10 "getComment").
func (EndOfContents) Comment() string { return " # EndOfContent" }

// Null implements the ASN.1 NULL type (tag 5, §4.10). Its value-field is
// always empty.
type Null struct {
	PrimitiveNode
}

// NULLV is the Null singleton.
var NULLV Null

func init() {
	eocTag, eocTagField := newTag(ClassUniversal, false, 0)
	eocNode, _ := NewPrimitiveNode(eocTag, eocTagField, nil)
	EOC = EndOfContents{PrimitiveNode: eocNode}

	nullTag, nullTagField := newTag(ClassUniversal, false, 5)
	nullNode, _ := NewPrimitiveNode(nullTag, nullTagField, nil)
	NULLV = Null{PrimitiveNode: nullNode}
}

// Comment implements Node (§4.10 "getComment").
func (Null) Comment() string { return " # NULL" }

func decodeNull(node PrimitiveNode) Node {
	return Null{PrimitiveNode: node}
}
