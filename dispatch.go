package asn1ber

// Well-known UNIVERSAL tags from the §4.3 dispatch table. Each packs to
// its familiar single-octet BER tag value since all of them are
// UNIVERSAL-class tag-numbers below 31 (so the short tag-field form
// applies); TagDate is the one two-octet exception (§4.12, §9).
const (
	TagEndOfContents     Tag = 0x00
	TagBoolean           Tag = 0x01
	TagInteger           Tag = 0x02
	TagBitString         Tag = 0x03
	TagOctetString       Tag = 0x04
	TagNull              Tag = 0x05
	TagObjectIdentifier  Tag = 0x06
	TagUtf8String        Tag = 0x0C
	TagSequence          Tag = 0x30
	TagSet               Tag = 0x31
	TagPrintableString   Tag = 0x13
	TagTeletexString     Tag = 0x14
	TagIa5String         Tag = 0x16
	TagUtcTime           Tag = 0x17
	TagDate              Tag = 0x1F1F
)

// typeifyPrimitive re-interprets a generic PrimitiveNode into its typed
// variant when its tag matches a primitive row of the §4.3 dispatch
// table. Tags with no match (including any non-UNIVERSAL class tag, and
// any UNIVERSAL tag outside the table) are returned unchanged: the
// generic PrimitiveNode already satisfies Node.
func typeifyPrimitive(tag Tag, node PrimitiveNode) Node {
	switch tag {
	case TagEndOfContents:
		return decodeEndOfContents(node)
	case TagBoolean:
		return decodeBoolean(node)
	case TagInteger:
		return decodeInteger(node)
	case TagBitString:
		return decodeBitString(node)
	case TagOctetString:
		return decodeOctetString(node)
	case TagNull:
		return decodeNull(node)
	case TagObjectIdentifier:
		return decodeObjectIdentifier(node)
	case TagUtf8String:
		return decodeUtf8String(node)
	case TagPrintableString:
		return decodePrintableString(node)
	case TagTeletexString:
		return decodeTeletexString(node)
	case TagIa5String:
		return decodeIa5String(node)
	case TagUtcTime:
		return decodeUtcTime(node)
	case TagDate:
		return decodeDate(node)
	default:
		return node
	}
}

// typeifyConstructed re-interprets a generic ConstructedNode into its
// typed variant (Sequence or Set), or returns it unchanged when the tag
// is not in the dispatch table.
func typeifyConstructed(tag Tag, node ConstructedNode) Node {
	switch tag {
	case TagSequence:
		return decodeSequence(node)
	case TagSet:
		return decodeSet(node)
	default:
		return node
	}
}

// isPrimitiveOnlyUniversalTag reports whether tag-number is one of the
// §4.3 dispatch table's primitive-only UNIVERSAL rows, independent of
// whichever PC bit the tag actually carries: EndOfContents, Boolean,
// Integer, BitString, OctetString, Null, ObjectIdentifier, Utf8String,
// PrintableString, TeletexString, Ia5String, UtcTime, Date (tag-number
// 31, shared with DATE's two-octet tag-field). Used by the reader to
// raise ErrConstructedForPrimitive (§4.15, §7) when such a tag-number
// arrives on the wire with the PC bit set, rather than silently falling
// back to a generic, valid-looking ConstructedNode.
func isPrimitiveOnlyUniversalTag(tag Tag) bool {
	if tag.Class() != ClassUniversal {
		return false
	}
	switch tag.Number() {
	case 0, 1, 2, 3, 4, 5, 6, 12, 19, 20, 22, 23, 31:
		return true
	default:
		return false
	}
}
