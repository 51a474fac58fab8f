package asn1ber

// lengthIndefinite is the sentinel value returned by readLength for the
// indefinite length-form (leading octet 0x80). It is only legal for
// constructed TLVs; callers reading a primitive TLV must reject it
// (ErrIndefiniteForbidden).
const lengthIndefinite = -1

// maxLength is the implementation-defined ceiling for an addressable
// length (§4.2, §6): "at least 2^31-1". This implementation uses
// math.MaxInt32 so behavior is identical on 32- and 64-bit platforms.
const maxLength = 0x7FFFFFFF

// readLength decodes one length-field from src per §4.2:
//
//   - short form: leading octet 0xxxxxxx, length = that octet (0-127).
//   - long form: leading octet 1xxxxxxx (xxxxxxx in [1,126]) gives the
//     count of subsequent big-endian length octets. Leading-zero padding
//     is tolerated on read (non-canonical but accepted).
//   - indefinite form: leading octet 0x80, reported via lengthIndefinite;
//     it is the caller's responsibility to reject this for primitive TLVs.
//
// readLength returns the decoded length and the raw length-field bytes.
func readLength(src Source) (int, []byte, error) {
	lead, err := src.ReadByte()
	if err != nil {
		return 0, nil, wrapReadErr(err, "unexpected end of input while reading length-field")
	}

	if lead&0x80 == 0 {
		return int(lead), []byte{lead}, nil
	}

	if lead == 0x80 {
		return lengthIndefinite, []byte{lead}, nil
	}

	n := int(lead & 0x7F)
	if n > 126 {
		return 0, nil, fatalf(ErrLengthOverflow, "long-form length-field reserves %d octets, which exceeds what this implementation addresses", n)
	}

	octets, err := src.ReadN(n)
	if err != nil {
		return 0, nil, wrapReadErr(err, "unexpected end of input while reading long-form length-field")
	}

	// Leading-zero padding is tolerated (§9 Open Question: accepted
	// silently on read), so a long octet count is not itself overflow;
	// only the actual numeric value matters. Stop accumulating once a
	// further shift would overflow uint64, so a long run of padding
	// zeroes followed eventually by a genuinely oversized value is still
	// reported as overflow rather than wrapping around silently.
	var value uint64
	var overflow bool
	for _, b := range octets {
		if value > uint64(1)<<56-1 {
			overflow = true
			continue
		}
		value = (value << 8) | uint64(b)
	}

	if overflow || value > maxLength {
		return 0, nil, fatalf(ErrLengthOverflow, "decoded length exceeds the implementation's addressable maximum %d", maxLength)
	}

	field := append([]byte{lead}, octets...)
	return int(value), field, nil
}

// encodeLength renders the canonical (shortest legal) length-field for l
// octets of value-field, per §4.2 "On write, the encoder chooses the
// shortest legal form".
func encodeLength(l int) []byte {
	if l < 0 {
		// Only ever reached for indefinite-length constructed nodes that
		// choose to re-emit indefinite form; encodeLength itself never
		// produces anything but definite-form output for l >= 0.
		return []byte{0x80}
	}
	if l <= 0x7F {
		return []byte{byte(l)}
	}

	var octets []byte
	for v := l; v > 0; v >>= 8 {
		octets = append([]byte{byte(v & 0xFF)}, octets...)
	}

	return append([]byte{0x80 | byte(len(octets))}, octets...)
}
