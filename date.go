package asn1ber

import "time"

const findingWrongFormat = "wrong format"

// dateLayout is the exact ASCII layout of a DATE value-field: YYYYMMDD.
const dateLayout = "20060102"

// Date implements the DATE type (tag 0x1F1F, §4.12). Per §9's Design
// Notes, the raw two-octet tag-field 0x1F 0x1F is replicated exactly as
// pinned by the spec, rather than assuming a particular ASN.1 class for
// it; dispatch matches on the packed tag value alone (see dispatch.go).
type Date struct {
	PrimitiveNode
	when time.Time
	ok   bool
}

// NewDate constructs a Date directly from a calendar date.
func NewDate(when time.Time) Date {
	dateTag, dateTagField := rawDateTag()
	raw := []byte(when.Format(dateLayout))
	node, _ := NewPrimitiveNode(dateTag, dateTagField, raw)
	return Date{PrimitiveNode: node, when: when, ok: true}
}

// rawDateTag returns the packed tag and exact two-octet tag-field 0x1F
// 0x1F pinned by §4.12/§9, rather than one derived from newTag's general
// continuation encoding (which would also produce these same two bytes
// for tag-number 31, but the literal bytes are pinned directly here for
// clarity and to match the spec's own phrasing).
func rawDateTag() (Tag, []byte) {
	field := []byte{0x1F, 0x1F}
	return packTag(field), field
}

// When returns the decoded calendar date. It is only meaningful when
// IsValid reports true.
func (d Date) When() time.Time { return d.when }

// Comment implements Node (§4.12 "getComment").
func (d Date) Comment() string {
	if d.ok {
		return " # DATE := " + d.when.Format("2006-01-02")
	}
	return " # DATE, findings: " + findingWrongFormat + ", value-field as UTF-8: " + string(d.valueField)
}

func decodeDate(node PrimitiveNode) Node {
	when, ok := parseDate(node.valueField)

	var findings []string
	if !ok {
		findings = append(findings, findingWrongFormat)
	}

	node.findings = findings
	return Date{PrimitiveNode: node, when: when, ok: ok}
}

// parseDate validates that data is exactly 8 ASCII digits forming a real
// calendar date (§4.12). time.Parse rejects an out-of-range month or day
// (e.g. "20210231") with an error; the parsed value is additionally
// reformatted and compared back against the input.
func parseDate(data []byte) (time.Time, bool) {
	if len(data) != 8 {
		return time.Time{}, false
	}
	for _, b := range data {
		if b < '0' || b > '9' {
			return time.Time{}, false
		}
	}

	s := string(data)
	when, err := time.Parse(dateLayout, s)
	if err != nil || when.Format(dateLayout) != s {
		return time.Time{}, false
	}
	return when, true
}
