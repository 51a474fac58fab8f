package asn1ber

import (
	"strconv"
	"time"
)

// UtcTime implements the ASN.1 UTCTime type (tag 23). Not covered by a
// semantic subsection in spec.md §4 (only named in the §4.3 dispatch
// table); the supplemental behavior added here, grounded in the same
// "wrong format" finding DATE uses (§4.12), parses the standard
// YYMMDDhhmm[ss](Z|+hhmm|-hhmm) value-field.
type UtcTime struct {
	PrimitiveNode
	when time.Time
	ok   bool
}

// NewUtcTime constructs a UtcTime directly from a calendar time. The Z
// (UTC) form is always emitted.
func NewUtcTime(when time.Time) UtcTime {
	tag, tagField := newTag(ClassUniversal, false, 23)
	raw := []byte(when.UTC().Format("060102150405") + "Z")
	node, _ := NewPrimitiveNode(tag, tagField, raw)
	return UtcTime{PrimitiveNode: node, when: when.UTC(), ok: true}
}

// When returns the decoded time. Only meaningful when IsValid is true.
func (u UtcTime) When() time.Time { return u.when }

// Comment implements Node.
func (u UtcTime) Comment() string {
	if u.ok {
		return " # UTCTime := " + u.when.Format(time.RFC3339)
	}
	return " # UTCTime, findings: " + findingWrongFormat + ", value-field as UTF-8: " + string(u.valueField)
}

func decodeUtcTime(node PrimitiveNode) Node {
	when, ok := parseUtcTime(node.valueField)

	var findings []string
	if !ok {
		findings = append(findings, findingWrongFormat)
	}

	node.findings = findings
	return UtcTime{PrimitiveNode: node, when: when, ok: ok}
}

// parseUtcTime validates and decodes a UTCTime value-field:
// YYMMDDhhmm[ss](Z|+hhmm|-hhmm). The parsed fields are round-tripped
// through time.Date to catch out-of-range components that time.Date
// would otherwise silently normalize.
func parseUtcTime(data []byte) (time.Time, bool) {
	s := string(data)
	if len(s) < 11 {
		return time.Time{}, false
	}

	datePart := s[:10]
	if !allDigits(datePart) {
		return time.Time{}, false
	}
	rest := s[10:]

	seconds := "00"
	if len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
		if len(rest) < 2 || !allDigits(rest[:2]) {
			return time.Time{}, false
		}
		seconds = rest[:2]
		rest = rest[2:]
	}

	var zoneOffset time.Duration
	switch {
	case rest == "Z":
	case len(rest) == 5 && (rest[0] == '+' || rest[0] == '-') && allDigits(rest[1:]):
		hh := digitsToInt(rest[1:3])
		mm := digitsToInt(rest[3:5])
		offset := time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute
		if rest[0] == '-' {
			offset = -offset
		}
		zoneOffset = offset
	default:
		return time.Time{}, false
	}

	yy := digitsToInt(datePart[0:2])
	month := digitsToInt(datePart[2:4])
	day := digitsToInt(datePart[4:6])
	hour := digitsToInt(datePart[6:8])
	minute := digitsToInt(datePart[8:10])
	second := digitsToInt(seconds)

	year := 1900 + yy
	if yy < 50 {
		year = 2000 + yy
	}

	local := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	if local.Year() != year || int(local.Month()) != month || local.Day() != day ||
		local.Hour() != hour || local.Minute() != minute || local.Second() != second {
		return time.Time{}, false
	}

	return local.Add(-zoneOffset), true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, b := range []byte(s) {
		if b < '0' || b > '9' {
			return false
		}
	}
	return true
}

func digitsToInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
