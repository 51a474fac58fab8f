package asn1ber

import (
	"strconv"

	"golang.org/x/exp/slices"
)

const (
	findingNotMutuallyExclusive = "tags not mutual exclusive"
	findingNotCorrectlySorted   = "tags not correctly sorted"
	findingDuplicateTags        = "some tags occur more than once"
	findingTagAlreadyPresent    = "tag already present"
)

// Set implements the ASN.1 SET type (tag 0x31, §4.14), whose children
// must observe DER's canonical (class, tag) ascending order.
type Set struct {
	ConstructedNode
}

// NewSet constructs a Set from children, sorting a deduplicated copy
// into canonical order (§4.14). It returns ErrInvalidArgument if two
// children share a tag.
func NewSet(children ...Node) (Set, error) {
	if hasDuplicateTags(children) {
		return Set{}, fatalf(ErrInvalidArgument, findingDuplicateTags)
	}

	sorted := Sort(children)
	tag, tagField := newTag(ClassUniversal, true, 17)
	node, _ := NewConstructedNode(tag, tagField, sorted)
	return Set{ConstructedNode: node}, nil
}

// Add returns a new Set with child inserted into canonical (class, tag)
// position, re-sorting rather than appending so the result still
// satisfies §4.14's ordering invariant. It returns ErrInvalidArgument if
// child's tag is already present.
func (s Set) Add(child Node) (Set, error) {
	if _, ok := s.Get(child.Tag()); ok {
		return Set{}, fatalf(ErrInvalidArgument, findingTagAlreadyPresent)
	}

	sorted := Sort(append(s.GetTemplate(), child))
	tag, tagField := newTag(ClassUniversal, true, 17)
	node, _ := NewConstructedNode(tag, tagField, sorted)
	return Set{ConstructedNode: node}, nil
}

// Comment implements Node.
func (s Set) Comment() string {
	return " # SET with " + strconv.Itoa(len(s.children)) + " elements"
}

func decodeSet(node ConstructedNode) Node {
	var findings []string

	if hasDuplicateTags(node.children) {
		findings = append(findings, findingNotMutuallyExclusive)
	}

	if !slices.IsSortedFunc(node.children, compareNodesByTag) {
		findings = append(findings, findingNotCorrectlySorted)
	}

	node.findings = findings
	return Set{ConstructedNode: node}
}

func hasDuplicateTags(children []Node) bool {
	seen := make(map[Tag]struct{}, len(children))
	for _, c := range children {
		if _, ok := seen[c.Tag()]; ok {
			return true
		}
		seen[c.Tag()] = struct{}{}
	}
	return false
}

// compareTags implements the §4.14 canonical ordering: ascending by
// (classOfTag, tag), where classOfTag compares by encoded value
// (UNIVERSAL < APPLICATION < CONTEXT_SPECIFIC < PRIVATE) and within a
// class the packed tag is compared numerically.
func compareTags(a, b Tag) int {
	if ca, cb := a.Class().order(), b.Class().order(); ca != cb {
		return ca - cb
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareNodesByTag(a, b Node) int {
	return compareTags(a.Tag(), b.Tag())
}

// Sort is the canonical ordering primitive (§4.14 "sort(collection)"): it
// preserves the first occurrence of each tag, drops later duplicates, and
// orders the survivors ascending by (class, tag).
func Sort(children []Node) []Node {
	seen := make(map[Tag]struct{}, len(children))
	deduped := make([]Node, 0, len(children))
	for _, c := range children {
		if _, ok := seen[c.Tag()]; ok {
			continue
		}
		seen[c.Tag()] = struct{}{}
		deduped = append(deduped, c)
	}

	slices.SortFunc(deduped, compareNodesByTag)
	return deduped
}
