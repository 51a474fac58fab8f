package asn1ber

import (
	"encoding/hex"
	"strings"
)

// defaultTreeDelimiter is the per-depth indentation band used by
// ToStringTree, matching the S6 scenario's literal output ("|  ").
const defaultTreeDelimiter = "|  "

// ToStringTree renders node and (for a constructed node) its descendants
// as a hierarchical, human-readable tree (§6 "toStringTree(node) ->
// String"), one line per node: hex tag-field, hex length-field, hex
// value-field (primitives only, omitted when empty), and the node's
// Comment(). Each depth level is prefixed with the default delimiter.
func ToStringTree(node Node) string {
	return ToStringTreeWithDelimiter(node, defaultTreeDelimiter)
}

// ToStringTreeWithDelimiter is ToStringTree with a caller-chosen
// per-depth indentation band.
func ToStringTreeWithDelimiter(node Node, delimiter string) string {
	var lines []string
	renderTreeNode(node, 0, delimiter, &lines)
	return strings.Join(lines, "\n")
}

type hasTemplate interface {
	GetTemplate() []Node
}

type hasValueField interface {
	ValueField() []byte
}

func renderTreeNode(node Node, depth int, delimiter string, lines *[]string) {
	prefix := strings.Repeat(delimiter, depth)
	header := strings.ToUpper(hex.EncodeToString(node.TagField())) + " " + strings.ToUpper(hex.EncodeToString(node.LengthField()))

	if c, ok := node.(hasTemplate); ok {
		*lines = append(*lines, prefix+header+node.Comment())
		for _, child := range c.GetTemplate() {
			renderTreeNode(child, depth+1, delimiter, lines)
		}
		return
	}

	line := prefix + header
	if p, ok := node.(hasValueField); ok {
		if v := p.ValueField(); len(v) > 0 {
			line += " " + strings.ToUpper(hex.EncodeToString(v))
		}
	}
	line += node.Comment()
	*lines = append(*lines, line)

	if octets, ok := node.(OctetString); ok {
		if children, nested := octets.NestedChildren(); nested {
			for _, child := range children {
				renderTreeNode(child, depth+1, delimiter, lines)
			}
		}
	}
}
