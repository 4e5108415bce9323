package dom

import (
	"sort"
	"strings"
)

// PrettyPrint renders the tree with one line per node, indented two
// spaces per nesting level. It is a diagnostic aid; the exact layout is
// not a stable contract.
func PrettyPrint(n Node) string {
	var b strings.Builder
	prettyPrint(&b, n, 0)
	return b.String()
}

func prettyPrint(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := n.(type) {
	case *Text:
		b.WriteString(indent)
		b.WriteString(n.Content)
		b.WriteByte('\n')
	case *Comment:
		b.WriteString(indent)
		b.WriteString("<!-- ")
		b.WriteString(n.Content)
		b.WriteString(" -->\n")
	case *Element:
		b.WriteString(indent)
		b.WriteByte('<')
		b.WriteString(n.TagName)
		b.WriteString(">\n")
		for _, child := range n.Children {
			prettyPrint(b, child, depth+1)
		}
		b.WriteString(indent)
		b.WriteString("</")
		b.WriteString(n.TagName)
		b.WriteString(">\n")
	}
}

// Render serializes the tree back to markup. Attributes are emitted in
// sorted name order with double-quoted values, so equal trees render
// identically. Content containing markup delimiters is not escaped.
func Render(n Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Text:
		b.WriteString(n.Content)
	case *Comment:
		b.WriteString("<!--")
		b.WriteString(n.Content)
		b.WriteString("-->")
	case *Element:
		b.WriteByte('<')
		b.WriteString(n.TagName)
		names := make([]string, 0, len(n.Attributes))
		for name := range n.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteByte(' ')
			b.WriteString(name)
			b.WriteString(`="`)
			b.WriteString(n.Attributes[name])
			b.WriteByte('"')
		}
		b.WriteByte('>')
		for _, child := range n.Children {
			render(b, child)
		}
		b.WriteString("</")
		b.WriteString(n.TagName)
		b.WriteByte('>')
	}
}
