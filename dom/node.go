// Package dom defines the node tree produced by parsing markup documents.
package dom

import "strings"

// AttrMap maps attribute names to their values. Each map is owned by
// the element it was created for.
type AttrMap map[string]string

// Node is the interface implemented by all tree nodes.
type Node interface {
	node()
}

// Text holds literal character data. It never has children.
type Text struct {
	Content string
}

func (*Text) node() {}

// Comment holds the interior text of a comment. It never has children.
type Comment struct {
	Content string
}

func (*Comment) node() {}

// Element is a named node with attributes and an ordered list of children.
type Element struct {
	TagName    string
	Attributes AttrMap
	Children   []Node
}

func (*Element) node() {}

// NewText returns a text node with the given content.
func NewText(content string) *Text {
	return &Text{Content: content}
}

// NewComment returns a comment node with the given content.
func NewComment(content string) *Comment {
	return &Comment{Content: content}
}

// NewElement returns an element node. The tag name is not validated
// here; the parser is responsible for producing well-formed names.
// A nil attribute map is normalized to an empty one.
func NewElement(tagName string, attrs AttrMap, children []Node) *Element {
	if attrs == nil {
		attrs = AttrMap{}
	}
	return &Element{TagName: tagName, Attributes: attrs, Children: children}
}

// ID returns the value of the element's "id" attribute, and whether it
// is present.
func (e *Element) ID() (string, bool) {
	id, ok := e.Attributes["id"]
	return id, ok
}

// Classes returns the set of class tokens from the element's "class"
// attribute. Repeated, leading, and trailing spaces do not produce
// empty tokens. An absent attribute yields an empty set.
func (e *Element) Classes() map[string]struct{} {
	classes := make(map[string]struct{})
	for _, class := range strings.Split(e.Attributes["class"], " ") {
		if class != "" {
			classes[class] = struct{}{}
		}
	}
	return classes
}
