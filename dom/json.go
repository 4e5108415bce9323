package dom

import "encoding/json"

type jsonNode struct {
	Kind       string            `json:"kind"`
	Content    string            `json:"content,omitempty"`
	TagName    string            `json:"tagName,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Children   []*jsonNode       `json:"children,omitempty"`
}

func (t *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSON(t))
}

func (c *Comment) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSON(c))
}

func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSON(e))
}

func toJSON(n Node) *jsonNode {
	switch n := n.(type) {
	case *Text:
		return &jsonNode{Kind: "text", Content: n.Content}
	case *Comment:
		return &jsonNode{Kind: "comment", Content: n.Content}
	case *Element:
		jn := &jsonNode{
			Kind:       "element",
			TagName:    n.TagName,
			Attributes: n.Attributes,
		}
		if len(n.Children) > 0 {
			jn.Children = make([]*jsonNode, len(n.Children))
			for i, child := range n.Children {
				jn.Children[i] = toJSON(child)
			}
		}
		return jn
	}
	return nil
}
