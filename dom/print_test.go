package dom

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleTree() Node {
	return NewElement("body", nil, []Node{
		NewElement("div", nil, []Node{
			NewText("Some text content"),
			NewComment("A comment"),
		}),
		NewElement("p", AttrMap{"id": "main", "class": "container"}, nil),
	})
}

func TestPrettyPrint(t *testing.T) {
	got := PrettyPrint(sampleTree())

	want := strings.Join([]string{
		"<body>",
		"  <div>",
		"    Some text content",
		"    <!-- A comment -->",
		"  </div>",
		"  <p>",
		"  </p>",
		"</body>",
		"",
	}, "\n")

	if got != want {
		t.Errorf("pretty print mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender(t *testing.T) {
	got := Render(sampleTree())

	want := `<body><div>Some text content<!--A comment--></div><p class="container" id="main"></p></body>`
	if got != want {
		t.Errorf("render mismatch:\ngot:  %s\nwant: %s", got, want)
	}
}

func TestRenderSortsAttributes(t *testing.T) {
	e := NewElement("a", AttrMap{"z": "1", "a": "2", "m": "3"}, nil)

	got := Render(e)
	want := `<a a="2" m="3" z="1"></a>`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestMarshalJSON(t *testing.T) {
	e := NewElement("p", AttrMap{"id": "main"}, []Node{NewText("Hi")})

	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Kind       string            `json:"kind"`
		TagName    string            `json:"tagName"`
		Attributes map[string]string `json:"attributes"`
		Children   []struct {
			Kind    string `json:"kind"`
			Content string `json:"content"`
		} `json:"children"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.Kind != "element" || decoded.TagName != "p" {
		t.Errorf("unexpected element encoding: %s", out)
	}
	if decoded.Attributes["id"] != "main" {
		t.Errorf("expected id attribute, got %s", out)
	}
	if len(decoded.Children) != 1 || decoded.Children[0].Kind != "text" || decoded.Children[0].Content != "Hi" {
		t.Errorf("unexpected children encoding: %s", out)
	}
}
