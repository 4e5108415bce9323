package dom

import "testing"

func TestIDPresent(t *testing.T) {
	e := NewElement("div", AttrMap{"id": "main"}, nil)

	id, ok := e.ID()
	if !ok {
		t.Fatal("expected id to be present")
	}
	if id != "main" {
		t.Errorf("expected 'main', got %q", id)
	}
}

func TestIDAbsent(t *testing.T) {
	e := NewElement("div", nil, nil)

	if id, ok := e.ID(); ok {
		t.Errorf("expected no id, got %q", id)
	}
}

func TestClasses(t *testing.T) {
	e := NewElement("div", AttrMap{"class": "foo bar"}, nil)

	classes := e.Classes()
	if len(classes) != 2 {
		t.Fatalf("expected 2 classes, got %d: %v", len(classes), classes)
	}
	for _, want := range []string{"foo", "bar"} {
		if _, ok := classes[want]; !ok {
			t.Errorf("expected class %q in %v", want, classes)
		}
	}
}

func TestClassesAbsent(t *testing.T) {
	e := NewElement("div", nil, nil)

	if classes := e.Classes(); len(classes) != 0 {
		t.Errorf("expected empty set, got %v", classes)
	}
}

func TestClassesExtraSpaces(t *testing.T) {
	e := NewElement("div", AttrMap{"class": "  foo   bar "}, nil)

	classes := e.Classes()
	if len(classes) != 2 {
		t.Fatalf("expected 2 classes, got %d: %v", len(classes), classes)
	}
	if _, ok := classes[""]; ok {
		t.Error("expected no empty-string class token")
	}
}

func TestNewElementNilAttributes(t *testing.T) {
	e := NewElement("div", nil, nil)

	if e.Attributes == nil {
		t.Fatal("expected attributes to be normalized to an empty map")
	}
}

func TestNewTextHasNoChildren(t *testing.T) {
	n := NewText("hello")

	if n.Content != "hello" {
		t.Errorf("expected 'hello', got %q", n.Content)
	}
}
