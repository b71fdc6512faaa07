package cssinline

import (
	"errors"
	"testing"
)

func TestParseDeclarations(t *testing.T) {
	testdata := []struct {
		text string
		want Declarations
	}{
		{"", Declarations{}},
		{"color: red;", Declarations{"color": "red"}},
		{" color : red ; border:none", Declarations{"color": "red", "border": "none"}},
		{"color: red; color: blue", Declarations{"color": "blue"}},
		{"background: url(http://example.com/a.png)", Declarations{"background": "url(http://example.com/a.png)"}},
		{"a: b;; ;", Declarations{"a": "b"}},
	}
	for _, td := range testdata {
		got, err := ParseDeclarations(td.text)
		if err != nil {
			t.Errorf("ParseDeclarations(%q): %v", td.text, err)
			continue
		}
		if len(got) != len(td.want) {
			t.Errorf("ParseDeclarations(%q) = %v, want %v", td.text, got, td.want)
			continue
		}
		for k, v := range td.want {
			if got[k] != v {
				t.Errorf("ParseDeclarations(%q)[%q] = %q, want %q", td.text, k, got[k], v)
			}
		}
	}
}

func TestParseDeclarationsInvalid(t *testing.T) {
	testdata := []struct {
		text string
		want string
	}{
		{"color: red; bold", "bold"},
		{"color:", "color:"},
		{"margin: 0; color:  ; border: none", "color:"},
	}
	for _, td := range testdata {
		_, err := ParseDeclarations(td.text)
		var de *DeclarationError
		if !errors.As(err, &de) {
			t.Errorf("ParseDeclarations(%q) err = %v, want *DeclarationError", td.text, err)
			continue
		}
		if got := de.Declaration; got != td.want {
			t.Errorf("de.Declaration = %q, want %q", got, td.want)
		}
	}
}

func TestMerge(t *testing.T) {
	rule := Declarations{"color": "red", "border": "none"}
	existing := Declarations{"color": "green", "margin": "0"}
	merged := rule.Merge(existing)
	want := Declarations{"color": "green", "border": "none", "margin": "0"}
	if len(merged) != len(want) {
		t.Fatalf("merged = %v, want %v", merged, want)
	}
	for k, v := range want {
		if merged[k] != v {
			t.Errorf("merged[%q] = %q, want %q", k, merged[k], v)
		}
	}
	if rule["color"] != "red" {
		t.Error("Merge must not modify the receiver")
	}
}

func TestDeclarationsString(t *testing.T) {
	testdata := []struct {
		d    Declarations
		want string
	}{
		{Declarations{"color": "blue"}, "color: blue;"},
		{Declarations{"color": "red", "border": "none"}, "border: none; color: red;"},
		{Declarations{"b": "1", "a-b": "2", "A": "3"}, "A: 3; a-b: 2; b: 1;"},
		{Declarations{}, ";"},
	}
	for _, td := range testdata {
		if got := td.d.String(); got != td.want {
			t.Errorf("String() = %q, want %q", got, td.want)
		}
	}
}
