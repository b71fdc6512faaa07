package cssinline

import "testing"

func TestClassify(t *testing.T) {
	doc, err := parseFragment(`<p class="a" title="1 > 0">text<!-- c --></p>`)
	if err != nil {
		t.Fatal(err)
	}
	p := doc.Find("p")
	e, ok := classify(p).(elementNode)
	if !ok {
		t.Fatalf("classify(p) = %T, want elementNode", classify(p))
	}
	if got, want := e.String(), `<p class="a" title="1 &gt; 0">`; got != want {
		t.Errorf("e.String() = %q, want %q", got, want)
	}
	e.setStyle("color: red;")
	if got, want := e.style(), "color: red;"; got != want {
		t.Errorf("e.style() = %q, want %q", got, want)
	}

	contents := p.Contents()
	if got, want := contents.Length(), 2; got != want {
		t.Fatalf("contents.Length() = %d, want %d", got, want)
	}
	for i := 0; i < contents.Length(); i++ {
		if _, ok := classify(contents.Eq(i)).(otherNode); !ok {
			t.Errorf("classify(contents[%d]) = %T, want otherNode", i, classify(contents.Eq(i)))
		}
	}
}
