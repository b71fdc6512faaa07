package cssinline

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// node is a query result. Only elementNode has attributes that can be read
// and written, everything else is left alone.
type node interface {
	String() string
}

type elementNode struct {
	sel *goquery.Selection
}

type otherNode struct {
	n *html.Node
}

// classify wraps the first node of the selection.
func classify(sel *goquery.Selection) node {
	n := sel.Get(0)
	if n != nil && n.Type == html.ElementNode {
		return elementNode{sel: sel}
	}
	return otherNode{n: n}
}

func (e elementNode) style() string {
	s, _ := e.sel.Attr("style")
	return s
}

func (e elementNode) setStyle(value string) {
	e.sel.SetAttr("style", value)
}

// String returns the start tag of the element.
func (e elementNode) String() string {
	n := e.sel.Get(0)
	shallow := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      n.Attr,
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, shallow); err != nil {
		return "<" + n.Data + ">"
	}
	s := buf.String()
	if end := bytes.IndexByte(buf.Bytes(), '>'); end >= 0 {
		s = s[:end+1]
	}
	return s
}

func (o otherNode) String() string {
	if o.n == nil {
		return "<nil>"
	}
	return o.n.Data
}
