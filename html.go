package cssinline

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseDocument reads a complete HTML document and returns the contents of its
// first <style> element. The boolean is false if the document has no style
// element.
func parseDocument(text string) (*goquery.Document, string, bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, "", false, err
	}
	style := doc.Find("style").First()
	if style.Length() == 0 {
		return doc, "", false, nil
	}
	return doc, style.Text(), true, nil
}

// parseFragment reads an HTML snippet as if it were the contents of a body
// element. The returned document has the snippet's nodes as its children and
// nothing else, so that serializing it yields just the snippet.
func parseFragment(body string) (*goquery.Document, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(body), context)
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(root), nil
}
