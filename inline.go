package cssinline

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"go.uber.org/zap"
)

// Args selects the input of Inline. If Document is set, the CSS is read from
// the first <style> element of the document and the whole document is
// returned. Otherwise CSS is applied to the HTML fragment in Body and only the
// fragment is returned.
type Args struct {
	Document string
	CSS      string
	Body     string
}

// Inliner holds the settings for inlining. It keeps no state between calls.
// The zero value is ready to use and does not log.
type Inliner struct {
	// StripComments removes CSS comments and <!-- --> delimiters before the
	// style sheet is split into rules.
	StripComments bool
	log           *zap.Logger
}

// New returns an Inliner that writes debug messages to log. A nil logger
// disables logging.
func New(log *zap.Logger) *Inliner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Inliner{log: log.Named("cssinline")}
}

func (in *Inliner) logger() *zap.Logger {
	if in.log == nil {
		return zap.NewNop()
	}
	return in.log
}

// Inline applies the CSS to the HTML given in args and returns the resulting
// HTML text.
func Inline(args Args) (string, error) {
	return New(nil).Inline(args)
}

// InlineDocument applies the first <style> element of document to the
// document itself.
func InlineDocument(document string) (string, error) {
	return New(nil).Inline(Args{Document: document})
}

// InlineFragment applies css to the HTML snippet body.
func InlineFragment(css, body string) (string, error) {
	return New(nil).Inline(Args{CSS: css, Body: body})
}

// Inline applies the CSS to the HTML given in args and returns the resulting
// HTML text.
func (in *Inliner) Inline(args Args) (string, error) {
	var doc *goquery.Document
	var err error
	css := args.CSS
	found := true
	if args.Document != "" {
		doc, css, found, err = parseDocument(args.Document)
		in.logger().Debug("Read document", zap.Bool("style", found), zap.Int("bytes", len(css)))
	} else {
		doc, err = parseFragment(args.Body)
	}
	if err != nil {
		return "", err
	}
	if found {
		if err = in.ApplyCSS(doc, css); err != nil {
			return "", err
		}
	}
	return doc.Html()
}

// ApplyCSS writes the rules of the style sheet css into the style attributes
// of the matching elements of doc. The first error stops processing, elements
// changed until then stay changed.
func (in *Inliner) ApplyCSS(doc *goquery.Document, css string) error {
	if in.StripComments {
		var err error
		if css, err = stripComments(normalize(css)); err != nil {
			return err
		}
	}
	styles, err := rawStyles(css)
	if err != nil {
		return err
	}
	in.logger().Debug("Split style sheet", zap.Int("rules", len(styles)))
	for _, raw := range styles {
		r, err := parseRule(raw)
		if err != nil {
			return err
		}
		if isUnsupported(r.selector) {
			in.logger().Debug("Skipping unsupported selector", zap.String("selector", r.selector))
			continue
		}
		if err = in.applyRule(doc, r); err != nil {
			return err
		}
	}
	return nil
}

func (in *Inliner) applyRule(doc *goquery.Document, r rule) error {
	matcher, err := cascadia.Compile(r.selector)
	if err != nil {
		// pseudo-elements and selectors cascadia does not know match nothing
		in.logger().Debug("Skipping selector", zap.String("selector", r.selector), zap.Error(err))
		return nil
	}
	sel := doc.FindMatcher(matcher)
	in.logger().Debug("Applying rule", zap.Stringer("rule", r), zap.Int("elements", sel.Length()))
	var errcond error
	sel.EachWithBreak(func(i int, s *goquery.Selection) bool {
		switch n := classify(s).(type) {
		case elementNode:
			if err := applyTo(n, r.declarations); err != nil {
				errcond = &ApplicationError{Selector: r.selector, Element: n.String(), Err: err}
				return false
			}
		case otherNode:
			// no attributes
		}
		return true
	})
	return errcond
}

// applyTo merges the declarations into the style attribute of the element.
// Declarations already present on the element win.
func applyTo(e elementNode, declarations string) error {
	current, err := ParseDeclarations(e.style())
	if err != nil {
		return err
	}
	additional, err := ParseDeclarations(declarations)
	if err != nil {
		return err
	}
	e.setStyle(additional.Merge(current).String())
	return nil
}
