package cssinline

import "fmt"

// InvalidStyleError is returned when the number of opening and closing curly
// braces in a style sheet differ.
type InvalidStyleError struct {
	Left   int
	Right  int
	CSS    string // the style sheet with line breaks replaced by spaces
	Column int    // position of the first unmatched brace, 0 if unknown
}

func (e *InvalidStyleError) Error() string {
	msg := fmt.Sprintf("found %d left brackets and %d right brackets", e.Left, e.Right)
	if e.Column > 0 {
		msg += fmt.Sprintf(" (first unmatched bracket at column %d)", e.Column)
	}
	return msg + " in:\n " + e.CSS
}

// MalformedRuleError is returned when a rule does not have the form
// "selector { declarations }".
type MalformedRuleError struct {
	Rule string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("invalid style: %q", e.Rule)
}

// DeclarationError is returned for a declaration without a colon or without a
// value.
type DeclarationError struct {
	Declaration string
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("declaration %q has no value", e.Declaration)
}

// ApplicationError wraps an error that occurred while a rule was applied to a
// single element.
type ApplicationError struct {
	Selector string
	Element  string // start tag of the element
	Err      error
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("trouble on style %s on element %s: %s", e.Selector, e.Element, e.Err)
}

func (e *ApplicationError) Unwrap() error { return e.Err }
