// Package cssinline moves CSS rules into the style attributes of the HTML
// elements they select.
//
// The CSS is either taken from the first <style> element of a document or
// passed in separately together with an HTML fragment. Only selectors the
// cascadia query engine understands are applied; rules for :link, :visited,
// :hover, :active and ::first-letter are ignored because they cannot be
// expressed inline.
//
// There is no specificity. Rules are applied in reverse source order and a
// declaration that is already present on an element is never overwritten, so
// the last rule in the style sheet wins and an existing inline style beats
// every rule.
package cssinline
