package cssinline

import (
	"slices"
	"strings"
)

// Declarations maps CSS property names to their values.
type Declarations map[string]string

// ParseDeclarations reads a declaration list such as the contents of a style
// attribute ("color: red; border: none"). Property and value are separated by
// the first colon and are trimmed. If a property appears more than once, the
// last value is kept. Empty declarations are skipped, a declaration without a
// colon or with an empty value is an error.
func ParseDeclarations(text string) (Declarations, error) {
	d := Declarations{}
	for _, piece := range strings.Split(text, ";") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		key, value, found := strings.Cut(piece, ":")
		value = strings.TrimSpace(value)
		if !found || value == "" {
			return nil, &DeclarationError{Declaration: piece}
		}
		d[strings.TrimSpace(key)] = value
	}
	return d, nil
}

// Merge returns a new set containing d and over. Properties present in both
// take the value from over.
func (d Declarations) Merge(over Declarations) Declarations {
	merged := make(Declarations, len(d)+len(over))
	for k, v := range d {
		merged[k] = v
	}
	for k, v := range over {
		merged[k] = v
	}
	return merged
}

// String returns the declarations in the form used for a style attribute:
// sorted by property name, separated by "; " and terminated by a semicolon.
func (d Declarations) String() string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	ret := make([]string, 0, len(keys))
	for _, k := range keys {
		ret = append(ret, k+": "+d[k])
	}
	return strings.TrimSpace(strings.Join(ret, "; ")) + ";"
}
