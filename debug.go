package cssinline

import (
	"strings"
)

// String formats the rule with one declaration per line.
func (r rule) String() string {
	var sb strings.Builder
	sb.WriteString(r.selector + " {\n")
	for _, decl := range strings.Split(r.declarations, ";") {
		if decl = strings.TrimSpace(decl); decl != "" {
			sb.WriteString("    " + decl + ";\n")
		}
	}
	sb.WriteString("}")
	return sb.String()
}
