package cssinline

import (
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/speedata/css/scanner"
)

// unsupported lists selector endings that have no inline equivalent.
var unsupported = []string{"::first-letter", ":link", ":visited", ":hover", ":active"}

// rule is a selector together with the unparsed text between its braces.
type rule struct {
	selector     string
	declarations string
}

func isUnsupported(selector string) bool {
	for _, suffix := range unsupported {
		if strings.HasSuffix(selector, suffix) {
			return true
		}
	}
	return false
}

// normalize replaces every carriage return and line feed by a space.
func normalize(cssText string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return ' '
		}
		return r
	}, cssText)
}

// stripComments removes CSS comments and the HTML comment delimiters <!-- and
// --> from the style sheet.
func stripComments(cssText string) (string, error) {
	var sb strings.Builder
	l := css.NewLexer(parse.NewInput(strings.NewReader(cssText)))
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != io.EOF {
				return "", fmt.Errorf("strip comments: %w", err)
			}
			return sb.String(), nil
		case css.CommentToken, css.CDOToken, css.CDCToken:
			// drop
		default:
			sb.Write(data)
		}
	}
}

// validate makes sure that there are as many { as }.
func validate(cssText string) error {
	lefts := strings.Count(cssText, "{")
	rights := strings.Count(cssText, "}")
	if lefts != rights {
		return &InvalidStyleError{
			Left:   lefts,
			Right:  rights,
			CSS:    cssText,
			Column: unmatchedBrace(cssText),
		}
	}
	return nil
}

// unmatchedBrace returns the column of the first closing brace without an
// opening partner or, failing that, of the outermost brace that is never
// closed. Braces in strings and comments are not taken into account. It
// returns 0 if the tokenizer sees balanced braces.
func unmatchedBrace(cssText string) int {
	var open []int
	s := scanner.New(cssText)
	for {
		tok := s.Next()
		if tok.Type == scanner.EOF || tok.Type == scanner.Error {
			break
		}
		if tok.Type != scanner.Delim {
			continue
		}
		switch tok.Value {
		case "{":
			open = append(open, tok.Column)
		case "}":
			if len(open) == 0 {
				return tok.Column
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return open[0]
	}
	return 0
}

// rawStyles splits the style sheet into rules, each one ending with }. The
// rules are returned last rule first.
func rawStyles(cssText string) ([]string, error) {
	cssText = normalize(cssText)
	if err := validate(cssText); err != nil {
		return nil, err
	}
	pieces := strings.Split(strings.TrimSpace(cssText), "}")
	for len(pieces) > 0 && pieces[len(pieces)-1] == "" {
		pieces = pieces[:len(pieces)-1]
	}
	styles := make([]string, 0, len(pieces))
	for i := len(pieces) - 1; i >= 0; i-- {
		styles = append(styles, pieces[i]+"}")
	}
	return styles, nil
}

// parseRule splits a raw rule into its selector and its declaration text.
func parseRule(raw string) (rule, error) {
	trimmed := strings.TrimSpace(raw)
	open := strings.IndexByte(trimmed, '{')
	if open < 0 || !strings.HasSuffix(trimmed, "}") {
		return rule{}, &MalformedRuleError{Rule: raw}
	}
	selector := strings.TrimSpace(trimmed[:open])
	if selector == "" {
		return rule{}, &MalformedRuleError{Rule: raw}
	}
	return rule{
		selector:     selector,
		declarations: strings.TrimSpace(trimmed[open+1 : len(trimmed)-1]),
	}, nil
}
