package parser

import (
	"regexp"
	"strings"
)

// DirectiveType identifies the type of template directive.
type DirectiveType int

const (
	// DirectiveUnknown is any @pipe-NAME@ that is not recognized.
	DirectiveUnknown DirectiveType = iota
	// DirectiveVar represents @pipe-var:NAME@ and @pipe-var:NAME=DEFAULT@
	DirectiveVar
	// DirectiveRaw represents @pipe-raw:TEXT@, emitted verbatim
	DirectiveRaw
	// DirectiveIf represents @pipe-if:NAME@
	DirectiveIf
	// DirectiveElse represents @pipe-else@
	DirectiveElse
	// DirectiveEndif represents @pipe-endif@
	DirectiveEndif
)

// String returns the directive name.
func (dt DirectiveType) String() string {
	switch dt {
	case DirectiveVar:
		return "var"
	case DirectiveRaw:
		return "raw"
	case DirectiveIf:
		return "if"
	case DirectiveElse:
		return "else"
	case DirectiveEndif:
		return "endif"
	default:
		return "unknown"
	}
}

// DirectiveMatch is one directive found in a template.
type DirectiveMatch struct {
	Type DirectiveType
	// Start and End are byte offsets; End is exclusive.
	Start int
	End   int
	// Args is the text between ':' and the closing '@'.
	Args    string
	RawText string
	// Line is 1-indexed.
	Line int
}

// Directives never span lines.
var directivePattern = regexp.MustCompile(`@pipe-([a-z]+)(?::([^@\n]*))?@`)

func parseDirectiveType(name string) DirectiveType {
	switch name {
	case "var":
		return DirectiveVar
	case "raw":
		return DirectiveRaw
	case "if":
		return DirectiveIf
	case "else":
		return DirectiveElse
	case "endif":
		return DirectiveEndif
	default:
		return DirectiveUnknown
	}
}

// findDirectives returns all directives in text, in order of appearance.
func findDirectives(text string) []DirectiveMatch {
	locs := directivePattern.FindAllStringSubmatchIndex(text, -1)
	matches := make([]DirectiveMatch, 0, len(locs))

	line, lineFrom := 1, 0
	for _, loc := range locs {
		line += strings.Count(text[lineFrom:loc[0]], "\n")
		lineFrom = loc[0]

		m := DirectiveMatch{
			Type:    parseDirectiveType(text[loc[2]:loc[3]]),
			Start:   loc[0],
			End:     loc[1],
			RawText: text[loc[0]:loc[1]],
			Line:    line,
		}
		if loc[4] != -1 {
			m.Args = text[loc[4]:loc[5]]
		}
		matches = append(matches, m)
	}
	return matches
}
