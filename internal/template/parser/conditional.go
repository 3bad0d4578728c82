package parser

import (
	"fmt"
	"strings"
)

// ifFrame is one open @pipe-if: block.
type ifFrame struct {
	match *DirectiveMatch
	// parentActive is whether the enclosing text is emitted.
	parentActive bool
	cond         bool
	sawElse      bool
}

// render walks the directives once, emitting text of active branches only.
// Conditions are only evaluated inside active branches, so inactive branches
// may reference variables that are not set.
func render(text string, matches []DirectiveMatch, vars Variables) (string, error) {
	var out strings.Builder
	out.Grow(len(text))

	var stack []ifFrame
	active := true
	pos := 0

	for i := range matches {
		m := &matches[i]
		if active {
			out.WriteString(text[pos:m.Start])
		}
		pos = m.End

		switch m.Type {
		case DirectiveIf:
			name := strings.TrimSpace(m.Args)
			if name == "" {
				return "", newParseError(InvalidDirectiveSyntax, "condition variable is empty", m)
			}
			frame := ifFrame{match: m, parentActive: active}
			if active {
				cond, err := vars.GetBool(name)
				if err != nil {
					return "", newParseError(TypeMismatch,
						fmt.Sprintf("condition variable must be boolean: %v", err), m)
				}
				frame.cond = cond
			}
			stack = append(stack, frame)
			active = frame.parentActive && frame.cond

		case DirectiveElse:
			if len(stack) == 0 {
				return "", newParseError(InvalidDirectiveSyntax, "@pipe-else@ without matching @pipe-if:", m)
			}
			top := &stack[len(stack)-1]
			if top.sawElse {
				return "", newParseError(InvalidDirectiveSyntax, "duplicate @pipe-else@ in block", m)
			}
			top.sawElse = true
			active = top.parentActive && !top.cond

		case DirectiveEndif:
			if len(stack) == 0 {
				return "", newParseError(InvalidDirectiveSyntax, "@pipe-endif@ without matching @pipe-if:", m)
			}
			active = stack[len(stack)-1].parentActive
			stack = stack[:len(stack)-1]

		case DirectiveVar:
			if !active {
				continue
			}
			s, err := substituteVar(m, vars)
			if err != nil {
				return "", err
			}
			out.WriteString(s)

		case DirectiveRaw:
			if active {
				out.WriteString(m.Args)
			}

		default:
			return "", newParseError(UnknownDirective, "unknown directive", m)
		}
	}

	if len(stack) > 0 {
		open := stack[len(stack)-1].match
		return "", newParseError(UnclosedBlock,
			fmt.Sprintf("unclosed @pipe-if:%s@ block (missing @pipe-endif@)", open.Args), open)
	}

	out.WriteString(text[pos:])
	return out.String(), nil
}
