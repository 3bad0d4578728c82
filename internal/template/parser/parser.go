// Package parser renders pipeline templates.
//
// Supported directives:
//
//	@pipe-var:NAME@             value of NAME; error if unset
//	@pipe-var:NAME=DEFAULT@     value of NAME, or DEFAULT if unset
//	@pipe-if:NAME@ ... @pipe-else@ ... @pipe-endif@   boolean NAME, nestable
//	@pipe-raw:TEXT@             TEXT emitted as is
package parser

import (
	"context"
	"sort"
	"strings"

	"github.com/tacogips/pipegen/internal/debug"
)

// Parser processes template content.
type Parser interface {
	// Parse renders input against vars.
	Parse(ctx context.Context, input []byte, vars Variables) ([]byte, error)
	// Validate checks directive syntax and block nesting without rendering.
	Validate(input []byte) error
	// ExtractVariables returns the sorted names referenced by var and if directives.
	ExtractVariables(input []byte) []string
}

// DefaultParser implements Parser.
type DefaultParser struct{}

// NewParser creates a new DefaultParser.
func NewParser() Parser {
	return &DefaultParser{}
}

// Parse renders input against vars.
func (p *DefaultParser) Parse(ctx context.Context, input []byte, vars Variables) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text := string(input)
	matches := findDirectives(text)
	debug.Debug("[parser] Parse: size=%d bytes, directives=%d", len(input), len(matches))

	out, err := render(text, matches, vars)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Validate checks directive syntax and block nesting without rendering.
func (p *DefaultParser) Validate(input []byte) error {
	matches := findDirectives(string(input))
	depth := 0
	for i := range matches {
		m := &matches[i]
		switch m.Type {
		case DirectiveUnknown:
			return newParseError(UnknownDirective, "unknown directive", m)
		case DirectiveVar:
			if name, _, _ := splitVarArgs(m.Args); name == "" {
				return newParseError(InvalidDirectiveSyntax, "variable name is empty", m)
			}
		case DirectiveIf:
			if strings.TrimSpace(m.Args) == "" {
				return newParseError(InvalidDirectiveSyntax, "condition variable is empty", m)
			}
			depth++
		case DirectiveElse:
			if depth == 0 {
				return newParseError(InvalidDirectiveSyntax, "@pipe-else@ without matching @pipe-if:", m)
			}
		case DirectiveEndif:
			if depth == 0 {
				return newParseError(InvalidDirectiveSyntax, "@pipe-endif@ without matching @pipe-if:", m)
			}
			depth--
		}
	}
	if depth > 0 {
		return newParseError(UnclosedBlock, "unclosed @pipe-if: block (missing @pipe-endif@)", nil)
	}
	return nil
}

// ExtractVariables returns the sorted names referenced by var and if directives.
func (p *DefaultParser) ExtractVariables(input []byte) []string {
	seen := make(map[string]struct{})
	for _, m := range findDirectives(string(input)) {
		var name string
		switch m.Type {
		case DirectiveVar:
			name, _, _ = splitVarArgs(m.Args)
		case DirectiveIf:
			name = strings.TrimSpace(m.Args)
		}
		if name != "" {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
