package parser

import "fmt"

// ParseErrorType represents the type of parsing error.
type ParseErrorType int

const (
	// UnknownDirective indicates an unrecognized @pipe-* directive.
	UnknownDirective ParseErrorType = iota
	// MissingVariable indicates a variable reference without value or default.
	MissingVariable
	// TypeMismatch indicates a non-boolean condition in @pipe-if:.
	TypeMismatch
	// UnclosedBlock indicates a missing @pipe-endif@.
	UnclosedBlock
	// InvalidDirectiveSyntax indicates malformed directive syntax.
	InvalidDirectiveSyntax
)

// ParseError represents a template parsing error.
type ParseError struct {
	Type    ParseErrorType
	Message string
	// Line is the 1-indexed line of the directive, 0 if unknown.
	Line int
	// Directive is the problematic directive text.
	Directive string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Directive != "":
		return fmt.Sprintf("line %d: %s (directive: %s)", e.Line, e.Message, e.Directive)
	case e.Directive != "":
		return fmt.Sprintf("%s (directive: %s)", e.Message, e.Directive)
	default:
		return e.Message
	}
}

func newParseError(typ ParseErrorType, message string, m *DirectiveMatch) *ParseError {
	err := &ParseError{Type: typ, Message: message}
	if m != nil {
		err.Directive = m.RawText
		err.Line = m.Line
	}
	return err
}
