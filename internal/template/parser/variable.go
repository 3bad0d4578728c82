package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Variables provides template variable values.
type Variables interface {
	// Get returns (value, true) if name is set.
	Get(name string) (interface{}, bool)
	// GetBool returns an error if name is unset or not a bool.
	GetBool(name string) (bool, error)
	// GetString returns an error if name is unset or not a string.
	GetString(name string) (string, error)
}

// MapVariables implements Variables over a map.
type MapVariables struct {
	data map[string]interface{}
}

// NewMapVariables creates a new MapVariables from a map.
func NewMapVariables(data map[string]interface{}) *MapVariables {
	if data == nil {
		data = make(map[string]interface{})
	}
	return &MapVariables{data: data}
}

// Get retrieves a variable value by name.
func (m *MapVariables) Get(name string) (interface{}, bool) {
	val, ok := m.data[name]
	return val, ok
}

// GetBool retrieves a boolean variable.
func (m *MapVariables) GetBool(name string) (bool, error) {
	val, ok := m.data[name]
	if !ok {
		return false, fmt.Errorf("variable not found: %s", name)
	}
	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("variable %s is not a boolean (got %T)", name, val)
	}
	return b, nil
}

// GetString retrieves a string variable.
func (m *MapVariables) GetString(name string) (string, error) {
	val, ok := m.data[name]
	if !ok {
		return "", fmt.Errorf("variable not found: %s", name)
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("variable %s is not a string (got %T)", name, val)
	}
	return s, nil
}

// Set sets a variable value.
func (m *MapVariables) Set(name string, value interface{}) {
	m.data[name] = value
}

// splitVarArgs splits "NAME" or "NAME=DEFAULT".
func splitVarArgs(args string) (name, def string, hasDefault bool) {
	name, def, hasDefault = strings.Cut(args, "=")
	return strings.TrimSpace(name), def, hasDefault
}

// substituteVar resolves a @pipe-var: directive.
func substituteVar(m *DirectiveMatch, vars Variables) (string, error) {
	name, def, hasDefault := splitVarArgs(m.Args)
	if name == "" {
		return "", newParseError(InvalidDirectiveSyntax, "variable name is empty", m)
	}

	val, ok := vars.Get(name)
	if !ok {
		if !hasDefault {
			return "", newParseError(MissingVariable, fmt.Sprintf("required variable not found: %s", name), m)
		}
		return def, nil
	}
	return valueToString(val), nil
}

// valueToString converts a variable value to its template representation.
func valueToString(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
