// Package casing converts identifiers between naming formats.
package casing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFormat     = errors.New("invalid naming format")
	ErrUnsupportedFormat = errors.New("unsupported naming format")
)

// NamingFormat selects the convention an identifier is converted to.
type NamingFormat int

const (
	CamelCase NamingFormat = iota
	Underscores
	PascalCase
)

// Formats returns every known naming format.
func Formats() []NamingFormat {
	return []NamingFormat{CamelCase, Underscores, PascalCase}
}

func (f NamingFormat) String() string {
	switch f {
	case CamelCase:
		return "camel"
	case Underscores:
		return "underscores"
	case PascalCase:
		return "pascal"
	}
	return fmt.Sprintf("NamingFormat(%d)", int(f))
}

// ParseNamingFormat parses the name of a naming format.
// Besides the String() names it accepts the aliases snake, snake_case, camelcase and pascalcase.
func ParseNamingFormat(name string) (NamingFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "camel", "camelcase":
		return CamelCase, nil
	case "underscores", "snake", "snake_case":
		return Underscores, nil
	case "pascal", "pascalcase":
		return PascalCase, nil
	}
	return 0, fmt.Errorf("%w: '%s'", ErrInvalidFormat, name)
}

// MustParseNamingFormat is like ParseNamingFormat but panics on error.
func MustParseNamingFormat(name string) NamingFormat {
	f, err := ParseNamingFormat(name)
	if err != nil {
		panic(err)
	}
	return f
}
