package casing

import (
	"fmt"
	"strings"
	"unicode"
)

// Separator marks word boundaries in snake_case identifiers.
const Separator = '_'

// Convert converts input into the target naming format.
//
// Underscores expects a PascalCase or camelCase source, PascalCase expects a snake_case source.
// CamelCase is not supported: Convert returns ErrUnsupportedFormat and never a partial result.
func Convert(input string, target NamingFormat) (string, error) {
	switch target {
	case Underscores:
		return toUnderscores(input), nil
	case PascalCase:
		return toPascalCase(input), nil
	case CamelCase:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, target)
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, target)
}

// MustConvert is like Convert but panics on error.
func MustConvert(input string, target NamingFormat) string {
	s, err := Convert(input, target)
	if err != nil {
		panic(err)
	}
	return s
}

// toUnderscores prefixes every run of uppercase letters with a single separator, lowercases the result
// and trims separators from both ends. A run followed by a lowercase letter gives up its last letter
// to the next word: "XMLParser" -> "xml_parser".
// A leading separator of the input survives as exactly one leading separator.
func toUnderscores(input string) string {
	runes := []rune(input)
	var result strings.Builder
	result.Grow(len(input) + len(input)/4)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevUpper || nextLower {
				result.WriteRune(Separator)
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}

	sep := string(Separator)
	s := strings.Trim(result.String(), sep)
	if strings.HasPrefix(input, sep) {
		s = sep + s
	}
	return s
}

// toPascalCase drops separators and uppercases the character following each of them.
// The first character keeps its case.
func toPascalCase(input string) string {
	var result strings.Builder
	result.Grow(len(input))

	pendingCapitalize := false
	for _, r := range input {
		if r == Separator {
			pendingCapitalize = true
			continue
		}
		if pendingCapitalize {
			r = unicode.ToUpper(r)
			pendingCapitalize = false
		}
		result.WriteRune(r)
	}
	return result.String()
}
