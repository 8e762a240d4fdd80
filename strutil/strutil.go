// Package strutil contains small helpers for trimming, case and percent-encoding of strings.
package strutil

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
)

var ErrEncoding = errors.New("cannot percent-encode input")

// Trim returns s without all leading and trailing runes contained in set.
func Trim(s string, set runes.Set) string {
	return strings.TrimFunc(s, set.Contains)
}

// ReplaceSpacesWithDashes replaces every ASCII space with a dash and lowercases the result.
// Other whitespace is left alone.
func ReplaceSpacesWithDashes(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "-"))
}

// LowercaseFirst lowercases the first character of s. The empty string is returned unchanged.
func LowercaseFirst(s string) string {
	return mapFirst(s, unicode.ToLower)
}

// UppercaseFirst uppercases the first character of s. The empty string is returned unchanged.
func UppercaseFirst(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

func mapFirst(s string, mapping func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError && size == 1 {
		return s
	}
	return string(mapping(r)) + s[size:]
}

const upperHex = "0123456789ABCDEF"

// URLEncode percent-encodes every character of s that is not in URLQueryAllowed.
// Non-ASCII characters are encoded byte by byte in UTF-8.
func URLEncode(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: invalid UTF-8 %q", ErrEncoding, s)
	}

	var result strings.Builder
	result.Grow(len(s))
	var buf [utf8.UTFMax]byte
	for _, r := range s {
		if URLQueryAllowed.Contains(r) {
			result.WriteRune(r)
			continue
		}
		n := utf8.EncodeRune(buf[:], r)
		for _, b := range buf[:n] {
			result.WriteByte('%')
			result.WriteByte(upperHex[b>>4])
			result.WriteByte(upperHex[b&0x0f])
		}
	}
	return result.String(), nil
}
