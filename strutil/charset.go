package strutil

import (
	"unicode"

	"golang.org/x/text/runes"
)

var (
	Whitespace    = runes.In(unicode.White_Space)
	Uppercase     = runes.In(unicode.Upper)
	Alphanumerics = runes.Predicate(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
	// URLQueryAllowed contains the characters that may appear unescaped in a URL query.
	URLQueryAllowed = runes.Predicate(func(r rune) bool {
		return r >= 0 && r < 0x80 && urlQueryAllowedASCII[r]
	})
)

var urlQueryAllowedASCII = func() (allowed [0x80]bool) {
	for r := 'a'; r <= 'z'; r++ {
		allowed[r] = true
	}
	for r := 'A'; r <= 'Z'; r++ {
		allowed[r] = true
	}
	for r := '0'; r <= '9'; r++ {
		allowed[r] = true
	}
	for _, r := range "!$&'()*+,-./:;=?@_~" {
		allowed[r] = true
	}
	return allowed
}()

type charSet map[rune]struct{}

func (c charSet) Contains(r rune) bool {
	_, ok := c[r]
	return ok
}

// Chars returns the set of runes contained in s.
func Chars(s string) runes.Set {
	set := make(charSet, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// IsComposedOf reports whether every rune of s is in allowed.
// It returns true for the empty string.
func IsComposedOf(s string, allowed runes.Set) bool {
	for _, r := range s {
		if !allowed.Contains(r) {
			return false
		}
	}
	return true
}
