// Package contact normalizes client contact details.
package contact

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// mobilePattern matches a local 05x mobile number, optionally hyphenated after the prefix.
var mobilePattern = regexp.MustCompile(`^05[0-9]-?[0-9]{7}$`)

// Initials returns up to two leading characters, one per word of name.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		if n == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// IsValidPhone reports whether phone, ignoring whitespace, is a local mobile number.
func IsValidPhone(phone string) bool {
	compact := StripSpaces(phone)
	if compact == "" {
		return false
	}
	return mobilePattern.MatchString(compact)
}

// StripSpaces drops every whitespace rune from s.
func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
