package resolve

import (
	"strings"
	"unicode"
)

// capitalized upper-cases the first rune of s, leaving the rest as
// written.
func capitalized(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// upperCamelCase converts s to UpperCamelCase. Words split on
// non-alphanumeric separators and on case boundaries; an acronym run
// keeps only its leading capital, so "XMLHttpRequest" becomes
// "XmlHttpRequest".
func upperCamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	newWord := true
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			newWord = true
		case newWord:
			b.WriteRune(unicode.ToUpper(r))
			newWord = false
		case unicode.IsUpper(r):
			// An upper rune keeps its case when it starts a word: after
			// a lower rune, or closing an acronym run before one.
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteRune(r)
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
