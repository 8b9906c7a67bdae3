package domain

import (
	"regexp"
	"strings"
)

// subscriptZero is U+2080 SUBSCRIPT ZERO; digit d maps to subscriptZero+d.
const subscriptZero = '₀'

var digitToken = regexp.MustCompile(`\\\d|\d+`)

// FormatWithSubscript renders every run of ASCII digits in text as Unicode
// subscript digits ("H2O" -> "H₂O").
//
// A backslash directly before a single digit escapes it: the backslash is
// dropped and the digit stays full size, so `Fe\2O3` becomes "Fe2O₃".
func FormatWithSubscript(text string) string {
	return digitToken.ReplaceAllStringFunc(text, func(match string) string {
		if match[0] == '\\' {
			return match[1:]
		}
		var b strings.Builder
		b.Grow(len(match) * 3)
		for i := 0; i < len(match); i++ {
			b.WriteRune(subscriptZero + rune(match[i]-'0'))
		}
		return b.String()
	})
}
