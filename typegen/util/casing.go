package util

import (
	"unicode"
	"unicode/utf8"
)

// UpperFirst capitalizes the first letter and keeps the rest as-is
// ("firstName" -> "FirstName"). Used for accessor names.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
