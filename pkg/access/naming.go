package access

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first character of name, producing the
// <Name> part of the get<Name>/set<Name> conventions. Names of length
// one or less are returned unchanged.
func Capitalize(name string) string {
	if utf8.RuneCountInString(name) <= 1 {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	upper := unicode.ToUpper(r)
	if upper == r {
		return name
	}
	return string(upper) + name[size:]
}
