// Package textlen measures text length.
package textlen

import "unicode/utf8"

// Count returns the number of Unicode code points in s.
// Invalid UTF-8 bytes count as one each.
func Count(s string) int {
	return utf8.RuneCountInString(s)
}
