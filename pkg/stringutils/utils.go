package stringutils

import "strings"

var httpSchemes = []string{"http://", "https://"}

// HasHTTPScheme reports whether in starts with an http:// or https:// prefix.
// The match is case sensitive, so "HTTP://host" is treated as a file path.
func HasHTTPScheme(in string) bool {
	for _, scheme := range httpSchemes {
		if strings.HasPrefix(in, scheme) {
			return true
		}
	}

	return false
}
