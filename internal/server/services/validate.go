package services

import "strings"

// ValidFields reports whether every field is non-empty and carries no
// leading or trailing whitespace. Registration and login forms are checked
// with it before reaching the store.
func ValidFields(fields ...string) bool {
	for _, f := range fields {
		if f == "" || strings.TrimSpace(f) != f {
			return false
		}
	}
	return true
}
