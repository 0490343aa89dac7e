// Package normalize canonicalizes user input before it is stored or
// compared.
package normalize

import "strings"

// Email trims and lowercases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace and collapses inner runs of spaces.
// Case is preserved.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Status trims and lowercases a status, role or type value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role is Status under a name that reads better at call sites.
func Role(s string) string { return Status(s) }

// List trims each entry and drops blanks. A nil input returns an empty,
// non-nil slice so the stored array is never null.
func List(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
