package matcher

import "strings"

// Match reports whether name satisfies pattern.  "*" matches everything, a
// pattern ending with "*" or a name separator ("-", "_", "/") matches by
// prefix, anything else must match exactly.
func Match(pattern, name string) bool {
	switch {
	case pattern == "*":
		return true
	case pattern == "":
		return false
	case strings.HasSuffix(pattern, "*"):
		return strings.HasPrefix(name, strings.TrimSuffix(pattern, "*"))
	case strings.HasSuffix(pattern, "-"), strings.HasSuffix(pattern, "_"), strings.HasSuffix(pattern, "/"):
		return strings.HasPrefix(name, pattern)
	}
	return name == pattern
}
