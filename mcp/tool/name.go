package tool

import "strings"

// Name represents a canonical tool name: service path with "/" replaced by
// "_", then "-", then the method, e.g. "trie-get".
type Name string

func (t Name) Service() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return strings.ReplaceAll(tool[:idx], "_", "/")
	}
	return tool
}

func (t Name) Method() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return tool[idx+1:]
	}
	return ""
}

func (t Name) String() string {
	return string(t)
}

// NewName returns the canonical tool name for a service method.
func NewName(service, method string) Name {
	return Name(strings.ReplaceAll(service, "/", "_") + "-" + method)
}

// Canonical normalises "service/method", "service.method" and
// "service-method" notations to the canonical form.
func Canonical(name string) string {
	if strings.Contains(name, "-") {
		return strings.ReplaceAll(name, "/", "_")
	}
	if idx := strings.LastIndex(name, "."); idx != -1 {
		return NewName(name[:idx], name[idx+1:]).String()
	}
	if idx := strings.LastIndex(name, "/"); idx != -1 {
		return NewName(name[:idx], name[idx+1:]).String()
	}
	return name
}

// Pattern converts a match pattern to canonical form; a trailing "/" selects
// every method of a service.
func Pattern(pattern string) string {
	switch {
	case pattern == "*" || pattern == "":
		return pattern
	case strings.HasSuffix(pattern, "/"):
		return strings.ReplaceAll(strings.TrimSuffix(pattern, "/"), "/", "_") + "-"
	}
	return Canonical(pattern)
}
