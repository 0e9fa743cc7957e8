package schema

import (
	"strings"
	"unicode"
)

// GoName converts a snake_case wire name into an exported Go identifier
// (e.g. "container_name" -> "ContainerName"). Names already in CamelCase
// pass through with the first rune upper-cased.
func GoName(name string) string {
	var sb strings.Builder

	up := true

	for _, r := range name {
		if r == '_' {
			up = true
			continue
		}

		if up {
			sb.WriteRune(unicode.ToUpper(r))
			up = false
		} else {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// LowerFirst returns the identifier with its first rune lower-cased, used
// for unexported struct field names.
func LowerFirst(s string) string {
	if s == "" {
		return ""
	}

	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}

// ValidWireName reports whether a schema field name is usable: it must
// start with a letter and contain only letters, digits, and underscores.
func ValidWireName(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case unicode.IsLetter(r):
		case r == '_' && i > 0:
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}

	return true
}

// ValidGoIdent reports whether s is a plausible Go identifier.
func ValidGoIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}

	return true
}
