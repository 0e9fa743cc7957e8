package schema

import (
	"fmt"
	"strconv"
)

//go:generate go tool stringer -type=ValueType -linecomment

// ValueType is the semantic type of a field's stored value.
type ValueType int

const (
	// ValueText is a plain string value.
	ValueText ValueType = iota // text
	// ValueUint is an unsigned 64-bit integer value.
	ValueUint // uint
	// ValueMap is a string-to-string mapping value.
	ValueMap // map
	// ValueOpaque is a named string type, distinguishable from plain text
	// (e.g. a lease identifier).
	ValueOpaque // opaque
)

// ParseValueType parses a schema type name into a ValueType.
func ParseValueType(s string) (ValueType, error) {
	switch s {
	case "text":
		return ValueText, nil
	case "uint":
		return ValueUint, nil
	case "map":
		return ValueMap, nil
	case "opaque":
		return ValueOpaque, nil
	case "":
		return 0, fmt.Errorf("field type is empty")
	default:
		return 0, fmt.Errorf("unknown value type %q", s)
	}
}

// GoType returns the Go type generated code stores for a field of this
// value type. Opaque fields store their declared named type instead.
func (v ValueType) GoType(opaqueType string) string {
	switch v {
	case ValueText:
		return "string"
	case ValueUint:
		return "uint64"
	case ValueMap:
		return "map[string]string"
	case ValueOpaque:
		return opaqueType
	default:
		return "any"
	}
}

// ParseDefault parses a textual default into the runtime value for the
// given value type.
func ParseDefault(v ValueType, def string) (any, error) {
	switch v {
	case ValueText, ValueOpaque:
		return def, nil
	case ValueUint:
		n, err := strconv.ParseUint(def, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("default %q is not an unsigned integer", def)
		}

		return n, nil
	case ValueMap:
		return nil, fmt.Errorf("map fields cannot carry a textual default")
	default:
		return nil, fmt.Errorf("no default supported for %s", v)
	}
}

// UnsetSentinel reports whether the textual default is a recognized "not yet
// a real value" sentinel for this value type. Required fields may only carry
// such a default.
func (v ValueType) UnsetSentinel(def string) bool {
	switch v {
	case ValueUint:
		return def == "0" || def == ""
	default:
		return def == ""
	}
}
