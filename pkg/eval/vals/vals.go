// Package vals contains basic facilities for manipulating runtime values.
//
// The value domain of the language is small: Go ints for numbers, Go bools
// for comparison results, nil for the empty sentinel, and callables. This
// package defines the operations on values that the rest of the system needs
// without knowing the concrete callable types.
package vals

import (
	"fmt"
	"strconv"
)

// Bool converts a value to a boolean by the language's truthiness rule: the
// integer zero, false and the nil sentinel are falsy, and every other value
// (nonzero integers, callables, pairs) is truthy. Truthiness is an explicit
// predicate here rather than host-language behavior so that the rule stays
// portable.
func Bool(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case int:
		return v != 0
	default:
		return true
	}
}

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a textual representation of the value.
	Repr() string
}

// Repr returns a textual representation of a value: integers in decimal,
// bools as true/false, the nil sentinel as "nil". Other values must implement
// [Reprer]; anything else renders as "<unknown ...>".
func Repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(v)
	case Reprer:
		return v.Repr()
	default:
		return fmt.Sprintf("<unknown %v>", v)
	}
}

// Kinder wraps the Kind method.
type Kinder interface {
	Kind() string
}

// Kind returns the kind of a value, used in diagnostics.
func Kind(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case int:
		return "number"
	case Kinder:
		return v.Kind()
	default:
		return fmt.Sprintf("!!%T", v)
	}
}
