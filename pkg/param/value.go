package param

import (
	"fmt"
	"strings"
)

type valueKind int

const (
	kindUnset valueKind = iota
	kindScalar
	kindList
)

// Value is the optional parameter value: Unset, a single Scalar string, or a
// List of strings. The zero Value is Unset, which is distinct from an empty
// scalar and from an empty list.
type Value struct {
	kind   valueKind
	scalar string
	list   []string
}

// Unset returns the sentinel "no value provided" Value.
func Unset() Value {
	return Value{}
}

// Scalar wraps a single string value. An empty string is a real value, not
// the unset sentinel.
func Scalar(value string) Value {
	return Value{kind: kindScalar, scalar: value}
}

// List wraps a sequence of string values. The slice is copied.
func List(values ...string) Value {
	return Value{kind: kindList, list: append([]string(nil), values...)}
}

// IsUnset reports whether no value was provided.
func (v Value) IsUnset() bool {
	return v.kind == kindUnset
}

// Or returns v when set, otherwise the fallback. This is the single place
// current-value/default resolution happens.
func (v Value) Or(fallback Value) Value {
	if v.IsUnset() {
		return fallback
	}
	return v
}

// Flatten collapses the value to the single string used by free-text
// controls. Lists are joined with the supplied delimiter; unset flattens to
// the empty string.
func (v Value) Flatten(delimiter string) string {
	switch v.kind {
	case kindScalar:
		return v.scalar
	case kindList:
		return strings.Join(v.list, delimiter)
	default:
		return ""
	}
}

// SelectedSet returns the sequence of strings used for membership tests in
// selection controls: nil when unset, a singleton for scalars, the sequence
// itself for lists.
func (v Value) SelectedSet() []string {
	switch v.kind {
	case kindScalar:
		return []string{v.scalar}
	case kindList:
		return append([]string(nil), v.list...)
	default:
		return nil
	}
}

// Contains reports membership of candidate in the selected set, compared as
// strings.
func (v Value) Contains(candidate string) bool {
	switch v.kind {
	case kindScalar:
		return v.scalar == candidate
	case kindList:
		for _, entry := range v.list {
			if entry == candidate {
				return true
			}
		}
	}
	return false
}

// Truthy reports the checked state a boolean control derives from the value.
// Unset, the empty string, "0" and "false" are all false; any other scalar is
// true, and a list is true when it has at least one element.
func (v Value) Truthy() bool {
	switch v.kind {
	case kindScalar:
		switch strings.ToLower(v.scalar) {
		case "", "0", "false":
			return false
		}
		return true
	case kindList:
		return len(v.list) > 0
	default:
		return false
	}
}

// CoerceValue converts loose upstream data into a Value: nil becomes Unset,
// slices become Lists with their elements stringified, everything else
// becomes a Scalar via fmt.Sprint (booleans as "true"/"false").
func CoerceValue(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Unset()
	case Value:
		return v
	case string:
		return Scalar(v)
	case bool:
		if v {
			return Scalar("true")
		}
		return Scalar("false")
	case []string:
		return List(v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			out = append(out, fmt.Sprint(entry))
		}
		return Value{kind: kindList, list: out}
	default:
		return Scalar(fmt.Sprint(v))
	}
}
