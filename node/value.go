package node

import (
	"fmt"
	"strconv"
)

// ValueKind identifies the active variant of a Value.
type ValueKind uint8

const (
	NullValue   ValueKind = iota // JSON null (the zero variant)
	BoolValue                    // true / false
	IntValue                     // 32-bit signed integer
	FloatValue                   // 32-bit float
	StringValue                  // UTF-8 string
)

// String returns a human-readable name for the variant.
func (k ValueKind) String() string {
	switch k {
	case NullValue:
		return "null"
	case BoolValue:
		return "bool"
	case IntValue:
		return "int"
	case FloatValue:
		return "float"
	case StringValue:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a scalar node: a tagged union holding exactly one of null, bool,
// int32, float32, or string.
//
// A Value is immutable after construction; replacement happens at the
// container level (Array.Set, Object.Insert) with a freshly built node.
type Value struct {
	kind ValueKind
	b    bool
	i    int32
	f    float32
	s    string
}

// Kind reports KindValue.
func (v *Value) Kind() Kind { return KindValue }

// ValueKind reports the active variant.
func (v *Value) ValueKind() ValueKind { return v.kind }

// IsNull reports whether the active variant is null.
func (v *Value) IsNull() bool { return v.kind == NullValue }

// IsBool reports whether the active variant is bool.
func (v *Value) IsBool() bool { return v.kind == BoolValue }

// IsInt reports whether the active variant is int.
func (v *Value) IsInt() bool { return v.kind == IntValue }

// IsFloat reports whether the active variant is float.
func (v *Value) IsFloat() bool { return v.kind == FloatValue }

// IsStr reports whether the active variant is string.
func (v *Value) IsStr() bool { return v.kind == StringValue }

// Bool returns the bool payload, or ErrType if the active variant differs.
func (v *Value) Bool() (bool, error) {
	if v.kind != BoolValue {
		return false, fmt.Errorf("%w: %s is not bool", ErrType, v.kind)
	}

	return v.b, nil
}

// Int returns the int payload. A float variant is accepted and truncated
// toward zero; any other variant yields ErrType.
func (v *Value) Int() (int32, error) {
	switch v.kind {
	case IntValue:
		return v.i, nil
	case FloatValue:
		return int32(v.f), nil
	default:
		return 0, fmt.Errorf("%w: %s is not int", ErrType, v.kind)
	}
}

// Float returns the float payload, or ErrType if the active variant differs.
func (v *Value) Float() (float32, error) {
	if v.kind != FloatValue {
		return 0, fmt.Errorf("%w: %s is not float", ErrType, v.kind)
	}

	return v.f, nil
}

// Str returns the string payload, or ErrType if the active variant differs.
func (v *Value) Str() (string, error) {
	if v.kind != StringValue {
		return "", fmt.Errorf("%w: %s is not string", ErrType, v.kind)
	}

	return v.s, nil
}

// Equal reports structural equality: same active variant, same payload.
// Comparing different active variants is always unequal.
func (v *Value) Equal(other Element) bool {
	ov, ok := other.(*Value)
	if !ok || ov == nil {
		return false
	}
	if v.kind != ov.kind {
		return false
	}

	switch v.kind {
	case NullValue:
		return true
	case BoolValue:
		return v.b == ov.b
	case IntValue:
		return v.i == ov.i
	case FloatValue:
		return v.f == ov.f
	case StringValue:
		return v.s == ov.s
	default:
		return false
	}
}

func (v *Value) appendCompact(dst []byte) []byte {
	switch v.kind {
	case NullValue:
		return append(dst, "null"...)
	case BoolValue:
		if v.b {
			return append(dst, "true"...)
		}

		return append(dst, "false"...)
	case IntValue:
		return strconv.AppendInt(dst, int64(v.i), 10)
	case FloatValue:
		return appendFloat(dst, v.f)
	case StringValue:
		return appendQuoted(dst, v.s)
	default:
		return dst
	}
}

// Scalars render identically in pretty form; depth and indent are unused.
func (v *Value) appendPretty(dst []byte, _ int, _ byte) []byte {
	return v.appendCompact(dst)
}

func (v *Value) clone(a *Arena) Element {
	nv := a.newValue()
	*nv = *v

	return nv
}
