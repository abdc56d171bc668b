package node

import "fmt"

// Kind identifies the concrete type of an Element.
type Kind uint8

const (
	KindValue Kind = iota + 1 // scalar Value node
	KindArray                 // ordered Array node
	KindObject                // keyed Object node
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Element is the capability shared by every node kind. The interface is
// closed: exactly *Value, *Array, and *Object implement it.
//
// Elements compare structurally via Equal, deep-copy via Clone, and
// serialize via Serialize and PrettySerialize. Use AsValue, AsArray, and
// AsObject to narrow an Element to its concrete kind.
type Element interface {
	// Kind reports the concrete kind of the node.
	Kind() Kind

	// Equal reports structural equality with another node. Nodes of
	// different kinds are never equal.
	Equal(other Element) bool

	appendCompact(dst []byte) []byte
	appendPretty(dst []byte, depth int, indent byte) []byte
	clone(a *Arena) Element
}

// Enforce the closed set.
var (
	_ Element = (*Value)(nil)
	_ Element = (*Array)(nil)
	_ Element = (*Object)(nil)
)

// AsValue narrows el to a *Value.
//
// Returns ErrNullRef if el is nil, ErrType if el is not a Value.
func AsValue(el Element) (*Value, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: no node to narrow", ErrNullRef)
	}
	v, ok := el.(*Value)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a value", ErrType, el.Kind())
	}

	return v, nil
}

// AsArray narrows el to an *Array.
//
// Returns ErrNullRef if el is nil, ErrType if el is not an Array.
func AsArray(el Element) (*Array, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: no node to narrow", ErrNullRef)
	}
	a, ok := el.(*Array)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an array", ErrType, el.Kind())
	}

	return a, nil
}

// AsObject narrows el to an *Object.
//
// Returns ErrNullRef if el is nil, ErrType if el is not an Object.
func AsObject(el Element) (*Object, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: no node to narrow", ErrNullRef)
	}
	o, ok := el.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an object", ErrType, el.Kind())
	}

	return o, nil
}

// Clone returns a deep copy of el with all nodes allocated from a.
// A nil arena clones onto the heap. Cloning a nil Element yields nil.
func Clone(el Element, a *Arena) Element {
	if el == nil {
		return nil
	}

	return el.clone(a)
}
