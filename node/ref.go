package node

import "fmt"

// Ref is a non-owning view over a node, used for ergonomic chained access
// and typed extraction:
//
//	root, _ := parser.Parse(data)
//	port, err := root.Field("server").At(0).Int()
//
// A Ref never manages the lifetime of the node it wraps; the owning root
// (and its arena) stay responsible for that. Failed navigation yields an
// invalid Ref that remembers the error, so chains stay short and the first
// failure surfaces from the terminal typed accessor.
type Ref struct {
	el  Element
	err error
}

// NewRef wraps el in a non-owning view.
func NewRef(el Element) Ref {
	return Ref{el: el}
}

// Element returns the wrapped node, which is nil for an invalid Ref.
func (r Ref) Element() Element { return r.el }

// IsValid reports whether the Ref wraps a node.
func (r Ref) IsValid() bool { return r.err == nil && r.el != nil }

// Err returns the navigation error carried by an invalid Ref, or nil.
func (r Ref) Err() error { return r.err }

func (r Ref) check() error {
	if r.err != nil {
		return r.err
	}
	if r.el == nil {
		return fmt.Errorf("%w: empty ref", ErrNullRef)
	}

	return nil
}

// Field navigates to the entry stored under key.
//
// The returned Ref is invalid (carrying ErrType) when the wrapped node is
// not an object, or (carrying ErrInvalidKey) when the key is absent.
func (r Ref) Field(key string) Ref {
	if err := r.check(); err != nil {
		return Ref{err: err}
	}
	obj, ok := r.el.(*Object)
	if !ok {
		return Ref{err: fmt.Errorf("%w: %s is not an object", ErrType, r.el.Kind())}
	}
	el, err := obj.Get(key)
	if err != nil {
		return Ref{err: err}
	}

	return Ref{el: el}
}

// At navigates to the element at index i.
//
// The returned Ref is invalid (carrying ErrType) when the wrapped node is
// not an array, or (carrying ErrOutOfRange) when i is past the end.
func (r Ref) At(i int) Ref {
	if err := r.check(); err != nil {
		return Ref{err: err}
	}
	arr, ok := r.el.(*Array)
	if !ok {
		return Ref{err: fmt.Errorf("%w: %s is not an array", ErrType, r.el.Kind())}
	}
	el, err := arr.At(i)
	if err != nil {
		return Ref{err: err}
	}

	return Ref{el: el}
}

// Size returns the element count for an array, the pair count for an
// object, and 1 for any scalar value (including null).
func (r Ref) Size() (int, error) {
	if err := r.check(); err != nil {
		return 0, err
	}

	switch n := r.el.(type) {
	case *Array:
		return n.Size(), nil
	case *Object:
		return n.Size(), nil
	default:
		return 1, nil
	}
}

func (r Ref) value() (*Value, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	v, ok := r.el.(*Value)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a value", ErrType, r.el.Kind())
	}

	return v, nil
}

// IsNull reports whether the Ref wraps a null Value.
func (r Ref) IsNull() bool {
	v, err := r.value()
	return err == nil && v.IsNull()
}

// IsBool reports whether the Ref wraps a bool Value.
func (r Ref) IsBool() bool {
	v, err := r.value()
	return err == nil && v.IsBool()
}

// IsInt reports whether the Ref wraps an int Value.
func (r Ref) IsInt() bool {
	v, err := r.value()
	return err == nil && v.IsInt()
}

// IsFloat reports whether the Ref wraps a float Value.
func (r Ref) IsFloat() bool {
	v, err := r.value()
	return err == nil && v.IsFloat()
}

// IsStr reports whether the Ref wraps a string Value.
func (r Ref) IsStr() bool {
	v, err := r.value()
	return err == nil && v.IsStr()
}

// Bool extracts a bool payload; ErrType unless the node is a bool Value.
func (r Ref) Bool() (bool, error) {
	v, err := r.value()
	if err != nil {
		return false, err
	}

	return v.Bool()
}

// Int extracts an int payload; a float Value is accepted and truncated
// toward zero.
func (r Ref) Int() (int32, error) {
	v, err := r.value()
	if err != nil {
		return 0, err
	}

	return v.Int()
}

// Float extracts a float payload; ErrType unless the node is a float Value.
func (r Ref) Float() (float32, error) {
	v, err := r.value()
	if err != nil {
		return 0, err
	}

	return v.Float()
}

// Str extracts a string payload; ErrType unless the node is a string Value.
func (r Ref) Str() (string, error) {
	v, err := r.value()
	if err != nil {
		return "", err
	}

	return v.Str()
}

// Serialize renders the wrapped node compactly; see node.Serialize.
func (r Ref) Serialize() (string, error) {
	if err := r.check(); err != nil {
		return "", err
	}

	return Serialize(r.el), nil
}

// PrettySerialize renders the wrapped node with indentation; see
// node.PrettySerialize.
func (r Ref) PrettySerialize(indent byte) (string, error) {
	if err := r.check(); err != nil {
		return "", err
	}

	return PrettySerialize(r.el, indent), nil
}
