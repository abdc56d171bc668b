package node

import "fmt"

// Array is an ordered sequence of owned child nodes.
//
// Every slot holds a valid node: Erase removes a slot entirely and shifts
// later elements down, so there are no holes. An element appended to an
// array is exclusively owned by it until erased or replaced.
type Array struct {
	elems []Element
}

// Kind reports KindArray.
func (arr *Array) Kind() Kind { return KindArray }

// Size returns the number of elements.
func (arr *Array) Size() int { return len(arr.elems) }

// Empty reports whether the array has no elements.
func (arr *Array) Empty() bool { return len(arr.elems) == 0 }

// Elements returns the backing slice of child nodes.
// The slice is owned by the array; callers must not modify it.
func (arr *Array) Elements() []Element { return arr.elems }

// Append adds el to the end of the array, taking ownership of it.
// A nil element is ignored.
func (arr *Array) Append(el Element) {
	if el == nil {
		return
	}
	arr.elems = append(arr.elems, el)
}

// At returns the element at index i, or ErrOutOfRange when i is past the
// end of the array.
func (arr *Array) At(i int) (Element, error) {
	if i < 0 || i >= len(arr.elems) {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, len(arr.elems))
	}

	return arr.elems[i], nil
}

// Set replaces the element at index i with el and returns the node it
// displaced, so callers using a free-list arena can recycle it.
// Returns ErrOutOfRange when i is past the end of the array.
func (arr *Array) Set(i int, el Element) (Element, error) {
	if i < 0 || i >= len(arr.elems) {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, len(arr.elems))
	}
	if el == nil {
		return nil, fmt.Errorf("%w: cannot set nil element", ErrNullRef)
	}

	prev := arr.elems[i]
	arr.elems[i] = el

	return prev, nil
}

// Erase removes the element at index i, shifting later elements down by one,
// and returns the removed node. Returns ErrOutOfRange when i is past the end.
func (arr *Array) Erase(i int) (Element, error) {
	if i < 0 || i >= len(arr.elems) {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, len(arr.elems))
	}

	removed := arr.elems[i]
	copy(arr.elems[i:], arr.elems[i+1:])
	arr.elems[len(arr.elems)-1] = nil
	arr.elems = arr.elems[:len(arr.elems)-1]

	return removed, nil
}

// Contains reports whether the array holds an element structurally equal
// to el.
func (arr *Array) Contains(el Element) bool {
	if el == nil {
		return false
	}
	for _, child := range arr.elems {
		if child.Equal(el) {
			return true
		}
	}

	return false
}

// Equal reports element-wise structural equality: sizes must match, then
// each pair of elements at the same index must be equal.
func (arr *Array) Equal(other Element) bool {
	oa, ok := other.(*Array)
	if !ok || oa == nil {
		return false
	}
	if len(arr.elems) != len(oa.elems) {
		return false
	}
	for i, child := range arr.elems {
		if !child.Equal(oa.elems[i]) {
			return false
		}
	}

	return true
}

func (arr *Array) appendCompact(dst []byte) []byte {
	dst = append(dst, '[')
	for i, child := range arr.elems {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = child.appendCompact(dst)
	}

	return append(dst, ']')
}

func (arr *Array) appendPretty(dst []byte, depth int, indent byte) []byte {
	if len(arr.elems) == 0 {
		return append(dst, '[', ']')
	}

	dst = append(dst, '[', '\n')
	for i, child := range arr.elems {
		if i > 0 {
			dst = append(dst, ',', '\n')
		}
		dst = appendIndent(dst, depth+1, indent)
		dst = child.appendPretty(dst, depth+1, indent)
	}
	dst = append(dst, '\n')
	dst = appendIndent(dst, depth, indent)

	return append(dst, ']')
}

func (arr *Array) clone(a *Arena) Element {
	na := a.NewArray()
	if len(arr.elems) > 0 {
		na.elems = make([]Element, 0, len(arr.elems))
		for _, child := range arr.elems {
			na.elems = append(na.elems, child.clone(a))
		}
	}

	return na
}
