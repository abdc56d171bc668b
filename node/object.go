package node

import (
	"fmt"

	"github.com/arloliu/jdom/internal/hash"
)

// Object maps unique string keys to owned child nodes.
//
// The backing store is an open-addressed hash table bucketed by xxHash64 of
// the key, so iteration and serialization order is unspecified, a deliberate
// performance trade-off over deterministic ordering. Callers must not rely
// on any particular key order.
type Object struct {
	m elemMap
}

// Kind reports KindObject.
func (obj *Object) Kind() Kind { return KindObject }

// Size returns the number of key/value pairs.
func (obj *Object) Size() int { return obj.m.size() }

// Empty reports whether the object has no entries.
func (obj *Object) Empty() bool { return obj.m.size() == 0 }

// Insert stores el under key, taking ownership of it. Inserting on an
// existing key replaces the prior node; the displaced node is returned so
// callers using a free-list arena can recycle it, and is nil when the key
// was new. A nil element is ignored.
func (obj *Object) Insert(key string, el Element) Element {
	if el == nil {
		return nil
	}

	return obj.m.insert(key, hash.Key(key), el)
}

// Get returns the node stored under key, or ErrInvalidKey when absent.
func (obj *Object) Get(key string) (Element, error) {
	i := obj.m.lookup(key, hash.Key(key))
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return obj.m.entries[i].el, nil
}

// Lookup returns the node stored under key and whether it exists.
func (obj *Object) Lookup(key string) (Element, bool) {
	i := obj.m.lookup(key, hash.Key(key))
	if i < 0 {
		return nil, false
	}

	return obj.m.entries[i].el, true
}

// Contains reports whether key is present.
func (obj *Object) Contains(key string) bool {
	return obj.m.lookup(key, hash.Key(key)) >= 0
}

// Delete removes key and returns the node it owned, or (nil, false) when
// the key was absent.
func (obj *Object) Delete(key string) (Element, bool) {
	return obj.m.remove(key, hash.Key(key))
}

// Keys returns all keys in unspecified order.
func (obj *Object) Keys() []string {
	keys := make([]string, 0, obj.m.size())
	obj.m.each(func(key string, _ Element) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}

// Range calls fn for each entry in unspecified order; fn returning false
// stops the iteration.
func (obj *Object) Range(fn func(key string, el Element) bool) {
	obj.m.each(fn)
}

// Equal reports structural equality: sizes must match, then every key must
// exist in the other object with a structurally equal node. A missing key
// makes the objects unequal.
func (obj *Object) Equal(other Element) bool {
	oo, ok := other.(*Object)
	if !ok || oo == nil {
		return false
	}
	if obj.m.size() != oo.m.size() {
		return false
	}

	equal := true
	obj.m.each(func(key string, el Element) bool {
		oel, found := oo.Lookup(key)
		if !found || !el.Equal(oel) {
			equal = false
			return false
		}

		return true
	})

	return equal
}

func (obj *Object) appendCompact(dst []byte) []byte {
	dst = append(dst, '{')
	first := true
	obj.m.each(func(key string, el Element) bool {
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = appendQuoted(dst, key)
		dst = append(dst, ':')
		dst = el.appendCompact(dst)

		return true
	})

	return append(dst, '}')
}

func (obj *Object) appendPretty(dst []byte, depth int, indent byte) []byte {
	if obj.m.size() == 0 {
		return append(dst, '{', '}')
	}

	dst = append(dst, '{', '\n')
	first := true
	obj.m.each(func(key string, el Element) bool {
		if !first {
			dst = append(dst, ',', '\n')
		}
		first = false
		dst = appendIndent(dst, depth+1, indent)
		dst = appendQuoted(dst, key)
		dst = append(dst, ':')
		// Containers start on their own line below the key.
		if el.Kind() != KindValue {
			dst = append(dst, '\n')
			dst = appendIndent(dst, depth+1, indent)
		}
		dst = el.appendPretty(dst, depth+1, indent)

		return true
	})
	dst = append(dst, '\n')
	dst = appendIndent(dst, depth, indent)

	return append(dst, '}')
}

func (obj *Object) clone(a *Arena) Element {
	no := a.NewObject()
	obj.m.each(func(key string, el Element) bool {
		no.m.insert(key, hash.Key(key), el.clone(a))
		return true
	})

	return no
}
