package node

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectInsertAndGet(t *testing.T) {
	var a *Arena
	obj := a.NewObject()
	require.True(t, obj.Empty())

	displaced := obj.Insert("name", a.NewString("jdom"))
	require.Nil(t, displaced)
	require.Equal(t, 1, obj.Size())

	el, err := obj.Get("name")
	require.NoError(t, err)
	s, err := el.(*Value).Str()
	require.NoError(t, err)
	require.Equal(t, "jdom", s)

	_, err = obj.Get("missing")
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestObjectInsertReplaces(t *testing.T) {
	var a *Arena
	obj := a.NewObject()

	obj.Insert("k", a.NewInt(1))
	displaced := obj.Insert("k", a.NewInt(2))

	// Re-inserting an existing key keeps the size at one and hands the
	// displaced node back to the caller.
	require.Equal(t, 1, obj.Size())
	require.NotNil(t, displaced)
	require.True(t, displaced.Equal(a.NewInt(1)))

	el, err := obj.Get("k")
	require.NoError(t, err)
	require.True(t, el.Equal(a.NewInt(2)))
}

func TestObjectInsertNilIgnored(t *testing.T) {
	var a *Arena
	obj := a.NewObject()
	require.Nil(t, obj.Insert("k", nil))
	require.Equal(t, 0, obj.Size())
}

func TestObjectLookupContainsDelete(t *testing.T) {
	var a *Arena
	obj := a.NewObject()
	obj.Insert("a", a.NewInt(1))

	el, ok := obj.Lookup("a")
	require.True(t, ok)
	require.True(t, el.Equal(a.NewInt(1)))

	_, ok = obj.Lookup("b")
	require.False(t, ok)

	require.True(t, obj.Contains("a"))
	require.False(t, obj.Contains("b"))

	removed, ok := obj.Delete("a")
	require.True(t, ok)
	require.True(t, removed.Equal(a.NewInt(1)))
	require.Equal(t, 0, obj.Size())
	require.False(t, obj.Contains("a"))

	_, ok = obj.Delete("a")
	require.False(t, ok)
}

func TestObjectKeysAndRange(t *testing.T) {
	var a *Arena
	obj := a.NewObject()
	want := []string{"alpha", "beta", "gamma", "delta"}
	for i, k := range want {
		obj.Insert(k, a.NewInt(int32(i)))
	}

	keys := obj.Keys()
	sort.Strings(keys)
	sorted := append([]string(nil), want...)
	sort.Strings(sorted)
	require.Equal(t, sorted, keys)

	seen := 0
	obj.Range(func(key string, el Element) bool {
		require.True(t, obj.Contains(key))
		seen++
		return true
	})
	require.Equal(t, len(want), seen)

	// Early termination stops after the first entry.
	calls := 0
	obj.Range(func(string, Element) bool {
		calls++
		return false
	})
	require.Equal(t, 1, calls)
}

func TestObjectEqual(t *testing.T) {
	var a *Arena
	x := a.NewObject()
	x.Insert("a", a.NewInt(1))
	x.Insert("b", a.NewBool(true))

	// Equality is key-set based, insensitive to insertion order.
	y := a.NewObject()
	y.Insert("b", a.NewBool(true))
	y.Insert("a", a.NewInt(1))
	require.True(t, x.Equal(y))

	y.Insert("a", a.NewInt(2))
	require.False(t, x.Equal(y))

	z := a.NewObject()
	z.Insert("a", a.NewInt(1))
	require.False(t, x.Equal(z))
	require.False(t, x.Equal(a.NewArray()))
}

func TestObjectManyKeys(t *testing.T) {
	// Push the table through several rehash cycles.
	var a *Arena
	obj := a.NewObject()
	const n = 1000
	for i := 0; i < n; i++ {
		obj.Insert(fmt.Sprintf("key-%04d", i), a.NewInt(int32(i)))
	}
	require.Equal(t, n, obj.Size())

	for i := 0; i < n; i++ {
		el, err := obj.Get(fmt.Sprintf("key-%04d", i))
		require.NoError(t, err)
		v, err := el.(*Value).Int()
		require.NoError(t, err)
		require.Equal(t, int32(i), v)
	}

	// Delete half, then verify lookups skip over the tombstones.
	for i := 0; i < n; i += 2 {
		_, ok := obj.Delete(fmt.Sprintf("key-%04d", i))
		require.True(t, ok)
	}
	require.Equal(t, n/2, obj.Size())

	for i := 1; i < n; i += 2 {
		require.True(t, obj.Contains(fmt.Sprintf("key-%04d", i)))
	}
	for i := 0; i < n; i += 2 {
		require.False(t, obj.Contains(fmt.Sprintf("key-%04d", i)))
	}

	// Reinsert into tombstoned slots.
	for i := 0; i < n; i += 2 {
		obj.Insert(fmt.Sprintf("key-%04d", i), a.NewInt(int32(-i)))
	}
	require.Equal(t, n, obj.Size())
}
