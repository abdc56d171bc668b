package node

import (
	"fmt"

	"github.com/arloliu/jdom/internal/options"
)

// DefaultSlabSize is the number of node slots carved from the heap at once
// by each per-kind pool.
const DefaultSlabSize = 1024

// nodePool hands out consecutive slots from large slabs so that allocating
// millions of small nodes costs one heap allocation per slab instead of one
// per node. Individual slot release is a no-op unless recycling is enabled,
// in which case freed nodes go on a free list and are reused before a new
// slab is carved.
type nodePool[T any] struct {
	slabs    [][]T
	used     int // slots handed out from the last slab
	slabSize int
	free     []*T
	recycle  bool
}

func (p *nodePool[T]) get() *T {
	if p.recycle && len(p.free) > 0 {
		x := p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]

		return x
	}

	if len(p.slabs) == 0 || p.used == p.slabSize {
		if p.slabSize <= 0 {
			p.slabSize = DefaultSlabSize
		}
		p.slabs = append(p.slabs, make([]T, p.slabSize))
		p.used = 0
	}

	slab := p.slabs[len(p.slabs)-1]
	x := &slab[p.used]
	p.used++

	return x
}

func (p *nodePool[T]) put(x *T) {
	if !p.recycle || x == nil {
		return
	}

	var zero T
	*x = zero
	p.free = append(p.free, x)
}

func (p *nodePool[T]) reset() {
	p.slabs = nil
	p.used = 0
	p.free = nil
}

// Arena bundles one slab pool per node kind and is the factory for every
// node in a document.
//
// An Arena is an explicit value: create one per parse, or share one across
// documents whose lifetimes end together and reclaim everything at once with
// Reset. An Arena is NOT safe for concurrent use; concurrent parses must
// use one arena each, or add external locking.
//
// A nil *Arena is a valid receiver for all factory methods and falls back to
// plain heap allocation.
type Arena struct {
	values  nodePool[Value]
	arrays  nodePool[Array]
	objects nodePool[Object]
}

// ArenaOption configures an Arena.
type ArenaOption = options.Option[*Arena]

// WithSlabSize sets the number of node slots per slab (default
// DefaultSlabSize). Larger slabs amortize better for big documents; smaller
// slabs waste less on tiny ones.
func WithSlabSize(slots int) ArenaOption {
	return func(a *Arena) error {
		if slots <= 0 {
			return fmt.Errorf("slab size must be positive, got %d", slots)
		}
		a.values.slabSize = slots
		a.arrays.slabSize = slots
		a.objects.slabSize = slots

		return nil
	}
}

// WithFreeList enables per-kind free lists: nodes released via Free are
// recycled before new slab memory is carved. Without it Free is a no-op and
// all memory is reclaimed only by Reset (or the garbage collector).
func WithFreeList() ArenaOption {
	return options.NoError(func(a *Arena) {
		a.values.recycle = true
		a.arrays.recycle = true
		a.objects.recycle = true
	})
}

// NewArena creates an arena with the given options.
func NewArena(opts ...ArenaOption) (*Arena, error) {
	a := &Arena{}
	a.values.slabSize = DefaultSlabSize
	a.arrays.slabSize = DefaultSlabSize
	a.objects.slabSize = DefaultSlabSize

	if err := options.Apply(a, opts...); err != nil {
		return nil, fmt.Errorf("invalid arena option: %w", err)
	}

	return a, nil
}

func (a *Arena) newValue() *Value {
	if a == nil {
		return &Value{}
	}

	return a.values.get()
}

// NewNull creates a null Value.
func (a *Arena) NewNull() *Value {
	v := a.newValue()
	*v = Value{kind: NullValue}

	return v
}

// NewBool creates a bool Value.
func (a *Arena) NewBool(b bool) *Value {
	v := a.newValue()
	*v = Value{kind: BoolValue, b: b}

	return v
}

// NewInt creates an int Value.
func (a *Arena) NewInt(i int32) *Value {
	v := a.newValue()
	*v = Value{kind: IntValue, i: i}

	return v
}

// NewFloat creates a float Value.
func (a *Arena) NewFloat(f float32) *Value {
	v := a.newValue()
	*v = Value{kind: FloatValue, f: f}

	return v
}

// NewString creates a string Value.
func (a *Arena) NewString(s string) *Value {
	v := a.newValue()
	*v = Value{kind: StringValue, s: s}

	return v
}

// NewArray creates an Array owning the given elements, in order.
func (a *Arena) NewArray(elems ...Element) *Array {
	var arr *Array
	if a == nil {
		arr = &Array{}
	} else {
		arr = a.arrays.get()
		*arr = Array{}
	}
	for _, el := range elems {
		arr.Append(el)
	}

	return arr
}

// NewObject creates an empty Object.
func (a *Arena) NewObject() *Object {
	if a == nil {
		return &Object{}
	}
	obj := a.objects.get()
	obj.m.reset()

	return obj
}

// Free recursively returns el and all nodes it owns to the arena free lists.
// It is a no-op unless the arena was built WithFreeList, and is never
// required for correctness: unreferenced nodes are garbage collected. The
// caller must not use el or any node it owned afterwards.
func (a *Arena) Free(el Element) {
	if a == nil || el == nil {
		return
	}

	switch n := el.(type) {
	case *Value:
		a.values.put(n)
	case *Array:
		for _, child := range n.elems {
			a.Free(child)
		}
		a.arrays.put(n)
	case *Object:
		n.m.each(func(_ string, child Element) bool {
			a.Free(child)
			return true
		})
		a.objects.put(n)
	}
}

// Reset drops all slabs and free lists, reclaiming every node allocated from
// the arena at once. Nodes handed out before Reset must no longer be used.
func (a *Arena) Reset() {
	if a == nil {
		return
	}
	a.values.reset()
	a.arrays.reset()
	a.objects.reset()
}
