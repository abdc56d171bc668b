// Package node implements the jdom document model: an owned tree of JSON
// nodes with pooled allocation, structural equality, and compact or indented
// serialization.
//
// # Node Kinds
//
// Every node in a document is exactly one of three kinds, all implementing
// the closed Element interface:
//
//   - Value: a tagged union over null, bool, int32, float32, or string
//   - Array: an ordered sequence of owned child nodes
//   - Object: a hash-backed mapping from unique string keys to owned nodes
//
// Narrowing an Element to its concrete kind goes through AsValue, AsArray,
// and AsObject, which return ErrType on a kind mismatch instead of panicking.
//
// # Ownership
//
// Each node is owned by exactly one parent: an Array slot, an Object entry,
// or a caller-held root. Dropping the root releases the whole tree through
// ordinary garbage collection; arenas built with WithFreeList can additionally
// recycle nodes explicitly via Arena.Free.
//
// # Arena Allocation
//
// JSON trees consist of millions of uniformly small nodes, so nodes are
// carved out of per-kind slab pools owned by an Arena rather than allocated
// individually. An Arena is an explicit value created per parse (or supplied
// by the caller) and is NOT safe for concurrent use; concurrent parses must
// use one arena each.
//
// All construction goes through Arena factory methods:
//
//	arena, _ := node.NewArena()
//	obj := arena.NewObject()
//	obj.Insert("enabled", arena.NewBool(true))
//	obj.Insert("count", arena.NewInt(3))
//	text := node.Serialize(obj)
//
// A nil *Arena is valid and falls back to plain heap allocation, so the model
// is usable without pooling.
//
// # Object Key Order
//
// Object iteration and serialization order is unspecified: entries live in an
// open-addressed hash table bucketed by xxHash64 of the key. This is a
// deliberate performance trade-off; callers must not rely on any particular
// order.
package node
