package hash

import "github.com/cespare/xxhash/v2"

// Key computes the xxHash64 of an object member key.
//
// The object map buckets entries by this hash; full keys are still stored and
// compared on lookup, so hash collisions only cost an extra probe.
func Key(key string) uint64 {
	return xxhash.Sum64String(key)
}
