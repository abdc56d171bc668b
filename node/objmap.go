package node

// Open-addressed hash table backing Object, bucketed by xxHash64 of the key
// with linear probing. Full keys are stored and compared on lookup, so hash
// collisions only cost extra probes. Deletions leave tombstones that are
// swept on the next rehash.
//
// Iteration walks the table in slot order, which depends on key hashes and
// insertion history: object key order is unspecified by design.

const (
	slotEmpty uint8 = iota
	slotFull
	slotTomb
)

const minTableSize = 8 // power of two

type mapEntry struct {
	hash uint64
	key  string
	el   Element
}

type elemMap struct {
	ctrl    []uint8
	entries []mapEntry
	live    int // occupied slots
	used    int // occupied + tombstones, drives rehash
}

func (m *elemMap) size() int { return m.live }

// lookup returns the slot index of key, or -1 when absent.
func (m *elemMap) lookup(key string, hash uint64) int {
	if len(m.ctrl) == 0 {
		return -1
	}

	mask := uint64(len(m.ctrl) - 1)
	for i := hash & mask; ; i = (i + 1) & mask {
		switch m.ctrl[i] {
		case slotEmpty:
			return -1
		case slotFull:
			if m.entries[i].hash == hash && m.entries[i].key == key {
				return int(i)
			}
		}
	}
}

// insert places el under key, replacing any existing entry.
// Returns the displaced element, or nil if the key was new.
func (m *elemMap) insert(key string, hash uint64, el Element) Element {
	// Keep occupancy (including tombstones) under 3/4.
	if len(m.ctrl) == 0 || (m.used+1)*4 > len(m.ctrl)*3 {
		m.rehash()
	}

	mask := uint64(len(m.ctrl) - 1)
	firstTomb := -1
	for i := hash & mask; ; i = (i + 1) & mask {
		switch m.ctrl[i] {
		case slotFull:
			if m.entries[i].hash == hash && m.entries[i].key == key {
				prev := m.entries[i].el
				m.entries[i].el = el

				return prev
			}
		case slotTomb:
			if firstTomb < 0 {
				firstTomb = int(i)
			}
		case slotEmpty:
			target := int(i)
			if firstTomb >= 0 {
				target = firstTomb
			} else {
				m.used++
			}
			m.ctrl[target] = slotFull
			m.entries[target] = mapEntry{hash: hash, key: key, el: el}
			m.live++

			return nil
		}
	}
}

// remove deletes key and returns its element, or (nil, false) when absent.
func (m *elemMap) remove(key string, hash uint64) (Element, bool) {
	i := m.lookup(key, hash)
	if i < 0 {
		return nil, false
	}

	prev := m.entries[i].el
	m.ctrl[i] = slotTomb
	m.entries[i] = mapEntry{}
	m.live--

	return prev, true
}

// each calls fn for every live entry; fn returning false stops the walk.
func (m *elemMap) each(fn func(key string, el Element) bool) {
	for i, c := range m.ctrl {
		if c != slotFull {
			continue
		}
		if !fn(m.entries[i].key, m.entries[i].el) {
			return
		}
	}
}

// rehash grows the table (or sweeps tombstones) into a fresh power-of-two
// sized table big enough to keep live entries under half occupancy.
func (m *elemMap) rehash() {
	newSize := minTableSize
	for newSize < (m.live+1)*2 {
		newSize *= 2
	}

	oldCtrl, oldEntries := m.ctrl, m.entries
	m.ctrl = make([]uint8, newSize)
	m.entries = make([]mapEntry, newSize)
	m.live = 0
	m.used = 0

	mask := uint64(newSize - 1)
	for i, c := range oldCtrl {
		if c != slotFull {
			continue
		}
		e := oldEntries[i]
		for j := e.hash & mask; ; j = (j + 1) & mask {
			if m.ctrl[j] == slotEmpty {
				m.ctrl[j] = slotFull
				m.entries[j] = e
				m.live++
				m.used++

				break
			}
		}
	}
}

func (m *elemMap) reset() {
	m.ctrl = nil
	m.entries = nil
	m.live = 0
	m.used = 0
}
