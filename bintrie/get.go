package bintrie

// Get returns the item found by following key from the root.
//
// The first leaf on the path is returned without consulting the remaining
// groups. An empty slot, or running out of depth, reports false.
//
// Get panics with ErrGroupRange if key returns a group above 15.
func (t *Trie) Get(key Key) (uint32, bool) {
	return t.get(checkedKey{key})
}

// GetUnchecked is Get without validation of the groups returned by key.
// Groups above 15 give an unspecified result.
func (t *Trie) GetUnchecked(key Key) (uint32, bool) {
	return t.get(key)
}

func (t *Trie) get(key Key) (uint32, bool) {
	var (
		a   = &t.arena
		idx = uint32(0)
	)

	for n := uint32(0); n < t.depth; n++ {
		slot := *a.slot(idx, key.Group(n))

		switch {
		case slot == emptySlot:
			return 0, false // not found
		case isLeaf(slot):
			return leafItem(slot), true
		}

		idx = slot
	}

	return 0, false
}
