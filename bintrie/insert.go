package bintrie

// Insert stores an item whose groups are produced by key. lookup must be
// able to reproduce the groups of any item stored before.
//
// Every group is consulted only until the item finds an empty slot. When
// the item meets a leaf, the leaf is pushed down into a new node and the
// descent continues, so items sharing a long prefix build a chain of nodes.
// At the last group (Depth()-1) an occupied slot is never split: the item
// is dropped and Insert returns false.
//
// Insert does not compare items. Inserting the same item twice with the
// same key allocates a node per group until the depth is exhausted.
//
// Insert panics with ErrItemRange if the item has bit 31 set, with
// ErrGroupRange if key or lookup returns a group above 15 and with
// ErrCapacity if the arena cannot address another node.
func (t *Trie) Insert(item uint32, key Key, lookup Lookup) bool {
	checkItem(item)

	return t.insert(item, checkedKey{key}, checkedLookup{lookup})
}

// InsertUnchecked is Insert without argument validation. The item must not
// have bit 31 set and every group must be below 16; otherwise the resulting
// trie content is unspecified. ErrCapacity is still enforced.
func (t *Trie) InsertUnchecked(item uint32, key Key, lookup Lookup) bool {
	return t.insert(item, key, lookup)
}

func (t *Trie) insert(item uint32, key Key, lookup Lookup) bool {
	var (
		a    = &t.arena
		idx  = uint32(0) // current node
		last = t.depth - 1
	)

	for n := uint32(0); n < last; n++ {
		var (
			pos  = key.Group(n)
			slot = *a.slot(idx, pos)
		)

		switch {
		case slot == emptySlot:
			// free spot - store a leaf
			*a.slot(idx, pos) = leafSlot(item)
			t.size++

			return true

		case isLeaf(slot):
			// collision - move the existing leaf into a new node
			var next node

			next[lookup.Group(leafItem(slot), n+1)&groupMask] = slot

			ref := a.alloc(next)

			// the arena may have moved, re-resolve the parent slot
			*a.slot(idx, pos) = ref
			idx = ref

		default:
			idx = slot
		}
	}

	// the last group never splits
	pos := key.Group(last)

	if p := a.slot(idx, pos); *p == emptySlot {
		*p = leafSlot(item)
		t.size++

		return true
	}

	t.log.WithField("item", item).Debug("item dropped at the depth boundary")

	return false
}
