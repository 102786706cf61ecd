package bintrie

import "iter"

// Items returns a sequence of every stored item.
//
// The walk is depth-first from the root and visits the slots of a node in
// ascending order, entering a child node as soon as its slot is reached.
// The order follows the trie layout rather than any key order. Each range
// over the sequence starts a fresh walk; breaking out of the loop simply
// drops it.
func (t *Trie) Items() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		t.Iter(yield)
	}
}

// cursor is a node being walked and the next slot to look at.
type cursor struct {
	node uint32
	pos  uint8
}

// Iter calls handler for every stored item in the order of Items.
// The handler can continue the walk by returning true or abort with false.
// Iter reports whether all the items were visited.
func (t *Trie) Iter(handler func(uint32) bool) bool {
	// walk the trie without function recursion
	var (
		nodes   = t.arena.nodes
		toVisit = make([]cursor, 1, 64) // starts at the root
	)

	for l := len(toVisit); l > 0; l = len(toVisit) {
		top := &toVisit[l-1]

		if top.pos == NodeWidth {
			// node exhausted - back to the parent
			toVisit = toVisit[:l-1]
			continue
		}

		slot := nodes[top.node][top.pos]
		top.pos++

		switch {
		case slot == emptySlot:
			continue
		case isLeaf(slot):
			if !handler(leafItem(slot)) {
				return false
			}
		default:
			toVisit = append(toVisit, cursor{node: slot})
		}
	}

	return true
}
