package bintrie

import (
	"fmt"
	"strings"
)

const (
	// NodeWidth is the number of slots in a node (the trie fan-out).
	NodeWidth = 16

	groupBits = 4
	groupMask = NodeWidth - 1 // 0b_1111

	leafBitOffset        = 31
	leafBitMask   uint32 = 1 << leafBitOffset // 0b_1000..0
	itemMask      uint32 = leafBitMask - 1    // 0b_0111..1

	// MaxItem is the largest value that can be stored in a Trie.
	MaxItem = itemMask

	// maxNodes is the arena size at which the next reference would collide
	// with the leaf bit.
	maxNodes = 1 << leafBitOffset

	emptySlot uint32 = 0
)

// node is a single level of branching: 16 slots of one cache line.
type node [NodeWidth]uint32

func isLeaf(slot uint32) bool {
	return slot&leafBitMask != 0
}

func leafSlot(item uint32) uint32 {
	return item | leafBitMask
}

func leafItem(slot uint32) uint32 {
	return slot & itemMask
}

// occupancy returns a 16-bit mask of the non-empty slots of a node together
// with the subset holding leaves.
func (n *node) occupancy() (used, leaves uint16) {
	for i, slot := range n {
		if slot == emptySlot {
			continue
		}
		used |= 1 << i
		if isLeaf(slot) {
			leaves |= 1 << i
		}
	}

	return used, leaves
}

func (n *node) String() string {
	var b strings.Builder

	b.WriteString("<bintrie|Node")

	for i, slot := range n {
		switch {
		case slot == emptySlot:
			continue
		case isLeaf(slot):
			b.WriteString(fmt.Sprintf("|%x:leaf=%d", i, leafItem(slot)))
		default:
			b.WriteString(fmt.Sprintf("|%x:ref=#%d", i, slot))
		}
	}

	b.WriteByte('>')

	return b.String()
}
