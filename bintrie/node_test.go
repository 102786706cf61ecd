package bintrie

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestNodeSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uintptr(64), unsafe.Sizeof(node{}), "a node should fill one cache line")
}

func TestSlotEncoding(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Item    uint32
		ExpSlot uint32
	}{
		{0, 0x8000_0000},
		{1, 0x8000_0001},
		{5, 0x8000_0005},
		{0x1234_5678, 0x9234_5678},
		{MaxItem, 0xFFFF_FFFF},
	} {
		name := fmt.Sprintf("%#x", tcase.Item)

		t.Run(name, func(t *testing.T) {
			slot := leafSlot(tcase.Item)

			assert.Equal(t, tcase.ExpSlot, slot)
			assert.True(t, isLeaf(slot))
			assert.NotEqual(t, emptySlot, slot, "a leaf is never empty, even for item 0")
			assert.Equal(t, tcase.Item, leafItem(slot))
		})
	}

	// references are plain indices
	for _, ref := range []uint32{1, 2, 0x7FFF_FFFF} {
		assert.False(t, isLeaf(ref), "%#x", ref)
	}
}

func TestNodeOccupancy(t *testing.T) {
	t.Parallel()

	var n node

	used, leaves := n.occupancy()
	assert.Zero(t, used)
	assert.Zero(t, leaves)

	n[0] = leafSlot(0)
	n[3] = 7 // reference to node #7
	n[15] = leafSlot(42)

	used, leaves = n.occupancy()
	assert.Equal(t, uint16(0b_1000_0000_0000_1001), used)
	assert.Equal(t, uint16(0b_1000_0000_0000_0001), leaves)

	assert.Equal(t, "<bintrie|Node|0:leaf=0|3:ref=#7|f:leaf=42>", n.String())
}
