package bintrie

import (
	"fmt"
	"math/bits"

	"github.com/sirupsen/logrus"
)

const defaultNodeCapacity = 256

// arena owns every node of a trie. Nodes are addressed by their index and
// only ever appended, so an index stays valid while the backing slice moves.
type arena struct {
	nodes []node
	limit uint64 // nodes the arena may hold
	log   logrus.FieldLogger
}

func newArena(preAlloc int, log logrus.FieldLogger) arena {
	if preAlloc <= 0 {
		preAlloc = defaultNodeCapacity
	}

	nodes := make([]node, 1, preAlloc) // the root

	return arena{nodes: nodes, limit: maxNodes, log: log}
}

// len returns the number of allocated nodes including the root.
func (a *arena) len() int {
	return len(a.nodes)
}

// alloc appends a node and returns its index.
// It panics when the index would not fit into a slot.
func (a *arena) alloc(n node) uint32 {
	idx := len(a.nodes)

	if uint64(idx) >= a.limit {
		err := fmt.Errorf("%w: arena holds %d nodes", ErrCapacity, idx)
		a.log.WithError(err).Error("cannot allocate a trie node")
		panic(err)
	}

	a.nodes = append(a.nodes, n)

	if bits.OnesCount(uint(idx)) == 1 && idx >= 1<<16 {
		a.log.WithField("nodes", idx+1).Debug("arena grew")
	}

	return uint32(idx)
}

// slot returns a pointer to the given slot of the given node.
func (a *arena) slot(idx uint32, pos uint8) *uint32 {
	return &a.nodes[idx][pos&groupMask]
}

func (a *arena) clone() arena {
	nodes := make([]node, len(a.nodes), cap(a.nodes))
	copy(nodes, a.nodes)

	return arena{nodes: nodes, limit: a.limit, log: a.log}
}
