package bintrie

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Trie is a 16-way trie of 31-bit items. The zero value is not usable,
// create one with New or NewDepth.
type Trie struct {
	arena arena
	depth uint32
	size  int
	log   logrus.FieldLogger
}

// New returns an empty Trie. Without options its depth is DefaultDepth.
func New(opts ...Option) *Trie {
	c := newConfig(opts)

	if c.depth == 0 {
		panic(fmt.Errorf("%w: got %d", ErrDepth, c.depth))
	}

	return &Trie{
		arena: newArena(c.capacity, c.log),
		depth: c.depth,
		log:   c.log,
	}
}

// NewDepth returns an empty Trie with the given maximum depth.
func NewDepth(depth uint32) *Trie {
	return New(WithDepth(depth))
}

// Depth returns the maximum number of groups consulted per key.
func (t *Trie) Depth() uint32 {
	return t.depth
}

// Len returns the number of items placed by Insert. Items dropped at the
// depth boundary are not counted.
func (t *Trie) Len() int {
	return t.size
}

// NodeCount returns the number of nodes in the arena including the root.
func (t *Trie) NodeCount() int {
	return t.arena.len()
}

// Clone returns a deep copy of the trie sharing no nodes with the original.
func (t *Trie) Clone() *Trie {
	return &Trie{
		arena: t.arena.clone(),
		depth: t.depth,
		size:  t.size,
		log:   t.log,
	}
}
