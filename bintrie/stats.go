package bintrie

import (
	"fmt"
	"io"
	"strings"

	"github.com/hideo55/go-popcount"
)

// Stats describes the shape of a trie.
type Stats struct {
	Nodes    int // including the root
	Leaves   int
	Refs     int // internal slots
	Empty    int // empty slots
	MaxLevel int // level of the deepest node, the root is at 0
}

// Stats walks the whole trie and counts its slots.
func (t *Trie) Stats() Stats {
	type level struct {
		node  uint32
		level int
	}

	var (
		st      = Stats{Nodes: t.arena.len()}
		nodes   = t.arena.nodes
		toVisit = []level{{0, 0}}
	)

	for l := len(toVisit); l > 0; l = len(toVisit) {
		cur := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if cur.level > st.MaxLevel {
			st.MaxLevel = cur.level
		}

		n := &nodes[cur.node]
		used, leaves := n.occupancy()

		var (
			numUsed   = int(popcount.Count(uint64(used)))
			numLeaves = int(popcount.Count(uint64(leaves)))
		)

		st.Leaves += numLeaves
		st.Refs += numUsed - numLeaves
		st.Empty += NodeWidth - numUsed

		for i, slot := range n {
			if used&^leaves&(1<<i) != 0 {
				toVisit = append(toVisit, level{slot, cur.level + 1})
			}
		}
	}

	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("<bintrie|Stats|nodes:%d|leaves:%d|refs:%d|empty:%d|levels:%d>",
		st.Nodes, st.Leaves, st.Refs, st.Empty, st.MaxLevel+1)
}

// Dump writes the node tree to w, one node per line, children indented
// under their parent.
func (t *Trie) Dump(w io.Writer) error {
	type entry struct {
		node   uint32
		indent int
	}

	var (
		nodes   = t.arena.nodes
		toVisit = []entry{{0, 0}}
	)

	for l := len(toVisit); l > 0; l = len(toVisit) {
		cur := toVisit[l-1]
		toVisit = toVisit[:l-1]

		n := &nodes[cur.node]

		_, err := fmt.Fprintf(w, "%s#%d %v\n", strings.Repeat("  ", cur.indent), cur.node, n)
		if err != nil {
			return err
		}

		// push in reverse so the lower slots are printed first
		for i := NodeWidth - 1; i >= 0; i-- {
			if slot := n[i]; slot != emptySlot && !isLeaf(slot) {
				toVisit = append(toVisit, entry{slot, cur.indent + 1})
			}
		}
	}

	return nil
}
