package bintrie

import (
	"fmt"
	"iter"
)

// Heuristic steers Explore through the trie.
//
// A heuristic value is the search state at one node. Candidates returns the
// slot indices worth visiting at that node, in visiting order. Explore pulls
// them one at a time and descends before asking for the next one, so a
// heuristic may narrow its choice based on what was found meanwhile.
// Descend returns the state for the subtree under slot idx.
//
// Explore keeps using a state for the sibling slots after descending, so
// Descend must not change its receiver in a way later Candidates or Descend
// calls would observe. Value types satisfy this naturally.
type Heuristic[H any] interface {
	Candidates() iter.Seq[uint8]
	Descend(idx uint8) H
}

// Explore returns a sequence of the items reachable through the slots h
// nominates. With a heuristic that nominates every slot it yields the same
// items in the same order as Items.
//
// Explore panics with ErrCandidateRange if a candidate is above 15.
func Explore[H Heuristic[H]](t *Trie, h H) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		explore(t, h, true, yield)
	}
}

// ExploreUnchecked is Explore for heuristics known to be well-formed.
// Candidates above 15 select an unspecified slot.
func ExploreUnchecked[H Heuristic[H]](t *Trie, h H) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		explore(t, h, false, yield)
	}
}

// ExploreFunc explores the slots for which pred returns true, at every node.
func (t *Trie) ExploreFunc(pred func(idx uint8) bool) iter.Seq[uint32] {
	return ExploreUnchecked(t, Predicate(pred))
}

// Predicate is a Heuristic nominating the slots it returns true for.
// It carries no state of its own: Descend hands the same function down,
// so any running state lives in the closure.
type Predicate func(idx uint8) bool

// Candidates asks the predicate about one slot at a time, in ascending order.
func (p Predicate) Candidates() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for i := uint8(0); i < NodeWidth; i++ {
			if p(i) && !yield(i) {
				return
			}
		}
	}
}

// Descend returns p itself.
func (p Predicate) Descend(uint8) Predicate {
	return p
}

// frame is a node being explored with its own heuristic state.
type frame[H any] struct {
	node  uint32
	state H
	next  func() (uint8, bool)
	stop  func()
}

func newFrame[H Heuristic[H]](idx uint32, state H) frame[H] {
	next, stop := iter.Pull(state.Candidates())

	return frame[H]{node: idx, state: state, next: next, stop: stop}
}

func checkCandidate(c uint8) {
	if c >= NodeWidth {
		panic(fmt.Errorf("%w: candidate %d", ErrCandidateRange, c))
	}
}

func explore[H Heuristic[H]](t *Trie, h H, check bool, yield func(uint32) bool) {
	var (
		nodes = t.arena.nodes
		stack = make([]frame[H], 1, 16)
	)

	stack[0] = newFrame(0, h)

	// release the pending candidate sequences on early exit or panic
	defer func() {
		for i := len(stack) - 1; i >= 0; i-- {
			stack[i].stop()
		}
	}()

	for l := len(stack); l > 0; l = len(stack) {
		top := &stack[l-1]

		idx, ok := top.next()
		if !ok {
			// no candidates left - back to the parent
			top.stop()
			stack = stack[:l-1]
			continue
		}

		if check {
			checkCandidate(idx)
		}

		slot := nodes[top.node][idx&groupMask]

		switch {
		case slot == emptySlot:
			continue
		case isLeaf(slot):
			if !yield(leafItem(slot)) {
				return
			}
		default:
			stack = append(stack, newFrame(slot, top.state.Descend(idx)))
		}
	}
}
