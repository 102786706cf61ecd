// Package bintrie defines an in-memory 16-way trie over 31-bit items.
//
// The trie never stores keys. A caller describes every item through a Key
// that yields the item's 4-bit groups one at a time, and (for insertion
// only) a Lookup that reproduces the groups of an item stored earlier.
//
// All nodes live in a single append-only arena. A node is a fixed array of
// 16 uint32 slots (64 bytes, one cache line) and is addressed by its index
// in the arena. Node 0 is the root.
//
// Slot layout:
// -----------
//
//   - Empty:
//
//     [            32:31-00             ]
//     <00000000000000000000000000000000>
//
//   - Leaf:
//
//     [ 1:31 ] [           31:30-00            ]
//     <1:leaf> <III...III:item>
//
//   - Internal reference:
//
//     [ 1:31 ] [           31:30-00            ]
//     <0:ref > <NNN...NNN:arena-index (never 0)>
//
// The root can never be referenced by a slot, so a zero slot is always empty.
//
// Example trie (depth 4, group keys written as nibble strings):
// ------------------------------------------------------------
//
//	[root] --0--> [#1] --0--> leaf:3   (key 0,0,0,0)
//	   |             `--1--> leaf:5   (key 0,1,0,0)
//	   `--7--> leaf:9                 (key 7,...)
//
// Traversal:
// ---------
//
//   - Get follows one slot per group and stops at the first leaf or empty slot;
//   - Items yields every stored item in arena/slot order (not key order);
//   - Explore walks only the slots a Heuristic nominates, deriving a fresh
//     heuristic state for every subtree it enters.
//
// Both traversals keep an explicit stack, so Go's call stack does not grow
// with the configured depth.
//
// Concurrency:
// -----------
//
// A Trie has no internal locking. Any number of Get/Items/Explore callers may
// share it, but Insert requires exclusive access.
package bintrie
