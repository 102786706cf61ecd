package bintrie

import "fmt"

// Key yields the 4-bit groups of the item being inserted or looked up.
// Group is called with n = 0, 1, 2, ... and must return a value below 16.
type Key interface {
	Group(n uint32) uint8
}

// Lookup yields the 4-bit groups of an item that is already stored.
// Insert uses it to move an existing leaf one level down on a collision,
// so it must agree with the Key the item was inserted with.
type Lookup interface {
	Group(item, n uint32) uint8
}

// KeyFunc adapts a plain function to the Key interface.
type KeyFunc func(n uint32) uint8

// Group calls f(n).
func (f KeyFunc) Group(n uint32) uint8 {
	return f(n)
}

// LookupFunc adapts a plain function to the Lookup interface.
type LookupFunc func(item, n uint32) uint8

// Group calls f(item, n).
func (f LookupFunc) Group(item, n uint32) uint8 {
	return f(item, n)
}

// checkedKey panics on groups outside [0, 16).
type checkedKey struct {
	key Key
}

func (k checkedKey) Group(n uint32) uint8 {
	return checkGroup(k.key.Group(n), n)
}

// checkedLookup panics on groups outside [0, 16).
type checkedLookup struct {
	lookup Lookup
}

func (l checkedLookup) Group(item, n uint32) uint8 {
	return checkGroup(l.lookup.Group(item, n), n)
}

func checkGroup(g uint8, n uint32) uint8 {
	if g >= NodeWidth {
		panic(fmt.Errorf("%w: group %d is %d", ErrGroupRange, n, g))
	}

	return g
}

func checkItem(item uint32) {
	if item&leafBitMask != 0 {
		panic(fmt.Errorf("%w: %#x has the leaf bit set", ErrItemRange, item))
	}
}
