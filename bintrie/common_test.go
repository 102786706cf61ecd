package bintrie

import (
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// nibbles returns a Key reading the groups of v from the least significant
// end. Groups past the 64th bit are zero.
func nibbles(v uint64) KeyFunc {
	return func(n uint32) uint8 {
		if n >= 64/groupBits {
			return 0
		}
		return uint8(v>>(groupBits*n)) & groupMask
	}
}

// groups returns a Key replaying the given groups, then zeroes.
func groups(gs ...uint8) KeyFunc {
	return func(n uint32) uint8 {
		if int(n) < len(gs) {
			return gs[n]
		}
		return 0
	}
}

// itemLookup reproduces nibbles(item) for stored items.
var itemLookup = LookupFunc(func(item, n uint32) uint8 {
	return nibbles(uint64(item))(n)
})

// mapLookup reproduces the keys recorded for every stored item.
func mapLookup(keys map[uint32]KeyFunc) LookupFunc {
	return func(item, n uint32) uint8 {
		return keys[item](n)
	}
}

// countingKey wraps a key and counts the groups requested from it.
func countingKey(key KeyFunc, calls *int) KeyFunc {
	return func(n uint32) uint8 {
		*calls++
		return key(n)
	}
}

// requirePanicsIs runs fn and requires it to panic with an error matching target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "should panic")

		err, ok := r.(error)
		require.True(t, ok, "should panic with an error, got %#v", r)
		require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()

	fn()
}

// fakeItems returns total distinct random items.
func fakeItems(seed int64, total int) []uint32 {
	var (
		fake  = gofakeit.New(seed)
		seen  = make(map[uint32]struct{}, total)
		items = make([]uint32, 0, total)
	)

	for len(items) < total {
		item := fake.Uint32() & MaxItem
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		items = append(items, item)
	}

	return items
}
