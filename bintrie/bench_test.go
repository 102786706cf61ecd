package bintrie

import (
	"testing"
)

const benchSeed = 1234567890

func BenchmarkGoMap_Set(b *testing.B) {
	var (
		items = fakeItems(benchSeed, b.N)
		m     = make(map[uint32]struct{})
	)

	b.ResetTimer()

	for _, item := range items {
		m[item] = struct{}{}
	}
}

func BenchmarkGoMap_Get(b *testing.B) {
	var (
		items = fakeItems(benchSeed, b.N)
		m     = make(map[uint32]struct{})
	)

	for _, item := range items {
		m[item] = struct{}{}
	}

	b.ResetTimer()

	for _, item := range items {
		_ = m[item]
	}
}

func BenchmarkBinTrie_Insert(b *testing.B) {
	var (
		items = fakeItems(benchSeed, b.N)
		tr    = New()
	)

	b.ResetTimer()

	for _, item := range items {
		tr.Insert(item, nibbles(uint64(item)), itemLookup)
	}
}

func BenchmarkBinTrie_InsertUnchecked(b *testing.B) {
	var (
		items = fakeItems(benchSeed, b.N)
		tr    = New()
	)

	b.ResetTimer()

	for _, item := range items {
		tr.InsertUnchecked(item, nibbles(uint64(item)), itemLookup)
	}
}

func BenchmarkBinTrie_Get(b *testing.B) {
	var (
		items = fakeItems(benchSeed, b.N)
		tr    = New()
	)

	for _, item := range items {
		tr.Insert(item, nibbles(uint64(item)), itemLookup)
	}

	b.ResetTimer()

	for _, item := range items {
		_, _ = tr.Get(nibbles(uint64(item)))
	}
}

func BenchmarkBinTrie_GetUnchecked(b *testing.B) {
	var (
		items = fakeItems(benchSeed, b.N)
		tr    = New()
	)

	for _, item := range items {
		tr.Insert(item, nibbles(uint64(item)), itemLookup)
	}

	b.ResetTimer()

	for _, item := range items {
		_, _ = tr.GetUnchecked(nibbles(uint64(item)))
	}
}

func BenchmarkBinTrie_Items(b *testing.B) {
	tr := New()

	for _, item := range fakeItems(benchSeed, 100_000) {
		tr.Insert(item, nibbles(uint64(item)), itemLookup)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for range tr.Items() {
		}
	}
}
