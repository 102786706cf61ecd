package main

import (
	"iter"

	"github.com/aglyzov/go-bintrie/bintrie"
)

// levels is the number of 4-bit groups in a 32-bit Morton code.
const levels = 8

// Point is a position on a 65536x65536 grid.
type Point struct {
	X, Y uint16
}

// Morton interleaves the coordinates: bit 2i is X bit i, bit 2i+1 is Y bit i.
func (p Point) Morton() uint32 {
	return spread(p.X) | spread(p.Y)<<1
}

// spread moves the bits of v to the even positions of a uint32.
func spread(v uint16) uint32 {
	x := uint32(v)
	x = (x | x<<8) & 0x00FF_00FF
	x = (x | x<<4) & 0x0F0F_0F0F
	x = (x | x<<2) & 0x3333_3333
	x = (x | x<<1) & 0x5555_5555

	return x
}

// group returns the n-th nibble of a Morton code counting from the top, so
// every group halves a cell twice along each axis. Groups past the code are 0.
func group(code, n uint32) uint8 {
	if n >= levels {
		return 0
	}
	return uint8(code>>(28-4*n)) & 0xF
}

// Points is a point set indexed by its position in the slice.
type Points []Point

// Key returns the Morton groups of point id.
func (ps Points) Key(id uint32) bintrie.KeyFunc {
	code := ps[id].Morton()

	return func(n uint32) uint8 {
		return group(code, n)
	}
}

// Group returns group n of the Morton code of a stored point.
func (ps Points) Group(id, n uint32) uint8 {
	return group(ps[id].Morton(), n)
}

// Box is an inclusive rectangle.
type Box struct {
	Min, Max Point
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Point) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X && b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// boxSearch nominates the sub-cells of the current cell overlapping a box.
type boxSearch struct {
	box   Box
	x, y  uint32 // cell origin
	level uint32
}

func newBoxSearch(box Box) boxSearch {
	return boxSearch{box: box}
}

// subCell returns the origin and the side of the sub-cell under nibble c.
func (s boxSearch) subCell(c uint8) (x, y, side uint32) {
	side = 1 << (14 - 2*s.level)

	// nibble bits: 0:x-low 1:y-low 2:x-high 3:y-high
	var (
		dx = uint32(c>>2&1)<<1 | uint32(c&1)
		dy = uint32(c>>3&1)<<1 | uint32(c>>1&1)
	)

	return s.x + dx*side, s.y + dy*side, side
}

func (s boxSearch) Candidates() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		if s.level >= levels {
			return
		}

		var (
			minX, minY = uint32(s.box.Min.X), uint32(s.box.Min.Y)
			maxX, maxY = uint32(s.box.Max.X), uint32(s.box.Max.Y)
		)

		for c := uint8(0); c < bintrie.NodeWidth; c++ {
			x, y, side := s.subCell(c)

			if x <= maxX && minX < x+side && y <= maxY && minY < y+side && !yield(c) {
				return
			}
		}
	}
}

func (s boxSearch) Descend(c uint8) boxSearch {
	s.x, s.y, _ = s.subCell(c)
	s.level++

	return s
}

// Index stores point ids in a trie keyed by their Morton codes.
type Index struct {
	points Points
	trie   *bintrie.Trie
}

// NewIndex indexes every point and returns the index together with the number
// of points dropped as duplicates.
func NewIndex(points Points, opts ...bintrie.Option) (*Index, int) {
	var (
		idx = &Index{
			points: points,
			trie:   bintrie.New(append([]bintrie.Option{bintrie.WithDepth(levels)}, opts...)...),
		}
		dropped int
	)

	for id := range points {
		// duplicate coordinates share the whole key and get dropped
		if !idx.trie.Insert(uint32(id), points.Key(uint32(id)), points) {
			dropped++
		}
	}

	return idx, dropped
}

// Within returns the ids of the indexed points inside the box.
func (idx *Index) Within(box Box) []uint32 {
	var ids []uint32

	for id := range bintrie.Explore(idx.trie, newBoxSearch(box)) {
		// a leaf above the bottom level only proves its cell overlaps the box
		if box.Contains(idx.points[id]) {
			ids = append(ids, id)
		}
	}

	return ids
}

// Nearest returns the id of the indexed point closest to p, growing a
// search box around p until it holds a point.
func (idx *Index) Nearest(p Point) (uint32, bool) {
	if idx.trie.Len() == 0 {
		return 0, false
	}

	for radius := uint32(1); ; radius <<= 1 {
		var (
			box  = around(p, radius)
			best uint32
			dist = ^uint64(0)
		)

		for id := range bintrie.ExploreUnchecked(idx.trie, newBoxSearch(box)) {
			if d := distance(p, idx.points[id]); d < dist {
				best, dist = id, d
			}
		}

		// a point found within the box may still lose to one just outside
		// it, unless it lies within the inscribed circle
		if dist <= uint64(radius)*uint64(radius) || radius > 1<<16 {
			return best, dist != ^uint64(0)
		}
	}
}

func around(p Point, radius uint32) Box {
	clamp := func(v int64) uint16 {
		switch {
		case v < 0:
			return 0
		case v > 0xFFFF:
			return 0xFFFF
		}
		return uint16(v)
	}

	r := int64(radius)

	return Box{
		Min: Point{clamp(int64(p.X) - r), clamp(int64(p.Y) - r)},
		Max: Point{clamp(int64(p.X) + r), clamp(int64(p.Y) + r)},
	}
}

func distance(a, b Point) uint64 {
	dx := int64(a.X) - int64(b.X)
	dy := int64(a.Y) - int64(b.Y)

	return uint64(dx*dx + dy*dy)
}
