package board

import "iter"

// SquareIter enumerates squares in ascending linear order from a start square
// up to an exclusive bound. It is forward-only and cannot be restarted.
type SquareIter[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S]] struct {
	current Square[G, S, F, R]
	max     Square[G, S, F, R]
}

// NewSquareIter returns an iterator over [current, end).
func NewSquareIter[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S]](current, end Square[G, S, F, R]) *SquareIter[G, S, F, R] {
	return &SquareIter[G, S, F, R]{current: current, max: end}
}

// AllSquares returns an iterator over every square of variant G.
func AllSquares[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S]]() *SquareIter[G, S, F, R] {
	side := sideLen[G, S, F, R]()
	return NewSquareIter(FromRaw[G, S, F, R](0), FromRaw[G, S, F, R](side * side))
}

// Next returns the current square and advances, or false once the bound is reached.
func (it *SquareIter[G, S, F, R]) Next() (Square[G, S, F, R], bool) {
	if it.current.pos >= it.max.pos {
		return Square[G, S, F, R]{}, false
	}
	sq := it.current
	it.current.pos++
	return sq, true
}

// All drains the iterator as a range-over-func sequence.
func (it *SquareIter[G, S, F, R]) All() iter.Seq[Square[G, S, F, R]] {
	return func(yield func(Square[G, S, F, R]) bool) {
		for sq, ok := it.Next(); ok; sq, ok = it.Next() {
			if !yield(sq) {
				return
			}
		}
	}
}
