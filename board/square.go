package board

import "fmt"

// Square is a single board location encoded as one linear index.
//
// The encoding is file-major: index = file*side + rank, so File() is
// index/side and Rank() is index%side. The raw field is never exposed.
type Square[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S]] struct {
	pos S
}

// sideLen returns the side length of geometry G.
func sideLen[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S]]() S {
	var g G
	return g.SideLen()
}

// FromRaw wraps a linear index without validation. Callers must keep raw
// below side*side; use SquareAt for a checked conversion.
func FromRaw[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S]](raw S) Square[G, S, F, R] {
	return Square[G, S, F, R]{pos: raw}
}

// SquareAt wraps a linear index, failing with ErrOutOfRange if it is off the board.
func SquareAt[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S]](raw S) (Square[G, S, F, R], error) {
	sq := Square[G, S, F, R]{pos: raw}
	if !sq.Valid() {
		return sq, fmt.Errorf("%w: index %d on a %dx%d board", ErrOutOfRange, raw, sq.SideLen(), sq.SideLen())
	}
	return sq, nil
}

// NewSquare composes a square from its file and rank.
func NewSquare[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S]](file F, rank R) (Square[G, S, F, R], error) {
	side := sideLen[G, S, F, R]()
	f, r := file.ToStorage(), rank.ToStorage()
	if f >= side || r >= side {
		return Square[G, S, F, R]{}, fmt.Errorf("%w: file %v rank %v on a %dx%d board", ErrOutOfRange, file, rank, side, side)
	}
	return Square[G, S, F, R]{pos: f*side + r}, nil
}

// File returns the square's file.
func (sq Square[G, S, F, R]) File() F {
	var g G
	return g.FileFromStorage(sq.pos / g.SideLen())
}

// Rank returns the square's rank.
func (sq Square[G, S, F, R]) Rank() R {
	var g G
	return g.RankFromStorage(sq.pos % g.SideLen())
}

// Raw returns the underlying linear index.
func (sq Square[G, S, F, R]) Raw() S {
	return sq.pos
}

// SideLen returns the side length of the square's board variant.
func (sq Square[G, S, F, R]) SideLen() S {
	return sideLen[G, S, F, R]()
}

// Valid reports whether the square lies on the board.
func (sq Square[G, S, F, R]) Valid() bool {
	side := sideLen[G, S, F, R]()
	return sq.pos < side*side
}

// Offset returns the square df files and dr ranks away, and false if that
// square is off the board.
func (sq Square[G, S, F, R]) Offset(df, dr int) (Square[G, S, F, R], bool) {
	side := sideLen[G, S, F, R]()
	f := int(sq.pos/side) + df
	r := int(sq.pos%side) + dr
	if f < 0 || r < 0 || f >= int(side) || r >= int(side) {
		return sq, false
	}
	return Square[G, S, F, R]{pos: S(f)*side + S(r)}, true
}

// String returns the file followed by the rank, e.g. "c2".
func (sq Square[G, S, F, R]) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%v%v", sq.File(), sq.Rank())
}
