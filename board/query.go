package board

import (
	"iter"
	"slices"

	"github.com/samber/lo"
)

// LegalMoves returns the raw moves of the piece on pos that b considers legal.
func LegalMoves[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S], P Piece, C Color](b Board[G, S, F, R, P, C], pos Square[G, S, F, R]) []Move[G, S, F, R] {
	raw := slices.Collect(b.RawMovesForPiece(pos))
	return lo.Filter(raw, func(m Move[G, S, F, R], _ int) bool {
		return b.IsMoveLegal(m)
	})
}

// Attackers returns, in ascending order, every square whose piece has a legal
// move ending on target. Variants use it to implement AttackersOf.
func Attackers[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S], P Piece, C Color](b Board[G, S, F, R, P, C], target Square[G, S, F, R]) []Square[G, S, F, R] {
	var out []Square[G, S, F, R]
	for sq := range b.Squares().All() {
		if sq == target {
			continue
		}
		raw := slices.Collect(b.RawMovesForPiece(sq))
		if lo.ContainsBy(raw, func(m Move[G, S, F, R]) bool {
			return m.To == target && b.IsMoveLegal(m)
		}) {
			out = append(out, sq)
		}
	}
	return out
}

// Undo records what MakeMove changed.
type Undo[P Piece, C Color] struct {
	Moved    Slot[P, C]
	Captured Slot[P, C]
}

// MakeMove moves the occupant of m.From onto m.To using Set only, and returns
// the information UnmakeMove needs. The board is unchanged on error.
func MakeMove[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S], P Piece, C Color](b Board[G, S, F, R, P, C], m Move[G, S, F, R]) (Undo[P, C], error) {
	if _, err := b.Get(m.To); err != nil {
		return Undo[P, C]{}, err
	}
	moved, err := b.Set(m.From, Empty[P, C]())
	if err != nil {
		return Undo[P, C]{}, err
	}
	captured, err := b.Set(m.To, moved)
	if err != nil {
		return Undo[P, C]{}, err
	}
	return Undo[P, C]{Moved: moved, Captured: captured}, nil
}

// UnmakeMove reverts a move made with MakeMove.
func UnmakeMove[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S], P Piece, C Color](b Board[G, S, F, R, P, C], m Move[G, S, F, R], u Undo[P, C]) error {
	if _, err := b.Set(m.To, u.Captured); err != nil {
		return err
	}
	_, err := b.Set(m.From, u.Moved)
	return err
}

// Occupied yields every non-empty square with its slot, in ascending order.
func Occupied[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S], P Piece, C Color](b Board[G, S, F, R, P, C]) iter.Seq2[Square[G, S, F, R], Slot[P, C]] {
	return func(yield func(Square[G, S, F, R], Slot[P, C]) bool) {
		for sq := range b.Squares().All() {
			slot, err := b.Get(sq)
			if err != nil || slot.IsEmpty() {
				continue
			}
			if !yield(sq, slot) {
				return
			}
		}
	}
}

// Count returns the number of occupied squares.
func Count[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S], P Piece, C Color](b Board[G, S, F, R, P, C]) int {
	n := 0
	for range Occupied(b) {
		n++
	}
	return n
}

// Equal reports whether two boards hold the same slot on every square.
func Equal[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S], P Piece, C Color](a, b Board[G, S, F, R, P, C]) bool {
	for sq := range a.Squares().All() {
		sa, errA := a.Get(sq)
		sb, errB := b.Get(sq)
		if errA != nil || errB != nil || sa != sb {
			return false
		}
	}
	return true
}
