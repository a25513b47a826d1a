package board

import "iter"

// Delta is a displacement in files and ranks.
type Delta struct {
	File, Rank int
}

// Target classifies a destination square for the moving side.
type Target uint8

const (
	TargetEmpty   Target = iota // empty, the mover may land and continue sliding
	TargetCapture               // enemy piece, the mover may land but stops
	TargetBlocked               // own piece, the mover stops before it
)

// Leaps yields one move per delta whose destination is on the board and not
// blocked. Moves are produced in the order of deltas.
func Leaps[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S]](from Square[G, S, F, R], deltas []Delta, probe func(Square[G, S, F, R]) Target) iter.Seq[Move[G, S, F, R]] {
	return func(yield func(Move[G, S, F, R]) bool) {
		for _, d := range deltas {
			to, ok := from.Offset(d.File, d.Rank)
			if !ok || probe(to) == TargetBlocked {
				continue
			}
			if !yield(Move[G, S, F, R]{From: from, To: to}) {
				return
			}
		}
	}
}

// Slides yields the moves along each ray in dirs, stopping at the board edge,
// before an own piece, or on a capture.
func Slides[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S]](from Square[G, S, F, R], dirs []Delta, probe func(Square[G, S, F, R]) Target) iter.Seq[Move[G, S, F, R]] {
	return func(yield func(Move[G, S, F, R]) bool) {
		for _, d := range dirs {
			for to, ok := from.Offset(d.File, d.Rank); ok; to, ok = to.Offset(d.File, d.Rank) {
				t := probe(to)
				if t == TargetBlocked {
					break
				}
				if !yield(Move[G, S, F, R]{From: from, To: to}) {
					return
				}
				if t == TargetCapture {
					break
				}
			}
		}
	}
}
