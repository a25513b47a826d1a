package board

// Move is an ordered pair of squares. Promotion, capture and castling
// annotations belong to richer representations layered on top.
type Move[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S]] struct {
	From Square[G, S, F, R]
	To   Square[G, S, F, R]
}

// NewMove creates a move from one square to another.
func NewMove[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S]](from, to Square[G, S, F, R]) Move[G, S, F, R] {
	return Move[G, S, F, R]{From: from, To: to}
}

// String returns the origin followed by the destination, e.g. "b1c3".
func (m Move[G, S, F, R]) String() string {
	return m.From.String() + m.To.String()
}
