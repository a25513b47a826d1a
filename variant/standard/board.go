package standard

import (
	"iter"

	"github.com/hailam/chesslike/board"
)

var (
	kingSteps   = []board.Delta{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	knightJumps = []board.Delta{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	rookRays    = []board.Delta{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopRays  = []board.Delta{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	queenRays   = append(append([]board.Delta{}, rookRays...), bishopRays...)
)

// Board is a chess position: piece placement only. Side to move, castling
// rights and move clocks belong to the engine driving the board.
type Board struct {
	*board.Mailbox[Geometry, uint8, File, Rank, Piece, Color]
}

var _ board.Board[Geometry, uint8, File, Rank, Piece, Color] = (*Board)(nil)

// New returns an empty board.
func New() *Board {
	return &Board{board.MustMailbox[Geometry, uint8, File, Rank, Piece, Color]()}
}

// Default returns the standard starting position.
func Default() *Board {
	b, err := ParsePlacement(StartPlacement)
	if err != nil {
		panic(err)
	}
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{b.Mailbox.Clone()}
}

// Variant constructs standard boards; it implements board.Factory.
type Variant struct{}

func (Variant) New() *Board     { return New() }
func (Variant) Default() *Board { return Default() }

var _ board.Factory[*Board] = Variant{}

func (b *Board) probe(c Color) func(Square) board.Target {
	return func(sq Square) board.Target {
		s := b.At(sq)
		switch {
		case s.IsEmpty():
			return board.TargetEmpty
		case s.Is(c):
			return board.TargetBlocked
		default:
			return board.TargetCapture
		}
	}
}

// RawMovesForPiece yields the pattern moves of the piece on pos, including
// moves that leave its own king in check. Empty and off-board squares yield
// nothing.
func (b *Board) RawMovesForPiece(pos Square) iter.Seq[Move] {
	s := b.At(pos)
	if s.IsEmpty() {
		return func(func(Move) bool) {}
	}
	probe := b.probe(s.Color())
	switch s.Piece() {
	case Pawn:
		return b.pawnMoves(pos, s.Color())
	case Knight:
		return board.Leaps(pos, knightJumps, probe)
	case Bishop:
		return board.Slides(pos, bishopRays, probe)
	case Rook:
		return board.Slides(pos, rookRays, probe)
	case Queen:
		return board.Slides(pos, queenRays, probe)
	case King:
		return board.Leaps(pos, kingSteps, probe)
	}
	return func(func(Move) bool) {}
}

// pawnMoves yields single and double pushes onto empty squares and diagonal
// captures of enemy pieces.
func (b *Board) pawnMoves(pos Square, c Color) iter.Seq[Move] {
	dir, home := 1, Rank(1)
	if c == Black {
		dir, home = -1, Rank(Side-2)
	}
	return func(yield func(Move) bool) {
		if one, ok := pos.Offset(0, dir); ok && b.At(one).IsEmpty() {
			if !yield(board.NewMove(pos, one)) {
				return
			}
			if two, ok := one.Offset(0, dir); ok && pos.Rank() == home && b.At(two).IsEmpty() {
				if !yield(board.NewMove(pos, two)) {
					return
				}
			}
		}
		for _, df := range []int{-1, 1} {
			to, ok := pos.Offset(df, dir)
			if !ok {
				continue
			}
			if t := b.At(to); !t.IsEmpty() && !t.Is(c) {
				if !yield(board.NewMove(pos, to)) {
					return
				}
			}
		}
	}
}

// IsMoveLegal reports whether m is a raw move of the piece on m.From that
// does not leave the mover's king in check. The board is restored before
// returning.
func (b *Board) IsMoveLegal(m Move) bool {
	s := b.At(m.From)
	if s.IsEmpty() {
		return false
	}
	found := false
	for raw := range b.RawMovesForPiece(m.From) {
		if raw == m {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	undo, err := board.MakeMove[Geometry, uint8, File, Rank, Piece, Color](b, m)
	if err != nil {
		return false
	}
	safe := !b.InCheck(s.Color())
	if err := board.UnmakeMove[Geometry, uint8, File, Rank, Piece, Color](b, m, undo); err != nil {
		return false
	}
	return safe
}

// InCheck reports whether c's king is attacked by a raw move of the other side.
// A side without a king is never in check.
func (b *Board) InCheck(c Color) bool {
	for sq := range b.Squares().All() {
		s := b.At(sq)
		if s.IsEmpty() || s.Is(c) {
			continue
		}
		for m := range b.RawMovesForPiece(sq) {
			if t := b.At(m.To); t.Is(c) && t.Piece() == King {
				return true
			}
		}
	}
	return false
}

// AttackersOf returns the squares whose piece has a legal move to target.
func (b *Board) AttackersOf(target Square) []Square {
	return board.Attackers[Geometry, uint8, File, Rank, Piece, Color](b, target)
}

// LegalMoves returns the legal moves of the piece on pos.
func (b *Board) LegalMoves(pos Square) []Move {
	return board.LegalMoves[Geometry, uint8, File, Rank, Piece, Color](b, pos)
}

// AllLegalMoves returns every legal move for side c, in ascending origin order.
func (b *Board) AllLegalMoves(c Color) []Move {
	var moves []Move
	for sq, s := range board.Occupied[Geometry, uint8, File, Rank, Piece, Color](b) {
		if s.Is(c) {
			moves = append(moves, b.LegalMoves(sq)...)
		}
	}
	return moves
}

// Material returns the material balance in centipawns (positive favors white).
func (b *Board) Material() int {
	score := 0
	for _, s := range board.Occupied[Geometry, uint8, File, Rank, Piece, Color](b) {
		v := PieceValue[s.Piece()]
		if s.Is(White) {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// PieceValue is the material value of each piece type in centipawns.
// The king is excluded from material counts.
var PieceValue = [6]int{100, 320, 330, 500, 900, 0}
