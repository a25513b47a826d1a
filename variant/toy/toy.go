// Package toy implements a 4x4 chess-like variant with kings, knights and rooks.
package toy

import (
	"fmt"
	"iter"

	"github.com/hailam/chesslike/board"
)

// Side is the number of squares along each axis.
const Side = 4

// File is a column, 0 = a.
type File uint8

// ToStorage implements board.Coord.
func (f File) ToStorage() uint8 { return uint8(f) }

func (f File) String() string { return string(rune('a' + f)) }

// Rank is a row, 0 = 1.
type Rank uint8

// ToStorage implements board.Coord.
func (r Rank) ToStorage() uint8 { return uint8(r) }

func (r Rank) String() string { return string(rune('1' + r)) }

// Geometry is the 4x4 coordinate system.
type Geometry struct{}

func (Geometry) SideLen() uint8               { return Side }
func (Geometry) FileFromStorage(s uint8) File { return File(s) }
func (Geometry) RankFromStorage(s uint8) Rank { return Rank(s) }

// Piece is the toy piece vocabulary.
type Piece uint8

const (
	King Piece = iota
	Knight
	Rook
)

func (p Piece) String() string {
	switch p {
	case King:
		return "King"
	case Knight:
		return "Knight"
	case Rook:
		return "Rook"
	default:
		return "None"
	}
}

// Char returns the diagram letter of the piece: uppercase for White.
func Char(p Piece, c board.DefaultColor) byte {
	chars := "KNR"
	if int(p) >= len(chars) {
		return '?'
	}
	ch := chars[p]
	if c == board.Black {
		ch += 'a' - 'A'
	}
	return ch
}

type (
	Square = board.Square[Geometry, uint8, File, Rank]
	Move   = board.Move[Geometry, uint8, File, Rank]
	Slot   = board.Slot[Piece, board.DefaultColor]
	Iter   = board.SquareIter[Geometry, uint8, File, Rank]
)

// SquareOf returns the square at the given file and rank.
func SquareOf(f File, r Rank) (Square, error) {
	return board.NewSquare[Geometry, uint8](f, r)
}

// At returns the square with the given linear index, unchecked.
func At(raw uint8) Square {
	return board.FromRaw[Geometry, uint8, File, Rank](raw)
}

// ParseSquare parses a square name such as "c2".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("invalid square: %s", s)
	}
	return SquareOf(File(s[0]-'a'), Rank(s[1]-'1'))
}

var (
	kingSteps   = []board.Delta{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	knightJumps = []board.Delta{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	rookRays    = []board.Delta{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
)

// Board is a toy position. It is not safe for concurrent use.
type Board struct {
	*board.Mailbox[Geometry, uint8, File, Rank, Piece, board.DefaultColor]
}

var _ board.Board[Geometry, uint8, File, Rank, Piece, board.DefaultColor] = (*Board)(nil)

// New returns an empty board.
func New() *Board {
	return &Board{board.MustMailbox[Geometry, uint8, File, Rank, Piece, board.DefaultColor]()}
}

// Default returns the starting layout: White K a1, N b1, R c1; Black K d4, N c4, R b4.
func Default() *Board {
	b := New()
	for _, p := range startLayout {
		b.Mailbox.Set(At(p.raw), board.NewSlot(p.piece, p.color))
	}
	return b
}

var startLayout = []struct {
	raw   uint8
	piece Piece
	color board.DefaultColor
}{
	{0, King, board.White},    // a1
	{4, Knight, board.White},  // b1
	{8, Rook, board.White},    // c1
	{15, King, board.Black},   // d4
	{11, Knight, board.Black}, // c4
	{7, Rook, board.Black},    // b4
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{b.Mailbox.Clone()}
}

// Variant constructs toy boards; it implements board.Factory.
type Variant struct{}

func (Variant) New() *Board     { return New() }
func (Variant) Default() *Board { return Default() }

var _ board.Factory[*Board] = Variant{}

func (b *Board) probe(c board.DefaultColor) func(Square) board.Target {
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

// RawMovesForPiece yields the pattern moves of the piece on pos. Empty and
// off-board squares yield nothing.
func (b *Board) RawMovesForPiece(pos Square) iter.Seq[Move] {
	s := b.At(pos)
	if s.IsEmpty() {
		return func(func(Move) bool) {}
	}
	probe := b.probe(s.Color())
	switch s.Piece() {
	case King:
		return board.Leaps(pos, kingSteps, probe)
	case Knight:
		return board.Leaps(pos, knightJumps, probe)
	case Rook:
		return board.Slides(pos, rookRays, probe)
	}
	return func(func(Move) bool) {}
}

// IsMoveLegal reports whether m is a raw move of the piece on m.From that
// does not leave the mover's king attacked.
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

	undo, err := board.MakeMove[Geometry, uint8, File, Rank, Piece, board.DefaultColor](b, m)
	if err != nil {
		return false
	}
	safe := !b.kingAttacked(s.Color())
	if err := board.UnmakeMove[Geometry, uint8, File, Rank, Piece, board.DefaultColor](b, m, undo); err != nil {
		return false
	}
	return safe
}

// kingAttacked reports whether any king of color c is reachable by a raw
// move of the other side. Boards without a king of c are never in check.
func (b *Board) kingAttacked(c board.DefaultColor) bool {
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
	return board.Attackers[Geometry, uint8, File, Rank, Piece, board.DefaultColor](b, target)
}

// LegalMoves returns the legal moves of the piece on pos.
func (b *Board) LegalMoves(pos Square) []Move {
	return board.LegalMoves[Geometry, uint8, File, Rank, Piece, board.DefaultColor](b, pos)
}

// InCheck reports whether c's king is attacked.
func (b *Board) InCheck(c board.DefaultColor) bool {
	return b.kingAttacked(c)
}
