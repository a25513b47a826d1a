// Package standard implements orthodox 8x8 chess on the generic board layer.
//
// Squares are file-major: a1=0, a2=1, ..., a8=7, b1=8, ..., h8=63.
// Moves carry no annotations, so castling and en passant are not generated
// and a pawn reaching the last rank stays a pawn; promotion is left to
// richer move representations built on top.
package standard

import (
	"fmt"

	"github.com/hailam/chesslike/board"
)

// Side is the number of squares along each axis.
const Side = 8

// File is a column, 0 = a.
type File uint8

// ToStorage implements board.Coord.
func (f File) ToStorage() uint8 { return uint8(f) }

func (f File) String() string { return string(rune('a' + f)) }

// Rank is a row, 0 = the first rank.
type Rank uint8

// ToStorage implements board.Coord.
func (r Rank) ToStorage() uint8 { return uint8(r) }

func (r Rank) String() string { return string(rune('1' + r)) }

// Geometry is the 8x8 coordinate system.
type Geometry struct{}

func (Geometry) SideLen() uint8               { return Side }
func (Geometry) FileFromStorage(s uint8) File { return File(s) }
func (Geometry) RankFromStorage(s uint8) Rank { return Rank(s) }

// Color is the side owning a piece.
type Color = board.DefaultColor

const (
	White = board.White
	Black = board.Black
)

// Piece is the type of a chess piece.
type Piece uint8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (p Piece) String() string {
	switch p {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func Char(p Piece, c Color) byte {
	chars := "PNBRQK"
	if int(p) >= len(chars) {
		return '?'
	}
	ch := chars[p]
	if c == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// PieceFromChar converts a FEN character to a piece and color.
func PieceFromChar(c byte) (Piece, Color, bool) {
	switch c {
	case 'P':
		return Pawn, White, true
	case 'N':
		return Knight, White, true
	case 'B':
		return Bishop, White, true
	case 'R':
		return Rook, White, true
	case 'Q':
		return Queen, White, true
	case 'K':
		return King, White, true
	case 'p':
		return Pawn, Black, true
	case 'n':
		return Knight, Black, true
	case 'b':
		return Bishop, Black, true
	case 'r':
		return Rook, Black, true
	case 'q':
		return Queen, Black, true
	case 'k':
		return King, Black, true
	default:
		return 0, 0, false
	}
}

type (
	Square = board.Square[Geometry, uint8, File, Rank]
	Move   = board.Move[Geometry, uint8, File, Rank]
	Slot   = board.Slot[Piece, Color]
	Iter   = board.SquareIter[Geometry, uint8, File, Rank]
)

// SquareOf returns the square at the given file and rank (0-indexed).
func SquareOf(f File, r Rank) (Square, error) {
	return board.NewSquare[Geometry, uint8](f, r)
}

// At returns the square with the given linear index, unchecked.
func At(raw uint8) Square {
	return board.FromRaw[Geometry, uint8, File, Rank](raw)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("invalid square: %s", s)
	}
	sq, err := SquareOf(File(s[0]-'a'), Rank(s[1]-'1'))
	if err != nil {
		return Square{}, fmt.Errorf("invalid square %s: %w", s, err)
	}
	return sq, nil
}

// MustSquare is like ParseSquare but panics on malformed input.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
