package standard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/chesslike/board"
)

// StartPlacement is the FEN piece-placement field of the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement parses the piece-placement field of a FEN string. A full
// FEN record is accepted; fields after the first are ignored.
func ParsePlacement(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("invalid placement: empty")
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != Side {
		return nil, fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	b := New()
	for i, rankStr := range ranks {
		rank := Rank(Side - 1 - i) // FEN starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file >= Side {
				return nil, fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p, color, ok := PieceFromChar(byte(c))
			if !ok {
				return nil, fmt.Errorf("invalid piece character: %c", c)
			}
			sq, err := SquareOf(File(file), rank)
			if err != nil {
				return nil, err
			}
			if _, err := b.Set(sq, board.NewSlot(p, color)); err != nil {
				return nil, err
			}
			file++
		}

		if file != Side {
			return nil, fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}
	return b, nil
}

// Placement returns the FEN piece-placement field: rnbqkbnr/pppppppp/8/...
func (b *Board) Placement() string {
	var fen strings.Builder
	for r := Side - 1; r >= 0; r-- {
		emptyCount := 0
		for f := 0; f < Side; f++ {
			sq, _ := SquareOf(File(f), Rank(r))
			s := b.At(sq)
			if s.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				fen.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			fen.WriteByte(Char(s.Piece(), s.Color()))
		}
		if emptyCount > 0 {
			fen.WriteString(strconv.Itoa(emptyCount))
		}
		if r != 0 {
			fen.WriteByte('/')
		}
	}
	return fen.String()
}

// String returns the placement field.
func (b *Board) String() string {
	return b.Placement()
}
