package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

type testFile uint8

func (f testFile) ToStorage() uint8 { return uint8(f) }
func (f testFile) String() string   { return string(rune('a' + f)) }

type testRank uint8

func (r testRank) ToStorage() uint8 { return uint8(r) }
func (r testRank) String() string   { return string(rune('1' + r)) }

// geo4 is a 4x4 board indexed by uint8.
type geo4 struct{}

func (geo4) SideLen() uint8                   { return 4 }
func (geo4) FileFromStorage(s uint8) testFile { return testFile(s) }
func (geo4) RankFromStorage(s uint8) testRank { return testRank(s) }

type sq4 = Square[geo4, uint8, testFile, testRank]

func raw4(n uint8) sq4 { return FromRaw[geo4, uint8, testFile, testRank](n) }

// wideCoord is an axis of a 20x20 board indexed by uint16.
type wideCoord uint16

func (c wideCoord) ToStorage() uint16 { return uint16(c) }

type geo20 struct{}

func (geo20) SideLen() uint16                    { return 20 }
func (geo20) FileFromStorage(s uint16) wideCoord { return wideCoord(s) }
func (geo20) RankFromStorage(s uint16) wideCoord { return wideCoord(s) }

// geo16 cannot be indexed by uint8: 256 squares plus an exclusive bound.
type geo16 struct{}

func (geo16) SideLen() uint8                   { return 16 }
func (geo16) FileFromStorage(s uint8) testFile { return testFile(s) }
func (geo16) RankFromStorage(s uint8) testRank { return testRank(s) }

func TestNewSquareRoundTrip(t *testing.T) {
	is := is.New(t)
	for f := testFile(0); f < 4; f++ {
		for r := testRank(0); r < 4; r++ {
			sq, err := NewSquare[geo4, uint8](f, r)
			is.NoErr(err)
			is.Equal(sq.File(), f)
			is.Equal(sq.Rank(), r)
			is.Equal(sq.Raw(), uint8(f)*4+uint8(r))
			is.True(sq.Valid())
		}
	}
}

func TestNewSquareMatchesFromRaw(t *testing.T) {
	is := is.New(t)
	sq, err := NewSquare[geo4, uint8](testFile(2), testRank(1))
	is.NoErr(err)
	is.Equal(sq, raw4(2*4+1))
	is.Equal(sq, raw4(9))
	is.Equal(sq.String(), "c2")
	is.Equal(sq.SideLen(), uint8(4))
}

func TestNewSquareOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		file testFile
		rank testRank
	}{
		{"file", 4, 0},
		{"rank", 0, 4},
		{"both", 9, 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			_, err := NewSquare[geo4, uint8](tc.file, tc.rank)
			is.True(errors.Is(err, ErrOutOfRange))
		})
	}
}

func TestSquareAt(t *testing.T) {
	is := is.New(t)

	sq, err := SquareAt[geo4, uint8, testFile, testRank](15)
	is.NoErr(err)
	is.Equal(sq.File(), testFile(3))
	is.Equal(sq.Rank(), testRank(3))

	_, err = SquareAt[geo4, uint8, testFile, testRank](16)
	is.True(errors.Is(err, ErrOutOfRange))

	// FromRaw does not validate.
	is.True(!raw4(16).Valid())
	is.Equal(raw4(16).String(), "-")
}

func TestSquareOffset(t *testing.T) {
	is := is.New(t)
	a1 := raw4(0)

	c2, ok := a1.Offset(2, 1)
	is.True(ok)
	is.Equal(c2, raw4(9))

	_, ok = a1.Offset(-1, 0)
	is.True(!ok)
	_, ok = a1.Offset(0, 4)
	is.True(!ok)

	back, ok := c2.Offset(-2, -1)
	is.True(ok)
	is.Equal(back, a1)
}

func TestWideGeometry(t *testing.T) {
	is := is.New(t)
	for f := wideCoord(0); f < 20; f++ {
		for r := wideCoord(0); r < 20; r++ {
			sq, err := NewSquare[geo20, uint16](f, r)
			is.NoErr(err)
			is.Equal(sq.File(), f)
			is.Equal(sq.Rank(), r)
		}
	}

	n := 0
	for sq := range AllSquares[geo20, uint16, wideCoord, wideCoord]().All() {
		is.Equal(sq.Raw(), uint16(n))
		n++
	}
	is.Equal(n, 400)
}

func TestCheckCapacity(t *testing.T) {
	is := is.New(t)

	is.NoErr(CheckCapacity(uint8(4)))
	is.NoErr(CheckCapacity(uint8(15)))
	is.True(errors.Is(CheckCapacity(uint8(16)), ErrCapacityExceeded))
	is.True(errors.Is(CheckCapacity(uint8(0)), ErrCapacityExceeded))

	is.NoErr(CheckCapacity(uint16(255)))
	is.True(errors.Is(CheckCapacity(uint16(256)), ErrCapacityExceeded))

	_, err := NewMailbox[geo16, uint8, testFile, testRank, testPiece, DefaultColor]()
	is.True(errors.Is(err, ErrCapacityExceeded))
}

func TestDefaultColor(t *testing.T) {
	is := is.New(t)
	is.Equal(White.Other(), Black)
	is.Equal(Black.Other(), White)
	is.Equal(White.String(), "White")
	is.Equal(DefaultColor(7).String(), "NoColor")
}
