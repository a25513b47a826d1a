package board

// Coord is one axis of a two-dimensional board coordinate (a file or a rank).
type Coord[S Storage] interface {
	comparable
	ToStorage() S
}

// Geometry describes one board variant's coordinate system: its side length
// and the reverse mapping from storage numerals to file and rank values.
//
// Implementations are expected to be zero-size struct types; the generic code
// uses the zero value of the type argument and never stores one.
type Geometry[S Storage, F Coord[S], R Coord[S]] interface {
	SideLen() S
	FileFromStorage(S) F
	RankFromStorage(S) R
}

// Piece is the capability set required of a variant's piece vocabulary.
type Piece interface {
	comparable
}

// Color is the capability set required of a variant's color vocabulary.
type Color interface {
	comparable
}

// DefaultColor is a two-sided color scheme for variants that need nothing more.
type DefaultColor uint8

const (
	White DefaultColor = iota
	Black
)

// Other returns the opposite color.
func (c DefaultColor) Other() DefaultColor {
	return c ^ 1
}

// String returns the color name.
func (c DefaultColor) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}
