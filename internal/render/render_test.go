package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/chesslike/board"
	"github.com/hailam/chesslike/variant/standard"
	"github.com/hailam/chesslike/variant/toy"
)

func toyGlyph(p toy.Piece, c board.DefaultColor) Mark {
	return Mark{Glyph: toy.Char(p, c), Light: c == board.White}
}

func toyDiagram() Diagram {
	return DiagramOf[toy.Geometry, uint8, toy.File, toy.Rank, toy.Piece, board.DefaultColor](toy.Default(), toyGlyph)
}

func assertColorNear(t *testing.T, want color.RGBA, got color.Color, msg string) {
	t.Helper()
	r, g, b, _ := got.RGBA()
	near := func(a uint8, b uint32) bool {
		d := int(a) - int(b>>8)
		return d >= -8 && d <= 8
	}
	assert.True(t, near(want.R, r) && near(want.G, g) && near(want.B, b),
		"%s: got %v, want %v", msg, got, want)
}

func TestDiagramOf(t *testing.T) {
	d := toyDiagram()
	assert.Equal(t, 4, d.Side)
	require.Len(t, d.Cells, 16)
	assert.Equal(t, Mark{Glyph: 'K', Light: true}, d.At(0, 0))
	assert.Equal(t, Mark{Glyph: 'n', Light: false}, d.At(2, 3))
	assert.Equal(t, Mark{}, d.At(1, 1))
}

func TestText(t *testing.T) {
	want := strings.Join([]string{
		"4 . r n k",
		"3 . . . .",
		"2 . . . .",
		"1 K N R .",
		"  a b c d",
		"",
	}, "\n")
	assert.Equal(t, want, toyDiagram().Text())

	std := DiagramOf[standard.Geometry, uint8, standard.File, standard.Rank, standard.Piece, standard.Color](standard.Default(), func(p standard.Piece, c standard.Color) Mark {
		return Mark{Glyph: standard.Char(p, c), Light: c == standard.White}
	})
	lines := strings.Split(std.Text(), "\n")
	assert.Equal(t, "8 r n b q k b n r", lines[0])
	assert.Equal(t, "1 R N B Q K B N R", lines[7])
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, toyDiagram().SVG(&buf, DefaultOptions()))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `viewBox="0 0 192 192"`)
	assert.Equal(t, 16, strings.Count(out, "<rect"))
	assert.Equal(t, 6, strings.Count(out, "<circle"))
	assert.Contains(t, out, ">K</text>")

	assert.Error(t, toyDiagram().SVG(&buf, Options{}))
}

func TestImage(t *testing.T) {
	opts := DefaultOptions()
	opts.SquareSize = 40
	opts.Coordinates = false

	img, err := toyDiagram().Image(opts)
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())

	// a1 is dark and holds the white king; b2 is dark and empty; a2 is light.
	assertColorNear(t, opts.Dark, img.At(2, 158), "a1 corner")
	assertColorNear(t, opts.Light, img.At(2, 118), "a2 corner")
	assertColorNear(t, opts.Dark, img.At(60, 100), "b2 centre")
	assertColorNear(t, lightPiece, img.At(10, 140), "white king disc")
	assertColorNear(t, darkPiece, img.At(110, 20), "black knight disc")

	_, err = toyDiagram().Image(Options{})
	assert.Error(t, err)
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, toyDiagram().PNG(&buf, DefaultOptions()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 192, img.Bounds().Dx())
}
