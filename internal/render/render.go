// Package render draws board diagrams as SVG, raster images and plain text.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hailam/chesslike/board"
)

// Mark is what a diagram shows on one square. A zero Glyph is an empty square.
type Mark struct {
	Glyph byte
	Light bool // drawn as a light-side piece
}

// Diagram is a variant-independent picture of a board. Cells are file-major
// like the board itself: index = file*Side + rank.
type Diagram struct {
	Side  int
	Cells []Mark
}

// DiagramOf captures the occupancy of b, naming each piece with glyph.
func DiagramOf[G board.Geometry[S, F, R], S board.Storage, F board.Coord[S], R board.Coord[S], P board.Piece, C board.Color](b board.Board[G, S, F, R, P, C], glyph func(P, C) Mark) Diagram {
	side := int(b.SideLen())
	d := Diagram{Side: side, Cells: make([]Mark, side*side)}
	for sq, slot := range board.Occupied[G, S, F, R, P, C](b) {
		d.Cells[int(sq.Raw())] = glyph(slot.Piece(), slot.Color())
	}
	return d
}

// At returns the mark at file f and rank r.
func (d Diagram) At(f, r int) Mark {
	return d.Cells[f*d.Side+r]
}

// Options controls the drawing.
type Options struct {
	SquareSize  int
	Light       color.RGBA
	Dark        color.RGBA
	Coordinates bool
}

// DefaultOptions returns the brown board with coordinates.
func DefaultOptions() Options {
	return Options{
		SquareSize:  48,
		Light:       color.RGBA{0xf0, 0xd9, 0xb5, 0xff},
		Dark:        color.RGBA{0xb5, 0x88, 0x63, 0xff},
		Coordinates: true,
	}
}

var (
	lightPiece = color.RGBA{0xff, 0xff, 0xff, 0xff}
	darkPiece  = color.RGBA{0x22, 0x22, 0x22, 0xff}
)

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Size returns the width (and height) of the drawing in pixels.
func (d Diagram) Size(opts Options) int {
	return d.Side * opts.SquareSize
}

// origin returns the top-left pixel of a square; the first rank is at the bottom.
func (d Diagram) origin(f, r int, opts Options) (int, int) {
	return f * opts.SquareSize, (d.Side - 1 - r) * opts.SquareSize
}

func isLight(f, r int) bool {
	return (f+r)%2 == 1
}

// SVG writes the diagram as an SVG document.
func (d Diagram) SVG(w io.Writer, opts Options) error {
	if opts.SquareSize <= 0 {
		return fmt.Errorf("square size must be positive, got %d", opts.SquareSize)
	}
	d.writeSVG(w, opts, true)
	return nil
}

func (d Diagram) writeSVG(w io.Writer, opts Options, labels bool) {
	size := d.Size(opts)
	sq := opts.SquareSize
	radius := sq * 3 / 8

	canvas := svg.New(w)
	canvas.Startview(size, size, 0, 0, size, size)
	for f := 0; f < d.Side; f++ {
		for r := 0; r < d.Side; r++ {
			x, y := d.origin(f, r, opts)
			fill := opts.Dark
			if isLight(f, r) {
				fill = opts.Light
			}
			canvas.Rect(x, y, sq, sq, fmt.Sprintf(`fill="%s"`, hex(fill)))
		}
	}
	for f := 0; f < d.Side; f++ {
		for r := 0; r < d.Side; r++ {
			m := d.At(f, r)
			if m.Glyph == 0 {
				continue
			}
			x, y := d.origin(f, r, opts)
			disc, ink := darkPiece, lightPiece
			if m.Light {
				disc, ink = lightPiece, darkPiece
			}
			canvas.Circle(x+sq/2, y+sq/2, radius,
				fmt.Sprintf(`fill="%s" stroke="#000000" stroke-width="2"`, hex(disc)))
			if labels {
				canvas.Text(x+sq/2, y+sq/2+sq/8, string(m.Glyph),
					fmt.Sprintf("text-anchor:middle;font-family:monospace;font-size:%dpx;fill:%s", sq/3, hex(ink)))
			}
		}
	}
	if labels && opts.Coordinates {
		for f := 0; f < d.Side; f++ {
			x, y := d.origin(f, 0, opts)
			canvas.Text(x+sq-4, y+sq-4, fileLabel(f), "text-anchor:end;font-family:monospace;font-size:10px")
		}
		for r := 0; r < d.Side; r++ {
			x, y := d.origin(0, r, opts)
			canvas.Text(x+3, y+12, fmt.Sprint(r+1), "font-family:monospace;font-size:10px")
		}
	}
	canvas.End()
}

func fileLabel(f int) string {
	return string(rune('a' + f))
}

// Image rasterizes the diagram. Squares and discs go through the SVG
// rasterizer; letters use the fixed 7x13 bitmap face.
func (d Diagram) Image(opts Options) (*image.RGBA, error) {
	if opts.SquareSize <= 0 {
		return nil, fmt.Errorf("square size must be positive, got %d", opts.SquareSize)
	}
	size := d.Size(opts)

	var buf bytes.Buffer
	d.writeSVG(&buf, opts, false)
	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return nil, fmt.Errorf("parse diagram: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	sq := opts.SquareSize
	for f := 0; f < d.Side; f++ {
		for r := 0; r < d.Side; r++ {
			m := d.At(f, r)
			if m.Glyph == 0 {
				continue
			}
			x, y := d.origin(f, r, opts)
			ink := lightPiece
			if m.Light {
				ink = darkPiece
			}
			drawCentered(rgba, string(m.Glyph), x+sq/2, y+sq/2, ink)
		}
	}
	if opts.Coordinates {
		for f := 0; f < d.Side; f++ {
			x, y := d.origin(f, 0, opts)
			drawString(rgba, fileLabel(f), x+sq-9, y+sq-3, darkPiece)
		}
		for r := 0; r < d.Side; r++ {
			x, y := d.origin(0, r, opts)
			drawString(rgba, fmt.Sprint(r+1), x+2, y+11, darkPiece)
		}
	}
	return rgba, nil
}

// drawString draws s with its baseline starting at (x, y).
func drawString(dst *image.RGBA, s string, x, y int, c color.RGBA) {
	dr := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	dr.DrawString(s)
}

// drawCentered draws s centered on (cx, cy).
func drawCentered(dst *image.RGBA, s string, cx, cy int, c color.RGBA) {
	dr := &font.Drawer{Face: basicfont.Face7x13}
	width := dr.MeasureString(s).Ceil()
	metrics := basicfont.Face7x13.Metrics()
	height := (metrics.Ascent - metrics.Descent).Ceil()
	drawString(dst, s, cx-width/2, cy+height/2, c)
}

// PNG writes the rasterized diagram as a PNG image.
func (d Diagram) PNG(w io.Writer, opts Options) error {
	img, err := d.Image(opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Text returns the diagram as text, top rank first, '.' for empty squares.
func (d Diagram) Text() string {
	var sb strings.Builder
	width := len(fmt.Sprint(d.Side))
	for r := d.Side - 1; r >= 0; r-- {
		fmt.Fprintf(&sb, "%*d", width, r+1)
		for f := 0; f < d.Side; f++ {
			g := d.At(f, r).Glyph
			if g == 0 {
				g = '.'
			}
			sb.WriteByte(' ')
			sb.WriteByte(g)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat(" ", width))
	for f := 0; f < d.Side; f++ {
		sb.WriteByte(' ')
		sb.WriteString(fileLabel(f))
	}
	sb.WriteByte('\n')
	return sb.String()
}
