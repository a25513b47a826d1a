package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/hailam/chesslike/internal/config"
)

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := &app{
		cfg: &config.Config{
			LogLevel:   "info",
			DataDir:    t.TempDir(),
			Variant:    "standard",
			SquareSize: 32,
		},
		out: &out,
	}
	t.Cleanup(a.close)
	return a, &out
}

func TestSquares(t *testing.T) {
	is := is.New(t)
	a, out := newTestApp(t)

	is.NoErr(a.run(context.Background(), []string{"squares", "-variant", "toy"}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	is.Equal(len(lines), 16)
	is.Equal(strings.TrimSpace(lines[9]), "9 c2")
}

func TestMovesAndPerft(t *testing.T) {
	is := is.New(t)
	a, out := newTestApp(t)

	is.NoErr(a.run(context.Background(), []string{"moves", "-variant", "toy", "-square", "b1"}))
	is.True(strings.Contains(out.String(), "3 moves"))

	out.Reset()
	is.NoErr(a.run(context.Background(), []string{"perft", "-depth", "2"}))
	is.Equal(out.String(), "perft(2) = 400\n")

	out.Reset()
	is.NoErr(a.run(context.Background(), []string{"perft", "-depth", "2", "-divide", "-moves", "e2e4"}))
	is.True(strings.Contains(out.String(), "Nodes searched: 600"))
}

func TestIllegalSetup(t *testing.T) {
	is := is.New(t)
	a, _ := newTestApp(t)

	is.True(a.run(context.Background(), []string{"moves", "-moves", "e2e5"}) != nil)     // not a pawn move
	is.True(a.run(context.Background(), []string{"moves", "-moves", "e7e5"}) != nil)     // wrong side
	is.True(a.run(context.Background(), []string{"moves", "-variant", "xiangqi"}) != nil) // unknown variant
	is.True(a.run(context.Background(), []string{"moves", "-variant", "toy", "-fen", "4/4/4/4"}) != nil)
	is.True(a.run(context.Background(), []string{"fly"}) != nil)
}

func TestRender(t *testing.T) {
	is := is.New(t)
	a, out := newTestApp(t)

	is.NoErr(a.run(context.Background(), []string{"render", "-variant", "toy"}))
	is.Equal(out.String(), "4 . r n k\n3 . . . .\n2 . . . .\n1 K N R .\n  a b c d\n")

	out.Reset()
	is.NoErr(a.run(context.Background(), []string{"render", "-format", "svg"}))
	is.True(strings.Contains(out.String(), `viewBox="0 0 256 256"`))

	png := filepath.Join(t.TempDir(), "board.png")
	is.NoErr(a.run(context.Background(), []string{"render", "-o", png}))
}

func TestSaveLoadList(t *testing.T) {
	is := is.New(t)
	a, out := newTestApp(t)
	ctx := context.Background()

	is.NoErr(a.run(ctx, []string{"save", "-moves", "e2e4 e7e5", "open"}))
	is.NoErr(a.run(ctx, []string{"save", "-variant", "toy", "small"}))

	out.Reset()
	is.NoErr(a.run(ctx, []string{"list"}))
	is.Equal(out.String(), "open\nsmall\n")

	out.Reset()
	is.NoErr(a.run(ctx, []string{"load", "open"}))
	is.True(strings.Contains(out.String(), "4 . . . . P . . ."))
	is.True(strings.Contains(out.String(), "fingerprint "))

	out.Reset()
	is.NoErr(a.run(ctx, []string{"load", "-yaml", "open"}))
	is.True(strings.Contains(out.String(), "variant: standard"))

	// A toy snapshot cannot be restored onto a standard board.
	is.True(a.run(ctx, []string{"load", "small"}) != nil)

	is.NoErr(a.run(ctx, []string{"delete", "small"}))
	is.True(a.run(ctx, []string{"delete", "small"}) != nil)
}
