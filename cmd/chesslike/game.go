package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hailam/chesslike/board"
	"github.com/hailam/chesslike/internal/perft"
	"github.com/hailam/chesslike/internal/render"
	"github.com/hailam/chesslike/internal/storage"
)

// runner is what the subcommands need from a variant, with the generic
// parameters already fixed.
type runner interface {
	name() string
	setup(s setup, store func() (*storage.Store, error)) error
	squares(w io.Writer)
	moves(w io.Writer, square string) error
	perft(ctx context.Context, w io.Writer, depth, workers int, divide bool) error
	playout(w io.Writer, plies int) error
	diagram() render.Diagram
	save(st *storage.Store, name string) error
	yaml() ([]byte, error)
	fingerprint() (uint64, error)
}

// setup describes the position a subcommand starts from.
type setup struct {
	fen   string
	from  string
	moves string
	black bool
}

// game adapts one board variant to runner.
type game[B perft.Position[B, G, S, F, R, P, C], G board.Geometry[S, F, R], S board.Storage, F board.Coord[S], R board.Coord[S], P board.Piece, C perft.Side[C]] struct {
	variant        string
	factory        board.Factory[B]
	parseSquare    func(string) (board.Square[G, S, F, R], error)
	parsePlacement func(string) (B, error) // nil when the variant has no text form
	glyph          func(P, C) render.Mark
	first          C

	b    B
	side C
}

func (g *game[B, G, S, F, R, P, C]) name() string { return g.variant }

func (g *game[B, G, S, F, R, P, C]) setup(s setup, store func() (*storage.Store, error)) error {
	switch {
	case s.fen != "" && s.from != "":
		return fmt.Errorf("-fen and -from are mutually exclusive")
	case s.fen != "":
		if g.parsePlacement == nil {
			return fmt.Errorf("variant %s has no text placement", g.variant)
		}
		b, err := g.parsePlacement(s.fen)
		if err != nil {
			return err
		}
		g.b = b
	case s.from != "":
		st, err := store()
		if err != nil {
			return err
		}
		snap, err := storage.Load[P, C](st, s.from)
		if err != nil {
			return err
		}
		g.b = g.factory.New()
		if err := storage.Restore[G, S, F, R, P, C](snap, g.variant, g.b); err != nil {
			return err
		}
	default:
		g.b = g.factory.Default()
	}

	g.side = g.first
	if s.black {
		g.side = g.first.Other()
	}
	for _, tok := range strings.FieldsFunc(s.moves, func(r rune) bool { return r == ',' || r == ' ' }) {
		if err := g.play(tok); err != nil {
			return err
		}
	}
	return nil
}

// play applies one move written as two square names, e.g. "b1c3".
func (g *game[B, G, S, F, R, P, C]) play(tok string) error {
	if len(tok) != 4 {
		return fmt.Errorf("invalid move %q", tok)
	}
	from, err := g.parseSquare(tok[:2])
	if err != nil {
		return fmt.Errorf("move %s: %w", tok, err)
	}
	to, err := g.parseSquare(tok[2:])
	if err != nil {
		return fmt.Errorf("move %s: %w", tok, err)
	}
	slot, err := g.b.Get(from)
	if err != nil {
		return err
	}
	if !slot.Is(g.side) {
		return fmt.Errorf("move %s: no piece of the side to move on %s", tok, from)
	}
	m := board.NewMove(from, to)
	if !g.b.IsMoveLegal(m) {
		return fmt.Errorf("move %s is illegal", tok)
	}
	if _, err := board.MakeMove[G, S, F, R, P, C](g.b, m); err != nil {
		return err
	}
	g.side = g.side.Other()
	return nil
}

func (g *game[B, G, S, F, R, P, C]) squares(w io.Writer) {
	for sq := range board.AllSquares[G, S, F, R]().All() {
		fmt.Fprintf(w, "%3d %s\n", uint64(sq.Raw()), sq)
	}
}

func (g *game[B, G, S, F, R, P, C]) moves(w io.Writer, square string) error {
	var list []board.Move[G, S, F, R]
	if square == "" {
		list = perft.Moves[G, S, F, R, P, C](g.b, g.side)
	} else {
		sq, err := g.parseSquare(square)
		if err != nil {
			return err
		}
		list = board.LegalMoves[G, S, F, R, P, C](g.b, sq)
	}
	for _, m := range list {
		fmt.Fprintln(w, m)
	}
	fmt.Fprintf(w, "%d moves\n", len(list))
	return nil
}

func (g *game[B, G, S, F, R, P, C]) perft(ctx context.Context, w io.Writer, depth, workers int, divide bool) error {
	if !divide {
		n, err := perft.Count[B, G, S, F, R, P, C](g.b, depth, g.side)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "perft(%d) = %d\n", depth, n)
		return nil
	}
	results, err := perft.Divide[B, G, S, F, R, P, C](ctx, g.b, depth, g.side, workers)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes)
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", perft.Total(results))
	return nil
}

func (g *game[B, G, S, F, R, P, C]) playout(w io.Writer, plies int) error {
	played, err := perft.Playout[G, S, F, R, P, C](g.b, g.side, plies)
	for i, m := range played {
		if i%2 == 0 {
			fmt.Fprintf(w, "%d.", i/2+1)
		}
		fmt.Fprintf(w, " %s", m)
		if i%2 == 1 || i == len(played)-1 {
			fmt.Fprintln(w)
		}
	}
	if err != nil {
		return err
	}
	if len(played)%2 == 1 {
		g.side = g.side.Other()
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, g.diagram().Text())
	return nil
}

func (g *game[B, G, S, F, R, P, C]) diagram() render.Diagram {
	return render.DiagramOf[G, S, F, R, P, C](g.b, g.glyph)
}

func (g *game[B, G, S, F, R, P, C]) capture() storage.Snapshot[P, C] {
	return storage.Capture[G, S, F, R, P, C](g.variant, g.b)
}

func (g *game[B, G, S, F, R, P, C]) save(st *storage.Store, name string) error {
	return storage.Save(st, name, g.capture())
}

func (g *game[B, G, S, F, R, P, C]) yaml() ([]byte, error) {
	return g.capture().YAML()
}

func (g *game[B, G, S, F, R, P, C]) fingerprint() (uint64, error) {
	return g.capture().Fingerprint()
}
