// Package perft walks legal-move trees of any board variant: leaf counting for
// move generator verification and random playouts.
package perft

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/hailam/chesslike/board"
)

// Side is a color that knows its opponent.
type Side[C any] interface {
	comparable
	Other() C
}

// Position is a board that can copy itself, so each worker gets its own.
type Position[B any, G board.Geometry[S, F, R], S board.Storage, F board.Coord[S], R board.Coord[S], P board.Piece, C board.Color] interface {
	board.Board[G, S, F, R, P, C]
	Clone() B
}

// Result is the subtree size below one root move.
type Result[M any] struct {
	Move  M
	Nodes uint64
}

// Moves returns every legal move of side, grouped by origin in ascending order.
func Moves[G board.Geometry[S, F, R], S board.Storage, F board.Coord[S], R board.Coord[S], P board.Piece, C board.Color](b board.Board[G, S, F, R, P, C], side C) []board.Move[G, S, F, R] {
	var own []board.Square[G, S, F, R]
	for sq, slot := range board.Occupied[G, S, F, R, P, C](b) {
		if slot.Is(side) {
			own = append(own, sq)
		}
	}
	return lo.FlatMap(own, func(sq board.Square[G, S, F, R], _ int) []board.Move[G, S, F, R] {
		return board.LegalMoves[G, S, F, R, P, C](b, sq)
	})
}

// Count returns the number of leaf nodes of the legal-move tree of the given
// depth, side moving first. The board is restored before returning.
func Count[B Position[B, G, S, F, R, P, C], G board.Geometry[S, F, R], S board.Storage, F board.Coord[S], R board.Coord[S], P board.Piece, C Side[C]](b B, depth int, side C) (uint64, error) {
	return count[B, G, S, F, R, P, C](context.Background(), b, depth, side)
}

func count[B Position[B, G, S, F, R, P, C], G board.Geometry[S, F, R], S board.Storage, F board.Coord[S], R board.Coord[S], P board.Piece, C Side[C]](ctx context.Context, b B, depth int, side C) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	moves := Moves[G, S, F, R, P, C](b, side)
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var nodes uint64
	for _, m := range moves {
		undo, err := board.MakeMove[G, S, F, R, P, C](b, m)
		if err != nil {
			return 0, fmt.Errorf("make %s: %w", m, err)
		}
		n, err := count[B, G, S, F, R, P, C](ctx, b, depth-1, side.Other())
		if uerr := board.UnmakeMove[G, S, F, R, P, C](b, m, undo); uerr != nil {
			return 0, fmt.Errorf("unmake %s: %w", m, uerr)
		}
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Divide counts the subtree below each root move separately, running up to
// workers root moves at a time, each on its own clone of b. Results follow
// root move order. A workers value below one means one worker per move.
func Divide[B Position[B, G, S, F, R, P, C], G board.Geometry[S, F, R], S board.Storage, F board.Coord[S], R board.Coord[S], P board.Piece, C Side[C]](ctx context.Context, b B, depth int, side C, workers int) ([]Result[board.Move[G, S, F, R]], error) {
	if depth < 1 {
		return nil, fmt.Errorf("divide needs depth >= 1, got %d", depth)
	}
	roots := Moves[G, S, F, R, P, C](b, side)
	results := make([]Result[board.Move[G, S, F, R]], len(roots))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	start := time.Now()
	for i, m := range roots {
		results[i].Move = m
		work := b.Clone()
		g.Go(func() error {
			undo, err := board.MakeMove[G, S, F, R, P, C](work, m)
			if err != nil {
				return fmt.Errorf("make %s: %w", m, err)
			}
			n, err := count[B, G, S, F, R, P, C](ctx, work, depth-1, side.Other())
			if err != nil {
				return err
			}
			results[i].Nodes = n
			return board.UnmakeMove[G, S, F, R, P, C](work, m, undo)
		})
	}
	if err := g.Wait(); err != nil {
		log.Debug().Err(err).Msg("divide-canceled")
		return nil, err
	}
	log.Debug().Int("depth", depth).Int("roots", len(roots)).
		Uint64("nodes", Total(results)).Dur("elapsed", time.Since(start)).Msg("divide-done")
	return results, nil
}

// Total sums the node counts of a divide.
func Total[M any](results []Result[M]) uint64 {
	return lo.SumBy(results, func(r Result[M]) uint64 { return r.Nodes })
}

// Playout plays uniformly random legal moves on b, starting with side, until
// the side to move has no legal move or maxPlies moves were played. It returns
// the moves in order; b is left in the final position.
func Playout[G board.Geometry[S, F, R], S board.Storage, F board.Coord[S], R board.Coord[S], P board.Piece, C Side[C]](b board.Board[G, S, F, R, P, C], side C, maxPlies int) ([]board.Move[G, S, F, R], error) {
	var played []board.Move[G, S, F, R]
	for len(played) < maxPlies {
		moves := Moves[G, S, F, R, P, C](b, side)
		if len(moves) == 0 {
			break
		}
		m := moves[frand.Intn(len(moves))]
		if _, err := board.MakeMove[G, S, F, R, P, C](b, m); err != nil {
			return played, fmt.Errorf("make %s: %w", m, err)
		}
		played = append(played, m)
		side = side.Other()
	}
	log.Debug().Int("plies", len(played)).Msg("playout-done")
	return played, nil
}
