package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hailam/chesslike/board"
	"github.com/hailam/chesslike/internal/render"
	"github.com/hailam/chesslike/variant/standard"
	"github.com/hailam/chesslike/variant/toy"
)

var variants = map[string]func() runner{
	"toy": func() runner {
		return &game[*toy.Board, toy.Geometry, uint8, toy.File, toy.Rank, toy.Piece, board.DefaultColor]{
			variant:     "toy",
			factory:     toy.Variant{},
			parseSquare: toy.ParseSquare,
			glyph: func(p toy.Piece, c board.DefaultColor) render.Mark {
				return render.Mark{Glyph: toy.Char(p, c), Light: c == board.White}
			},
			first: board.White,
		}
	},
	"standard": func() runner {
		return &game[*standard.Board, standard.Geometry, uint8, standard.File, standard.Rank, standard.Piece, standard.Color]{
			variant:        "standard",
			factory:        standard.Variant{},
			parseSquare:    standard.ParseSquare,
			parsePlacement: standard.ParsePlacement,
			glyph: func(p standard.Piece, c standard.Color) render.Mark {
				return render.Mark{Glyph: standard.Char(p, c), Light: c == standard.White}
			},
			first: standard.White,
		}
	},
}

func variantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupVariant(name string) (runner, error) {
	mk, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown variant %q (have %s)", name, strings.Join(variantNames(), ", "))
	}
	return mk(), nil
}
