package storage

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash"
	"gopkg.in/yaml.v3"

	"github.com/hailam/chesslike/board"
)

// Record is one occupied square of a snapshot.
type Record[P board.Piece, C board.Color] struct {
	Square uint64 `json:"square" yaml:"square"`
	Piece  P      `json:"piece" yaml:"piece"`
	Color  C      `json:"color" yaml:"color"`
}

// Snapshot is a variant-tagged copy of a board's occupancy. Records are in
// ascending square order, so equal boards produce identical snapshots.
type Snapshot[P board.Piece, C board.Color] struct {
	Variant string         `json:"variant" yaml:"variant"`
	Side    uint64         `json:"side" yaml:"side"`
	Pieces  []Record[P, C] `json:"pieces" yaml:"pieces"`
}

// Capture records every occupied square of b.
func Capture[G board.Geometry[S, F, R], S board.Storage, F board.Coord[S], R board.Coord[S], P board.Piece, C board.Color](variant string, b board.Board[G, S, F, R, P, C]) Snapshot[P, C] {
	snap := Snapshot[P, C]{
		Variant: variant,
		Side:    uint64(b.SideLen()),
		Pieces:  []Record[P, C]{},
	}
	for sq, slot := range board.Occupied[G, S, F, R, P, C](b) {
		snap.Pieces = append(snap.Pieces, Record[P, C]{
			Square: uint64(sq.Raw()),
			Piece:  slot.Piece(),
			Color:  slot.Color(),
		})
	}
	return snap
}

// Restore replaces the contents of b with the snapshot. The snapshot must
// come from the same variant and side length; b is untouched on error.
func Restore[G board.Geometry[S, F, R], S board.Storage, F board.Coord[S], R board.Coord[S], P board.Piece, C board.Color](snap Snapshot[P, C], variant string, b board.Board[G, S, F, R, P, C]) error {
	if snap.Variant != variant {
		return fmt.Errorf("snapshot is for variant %q, not %q", snap.Variant, variant)
	}
	side := uint64(b.SideLen())
	if snap.Side != side {
		return fmt.Errorf("snapshot side %d does not match board side %d", snap.Side, side)
	}

	squares := make([]board.Square[G, S, F, R], len(snap.Pieces))
	for i, rec := range snap.Pieces {
		if rec.Square >= side*side {
			return fmt.Errorf("%w: snapshot square %d", board.ErrOutOfRange, rec.Square)
		}
		squares[i] = board.FromRaw[G, S, F, R](S(rec.Square))
	}

	for sq := range b.Squares().All() {
		if _, err := b.Set(sq, board.Empty[P, C]()); err != nil {
			return err
		}
	}
	for i, rec := range snap.Pieces {
		if _, err := b.Set(squares[i], board.NewSlot(rec.Piece, rec.Color)); err != nil {
			return err
		}
	}
	return nil
}

// Fingerprint hashes the canonical JSON encoding of the snapshot.
func (s Snapshot[P, C]) Fingerprint() (uint64, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}

// YAML returns the snapshot as a YAML document.
func (s Snapshot[P, C]) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// ParseYAML reads a snapshot written by YAML.
func ParseYAML[P board.Piece, C board.Color](data []byte) (Snapshot[P, C], error) {
	var snap Snapshot[P, C]
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot[P, C]{}, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap, nil
}
