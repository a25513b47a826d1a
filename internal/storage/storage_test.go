package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/chesslike/board"
	"github.com/hailam/chesslike/variant/standard"
	"github.com/hailam/chesslike/variant/toy"
)

type toySnapshot = Snapshot[toy.Piece, board.DefaultColor]

func captureToy(b *toy.Board) toySnapshot {
	return Capture[toy.Geometry, uint8, toy.File, toy.Rank, toy.Piece, board.DefaultColor]("toy", b)
}

func restoreToy(snap toySnapshot, variant string, b *toy.Board) error {
	return Restore[toy.Geometry, uint8, toy.File, toy.Rank, toy.Piece, board.DefaultColor](snap, variant, b)
}

func TestCaptureRestore(t *testing.T) {
	start := toy.Default()
	snap := captureToy(start)

	assert.Equal(t, "toy", snap.Variant)
	assert.Equal(t, uint64(4), snap.Side)
	require.Len(t, snap.Pieces, 6)
	assert.Equal(t, Record[toy.Piece, board.DefaultColor]{Square: 0, Piece: toy.King, Color: board.White}, snap.Pieces[0])
	for i := 1; i < len(snap.Pieces); i++ {
		assert.Less(t, snap.Pieces[i-1].Square, snap.Pieces[i].Square)
	}

	// Restoring clears whatever the target held before.
	target := toy.New()
	_, err := target.Set(toy.At(5), board.NewSlot(toy.Rook, board.Black))
	require.NoError(t, err)
	require.NoError(t, restoreToy(snap, "toy", target))
	assert.True(t, board.Equal[toy.Geometry, uint8, toy.File, toy.Rank, toy.Piece, board.DefaultColor](start, target))
}

func TestRestoreRejects(t *testing.T) {
	snap := captureToy(toy.Default())

	t.Run("WrongVariant", func(t *testing.T) {
		assert.Error(t, restoreToy(snap, "standard", toy.New()))
	})

	t.Run("WrongSide", func(t *testing.T) {
		eight := toySnapshot{Variant: "toy", Side: 8}
		assert.Error(t, restoreToy(eight, "toy", toy.New()))
	})

	t.Run("SquareOutOfRange", func(t *testing.T) {
		bad := toySnapshot{
			Variant: "toy",
			Side:    4,
			Pieces: []Record[toy.Piece, board.DefaultColor]{
				{Square: 3, Piece: toy.King, Color: board.White},
				{Square: 16, Piece: toy.Rook, Color: board.Black},
			},
		}
		target := toy.Default()
		err := restoreToy(bad, "toy", target)
		assert.ErrorIs(t, err, board.ErrOutOfRange)
		assert.Equal(t, captureToy(toy.Default()), captureToy(target), "board changed on error")
	})
}

func TestFingerprint(t *testing.T) {
	a, err := captureToy(toy.Default()).Fingerprint()
	require.NoError(t, err)
	b, err := captureToy(toy.Default()).Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	moved := toy.Default()
	_, err = board.MakeMove[toy.Geometry, uint8, toy.File, toy.Rank, toy.Piece, board.DefaultColor](moved, board.NewMove(toy.At(4), toy.At(10)))
	require.NoError(t, err)
	c, err := captureToy(moved).Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestYAML(t *testing.T) {
	snap := captureToy(toy.Default())
	data, err := snap.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "variant: toy")

	back, err := ParseYAML[toy.Piece, board.DefaultColor](data)
	require.NoError(t, err)
	assert.Equal(t, snap, back)

	_, err = ParseYAML[toy.Piece, board.DefaultColor]([]byte("pieces: {"))
	assert.Error(t, err)
}

func TestStore(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	start := Capture[standard.Geometry, uint8, standard.File, standard.Rank, standard.Piece, standard.Color]("standard", standard.Default())
	opening, err := standard.ParsePlacement("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR")
	require.NoError(t, err)
	kingsPawn := Capture[standard.Geometry, uint8, standard.File, standard.Rank, standard.Piece, standard.Color]("standard", opening)

	t.Run("SaveLoad", func(t *testing.T) {
		require.NoError(t, Save(s, "start", start))
		require.NoError(t, Save(s, "e4e5", kingsPawn))

		got, err := Load[standard.Piece, standard.Color](s, "e4e5")
		require.NoError(t, err)
		assert.Equal(t, kingsPawn, got)

		b := standard.New()
		require.NoError(t, Restore[standard.Geometry, uint8, standard.File, standard.Rank, standard.Piece, standard.Color](got, "standard", b))
		assert.Equal(t, opening.Placement(), b.Placement())
	})

	t.Run("Names", func(t *testing.T) {
		names, err := s.Names()
		require.NoError(t, err)
		assert.Equal(t, []string{"e4e5", "start"}, names)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, Save(s, "start", kingsPawn))
		got, err := Load[standard.Piece, standard.Color](s, "start")
		require.NoError(t, err)
		assert.Equal(t, kingsPawn, got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, s.Delete("start"))
		_, err := Load[standard.Piece, standard.Color](s, "start")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.Delete("start"), ErrNotFound)
	})

	t.Run("EmptyName", func(t *testing.T) {
		assert.Error(t, Save(s, "", start))
	})
}

func TestStoreInMemory(t *testing.T) {
	s, err := OpenInMemory()
	require.NoError(t, err)
	defer s.Close()

	names, err := s.Names()
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = Load[toy.Piece, board.DefaultColor](s, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	snap := captureToy(toy.Default())
	require.NoError(t, Save(s, "toy", snap))
	got, err := Load[toy.Piece, board.DefaultColor](s, "toy")
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestGetDatabaseDir(t *testing.T) {
	tmpDir := t.TempDir()

	dir, err := GetDatabaseDir(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "db"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
