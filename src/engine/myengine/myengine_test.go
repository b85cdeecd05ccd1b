package myengine

import (
	"context"
	"testing"

	"blockpuzzle/src/base"
	"blockpuzzle/src/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestPrefersClearingLines(t *testing.T) {
	b := base.NewBoard()
	for c := 0; c < base.GridSize-1; c++ {
		b[4][c] = base.ColorCell(1)
	}
	snap := base.Snapshot{
		Board: b,
		Inventory: base.Inventory{
			{ID: "o", Shape: base.MustShape("tetra-o", "XX", "XX"), Color: 2},
			{ID: "m", Shape: base.MustShape("mono", "X"), Color: 3},
		},
	}

	s, err := NewGreedyEngine().Suggest(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, "m", s.PieceID)
	assert.Equal(t, base.Point{Row: 4, Col: 8}, s.At)
	assert.Equal(t, 1, s.Lines)
	assert.Equal(t, 10, s.Points)
}

func TestSuggestNoMove(t *testing.T) {
	b := base.NewBoard()
	for r := 0; r < base.GridSize; r++ {
		for c := 0; c < base.GridSize; c++ {
			b[r][c] = base.ColorCell(0)
		}
	}
	snap := base.Snapshot{Board: b, Inventory: base.Inventory{{ID: "m", Shape: base.MustShape("mono", "X")}}}
	_, err := NewGreedyEngine().Suggest(context.Background(), snap)
	assert.ErrorIs(t, err, engine.ErrNoMove)
}

func TestSuggestRejectsFinishedGame(t *testing.T) {
	snap := base.Snapshot{Board: base.NewBoard(), Status: base.Over}
	_, err := NewGreedyEngine().Suggest(context.Background(), snap)
	assert.ErrorIs(t, err, base.ErrInvalidGameState)
}

func TestSuggestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	snap := base.Snapshot{Board: base.NewBoard(), Inventory: base.Inventory{{ID: "m", Shape: base.MustShape("mono", "X")}}}
	_, err := NewGreedyEngine().Suggest(ctx, snap)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSuggestDoesNotTouchSnapshot(t *testing.T) {
	inv := base.Inventory{
		{ID: "a", Shape: base.MustShape("mono", "X")},
		{ID: "b", Shape: base.MustShape("domino-h", "XX")},
		{ID: "c", Shape: base.MustShape("tri-v", "X", "X", "X")},
	}
	snap := base.Snapshot{Board: base.NewBoard(), Inventory: inv.Clone()}
	_, err := NewGreedyEngine().Suggest(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, inv, snap.Inventory)
	assert.Equal(t, 0, snap.Board.Filled())
}
