package src

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"blockpuzzle/src/base"
	"blockpuzzle/src/engine"
	"blockpuzzle/src/engine/myengine"
	"blockpuzzle/src/logic/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mono  = base.MustShape("mono", "X")
	tetra = base.MustShape("tetra-o", "XX", "XX")
)

func newTestBuilder(t *testing.T, catalog ...base.Shape) *GameBuilder {
	t.Helper()
	gb := NewBuilderBoard(nil, rand.New(rand.NewSource(7)))
	if len(catalog) > 0 {
		require.NoError(t, gb.SetCatalog(catalog))
	}
	gb.NewGame()
	return gb
}

// filled where (r+c) is even; nothing wider than one cell fits
func checkerboard() base.Board {
	b := base.NewBoard()
	for r := 0; r < base.GridSize; r++ {
		for c := 0; c < base.GridSize; c++ {
			if (r+c)%2 == 0 {
				b[r][c] = base.ColorCell(0)
			}
		}
	}
	return b
}

func TestNewGame(t *testing.T) {
	gb := newTestBuilder(t)
	snap := gb.Snapshot()

	assert.Equal(t, base.InProgress, snap.Status)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.Board.Filled())
	require.Len(t, snap.Inventory, base.BatchSize)

	seen := map[string]bool{}
	for _, p := range snap.Inventory {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		_, ok := base.ShapeByName(p.Shape.Name)
		assert.True(t, ok)
		assert.GreaterOrEqual(t, p.Color, 0)
		assert.Less(t, p.Color, base.ColorCount)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	gb := newTestBuilder(t)
	snap := gb.Snapshot()
	snap.Board[0][0] = base.ColorCell(3)
	snap.Inventory[0].ID = "tampered"

	assert.True(t, gb.CurrentBoard()[0][0].IsEmpty())
	_, ok := gb.Piece("tampered")
	assert.False(t, ok)
}

func TestPlaceUnknownPiece(t *testing.T) {
	gb := newTestBuilder(t)
	before := gb.Snapshot()

	out, err := gb.Place("no-such-piece", 0, 0)
	assert.ErrorIs(t, err, base.ErrInvalidPlacement)
	assert.False(t, out.Accepted)
	assert.Equal(t, before, gb.Snapshot())
	assert.Equal(t, 0, gb.CountTurns())
}

func TestPlaceRejectedLeavesStateUntouched(t *testing.T) {
	gb := newTestBuilder(t, mono)
	gb.board[2][3] = base.ColorCell(1)
	before := gb.Snapshot()
	id := before.Inventory[0].ID

	tests := []struct {
		name     string
		row, col int
	}{
		{"occupied", 2, 3},
		{"negative row", -1, 0},
		{"past right edge", 0, base.GridSize},
		{"past bottom edge", base.GridSize, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := gb.Place(id, tt.row, tt.col)
			assert.ErrorIs(t, err, base.ErrInvalidPlacement)
			assert.False(t, out.Accepted)
			assert.Equal(t, before, gb.Snapshot())
		})
	}
}

func TestPlaceSimple(t *testing.T) {
	gb := newTestBuilder(t)
	p := gb.Inventory()[1]

	require.True(t, gb.IsPlaceable(p.Shape, 0, 0))
	out, err := gb.Place(p.ID, 0, 0)
	require.NoError(t, err)

	assert.True(t, out.Accepted)
	assert.Equal(t, p, out.Piece)
	assert.Len(t, out.Placed, p.Shape.Area())
	assert.Equal(t, p.Shape.Area(), gb.CurrentBoard().Filled())
	for _, c := range out.Placed {
		assert.Equal(t, p.Color, gb.CurrentBoard().At(c).Color())
	}
	assert.Len(t, gb.Inventory(), base.BatchSize-1)
	_, ok := gb.Piece(p.ID)
	assert.False(t, ok)
	assert.False(t, out.Refilled)
	assert.Equal(t, 1, gb.CountTurns())
	assert.Equal(t, out.Snapshot, gb.Snapshot())
}

func TestPlaceClearsRowAndColumnTogether(t *testing.T) {
	gb := newTestBuilder(t, mono)
	for i := 0; i < base.GridSize; i++ {
		if i == 4 {
			continue
		}
		gb.board[4][i] = base.ColorCell(2)
		gb.board[i][4] = base.ColorCell(5)
	}
	gb.board[0][0] = base.ColorCell(1)

	out, err := gb.Place(gb.Inventory()[0].ID, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, out.ClearedRows)
	assert.Equal(t, []int{4}, out.ClearedCols)
	assert.Equal(t, 2, out.LinesCleared)
	assert.Equal(t, 40, out.PointsAwarded)
	assert.Equal(t, 40, gb.Score())

	assert.Len(t, out.ClearedCells(), 2*base.GridSize-1)
	assert.True(t, out.ClearedCells()[base.Point{Row: 4, Col: 4}])

	// only the unrelated cell survives
	assert.Equal(t, 1, gb.CurrentBoard().Filled())
	assert.False(t, gb.CurrentBoard()[0][0].IsEmpty())
}

func TestNineMonosClearTopRow(t *testing.T) {
	gb := newTestBuilder(t, mono)

	var last PlacementOutcome
	for col := 0; col < base.GridSize; col++ {
		p, ok := gb.PieceAt(0)
		require.True(t, ok)
		out, err := gb.Place(p.ID, 0, col)
		require.NoError(t, err)
		assert.Equal(t, col%base.BatchSize == base.BatchSize-1, out.Refilled, "turn %d", col+1)
		last = out
	}

	assert.Equal(t, 1, last.LinesCleared)
	assert.Equal(t, 10, gb.Score())
	assert.Equal(t, 0, gb.CurrentBoard().Filled())
	assert.Len(t, gb.Inventory(), base.BatchSize)
	assert.Equal(t, base.InProgress, gb.Status())
	assert.Equal(t, 9, gb.CountTurns())
	assert.Equal(t, 1, gb.History().TotalLines())
}

func TestRefillHappensBeforeTerminalCheck(t *testing.T) {
	gb := newTestBuilder(t, tetra)
	gb.board = checkerboard()
	gb.inventory = base.Inventory{{ID: "last", Shape: mono, Color: 1}}

	out, err := gb.Place("last", 0, 1)
	require.NoError(t, err)
	assert.True(t, out.Refilled)
	assert.True(t, out.GameOver)
	assert.Equal(t, base.Over, gb.Status())
	require.Len(t, gb.Inventory(), base.BatchSize)
	for _, p := range gb.Inventory() {
		assert.Equal(t, "tetra-o", p.Shape.Name)
	}
}

func TestRemainingPieceDecidesTerminal(t *testing.T) {
	gb := newTestBuilder(t, mono)
	gb.board = checkerboard()
	gb.inventory = base.Inventory{
		{ID: "m", Shape: mono, Color: 1},
		{ID: "o", Shape: tetra, Color: 2},
	}

	out, err := gb.Place("m", 0, 1)
	require.NoError(t, err)
	assert.False(t, out.Refilled)
	assert.True(t, out.GameOver)
	assert.Equal(t, base.Over, out.Snapshot.Status)
}

func TestPlaceAfterGameOver(t *testing.T) {
	gb := newTestBuilder(t)
	gb.status = base.Over
	before := gb.Snapshot()

	_, err := gb.Place(before.Inventory[0].ID, 0, 0)
	assert.ErrorIs(t, err, base.ErrInvalidGameState)
	assert.Equal(t, before, gb.Snapshot())
}

func TestNewGameResetsFinishedGame(t *testing.T) {
	gb := newTestBuilder(t, mono)
	_, err := gb.Place(gb.Inventory()[0].ID, 3, 3)
	require.NoError(t, err)
	gb.score = 120
	gb.status = base.Over

	snap := gb.NewGame()
	assert.Equal(t, base.InProgress, snap.Status)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.Board.Filled())
	assert.Len(t, snap.Inventory, base.BatchSize)
	assert.Equal(t, 0, gb.CountTurns())
}

func TestIsPlaceableDoesNotMutate(t *testing.T) {
	gb := newTestBuilder(t)
	gb.board[0][0] = base.ColorCell(0)
	before := gb.Snapshot()

	assert.False(t, gb.IsPlaceable(mono, 0, 0))
	assert.True(t, gb.IsPlaceable(mono, 0, 1))
	assert.False(t, gb.IsPlaceable(tetra, 8, 8))
	assert.Equal(t, before, gb.Snapshot())
}

func TestPlaceAt(t *testing.T) {
	gb := newTestBuilder(t, mono)

	_, err := gb.PlaceAt(5, 0, 0)
	assert.ErrorIs(t, err, base.ErrInvalidPlacement)

	out, err := gb.PlaceAt(2, 8, 8)
	require.NoError(t, err)
	assert.True(t, out.Accepted)
	assert.Equal(t, "1. mono i9", gb.MovesText())
}

func TestSetCatalogRejectsEmpty(t *testing.T) {
	gb := NewBuilderBoard(nil, nil)
	assert.ErrorIs(t, gb.SetCatalog(nil), generator.ErrEmptyCatalog)
	// the previous catalog stays in use
	assert.Len(t, gb.NewGame().Inventory, base.BatchSize)
}

func TestSeededBuildersDealSameBatches(t *testing.T) {
	a := NewBuilderBoard(nil, rand.New(rand.NewSource(42)))
	b := NewBuilderBoard(nil, rand.New(rand.NewSource(42)))
	assert.Equal(t, a.NewGame().Inventory, b.NewGame().Inventory)

	require.NoError(t, a.SetCatalog([]base.Shape{tetra}))
	for _, p := range a.NewGame().Inventory {
		assert.Equal(t, "tetra-o", p.Shape.Name)
	}
}

func TestHint(t *testing.T) {
	gb := newTestBuilder(t, mono)

	_, err := gb.Hint(context.Background())
	assert.ErrorIs(t, err, engine.ErrNoMove)

	gb.SetEngineWorker(myengine.NewGreedyEngine())
	assert.Equal(t, "greedy", gb.EngineName())
	for c := 0; c < base.GridSize-1; c++ {
		gb.board[6][c] = base.ColorCell(4)
	}

	s, err := gb.Hint(context.Background())
	require.NoError(t, err)
	assert.Equal(t, base.Point{Row: 6, Col: 8}, s.At)

	out, err := gb.EngineMove(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, out.LinesCleared)
	assert.Equal(t, 10, gb.Score())
}

func TestShareText(t *testing.T) {
	gb := newTestBuilder(t, mono)
	gb.board[0][1] = base.ColorCell(4)
	gb.score = 90

	lines := strings.Split(strings.TrimRight(gb.ShareText(), "\n"), "\n")
	require.Len(t, lines, 1+base.GridSize)
	assert.Equal(t, "Block Puzzle: score 90, 0 turns, 0 lines", lines[0])
	assert.Equal(t, "⬜🟦⬜⬜⬜⬜⬜⬜⬜", lines[1])
}
