package cli

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"blockpuzzle/src"
	"blockpuzzle/src/base"
	"blockpuzzle/src/engine/myengine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monoBuilder(t *testing.T) *src.GameBuilder {
	t.Helper()
	gb := src.NewBuilderBoard(nil, rand.New(rand.NewSource(3)))
	require.NoError(t, gb.SetCatalog([]base.Shape{base.MustShape("mono", "X")}))
	gb.SetEngineWorker(myengine.NewGreedyEngine())
	gb.NewGame()
	return gb
}

func runScript(t *testing.T, gb *src.GameBuilder, script string) string {
	t.Helper()
	var out bytes.Buffer
	cl := NewCLIWithIO(gb, PrintSnapshot, strings.NewReader(script), &out)
	require.NoError(t, cl.Run())
	return out.String()
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		args    []string
		slot    int
		at      base.Point
		wantErr bool
	}{
		{[]string{"1", "a1"}, 0, base.Point{Row: 0, Col: 0}, false},
		{[]string{"3", "C4"}, 2, base.Point{Row: 3, Col: 2}, false},
		{[]string{"2", "9", "9"}, 1, base.Point{Row: 8, Col: 8}, false},
		{[]string{"2", "0", "5"}, 1, base.Point{Row: -1, Col: 4}, false},
		{[]string{"1"}, 0, base.Point{}, true},
		{[]string{"x", "a1"}, 0, base.Point{}, true},
		{[]string{"0", "a1"}, 0, base.Point{}, true},
		{[]string{"1", "z9"}, 0, base.Point{}, true},
		{[]string{"1", "r", "2"}, 0, base.Point{}, true},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			slot, at, err := ParsePlacement(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.slot, slot)
			assert.Equal(t, tt.at, at)
		})
	}
}

func TestSessionPlacesAndListsMoves(t *testing.T) {
	gb := monoBuilder(t)
	out := runScript(t, gb, "p 1 a1\n2 1 2\nmoves\nq\nmoves\n")

	assert.Equal(t, 2, gb.CountTurns())
	assert.Contains(t, out, "Moves: 1. mono a1 2. mono b1")
	// nothing after q is read
	assert.Equal(t, 1, strings.Count(out, "Moves:"))
}

func TestSessionRejectsBadInput(t *testing.T) {
	gb := monoBuilder(t)
	out := runScript(t, gb, "p 1 a1\np 1 a1\np 7 b2\np 1 j1\nfly\n")

	assert.Equal(t, 1, gb.CountTurns())
	assert.Contains(t, out, "Invalid move:")
	assert.Contains(t, out, "slot 7 is empty")
	assert.Contains(t, out, "Invalid command:")
	assert.Contains(t, out, "Unknown command: fly")
}

func TestSessionClearsRow(t *testing.T) {
	gb := monoBuilder(t)
	var script strings.Builder
	for c := 0; c < base.GridSize; c++ {
		script.WriteString("1 " + string(rune('a'+c)) + "1\n")
	}
	out := runScript(t, gb, script.String())

	assert.Contains(t, out, "Cleared 1 line(s), +10")
	assert.Equal(t, 10, gb.Score())
}

func TestSessionShare(t *testing.T) {
	gb := monoBuilder(t)
	out := runScript(t, gb, "1 a1\nshare\n")

	assert.Contains(t, out, "Block Puzzle: score 0, 1 turns, 0 lines")
	assert.Equal(t, 9, strings.Count(out, "⬜⬜⬜⬜⬜⬜⬜⬜\n"))
}

func TestSessionHintAndAuto(t *testing.T) {
	gb := monoBuilder(t)
	out := runScript(t, gb, "?\n!\nmoves\n")

	assert.Contains(t, out, "Hint: slot 1 (mono) at a1, clears 0 line(s)")
	assert.Equal(t, 1, gb.CountTurns())
}

func TestSessionGameOverAndNew(t *testing.T) {
	gb := monoBuilder(t)
	require.NoError(t, gb.SetCatalog([]base.Shape{base.MustShape("tetra-o", "XX", "XX")}))
	gb.NewGame()

	// cover the top-left 8x8 with 2x2 blocks, the leftover strips fit nothing
	var script strings.Builder
	for r := 0; r < base.GridSize; r += 2 {
		for c := 0; c < base.GridSize-1; c += 2 {
			script.WriteString("1 " + string(rune('a'+c)) + string(rune('1'+r)) + "\n")
		}
	}
	script.WriteString("p 1 a1\nnew\n")
	out := runScript(t, gb, script.String())

	assert.Contains(t, out, "Game over! Final score:")
	assert.Contains(t, out, "Game is over, type 'new' to play again")
	assert.Equal(t, base.InProgress, gb.Status())
	assert.Equal(t, 0, gb.CountTurns())
}

func TestPrintInventory(t *testing.T) {
	var buf bytes.Buffer
	PrintInventory(&buf, base.Inventory{
		{ID: "a", Shape: base.MustShape("mono", "X"), Color: 0},
		{ID: "b", Shape: base.MustShape("tri-v", "X", "X", "X"), Color: 4},
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "1:mono"))
	assert.Contains(t, lines[0], "2:tri-v")
	assert.Equal(t, 3, strings.Count(buf.String(), colorBg[4]))
}

func TestPrintSnapshotDoesNotPanicOnEmptyInventory(t *testing.T) {
	assert.NotPanics(t, func() {
		PrintSnapshot(io.Discard, base.Snapshot{Board: base.NewBoard()})
	})
}
