package rules

import (
	"testing"

	"blockpuzzle/src/base"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFrom(rows ...string) base.Board {
	b := base.NewBoard()
	for r, line := range rows {
		for c, ch := range line {
			if ch != '.' {
				b[r][c] = base.ColorCell(int(ch - '0'))
			}
		}
	}
	return b
}

func fullBoard() base.Board {
	b := base.NewBoard()
	for r := 0; r < base.GridSize; r++ {
		for c := 0; c < base.GridSize; c++ {
			b[r][c] = base.ColorCell(0)
		}
	}
	return b
}

func TestCanPlaceBounds(t *testing.T) {
	b := base.NewBoard()
	tetraH := base.MustShape("tetra-h", "XXXX")
	cases := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"origin", 0, 0, true},
		{"last fitting column", 0, 5, true},
		{"overflow right", 0, 6, false},
		{"bottom row", 8, 0, true},
		{"overflow bottom", 9, 0, false},
		{"negative row", -1, 0, false},
		{"negative col", 0, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanPlace(tetraH, tc.row, tc.col, &b))
		})
	}
}

func TestCanPlaceOverlap(t *testing.T) {
	b := base.NewBoard()
	b[1][1] = base.ColorCell(2)
	square := base.MustShape("tetra-o", "XX", "XX")

	assert.False(t, CanPlace(square, 0, 0, &b))
	assert.False(t, CanPlace(square, 1, 1, &b))
	assert.True(t, CanPlace(square, 2, 2, &b))

	// unoccupied shape cells may sit on filled board cells
	corner := base.MustShape("tri-l", "X.", "XX")
	b2 := base.NewBoard()
	b2[0][1] = base.ColorCell(3)
	assert.True(t, CanPlace(corner, 0, 0, &b2))
}

func TestCanPlaceEmptyShapeAndNilBoard(t *testing.T) {
	b := fullBoard()
	empty, err := base.ParseShape("empty")
	require.NoError(t, err)
	assert.True(t, CanPlace(empty, 0, 0, &b))
	assert.True(t, CanPlace(empty, 42, -3, &b))
	assert.False(t, CanPlace(base.MustShape("mono", "X"), 0, 0, nil))
}

// exhaustive check: CanPlace agrees with a cell-by-cell definition
func TestCanPlaceValidityClosure(t *testing.T) {
	b := boardFrom(
		".........",
		"..1......",
		".........",
		"....2....",
		".........",
		".........",
		"......3..",
		".........",
		"........4",
	)
	for _, shape := range base.Catalog() {
		for row := -2; row < base.GridSize+1; row++ {
			for col := -2; col < base.GridSize+1; col++ {
				want := true
				for _, off := range shape.Cells() {
					p := base.Point{Row: row + off.Row, Col: col + off.Col}
					if !base.IsValidPoint(p) || !b.At(p).IsEmpty() {
						want = false
						break
					}
				}
				assert.Equal(t, want, CanPlace(shape, row, col, &b), "%s at (%d,%d)", shape.Name, row, col)
			}
		}
	}
}

func TestStamp(t *testing.T) {
	b := base.NewBoard()
	tri := base.MustShape("tri-l", "X.", "XX")
	out, placed := Stamp(b, tri, 3, 4, 5)

	assert.Equal(t, []base.Point{{Row: 3, Col: 4}, {Row: 4, Col: 4}, {Row: 4, Col: 5}}, placed)
	assert.Equal(t, 5, out[3][4].Color())
	assert.True(t, out[3][5].IsEmpty())
	assert.Equal(t, 3, out.Filled())
	// source untouched
	assert.Equal(t, 0, b.Filled())
}

func TestEvaluateLines(t *testing.T) {
	b := boardFrom(
		"111111111",
		"1........",
		"1........",
		"1.......2",
		"1........",
		"1........",
		"1........",
		"1........",
		"1........",
	)
	lines := EvaluateLines(b)
	assert.Equal(t, []int{0}, lines.Rows)
	assert.Equal(t, []int{0}, lines.Cols)
	assert.Equal(t, 2, lines.Count())

	empty := base.NewBoard()
	assert.True(t, EvaluateLines(empty).Empty())

	full := fullBoard()
	all := EvaluateLines(full)
	assert.Len(t, all.Rows, base.GridSize)
	assert.Len(t, all.Cols, base.GridSize)
}

func TestApplyClearIsSimultaneous(t *testing.T) {
	b := boardFrom(
		"111111111",
		"1.......3",
		"1........",
		"1........",
		"1........",
		"1........",
		"1........",
		"1........",
		"1........",
	)
	lines := EvaluateLines(b)
	out := ApplyClear(b, lines)

	assert.True(t, out[0][0].IsEmpty())
	assert.True(t, out[0][8].IsEmpty())
	assert.True(t, out[8][0].IsEmpty())
	assert.Equal(t, 3, out[1][8].Color())
	assert.Equal(t, 1, out.Filled())
	// source untouched
	assert.Equal(t, 18, b.Filled())
}

func TestApplyClearIgnoresOutOfRange(t *testing.T) {
	b := fullBoard()
	out := ApplyClear(b, Lines{Rows: []int{-1, 9}, Cols: []int{12}})
	assert.Equal(t, base.GridSize*base.GridSize, out.Filled())
}

func TestPoints(t *testing.T) {
	cases := map[int]int{
		-1: 0,
		0:  0,
		1:  10,
		2:  40,
		3:  90,
		4:  160,
		5:  250,
	}
	for n, want := range cases {
		assert.Equal(t, want, Points(n), "lines=%d", n)
	}
}

func TestPlacements(t *testing.T) {
	b := base.NewBoard()
	mono := base.MustShape("mono", "X")
	assert.Len(t, Placements(mono, &b), 81)

	plus := base.MustShape("penta-plus", ".X.", "XXX", ".X.")
	assert.Len(t, Placements(plus, &b), 49)

	full := fullBoard()
	assert.Empty(t, Placements(mono, &full))
}

func TestCheckTerminal(t *testing.T) {
	mono := base.MustShape("mono", "X")
	tetraO := base.MustShape("tetra-o", "XX", "XX")
	tetraH := base.MustShape("tetra-h", "XXXX")

	// checkerboard holes: singles fit, nothing wider does
	b := fullBoard()
	for r := 0; r < base.GridSize; r += 2 {
		for c := 0; c < base.GridSize; c += 2 {
			b[r][c] = base.EmptyCell
		}
	}

	assert.True(t, CheckTerminal(base.Inventory{{ID: "o", Shape: tetraO}, {ID: "h", Shape: tetraH}}, &b))
	assert.False(t, CheckTerminal(base.Inventory{{ID: "o", Shape: tetraO}, {ID: "m", Shape: mono}}, &b))

	full := fullBoard()
	assert.True(t, CheckTerminal(base.Inventory{{ID: "m", Shape: mono}}, &full))
	assert.False(t, CheckTerminal(nil, &full))

	empty := base.NewBoard()
	for _, s := range base.Catalog() {
		assert.False(t, CheckTerminal(base.Inventory{{ID: s.Name, Shape: s}}, &empty), s.Name)
	}
}

func TestRulesOnBoardValues(t *testing.T) {
	lines := EvaluateLines(fullBoard())
	assert.Equal(t, 2*base.GridSize, lines.Count())
	out := ApplyClear(fullBoard(), lines)
	assert.Equal(t, 0, out.Filled())
}
