package rules

import (
	"blockpuzzle/src/base"
)

// Lines are the full rows and columns found on a single board snapshot
type Lines struct {
	Rows []int
	Cols []int
}

// Count treats a row and a column sharing a cell as two lines
func (l Lines) Count() int {
	return len(l.Rows) + len(l.Cols)
}

func (l Lines) Empty() bool {
	return l.Count() == 0
}

// checks every occupied shape cell lands on an in-bounds empty cell
func CanPlace(shape base.Shape, row, col int, b *base.Board) bool {
	if b == nil {
		return false
	}
	for r := 0; r < shape.Rows; r++ {
		for c := 0; c < shape.Cols; c++ {
			if !shape.Mask[r][c] {
				continue
			}
			p := base.Point{Row: row + r, Col: col + c}
			if !base.IsValidPoint(p) {
				return false
			}
			if !b[p.Row][p.Col].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// Stamp returns a copy of b with the colour in every occupied cell; call only after CanPlace
func Stamp(b base.Board, shape base.Shape, row, col, color int) (base.Board, []base.Point) {
	out := b
	cells := shape.Cells()
	placed := make([]base.Point, 0, len(cells))
	for _, off := range cells {
		p := base.Point{Row: row + off.Row, Col: col + off.Col}
		out.Set(p, base.ColorCell(color))
		placed = append(placed, p)
	}
	return out, placed
}

func EvaluateLines(b base.Board) Lines {
	var lines Lines
	for r := 0; r < base.GridSize; r++ {
		full := true
		for c := 0; c < base.GridSize; c++ {
			if b[r][c].IsEmpty() {
				full = false
				break
			}
		}
		if full {
			lines.Rows = append(lines.Rows, r)
		}
	}
	for c := 0; c < base.GridSize; c++ {
		full := true
		for r := 0; r < base.GridSize; r++ {
			if b[r][c].IsEmpty() {
				full = false
				break
			}
		}
		if full {
			lines.Cols = append(lines.Cols, c)
		}
	}
	return lines
}

// ApplyClear empties the listed rows and columns of the original snapshot at once
func ApplyClear(b base.Board, lines Lines) base.Board {
	out := b
	for _, r := range lines.Rows {
		if r < 0 || r >= base.GridSize {
			continue
		}
		for c := 0; c < base.GridSize; c++ {
			out[r][c] = base.EmptyCell
		}
	}
	for _, c := range lines.Cols {
		if c < 0 || c >= base.GridSize {
			continue
		}
		for r := 0; r < base.GridSize; r++ {
			out[r][c] = base.EmptyCell
		}
	}
	return out
}

// Points: 1 -> 10, 2 -> 40, 3 -> 90, 4 -> 160
func Points(linesCleared int) int {
	if linesCleared <= 0 {
		return 0
	}
	return linesCleared * 10 * max(linesCleared, 1)
}

// Placements lists every origin where the shape fits, row-major
func Placements(shape base.Shape, b *base.Board) []base.Point {
	var out []base.Point
	for r := 0; r < base.GridSize; r++ {
		for c := 0; c < base.GridSize; c++ {
			if CanPlace(shape, r, c, b) {
				out = append(out, base.Point{Row: r, Col: c})
			}
		}
	}
	return out
}

func FitsAnywhere(shape base.Shape, b *base.Board) bool {
	for r := 0; r < base.GridSize; r++ {
		for c := 0; c < base.GridSize; c++ {
			if CanPlace(shape, r, c, b) {
				return true
			}
		}
	}
	return false
}

// no piece of the inventory fits anywhere; an empty inventory is never terminal
func CheckTerminal(inv base.Inventory, b *base.Board) bool {
	if len(inv) == 0 {
		return false
	}
	for _, p := range inv {
		if FitsAnywhere(p.Shape, b) {
			return false
		}
	}
	return true
}
