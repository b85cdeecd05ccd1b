package tui

import (
	"blockpuzzle/src/base"
)

// board cells are 4x2 characters, inventory cells 2x1
const (
	cellW     = 4
	cellH     = 2
	slotCellW = 2
	slotW     = 16
	slotH     = 5
)

type Layout struct {
	BoardX, BoardY int
	SideX, SideY   int
	Width, Height  int
}

func NewLayout(width, height int) Layout {
	l := Layout{
		BoardX: 3,
		BoardY: 2,
		Width:  width,
		Height: height,
	}
	l.SideX = l.BoardX + base.GridSize*cellW + 3
	l.SideY = l.BoardY + 2
	return l
}

func (l Layout) MinSize() (int, int) {
	return l.SideX + slotW, l.SideY + base.BatchSize*slotH + 3
}

func (l Layout) Fits() bool {
	w, h := l.MinSize()
	return l.Width >= w && l.Height >= h
}

// CellOrigin is the top-left screen position of a board cell
func (l Layout) CellOrigin(p base.Point) (int, int) {
	return l.BoardX + p.Col*cellW, l.BoardY + p.Row*cellH
}

// CellUnder maps a screen position to board coordinates, which may lie
// outside the grid
func (l Layout) CellUnder(x, y int) base.Point {
	return base.Point{
		Row: floorDiv(y-l.BoardY, cellH),
		Col: floorDiv(x-l.BoardX, cellW),
	}
}

func (l Layout) CellAt(x, y int) (base.Point, bool) {
	p := l.CellUnder(x, y)
	return p, base.IsValidPoint(p)
}

func (l Layout) SlotOrigin(slot int) (int, int) {
	return l.SideX, l.SideY + slot*slotH
}

// SlotAt finds the inventory slot under the position and the piece cell
// that was grabbed, clamped to the shape's bounding box
func (l Layout) SlotAt(x, y int, inv base.Inventory) (int, base.Point, bool) {
	if x < l.SideX || x >= l.SideX+slotW || y < l.SideY {
		return 0, base.Point{}, false
	}
	slot := (y - l.SideY) / slotH
	if slot >= len(inv) {
		return 0, base.Point{}, false
	}
	_, sy := l.SlotOrigin(slot)
	shape := inv[slot].Shape
	grab := base.Point{
		Row: clamp(y-sy-1, 0, shape.Rows-1),
		Col: clamp((x-l.SideX)/slotCellW, 0, shape.Cols-1),
	}
	return slot, grab, true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
