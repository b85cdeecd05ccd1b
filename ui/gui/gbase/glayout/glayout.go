package glayout

import (
	"blockpuzzle/src/base"
)

const (
	minCell  = 32
	maxCell  = 64
	slotGap  = 12
	margin   = 40
	headerH  = 100
	trayW    = 150
	panelGap = 30
)

// Layout is the pixel geometry of the play scene
type Layout struct {
	W, H           int
	BoardX, BoardY int
	Cell           int
	TrayX, TrayY   int
	SlotW, SlotH   int
	TrayCell       int
	PanelX, PanelW int
}

func NewLayout(w, h int) Layout {
	cell := min((h-headerH-margin)/base.GridSize, (w-480)/base.GridSize)
	cell = clamp(cell, minCell, maxCell)

	l := Layout{W: w, H: h, Cell: cell, BoardX: margin, BoardY: headerH}
	board := base.GridSize * cell
	l.TrayX = l.BoardX + board + 36
	l.TrayY = l.BoardY
	l.SlotW = trayW
	l.SlotH = (board - (base.BatchSize-1)*slotGap) / base.BatchSize
	l.TrayCell = min(l.SlotW, l.SlotH-20) / 5
	l.PanelX = l.TrayX + l.SlotW + panelGap
	l.PanelW = max(w-l.PanelX-panelGap, 120)
	return l
}

func (l Layout) BoardSize() int {
	return base.GridSize * l.Cell
}

// CellOrigin is the top-left pixel of a board cell
func (l Layout) CellOrigin(p base.Point) (int, int) {
	return l.BoardX + p.Col*l.Cell, l.BoardY + p.Row*l.Cell
}

// CellUnder maps a pixel to board coordinates, which may lie outside the grid
func (l Layout) CellUnder(x, y int) base.Point {
	return base.Point{
		Row: floorDiv(y-l.BoardY, l.Cell),
		Col: floorDiv(x-l.BoardX, l.Cell),
	}
}

func (l Layout) CellAt(x, y int) (base.Point, bool) {
	p := l.CellUnder(x, y)
	return p, base.IsValidPoint(p)
}

func (l Layout) SlotRect(slot int) (x, y, w, h int) {
	return l.TrayX, l.TrayY + slot*(l.SlotH+slotGap), l.SlotW, l.SlotH
}

// PieceOrigin centres the shape inside its slot at tray scale
func (l Layout) PieceOrigin(slot int, shape base.Shape) (int, int) {
	x, y, w, h := l.SlotRect(slot)
	return x + (w-shape.Cols*l.TrayCell)/2, y + (h-shape.Rows*l.TrayCell)/2
}

// SlotAt finds the inventory slot under the pixel and the piece cell that
// was grabbed, clamped to the shape's bounding box
func (l Layout) SlotAt(x, y int, inv base.Inventory) (int, base.Point, bool) {
	for i, p := range inv {
		sx, sy, sw, sh := l.SlotRect(i)
		if x < sx || x >= sx+sw || y < sy || y >= sy+sh {
			continue
		}
		ox, oy := l.PieceOrigin(i, p.Shape)
		grab := base.Point{
			Row: clamp(floorDiv(y-oy, l.TrayCell), 0, p.Shape.Rows-1),
			Col: clamp(floorDiv(x-ox, l.TrayCell), 0, p.Shape.Cols-1),
		}
		return i, grab, true
	}
	return 0, base.Point{}, false
}

// DragOrigin keeps the grabbed cell centred under the cursor at board scale
func (l Layout) DragOrigin(x, y int, grab base.Point) (int, int) {
	return x - grab.Col*l.Cell - l.Cell/2, y - grab.Row*l.Cell - l.Cell/2
}

// Anchor is the board cell the piece's top-left would land on; over is false
// when the cursor is off the board, which cancels the drop
func (l Layout) Anchor(x, y int, grab base.Point) (base.Point, bool) {
	p, over := l.CellAt(x, y)
	return base.Point{Row: p.Row - grab.Row, Col: p.Col - grab.Col}, over
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
