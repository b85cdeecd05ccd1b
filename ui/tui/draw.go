package tui

import (
	"fmt"

	"blockpuzzle/src/base"

	"github.com/gdamore/tcell/v2"
)

var (
	styleText    = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleEmptyA  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x2a, 0x2a, 0x35))
	styleEmptyB  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x33, 0x33, 0x40))
	styleInvalid = tcell.StyleDefault.Background(tcell.NewRGBColor(0x99, 0x1b, 0x1b))
	styleFlash   = tcell.StyleDefault.Background(tcell.ColorWhite)
	styleModal   = tcell.StyleDefault.Background(tcell.NewRGBColor(0x1f, 0x1f, 0x2e)).Foreground(tcell.ColorWhite)
)

func pieceStyle(color int) tcell.Style {
	r, g, b := base.ColorRGB(color)
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// previewStyle is a lighter tint of the piece colour
func previewStyle(color int) tcell.Style {
	r, g, b := base.ColorRGB(color)
	mix := func(v uint8) int32 { return int32(v)/2 + 0x40 }
	return tcell.StyleDefault.Background(tcell.NewRGBColor(mix(r), mix(g), mix(b)))
}

func (a *App) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *App) fill(x, y, w, h int, r rune, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			a.screen.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

func (a *App) draw() {
	a.screen.Clear()
	l := a.layout
	if !l.Fits() {
		w, h := l.MinSize()
		a.text(0, 0, fmt.Sprintf("terminal too small, need %dx%d", w, h), styleText)
		a.screen.Show()
		return
	}

	a.text(l.BoardX, 0, "BLOCK PUZZLE", styleTitle)
	a.drawBoard()
	a.drawSide()
	a.text(0, l.Height-1, "drag or 1-3 + arrows + Enter | h hint | n new | q quit", styleDim)
	if a.modal {
		a.drawModal()
	}
	a.screen.Show()
}

func (a *App) drawBoard() {
	l := a.layout
	snap := a.builder.Snapshot()

	for c := 0; c < base.GridSize; c++ {
		x, _ := l.CellOrigin(base.Point{Col: c})
		a.text(x+1, l.BoardY-1, string(rune('a'+c)), styleDim)
	}
	for r := 0; r < base.GridSize; r++ {
		_, y := l.CellOrigin(base.Point{Row: r})
		a.text(l.BoardX-2, y, fmt.Sprintf("%d", r+1), styleDim)
	}

	preview := map[base.Point]bool{}
	valid := false
	if a.drag != nil && a.drag.over {
		valid = a.builder.IsPlaceable(a.drag.piece.Shape, a.drag.at.Row, a.drag.at.Col)
		for _, off := range a.drag.piece.Shape.Cells() {
			preview[base.Point{Row: a.drag.at.Row + off.Row, Col: a.drag.at.Col + off.Col}] = true
		}
	}
	hinted := map[base.Point]bool{}
	if a.hint != nil {
		if s, ok := base.ShapeByName(a.hint.Shape); ok {
			for _, off := range s.Cells() {
				hinted[base.Point{Row: a.hint.At.Row + off.Row, Col: a.hint.At.Col + off.Col}] = true
			}
		}
	}

	for r := 0; r < base.GridSize; r++ {
		for c := 0; c < base.GridSize; c++ {
			p := base.Point{Row: r, Col: c}
			cell := snap.Board[r][c]
			style := styleEmptyA
			if (r/3+c/3)%2 == 1 {
				style = styleEmptyB
			}
			glyph := '·'
			if !cell.IsEmpty() {
				style = pieceStyle(cell.Color())
				glyph = ' '
			}
			switch {
			case preview[p] && valid:
				style = previewStyle(a.drag.piece.Color)
			case preview[p]:
				style = styleInvalid
			case a.flash[p]:
				style = styleFlash
			case hinted[p]:
				glyph = '◆'
			}
			x, y := l.CellOrigin(p)
			a.fill(x, y, cellW, cellH, ' ', style)
			a.screen.SetContent(x+cellW/2-1, y, glyph, nil, style.Foreground(tcell.ColorGray))
		}
	}
}

func (a *App) drawSide() {
	l := a.layout
	a.text(l.SideX, l.BoardY-1, fmt.Sprintf("Score: %d", a.builder.Score()), styleTitle)
	if a.message != "" {
		a.text(l.SideX, l.BoardY, a.message, styleText)
	}

	for i, p := range a.builder.Inventory() {
		x, y := l.SlotOrigin(i)
		labelStyle := styleDim
		if a.drag != nil && a.drag.slot == i {
			labelStyle = styleTitle
		}
		a.text(x, y, fmt.Sprintf("%d %s", i+1, p.Shape.Name), labelStyle)
		if a.drag != nil && a.drag.slot == i {
			continue
		}
		for _, off := range p.Shape.Cells() {
			a.fill(x+off.Col*slotCellW, y+1+off.Row, slotCellW, 1, ' ', pieceStyle(p.Color))
		}
	}
}

func (a *App) drawModal() {
	l := a.layout
	w, h := 30, 7
	x := l.BoardX + (base.GridSize*cellW-w)/2
	y := l.BoardY + (base.GridSize*cellH-h)/2
	a.fill(x, y, w, h, ' ', styleModal)
	a.text(x+10, y+1, "GAME OVER", styleModal.Bold(true))
	a.text(x+3, y+3, fmt.Sprintf("Final score: %d", a.builder.Score()), styleModal)
	a.text(x+3, y+5, "Enter/click: play again", styleModal)
}
