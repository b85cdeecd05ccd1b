package gdraw

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blockpuzzle/src/base"
	"blockpuzzle/src/engine"
	"blockpuzzle/src/feedback"
	"blockpuzzle/src/logic/rules"
	"blockpuzzle/ui/gui/gbase/glayout"
	"blockpuzzle/ui/gui/ghelper"
	"blockpuzzle/ui/gui/ghelper/gclipboard"
	"blockpuzzle/ui/gui/ghelper/gdialog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	flashTime   = 350 * time.Millisecond
	toastTime   = 1500 * time.Millisecond
	hintTimeout = 2 * time.Second
	historyRows = 8
)

type dragState struct {
	slot  int
	piece base.Piece
	grab  base.Point // piece cell under the cursor
	x, y  int        // cursor
	at    base.Point // anchor on the board
	over  bool
}

// GUIPlayDrawer is the game board scene
type GUIPlayDrawer struct {
	layout glayout.Layout
	mouse  mouseState

	drag     *dragState
	hint     *engine.Suggestion
	timeline *feedback.Timeline

	flash   map[base.Point]bool
	flashTo time.Time
	toast   string
	toastTo time.Time

	// game over modal
	over   ghelper.MessageBox
	record bool
	// info messages
	msg ghelper.MessageBox

	// new game confirmation runs off the game loop
	confirmCh  chan bool
	confirming bool

	// pre-rendered backgrounds
	boardImg *ebiten.Image
	slotImg  *ebiten.Image

	buttons []*ghelper.Button
	idxHint int
	idxNew  int
	idxCopy int
	idxBack int

	lastTick time.Time
}

func NewGUIPlayDrawer(ctx *ghelper.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{
		layout:    glayout.NewLayout(ctx.Config.WindowW, ctx.Config.WindowH),
		timeline:  feedback.NewTimeline(),
		confirmCh: make(chan bool, 1),
		lastTick:  time.Now(),
	}
	if len(ctx.Builder.Inventory()) == 0 {
		ctx.Builder.NewGame()
	}
	pd.makeLayoutButtons(ctx)
	l := pd.layout
	pd.boardImg = ghelper.RenderRoundedRect(l.BoardSize()+16, l.BoardSize()+16, 12, ctx.Theme.BoardBg, ctx.Theme.BoardBg, 1)
	pd.slotImg = ghelper.RenderRoundedRect(l.SlotW, l.SlotH, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	if ctx.Builder.Status() == base.Over {
		pd.openGameOver(ctx)
	}
	return pd
}

func (pd *GUIPlayDrawer) makeLayoutButtons(ctx *ghelper.GUIGameContext) {
	pd.buttons = []*ghelper.Button{}
	l := pd.layout
	w, h := l.PanelW, 48
	x := l.PanelX
	y := l.BoardY + l.BoardSize() - 4*h - 3*12

	pd.idxHint, pd.buttons = ghelper.AppendButton(ctx, ctx.T("play.hint"), x, y, w, h, pd.buttons)
	pd.idxNew, pd.buttons = ghelper.AppendButton(ctx, ctx.T("play.new"), x, y+(h+12), w, h, pd.buttons)
	pd.idxCopy, pd.buttons = ghelper.AppendButton(ctx, ctx.T("play.copy"), x, y+2*(h+12), w, h, pd.buttons)
	pd.idxBack, pd.buttons = ghelper.AppendButton(ctx, ctx.T("button.back"), x, y+3*(h+12), w, h, pd.buttons)
}

func (pd *GUIPlayDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	mx, my, justClicked, justReleased := pd.mouse.poll()
	now := time.Now()
	dt := now.Sub(pd.lastTick).Seconds()
	pd.lastTick = now

	pd.tick(ctx, now)

	select {
	case ok := <-pd.confirmCh:
		pd.confirming = false
		if ok {
			pd.newGame(ctx)
		}
	default:
	}

	if pd.over.Open {
		if justClicked && modalHit(ctx, &pd.over, mx, my) {
			pd.over.OnClose = func() { pd.newGame(ctx) }
		}
		pd.over.AnimateMessage()
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return SceneMenu, nil
		}
		return SceneNotChanged, nil
	}
	if pd.msg.Open {
		if justClicked {
			modalHit(ctx, &pd.msg, mx, my)
		}
		pd.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	pd.buttons[pd.idxHint].Disabled = ctx.Builder.Status() == base.Over
	for i, b := range pd.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case pd.idxHint:
			pd.showHint(ctx, now)
		case pd.idxNew:
			pd.askNewGame(ctx)
		case pd.idxCopy:
			pd.copyResult(ctx, now)
		case pd.idxBack:
			pd.drag = nil
			return SceneMenu, nil
		}
		return SceneNotChanged, nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if pd.drag != nil {
			pd.drag = nil
			return SceneNotChanged, nil
		}
		return SceneMenu, nil
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		pd.showHint(ctx, now)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		pd.askNewGame(ctx)
	}

	pd.handleDrag(ctx, now, mx, my, justClicked, justReleased)
	return SceneNotChanged, nil
}

func (pd *GUIPlayDrawer) handleDrag(ctx *ghelper.GUIGameContext, now time.Time, mx, my int, justClicked, justReleased bool) {
	gb := ctx.Builder
	if justClicked && pd.drag == nil && gb.Status() == base.InProgress {
		inv := gb.Inventory()
		if slot, grab, ok := pd.layout.SlotAt(mx, my, inv); ok {
			pd.drag = &dragState{slot: slot, piece: inv[slot], grab: grab}
			pd.timeline.Push(now, feedback.DragStart())
		}
	}
	if pd.drag == nil {
		return
	}
	pd.drag.x, pd.drag.y = mx, my
	pd.drag.at, pd.drag.over = pd.layout.Anchor(mx, my, pd.drag.grab)

	if !justReleased {
		return
	}
	d := pd.drag
	pd.drag = nil
	if !d.over {
		// dropped off the board
		return
	}
	out, err := gb.Place(d.piece.ID, d.at.Row, d.at.Col)
	pd.timeline.Push(now, feedback.ForPlacement(out, err)...)
	if err != nil {
		if !errors.Is(err, base.ErrInvalidPlacement) {
			ctx.Logx.Errorf("place: %v", err)
		}
		return
	}
	pd.hint = nil
}

// tick plays due cues and expires transient effects
func (pd *GUIPlayDrawer) tick(ctx *ghelper.GUIGameContext, now time.Time) {
	for _, c := range pd.timeline.Due(now) {
		if ctx.Audio != nil {
			if err := ctx.Audio.Play(c); err != nil {
				ctx.Logx.Warnf("play %s cue: %v", c.Kind, err)
			}
		}
		switch c.Kind {
		case feedback.CueClear:
			pd.flash = c.Cells
			pd.flashTo = now.Add(flashTime)
			pd.say(ctx.Tf("play.cleared", c.Lines, c.Points), now)
		case feedback.CueRefill:
			pd.say(ctx.T("play.refill"), now)
		case feedback.CueGameOver:
			pd.openGameOver(ctx)
		}
	}
	if pd.flash != nil && now.After(pd.flashTo) {
		pd.flash = nil
	}
	if pd.toast != "" && now.After(pd.toastTo) {
		pd.toast = ""
	}
}

func (pd *GUIPlayDrawer) say(s string, now time.Time) {
	pd.toast = s
	pd.toastTo = now.Add(toastTime)
}

func (pd *GUIPlayDrawer) openGameOver(ctx *ghelper.GUIGameContext) {
	score := ctx.Builder.Score()
	pd.record = ctx.Config.RecordScore(score)
	if pd.record {
		if err := ctx.Config.Save(); err != nil {
			ctx.Logx.Errorf("save best score: %v", err)
		}
	}
	body := ctx.T("play.gameover.title") + "\n\n" + ctx.Tf("play.gameover.body", score)
	if pd.record {
		body += "\n" + ctx.T("play.gameover.record")
	}
	pd.drag = nil
	pd.over.ShowMessage(body, nil)
}

func (pd *GUIPlayDrawer) askNewGame(ctx *ghelper.GUIGameContext) {
	gb := ctx.Builder
	if gb.Status() == base.Over || gb.CountTurns() == 0 {
		pd.newGame(ctx)
		return
	}
	if pd.confirming {
		return
	}
	pd.confirming = true
	title, body := ctx.T("dialog.new.title"), ctx.T("dialog.new.body")
	go func() {
		pd.confirmCh <- gdialog.Confirm(title, body)
	}()
}

func (pd *GUIPlayDrawer) newGame(ctx *ghelper.GUIGameContext) {
	ctx.Builder.NewGame()
	pd.timeline.Clear()
	pd.drag = nil
	pd.hint = nil
	pd.flash = nil
	pd.toast = ""
	pd.record = false
}

func (pd *GUIPlayDrawer) showHint(ctx *ghelper.GUIGameContext, now time.Time) {
	c, cancel := context.WithTimeout(context.Background(), hintTimeout)
	defer cancel()
	s, err := ctx.Builder.Hint(c)
	if err != nil {
		pd.hint = nil
		pd.say(ctx.T("play.nohint"), now)
		return
	}
	pd.hint = &s
}

func (pd *GUIPlayDrawer) copyResult(ctx *ghelper.GUIGameContext, now time.Time) {
	if err := gclipboard.WriteAll(ctx.Builder.ShareText()); err != nil {
		ctx.Logx.Warnf("copy result: %v", err)
		pd.msg.ShowMessage(ctx.T("play.copy.failed"), nil)
		return
	}
	pd.say(ctx.T("play.copied"), now)
}

// ---- Draw ----

func (pd *GUIPlayDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	fonts := ctx.AssetsWorker.Fonts()
	l := pd.layout

	text.Draw(screen, ctx.Tf("play.score", ctx.Builder.Score()), fonts.Title, l.BoardX, 56, ctx.Theme.MenuText)
	text.Draw(screen, ctx.Tf("play.best", max(ctx.Config.BestScore, ctx.Builder.Score())), fonts.Normal, l.BoardX, 84, ctx.Theme.MenuText)
	if pd.toast != "" {
		text.Draw(screen, pd.toast, fonts.Bold, l.TrayX, 84, ctx.Theme.Accent)
	}

	pd.drawBoard(ctx, screen)
	pd.drawTray(ctx, screen)
	pd.drawPanel(ctx, screen)
	pd.drawDragged(ctx, screen)

	for _, b := range pd.buttons {
		b.DrawAnimated(screen, fonts.Bold, ctx.Theme)
	}

	if pd.over.Open || pd.over.Animating {
		DrawModal(ctx, pd.over.Scale, pd.over.Text, ctx.T("play.again"), screen)
	}
	if pd.msg.Open || pd.msg.Animating {
		DrawModal(ctx, pd.msg.Scale, pd.msg.Text, ctx.T("button.ok"), screen)
	}

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f  turns: %d", ebiten.ActualTPS(), ctx.Builder.CountTurns()))
	}
}

func shapeCells(shape base.Shape, at base.Point) map[base.Point]bool {
	cells := map[base.Point]bool{}
	for _, off := range shape.Cells() {
		cells[base.Point{Row: at.Row + off.Row, Col: at.Col + off.Col}] = true
	}
	return cells
}

func (pd *GUIPlayDrawer) drawBoard(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	l := pd.layout
	gb := ctx.Builder
	board := gb.CurrentBoard()
	cell := float64(l.Cell)

	ghelper.DrawImageAt(screen, pd.boardImg, float64(l.BoardX-8), float64(l.BoardY-8), 1)

	preview := map[base.Point]bool{}
	valid := false
	if pd.drag != nil && pd.drag.over {
		valid = gb.IsPlaceable(pd.drag.piece.Shape, pd.drag.at.Row, pd.drag.at.Col)
		preview = shapeCells(pd.drag.piece.Shape, pd.drag.at)
	}
	hinted := map[base.Point]bool{}
	if pd.hint != nil {
		if s, ok := base.ShapeByName(pd.hint.Shape); ok {
			hinted = shapeCells(s, pd.hint.At)
		}
	}

	for r := 0; r < base.GridSize; r++ {
		for c := 0; c < base.GridSize; c++ {
			p := base.Point{Row: r, Col: c}
			ox, oy := l.CellOrigin(p)
			x, y := float64(ox), float64(oy)

			if v := board[r][c]; !v.IsEmpty() {
				ghelper.DrawImageAt(screen, ctx.AssetsWorker.Tile(v.Color(), l.Cell), x, y, 1)
			} else {
				fill := ctx.Theme.CellA
				if (r/3+c/3)%2 == 1 {
					fill = ctx.Theme.CellB
				}
				ghelper.EbitenutilDrawRect(screen, x+2, y+2, cell-4, cell-4, fill)
			}

			switch {
			case preview[p] && valid:
				ghelper.DrawImageAt(screen, ctx.AssetsWorker.Tile(pd.drag.piece.Color, l.Cell), x, y, 0.5)
			case preview[p]:
				ghelper.EbitenutilDrawRect(screen, x+2, y+2, cell-4, cell-4, ctx.Theme.Invalid)
			case pd.flash[p]:
				ghelper.EbitenutilDrawRect(screen, x, y, cell, cell, ctx.Theme.Flash)
			case hinted[p]:
				ghelper.EbitenutilDrawRectStroke(screen, x+3, y+3, cell-6, cell-6, 3, ctx.Theme.HintMark)
			}
		}
	}
}

func (pd *GUIPlayDrawer) drawTray(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	l := pd.layout
	board := ctx.Builder.CurrentBoard()
	for i, p := range ctx.Builder.Inventory() {
		x, y, _, _ := l.SlotRect(i)
		ghelper.DrawImageAt(screen, pd.slotImg, float64(x), float64(y), 1)
		if pd.drag != nil && pd.drag.slot == i {
			continue
		}
		// pieces with no legal spot are dimmed
		alpha := float32(1)
		if !rules.FitsAnywhere(p.Shape, &board) {
			alpha = 0.35
		}
		ox, oy := l.PieceOrigin(i, p.Shape)
		tile := ctx.AssetsWorker.Tile(p.Color, l.TrayCell)
		for _, off := range p.Shape.Cells() {
			ghelper.DrawImageAt(screen, tile, float64(ox+off.Col*l.TrayCell), float64(oy+off.Row*l.TrayCell), alpha)
		}
	}
}

func (pd *GUIPlayDrawer) drawDragged(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	if pd.drag == nil {
		return
	}
	l := pd.layout
	ox, oy := l.DragOrigin(pd.drag.x, pd.drag.y, pd.drag.grab)
	tile := ctx.AssetsWorker.Tile(pd.drag.piece.Color, l.Cell)
	for _, off := range pd.drag.piece.Shape.Cells() {
		ghelper.DrawImageAt(screen, tile, float64(ox+off.Col*l.Cell), float64(oy+off.Row*l.Cell), 0.85)
	}
}

func (pd *GUIPlayDrawer) drawPanel(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	l := pd.layout
	fonts := ctx.AssetsWorker.Fonts()
	h := ctx.Builder.History()
	x, y := l.PanelX, l.BoardY+16

	text.Draw(screen, ctx.Tf("play.turns", h.Len()), fonts.Normal, x, y, ctx.Theme.MenuText)
	text.Draw(screen, ctx.Tf("play.lines", h.TotalLines()), fonts.Normal, x, y+22, ctx.Theme.MenuText)
	text.Draw(screen, ctx.T("play.history"), fonts.Bold, x, y+58, ctx.Theme.MenuText)

	// newest first
	entries := h.Entries()
	for i := 0; i < historyRows && i < len(entries); i++ {
		n := len(entries) - 1 - i
		line := fmt.Sprintf("%3d. %s", n+1, entries[n].Notation())
		text.Draw(screen, line, fonts.Mono, x, y+82+i*18, ctx.Theme.MenuText)
	}
}
