package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blockpuzzle/src"
	"blockpuzzle/src/base"
	"blockpuzzle/src/engine"
	"blockpuzzle/src/feedback"
	"blockpuzzle/src/logx"

	"github.com/gdamore/tcell/v2"
)

type Player interface {
	Play(c feedback.Cue) error
}

type mutePlayer struct{}

func (mutePlayer) Play(feedback.Cue) error { return nil }

const (
	flashTime   = 200 * time.Millisecond
	messageTime = 2 * time.Second
	hintTimeout = 2 * time.Second
)

type dragState struct {
	slot  int
	piece base.Piece
	grab  base.Point
	at    base.Point
	mouse bool
	over  bool // pointer is above the board
}

type App struct {
	screen   tcell.Screen
	builder  *src.GameBuilder
	player   Player
	logger   logx.Logger
	layout   Layout
	timeline *feedback.Timeline

	drag    *dragState
	hint    *engine.Suggestion
	flash   map[base.Point]bool
	flashTo time.Time
	message string
	msgTo   time.Time
	modal   bool

	now func() time.Time
}

// NewApp takes ownership of the screen; player may be nil for silence
func NewApp(screen tcell.Screen, gb *src.GameBuilder, player Player, logger logx.Logger) *App {
	if player == nil {
		player = mutePlayer{}
	}
	if logger == nil {
		logger = logx.NewNop()
	}
	w, h := screen.Size()
	return &App{
		screen:   screen,
		builder:  gb,
		player:   player,
		logger:   logger.Named("tui"),
		layout:   NewLayout(w, h),
		timeline: feedback.NewTimeline(),
		now:      time.Now,
	}
}

func RunTUI(gb *src.GameBuilder, player Player, logger logx.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	return NewApp(screen, gb, player, logger).Run()
}

func (a *App) Run() error {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.tick()
		}
		a.draw()
	}
}

// handleEvent returns false when the user asked to quit
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.layout = NewLayout(w, h)
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		a.drag = nil
		return true
	case tcell.KeyEnter:
		if a.modal {
			a.newGame()
			return true
		}
		if a.drag != nil && !a.drag.mouse {
			a.drop()
		}
		return true
	case tcell.KeyUp:
		a.nudge(-1, 0)
	case tcell.KeyDown:
		a.nudge(1, 0)
	case tcell.KeyLeft:
		a.nudge(0, -1)
	case tcell.KeyRight:
		a.nudge(0, 1)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case 'n':
			a.newGame()
		case 'h':
			a.showHint()
		case '1', '2', '3':
			if !a.modal {
				a.pick(int(r-'1'), base.Point{}, false)
			}
		}
	}
	return true
}

func (a *App) nudge(dr, dc int) {
	if a.drag == nil || a.drag.mouse {
		return
	}
	a.drag.at.Row = clamp(a.drag.at.Row+dr, 0, base.GridSize-1)
	a.drag.at.Col = clamp(a.drag.at.Col+dc, 0, base.GridSize-1)
	a.drag.over = true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	if a.modal {
		if pressed {
			a.newGame()
		}
		return
	}

	switch {
	case pressed && a.drag == nil:
		slot, grab, ok := a.layout.SlotAt(x, y, a.builder.Inventory())
		if ok {
			a.pick(slot, grab, true)
			a.moveTo(x, y)
		}
	case pressed && a.drag != nil && a.drag.mouse:
		a.moveTo(x, y)
	case !pressed && a.drag != nil && a.drag.mouse:
		a.moveTo(x, y)
		a.drop()
	}
}

func (a *App) pick(slot int, grab base.Point, mouse bool) {
	p, ok := a.builder.PieceAt(slot)
	if !ok || a.builder.Status() == base.Over {
		return
	}
	a.drag = &dragState{slot: slot, piece: p, grab: grab, mouse: mouse}
	if !mouse {
		a.drag.over = true
	}
	a.hint = nil
	a.cue(feedback.DragStart())
	a.logger.Debugf("pick %v from slot %d", p, slot+1)
}

func (a *App) moveTo(x, y int) {
	under := a.layout.CellUnder(x, y)
	_, a.drag.over = a.layout.CellAt(x, y)
	a.drag.at = base.Point{Row: under.Row - a.drag.grab.Row, Col: under.Col - a.drag.grab.Col}
}

// drop places the dragged piece; releasing away from the board only cancels
func (a *App) drop() {
	d := a.drag
	a.drag = nil
	if d == nil || !d.over {
		return
	}
	out, err := a.builder.Place(d.piece.ID, d.at.Row, d.at.Col)
	a.timeline.Push(a.now(), feedback.ForPlacement(out, err)...)
	if err != nil {
		a.logger.Debugf("drop rejected: %v", err)
	}
}

func (a *App) newGame() {
	a.builder.NewGame()
	a.timeline.Clear()
	a.modal = false
	a.drag = nil
	a.hint = nil
	a.flash = nil
}

func (a *App) showHint() {
	ctx, cancel := context.WithTimeout(context.Background(), hintTimeout)
	defer cancel()
	s, err := a.builder.Hint(ctx)
	if err != nil {
		if errors.Is(err, engine.ErrNoMove) {
			a.say("No move available")
		}
		return
	}
	a.hint = &s
}

func (a *App) say(msg string) {
	a.message = msg
	a.msgTo = a.now().Add(messageTime)
}

func (a *App) cue(c feedback.Cue) {
	if err := a.player.Play(c); err != nil {
		a.logger.Debugf("play %s: %v", c.Kind, err)
	}
}

// tick releases the cosmetic effects that are due
func (a *App) tick() {
	now := a.now()
	for _, c := range a.timeline.Due(now) {
		a.cue(c)
		switch c.Kind {
		case feedback.CueClear:
			a.flash = c.Cells
			a.flashTo = now.Add(flashTime)
			a.say(fmt.Sprintf("%d line(s)! +%d", c.Lines, c.Points))
		case feedback.CueRefill:
			a.say("New pieces")
		case feedback.CueGameOver:
			a.modal = true
		}
	}
	if a.flash != nil && now.After(a.flashTo) {
		a.flash = nil
	}
	if a.message != "" && now.After(a.msgTo) {
		a.message = ""
	}
}
