package gdraw

import (
	"image/color"

	"blockpuzzle/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *ghelper.GUIGameContext) (SceneType, error)
	Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image)
}

type SceneType int

const (
	SceneMenu SceneType = iota
	ScenePlay
	SceneSettings
	SceneNotChanged
)

func (t SceneType) String() string {
	switch t {
	case SceneMenu:
		return "menu"
	case ScenePlay:
		return "play"
	case SceneSettings:
		return "settings"
	default:
	}
	return ""
}

func (t SceneType) ToScene(s Scene, ctx *ghelper.GUIGameContext) Scene {
	switch t {
	case SceneMenu:
		s = NewGUIMenuDrawer(ctx)
	case ScenePlay:
		s = NewGUIPlayDrawer(ctx)
	case SceneSettings:
		s = NewGUISettingsDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s
}

// ---- Scene manager ----

type SceneManager struct {
	ctx     *ghelper.GUIGameContext
	current Scene
}

func NewSceneManager(ctx *ghelper.GUIGameContext) *SceneManager {
	return &SceneManager{ctx: ctx, current: NewGUIMenuDrawer(ctx)}
}

func (m *SceneManager) Update() error {
	t, err := m.current.Update(m.ctx)
	if err != nil {
		return err
	}
	if t != SceneNotChanged {
		m.ctx.Logx.Debugf("switch scene to %s", t)
	}
	m.current = t.ToScene(m.current, m.ctx)
	return nil
}

func (m *SceneManager) Draw(screen *ebiten.Image) {
	m.current.Draw(m.ctx, screen)
}

// DrawModal dims the screen and shows message with a single button
func DrawModal(ctx *ghelper.GUIGameContext, scale float64, message, button string, screen *ebiten.Image) {
	w, h := ctx.Config.WindowW, ctx.Config.WindowH
	ghelper.EbitenutilDrawRect(screen, 0, 0, float64(w), float64(h), ctx.Theme.ModalBg)

	bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, message)
	_, _, mw, mh, _, _, okW, okH := ghelper.ModalRects(w, h, bounds.Dx(), bounds.Dy())

	if scale < 0 {
		scale = 0
	}
	if scale > 1 {
		scale = 1
	}
	currW := max(int(float64(mw)*scale), 6)
	currH := max(int(float64(mh)*scale), 6)
	mx := (w - currW) / 2
	my := (h - currH) / 2

	modalImg := ghelper.RenderRoundedRect(currW, currH, 16, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
	ghelper.DrawImageAt(screen, modalImg, float64(mx), float64(my), 1)

	// text and button only once fully opened
	if scale > 0.85 {
		text.Draw(screen, message, ctx.AssetsWorker.Fonts().Normal, mx+32, my+48, ctx.Theme.MenuText)
		okX := mx + (currW-okW)/2
		okY := my + currH - 56
		okImg := ghelper.RenderRoundedRect(okW, okH, 16, ctx.Theme.Accent, ctx.Theme.ButtonStroke, 3)
		ghelper.DrawImageAt(screen, okImg, float64(okX), float64(okY), 1)
		ghelper.DrawTextCentered(screen, button, ctx.AssetsWorker.Fonts().Bold, okX+okW/2, okY+28, color.White)
	}
}

// modalHit reports whether (px, py) is on the button of a fully open modal
func modalHit(ctx *ghelper.GUIGameContext, mb *ghelper.MessageBox, px, py int) bool {
	bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, mb.Text)
	return mb.CollapseMessageInRect(px, py, ctx.Config.WindowW, ctx.Config.WindowH, bounds.Dx(), bounds.Dy())
}

// mouse edge detection shared by the scenes
type mouseState struct {
	prevDown bool
}

func (m *mouseState) poll() (x, y int, justClicked, justReleased bool) {
	x, y = ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justClicked = down && !m.prevDown
	justReleased = !down && m.prevDown
	m.prevDown = down
	return
}
