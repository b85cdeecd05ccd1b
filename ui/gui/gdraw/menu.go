package gdraw

import (
	"fmt"
	"math"
	"time"

	"blockpuzzle/src/base"
	"blockpuzzle/ui/gui/gbase"
	"blockpuzzle/ui/gui/ghelper"
	"blockpuzzle/ui/gui/ghelper/gdialog"
	"blockpuzzle/ui/gui/ghelper/glang"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	menuPlay = iota
	menuSettings
	menuExit
)

// the bobbing piece above the play button
var menuPiece = base.MustShape("tetra-t", "XXX", ".X.")

type GUIMenuDrawer struct {
	buttons []*ghelper.Button
	msg     ghelper.MessageBox
	mouse   mouseState

	// language and about squares bottom-left
	langBoxX, langBoxY, langBoxS    int
	aboutBoxX, aboutBoxY, aboutBoxS int

	// exit confirmation runs off the game loop
	quitCh     chan bool
	confirming bool

	// decoration
	elapsed   float64
	shadowImg *ebiten.Image
	prevTime  time.Time
}

func NewGUIMenuDrawer(ctx *ghelper.GUIGameContext) *GUIMenuDrawer {
	md := &GUIMenuDrawer{prevTime: time.Now(), quitCh: make(chan bool, 1)}
	md.makeLayout(ctx)
	return md
}

func (md *GUIMenuDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ctx.Theme == gbase.LightPalette {
			ctx.Theme = gbase.DarkPalette
		} else {
			ctx.Theme = gbase.LightPalette
		}
		md.refreshButtons(ctx)
	}

	mx, my, justClicked, justReleased := md.mouse.poll()

	now := time.Now()
	dt := now.Sub(md.prevTime).Seconds()
	md.prevTime = now
	md.elapsed += dt

	select {
	case ok := <-md.quitCh:
		md.confirming = false
		if ok {
			return SceneNotChanged, gbase.ErrExit
		}
	default:
	}

	if md.msg.Open {
		if justClicked {
			modalHit(ctx, &md.msg, mx, my)
		}
		md.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	for i, b := range md.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		ctx.Logx.Infof("%s (%d) clicked", b.Label, i)
		switch i {
		case menuPlay:
			return ScenePlay, nil
		case menuSettings:
			return SceneSettings, nil
		case menuExit:
			return md.exit(ctx)
		}
	}

	if justClicked {
		if ghelper.PointInRect(mx, my, md.langBoxX, md.langBoxY, md.langBoxS, md.langBoxS) {
			next := glang.RU
			if ctx.AssetsWorker.Lang().GetLang() == glang.RU {
				next = glang.EN
			}
			if err := ctx.AssetsWorker.Lang().SetLang(next); err != nil {
				ctx.Logx.Errorf("switch language: %v", err)
			} else {
				ctx.Config.Lang = next.String()
			}
			md.refreshButtons(ctx)
			return SceneNotChanged, nil
		}
		if ghelper.PointInRect(mx, my, md.aboutBoxX, md.aboutBoxY, md.aboutBoxS, md.aboutBoxS) {
			md.msg.ShowMessage(ctx.T("about.body"), nil)
			return SceneNotChanged, nil
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return ScenePlay, nil
	}

	return SceneNotChanged, nil
}

// exit asks first when a game is running
func (md *GUIMenuDrawer) exit(ctx *ghelper.GUIGameContext) (SceneType, error) {
	gb := ctx.Builder
	if gb.Status() != base.InProgress || gb.CountTurns() == 0 {
		return SceneNotChanged, gbase.ErrExit
	}
	if md.confirming {
		return SceneNotChanged, nil
	}
	md.confirming = true
	title, body := ctx.T("dialog.quit.title"), ctx.T("dialog.quit.body")
	go func() {
		md.quitCh <- gdialog.Confirm(title, body)
	}()
	return SceneNotChanged, nil
}

func (md *GUIMenuDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	ghelper.DrawTextCentered(screen, "BLOCK PUZZLE", ctx.AssetsWorker.Fonts().Title, ctx.Config.WindowW/2, 90, ctx.Theme.MenuText)
	md.drawPiece(ctx, screen)
	for _, b := range md.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Bold, ctx.Theme)
	}
	md.drawBoxes(ctx, screen)

	if best := ctx.Config.BestScore; best > 0 {
		ghelper.DrawTextCentered(screen, ctx.Tf("play.best", best), ctx.AssetsWorker.Fonts().Normal,
			ctx.Config.WindowW/2, md.buttons[menuExit].Y+md.buttons[menuExit].H+48, ctx.Theme.MenuText)
	}

	if md.msg.Open || md.msg.Animating {
		DrawModal(ctx, md.msg.Scale, md.msg.Text, ctx.T("button.ok"), screen)
	}

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (md *GUIMenuDrawer) labels(ctx *ghelper.GUIGameContext) []string {
	return []string{
		ctx.T("menu.play"),
		ctx.T("menu.settings"),
		ctx.T("menu.exit"),
	}
}

func (md *GUIMenuDrawer) makeLayout(ctx *ghelper.GUIGameContext) {
	// center buttons vertically
	btnW, btnH := 320, 64
	gap := 18
	labels := md.labels(ctx)
	n := len(labels)
	totalH := n*btnH + (n-1)*gap
	startY := (ctx.Config.WindowH-totalH)/2 + 40
	cx := ctx.Config.WindowW / 2

	md.buttons = []*ghelper.Button{}
	for i, lab := range labels {
		_, md.buttons = ghelper.AppendButton(ctx, lab, cx-btnW/2, startY+i*(btnH+gap), btnW, btnH, md.buttons)
	}

	md.langBoxS = 56
	md.langBoxX = 20
	md.langBoxY = ctx.Config.WindowH - md.langBoxS - 20

	md.aboutBoxS = md.langBoxS
	md.aboutBoxX = md.langBoxX + 70
	md.aboutBoxY = md.langBoxY
}

func (md *GUIMenuDrawer) refreshButtons(ctx *ghelper.GUIGameContext) {
	labels := md.labels(ctx)
	for i, b := range md.buttons {
		b.Label = labels[i]
		b.Image = ghelper.RenderRoundedRect(b.W, b.H, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
	}
}

func (md *GUIMenuDrawer) drawBoxes(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	langImg := ghelper.RenderRoundedRect(md.langBoxS, md.langBoxS, 8, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	ghelper.DrawImageAt(screen, langImg, float64(md.langBoxX), float64(md.langBoxY), 1)
	ghelper.DrawTextCentered(screen, ctx.T("lang.type"), ctx.AssetsWorker.Fonts().Bold,
		md.langBoxX+md.langBoxS/2, md.langBoxY+md.langBoxS/2+6, ctx.Theme.ButtonText)

	aboutImg := ghelper.RenderRoundedRect(md.aboutBoxS, md.aboutBoxS, 8, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	ghelper.DrawImageAt(screen, aboutImg, float64(md.aboutBoxX), float64(md.aboutBoxY), 1)
	ghelper.DrawTextCentered(screen, ctx.T("about.title"), ctx.AssetsWorker.Fonts().Bold,
		md.aboutBoxX+md.aboutBoxS/2, md.aboutBoxY+md.aboutBoxS/2+6, ctx.Theme.ButtonText)

	// version on bottom-right
	ver := ctx.T("version")
	b := text.BoundString(ctx.AssetsWorker.Fonts().Small, ver)
	text.Draw(screen, ver, ctx.AssetsWorker.Fonts().Small, ctx.Config.WindowW-b.Dx()-24, ctx.Config.WindowH-24, ctx.Theme.MenuText)
}

// drawPiece bobs a piece above the play button with a soft shadow
func (md *GUIMenuDrawer) drawPiece(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	const tile = 30
	play := md.buttons[menuPlay]
	pw := float64(menuPiece.Cols * tile)
	ph := float64(menuPiece.Rows * tile)

	amp, slowAmp := 10.0, 2.0
	dy := math.Sin(2*math.Pi*md.elapsed)*amp + math.Sin(2*math.Pi*0.15*md.elapsed)*slowAmp
	rot := math.Sin(2*math.Pi*0.8*md.elapsed) * (6 * math.Pi / 180.0)

	cx := float64(play.X + play.W/2)
	cy := float64(play.Y) - ph/2 - 40 + dy

	if md.shadowImg == nil {
		sw, sh := int(pw*1.4), int(ph*0.4)
		dc := gg.NewContext(sw, sh)
		for i := 0; i < 8; i++ {
			alpha := 0.18 * (1.0 - float64(i)/8.0)
			dc.SetRGBA(0, 0, 0, alpha)
			pad := float64(i)
			dc.DrawEllipse(float64(sw)/2, float64(sh)/2+pad*0.2, float64(sw)/2-pad, float64(sh)/2-pad*0.6)
			dc.Fill()
		}
		md.shadowImg = ebiten.NewImageFromImage(dc.Image())
	}

	// shadow shrinks as the piece rises
	heightFactor := (dy + amp + slowAmp) / (2 * (amp + slowAmp))
	shadowScale := 0.7 + heightFactor*0.25
	sw := float64(md.shadowImg.Bounds().Dx())
	sh := float64(md.shadowImg.Bounds().Dy())
	sop := &ebiten.DrawImageOptions{}
	sop.GeoM.Scale(shadowScale, shadowScale)
	sop.GeoM.Translate(cx-sw*shadowScale/2, float64(play.Y)-sh*shadowScale-6)
	sop.Filter = ebiten.FilterLinear
	screen.DrawImage(md.shadowImg, sop)

	for _, off := range menuPiece.Cells() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(off.Col*tile)-pw/2, float64(off.Row*tile)-ph/2)
		op.GeoM.Rotate(rot)
		op.GeoM.Translate(cx, cy)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(ctx.AssetsWorker.Tile(5, tile), op)
	}
}
