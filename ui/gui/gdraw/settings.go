package gdraw

import (
	"fmt"
	"time"

	"blockpuzzle/ui/gui/gbase"
	"blockpuzzle/ui/gui/ghelper"
	"blockpuzzle/ui/gui/ghelper/glang"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const volumeStep = 10

type GUISettingsDrawer struct {
	msg     *ghelper.MessageBox
	buttons []*ghelper.Button
	mouse   mouseState

	// index of buttons
	btnLangEnIdx     int
	btnLangRuIdx     int
	btnThemeLightIdx int
	btnThemeDarkIdx  int
	btnSoundIdx      int
	btnVolDownIdx    int
	btnVolUpIdx      int
	btnDebugIdx      int
	btnApplyIdx      int
	btnBackIdx       int

	lastTick time.Time
}

func NewGUISettingsDrawer(ctx *ghelper.GUIGameContext) *GUISettingsDrawer {
	sd := &GUISettingsDrawer{lastTick: time.Now()}

	sd.buttons = []*ghelper.Button{}
	btnW := 220
	btnH := 56
	spacingX := 20
	spacingY := 18
	startX := 260
	startY := 120

	// lang
	sd.btnLangEnIdx, sd.buttons = ghelper.AppendButton(ctx, "", startX, startY, btnW, btnH, sd.buttons)
	sd.btnLangRuIdx, sd.buttons = ghelper.AppendButton(ctx, "", startX+btnW+spacingX, startY, btnW, btnH, sd.buttons)
	// theme
	themeY := startY + btnH + spacingY
	sd.btnThemeLightIdx, sd.buttons = ghelper.AppendButton(ctx, "", startX, themeY, btnW, btnH, sd.buttons)
	sd.btnThemeDarkIdx, sd.buttons = ghelper.AppendButton(ctx, "", startX+btnW+spacingX, themeY, btnW, btnH, sd.buttons)
	// sound: toggle, then volume -/+
	soundY := themeY + btnH + spacingY
	smallW := (btnW - spacingX) / 2
	sd.btnSoundIdx, sd.buttons = ghelper.AppendButton(ctx, "", startX, soundY, btnW, btnH, sd.buttons)
	sd.btnVolDownIdx, sd.buttons = ghelper.AppendButton(ctx, "-", startX+btnW+spacingX, soundY, smallW, btnH, sd.buttons)
	sd.btnVolUpIdx, sd.buttons = ghelper.AppendButton(ctx, "+", startX+btnW+2*spacingX+smallW, soundY, smallW, btnH, sd.buttons)
	// debug
	debugY := soundY + btnH + spacingY
	sd.btnDebugIdx, sd.buttons = ghelper.AppendButton(ctx, "", startX, debugY, btnW, btnH, sd.buttons)
	// apply
	applyW, applyH := 160, 56
	applyX := ctx.Config.WindowW - applyW - 60
	applyY := ctx.Config.WindowH - applyH - 60
	sd.btnApplyIdx, sd.buttons = ghelper.AppendButton(ctx, "", applyX, applyY, applyW, applyH, sd.buttons)
	// back
	backX := ctx.Config.WindowW - applyW - 240
	sd.btnBackIdx, sd.buttons = ghelper.AppendButton(ctx, "", backX, applyY, applyW, applyH, sd.buttons)

	sd.refreshButtons(ctx)
	sd.msg = &ghelper.MessageBox{}
	return sd
}

func (sd *GUISettingsDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	mx, my, justClicked, justReleased := sd.mouse.poll()

	now := time.Now()
	dt := now.Sub(sd.lastTick).Seconds()
	sd.lastTick = now

	if sd.msg.Open {
		if justClicked {
			modalHit(ctx, sd.msg, mx, my)
		}
		sd.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	for i, b := range sd.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case sd.btnLangEnIdx:
			sd.setLang(ctx, glang.EN)
		case sd.btnLangRuIdx:
			sd.setLang(ctx, glang.RU)
		case sd.btnThemeLightIdx:
			ctx.Theme = gbase.LightPalette
		case sd.btnThemeDarkIdx:
			ctx.Theme = gbase.DarkPalette
		case sd.btnSoundIdx:
			ctx.Config.Muted = !ctx.Config.Muted
			sd.applyAudio(ctx)
		case sd.btnVolDownIdx:
			ctx.Config.Volume = max(ctx.Config.Volume-volumeStep, 0)
			sd.applyAudio(ctx)
		case sd.btnVolUpIdx:
			ctx.Config.Volume = min(ctx.Config.Volume+volumeStep, 100)
			sd.applyAudio(ctx)
		case sd.btnDebugIdx:
			ctx.Config.Debug = !ctx.Config.Debug
		case sd.btnApplyIdx:
			ctx.Config.Theme = ctx.Theme.String()
			if err := ctx.Config.Save(); err != nil {
				ctx.Logx.Errorf("save config: %v", err)
				sd.msg.ShowMessage(ctx.T("settings.save.failed"), nil)
			} else {
				sd.msg.ShowMessage(ctx.T("settings.save.success"), nil)
			}
		case sd.btnBackIdx:
			return SceneMenu, nil
		}
		sd.refreshButtons(ctx)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneMenu, nil
	}

	return SceneNotChanged, nil
}

func (sd *GUISettingsDrawer) setLang(ctx *ghelper.GUIGameContext, l glang.LangType) {
	if err := ctx.AssetsWorker.Lang().SetLang(l); err != nil {
		ctx.Logx.Errorf("switch language: %v", err)
		return
	}
	ctx.Config.Lang = l.String()
}

func (sd *GUISettingsDrawer) applyAudio(ctx *ghelper.GUIGameContext) {
	if ctx.Audio == nil {
		return
	}
	ctx.Audio.SetEnabled(!ctx.Config.Muted)
	ctx.Audio.SetVolume(float64(ctx.Config.Volume) / 100.0)
}

func (sd *GUISettingsDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	fonts := ctx.AssetsWorker.Fonts()

	titlesX := 40
	titlesY := 80
	rowY := func(b *ghelper.Button) int { return b.Y + b.H/2 + 6 }
	text.Draw(screen, ctx.T("settings.title"), fonts.Title, titlesX, titlesY, ctx.Theme.MenuText)
	text.Draw(screen, ctx.T("settings.lang"), fonts.Bold, titlesX+20, rowY(sd.buttons[sd.btnLangEnIdx]), ctx.Theme.MenuText)
	text.Draw(screen, ctx.T("settings.theme"), fonts.Bold, titlesX+20, rowY(sd.buttons[sd.btnThemeLightIdx]), ctx.Theme.MenuText)
	text.Draw(screen, ctx.T("settings.sound"), fonts.Bold, titlesX+20, rowY(sd.buttons[sd.btnSoundIdx]), ctx.Theme.MenuText)

	up := sd.buttons[sd.btnVolUpIdx]
	text.Draw(screen, ctx.Tf("settings.volume", ctx.Config.Volume), fonts.Normal, up.X+up.W+20, rowY(up), ctx.Theme.MenuText)

	for _, b := range sd.buttons {
		b.DrawAnimated(screen, fonts.Bold, ctx.Theme)
	}

	if sd.msg.Open || sd.msg.Animating {
		DrawModal(ctx, sd.msg.Scale, sd.msg.Text, ctx.T("button.ok"), screen)
	}

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

// update labels and accent the active choices
func (sd *GUISettingsDrawer) refreshButtons(ctx *ghelper.GUIGameContext) {
	stroke := ctx.Theme.ButtonStroke
	lang := ctx.AssetsWorker.Lang().GetLang()
	for i, b := range sd.buttons {
		fill := ctx.Theme.ButtonFill
		switch i {
		case sd.btnLangEnIdx:
			b.Label = ctx.T("settings.lang.en")
			if lang == glang.EN {
				fill = ctx.Theme.Accent
			}
		case sd.btnLangRuIdx:
			b.Label = ctx.T("settings.lang.ru")
			if lang == glang.RU {
				fill = ctx.Theme.Accent
			}
		case sd.btnThemeLightIdx:
			b.Label = ctx.T("settings.theme.light")
			if ctx.Theme == gbase.LightPalette {
				fill = ctx.Theme.Accent
			}
		case sd.btnThemeDarkIdx:
			b.Label = ctx.T("settings.theme.dark")
			if ctx.Theme == gbase.DarkPalette {
				fill = ctx.Theme.Accent
			}
		case sd.btnSoundIdx:
			if ctx.Config.Muted {
				b.Label = ctx.T("settings.sound.off")
			} else {
				b.Label = ctx.T("settings.sound.on")
				fill = ctx.Theme.Accent
			}
		case sd.btnVolDownIdx:
			b.Disabled = ctx.Config.Muted || ctx.Config.Volume == 0
		case sd.btnVolUpIdx:
			b.Disabled = ctx.Config.Muted || ctx.Config.Volume == 100
		case sd.btnDebugIdx:
			if ctx.Config.Debug {
				b.Label = ctx.T("settings.debug.on")
				fill = ctx.Theme.Accent
			} else {
				b.Label = ctx.T("settings.debug.off")
			}
		case sd.btnBackIdx:
			b.Label = ctx.T("button.back")
		case sd.btnApplyIdx:
			b.Label = ctx.T("button.save")
		}
		b.Image = ghelper.RenderRoundedRect(b.W, b.H, 12, fill, stroke, 3)
	}
}
