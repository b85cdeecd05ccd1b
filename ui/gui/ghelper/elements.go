package ghelper

import (
	"math"

	"blockpuzzle/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- UI ELEMENTS ----

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke
	Disabled   bool

	// animation state
	Hover   bool // mouse over
	Pressed bool // mouse currently pressed on this button
	// animation variables
	Scale         float64 // current scale (1.0 default)
	TargetScale   float64
	OffsetY       float64 // current vertical offset for pressed effect
	TargetOffsetY float64
	AnimSpeed     float64 // how fast to approach target (per second)
}

func NewButton(label string, x, y, w, h int) *Button {
	return &Button{
		Label: label,
		X:     x, Y: y, W: w, H: h,
		Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
	}
}

// AppendButton renders the button with the current theme and returns its index
func AppendButton(ctx *GUIGameContext, label string, x, y, w, h int, buttons []*Button) (int, []*Button) {
	b := NewButton(label, x, y, w, h)
	b.Image = RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
	return len(buttons), append(buttons, b)
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// Call every Update: pass mouse info, returns true if click finished on this button
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	if b.Disabled {
		b.Hover, b.Pressed = false, false
		b.TargetScale, b.TargetOffsetY = 1.0, 0
		return false
	}
	inside := b.Contains(px, py)
	b.Hover = inside

	// pressed start only if mouse went down while cursor inside the button
	if justClicked && inside {
		b.Pressed = true
		b.TargetScale = 0.96
		b.TargetOffsetY = 3.0 // push down 3px
	}
	if justReleased {
		if b.Pressed && inside {
			b.Pressed = false
			b.TargetScale = 1.03 // small click bounce out
			b.TargetOffsetY = 0
			return true
		}
		// released outside: cancel press
		b.Pressed = false
		b.TargetScale = 1.0
		b.TargetOffsetY = 0
	}
	if inside && !b.Pressed {
		b.TargetScale = 1.02
		b.TargetOffsetY = 0
	} else if !b.Pressed {
		b.TargetScale = 1.0
		b.TargetOffsetY = 0
	}
	return false
}

// Call every Update with dt seconds to approach the target values
func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	approach := func(cur *float64, target float64, speed float64) {
		t := 1.0 - math.Exp(-speed*dt)
		*cur = *cur*(1.0-t) + target*t
	}

	approach(&b.Scale, b.TargetScale, b.AnimSpeed)
	approach(&b.OffsetY, b.TargetOffsetY, b.AnimSpeed)

	if !b.Pressed && math.Abs(b.Scale-1.03) < 0.005 {
		b.TargetScale = 1.0
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y+b.H/2) + b.OffsetY

	// draw button image scaled around center
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	if b.Disabled {
		op.ColorScale.ScaleAlpha(0.45)
	}
	screen.DrawImage(b.Image, op)

	// label centered using font metrics
	bounds := text.BoundString(face, b.Label)
	tx := int(cx) - bounds.Dx()/2
	ty := int(cy) + bounds.Dy()/2
	clr := theme.ButtonText
	if b.Disabled {
		clr.A = 0x80
	}
	text.Draw(screen, b.Label, face, tx, ty, clr)
}

// ---- MessageBox ----

type MessageBox struct {
	Open      bool
	Animating bool
	Scale     float64 // 0..1
	Opening   bool
	Text      string
	OnClose   func()
}

func (mb *MessageBox) AnimateMessage() {
	// linear scale (0->1 opening, 1->0 closing)
	const dt = 1.0 / 60.0
	const speed = 6.0
	if !mb.Animating {
		return
	}
	if mb.Opening {
		mb.Scale += speed * dt
		if mb.Scale >= 1.0 {
			mb.Scale = 1.0
			mb.Animating = false
		}
	} else {
		mb.Scale -= speed * dt
		if mb.Scale <= 0.0 {
			mb.Scale = 0.0
			mb.Animating = false
			mb.Open = false
			if mb.OnClose != nil {
				mb.OnClose()
			}
		}
	}
}

func (mb *MessageBox) ShowMessage(msg string, onClose func()) {
	mb.Text = msg
	mb.Open = true
	mb.Opening = true
	mb.Animating = true
	mb.Scale = 0.0
	mb.OnClose = onClose
}

func (mb *MessageBox) CollapseMessage() {
	mb.Opening = false
	mb.Animating = true
}

// ModalRects is the geometry shared by drawing and hit testing of a modal
func ModalRects(windW, windH, textW, textH int) (mx, my, mw, mh, okX, okY, okW, okH int) {
	mw = textW + 64
	mh = textH + 120
	mx = (windW - mw) / 2
	my = (windH - mh) / 2
	okW, okH = 160, 44
	okX = mx + (mw-okW)/2
	okY = my + mh - 56
	return
}

// CollapseMessageInRect closes the box when (px, py) hits its OK button
func (mb *MessageBox) CollapseMessageInRect(px, py, windW, windH, textW, textH int) bool {
	_, _, _, _, okX, okY, okW, okH := ModalRects(windW, windH, textW, textH)
	if PointInRect(px, py, okX, okY, okW, okH) {
		mb.CollapseMessage()
		return true
	}
	return false
}
