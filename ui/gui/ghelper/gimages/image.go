package gimages

import (
	"image"
	"image/color"

	"blockpuzzle/src/base"

	"github.com/fogleman/gg"
)

func shade(c color.RGBA, k float64) color.RGBA {
	f := func(v uint8) uint8 {
		x := float64(v) * k
		if x > 255 {
			x = 255
		}
		return uint8(x)
	}
	return color.RGBA{f(c.R), f(c.G), f(c.B), c.A}
}

func PieceColor(idx int) color.RGBA {
	r, g, b := base.ColorRGB(idx)
	return color.RGBA{r, g, b, 0xff}
}

// RenderTile draws one bevelled block of the given colour
func RenderTile(size int, c color.RGBA) image.Image {
	s := float64(size)
	inset := s * 0.04
	radius := s * 0.16
	dc := gg.NewContext(size, size)

	// body
	dc.SetColor(shade(c, 0.78))
	dc.DrawRoundedRectangle(inset, inset, s-2*inset, s-2*inset, radius)
	dc.Fill()
	dc.SetColor(c)
	dc.DrawRoundedRectangle(inset, inset, s-2*inset, s-2*inset-s*0.08, radius)
	dc.Fill()

	// gloss
	hl := shade(c, 1.25)
	dc.SetRGBA255(int(hl.R), int(hl.G), int(hl.B), 0x90)
	dc.DrawRoundedRectangle(s*0.18, s*0.14, s*0.64, s*0.16, s*0.08)
	dc.Fill()
	return dc.Image()
}

// Icon is a tiny board with a few placed blocks, used as the window icon
func Icon(size int) image.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)
	dc.SetRGB255(0x2a, 0x2a, 0x35)
	dc.DrawRoundedRectangle(0, 0, s, s, s*0.18)
	dc.Fill()

	layout := [3][3]int{
		{0, -1, 4},
		{0, 0, 4},
		{-1, 2, 2},
	}
	cell := (s - s*0.16) / 3
	pad := s * 0.08
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			x := pad + float64(c)*cell
			y := pad + float64(r)*cell
			if layout[r][c] < 0 {
				dc.SetRGB255(0x44, 0x44, 0x52)
			} else {
				dc.SetColor(PieceColor(layout[r][c]))
			}
			dc.DrawRoundedRectangle(x+1, y+1, cell-2, cell-2, cell*0.2)
			dc.Fill()
		}
	}
	return dc.Image()
}
