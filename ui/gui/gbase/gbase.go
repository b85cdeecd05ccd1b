package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW int = 1000
	WindowH int = 720
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA
	// board
	BoardBg  color.RGBA
	CellA    color.RGBA // empty cell, even 3x3 box
	CellB    color.RGBA // empty cell, odd 3x3 box
	Invalid  color.RGBA // preview over a blocked spot
	Flash    color.RGBA // cleared line
	HintMark color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "light":
		return LightPalette
	case "dark":
		return DarkPalette
	default:
	}
	return Palette{}
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},
	BoardBg:      color.RGBA{0xd4, 0xd8, 0xde, 0xff},
	CellA:        color.RGBA{0xee, 0xf0, 0xf3, 0xff},
	CellB:        color.RGBA{0xe2, 0xe5, 0xea, 0xff},
	Invalid:      color.RGBA{0xdc, 0x26, 0x26, 0x99},
	Flash:        color.RGBA{0xff, 0xff, 0xff, 0xee},
	HintMark:     color.RGBA{0x22, 0x88, 0xcc, 0x66},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},
	BoardBg:      color.RGBA{0x1c, 0x1c, 0x24, 0xff},
	CellA:        color.RGBA{0x2a, 0x2a, 0x35, 0xff},
	CellB:        color.RGBA{0x33, 0x33, 0x40, 0xff},
	Invalid:      color.RGBA{0x99, 0x1b, 0x1b, 0xcc},
	Flash:        color.RGBA{0xff, 0xff, 0xff, 0xdd},
	HintMark:     color.RGBA{0x2a, 0xa1, 0xd1, 0x77},
}
