package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Title  font.Face // big score and modal titles
	Bold   font.Face
	Normal font.Face
	Small  font.Face
	Mono   font.Face // move list
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// LoadFonts parses the Go fonts, they cover latin and cyrillic
func LoadFonts() (*Fonts, error) {
	var err error
	fonts := &Fonts{}

	if fonts.Title, err = newFace(gobold.TTF, 30); err != nil {
		return nil, err
	}
	if fonts.Bold, err = newFace(gobold.TTF, 18); err != nil {
		return nil, err
	}
	if fonts.Normal, err = newFace(goregular.TTF, 16); err != nil {
		return nil, err
	}
	if fonts.Small, err = newFace(goregular.TTF, 13); err != nil {
		return nil, err
	}
	if fonts.Mono, err = newFace(gomonobold.TTF, 13); err != nil {
		return nil, err
	}
	return fonts, nil
}
