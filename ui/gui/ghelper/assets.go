package ghelper

import (
	"image"

	"blockpuzzle/ui/gui/gbase/gconf"
	"blockpuzzle/ui/gui/ghelper/gfont"
	"blockpuzzle/ui/gui/ghelper/gimages"
	"blockpuzzle/ui/gui/ghelper/glang"

	"github.com/hajimehoshi/ebiten/v2"
)

type tileKey struct {
	color int
	size  int
}

type GUIAssetsWorker struct {
	fonts *gfont.Fonts
	lang  *glang.GUILangWorker
	tiles map[tileKey]*ebiten.Image
	icons map[int]image.Image
}

func NewGUIAssetsWorker(cfg *gconf.Config) (*GUIAssetsWorker, error) {
	fonts, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	l, err := glang.NewGUILangWorker("assets/lang", cfg.Lang)
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{
		fonts: fonts,
		lang:  l,
		tiles: make(map[tileKey]*ebiten.Image),
		icons: make(map[int]image.Image),
	}, nil
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) Lang() *glang.GUILangWorker {
	return aw.lang
}

// Tile is the block image for a piece colour, rendered once per size
func (aw *GUIAssetsWorker) Tile(color, size int) *ebiten.Image {
	k := tileKey{color, size}
	if img, ok := aw.tiles[k]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(gimages.RenderTile(size, gimages.PieceColor(color)))
	aw.tiles[k] = img
	return img
}

func (aw *GUIAssetsWorker) IconNative(size int) image.Image {
	if img, ok := aw.icons[size]; ok {
		return img
	}
	img := gimages.Icon(size)
	aw.icons[size] = img
	return img
}

func (aw *GUIAssetsWorker) Icon(size int) *ebiten.Image {
	return ebiten.NewImageFromImage(aw.IconNative(size))
}
