package gimages

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTile(t *testing.T) {
	c := PieceColor(3)
	img := RenderTile(40, c)
	assert.Equal(t, 40, img.Bounds().Dx())

	// centre carries the base colour, corners stay transparent
	r, g, b, _ := img.At(20, 24).RGBA()
	assert.Equal(t, uint32(c.R), r>>8)
	assert.Equal(t, uint32(c.G), g>>8)
	assert.Equal(t, uint32(c.B), b>>8)
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a)
}

func TestIcon(t *testing.T) {
	for _, s := range []int{16, 32, 48, 64} {
		img := Icon(s)
		assert.Equal(t, s, img.Bounds().Dx())
		assert.Equal(t, s, img.Bounds().Dy())
	}
}

func TestShade(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 100, 0, 255}, shade(color.RGBA{200, 50, 0, 255}, 2))
}
