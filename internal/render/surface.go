package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the drawing capability the point field renders through.
type Surface interface {
	Clear(c color.Color)
	FillDisc(x, y, r float64, c color.Color)
}

// Canvas draws onto an ebiten image. The target is swapped in every frame
// because ebiten hands a fresh screen image to each Draw call.
type Canvas struct {
	target *ebiten.Image
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

func (c *Canvas) SetTarget(img *ebiten.Image) {
	c.target = img
}

func (c *Canvas) Clear(col color.Color) {
	c.target.Fill(col)
}

func (c *Canvas) FillDisc(x, y, r float64, col color.Color) {
	vector.DrawFilledCircle(c.target, float32(x), float32(y), float32(r), col, false)
}
