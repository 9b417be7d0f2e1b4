package app

import (
	"image/color"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/dot-pop/internal/config"
)

const (
	bannerHiddenY = -28.0
	bannerShownY  = 14.0
	bannerHeight  = 24
)

// banner is the transient reload notice. Its slide is driven by a harmonica
// spring, not the field integrator; the chrome does not share the points'
// tuned settling behavior.
type banner struct {
	text   string
	spring harmonica.Spring
	y, vy  float64
	ttl    int
}

func newBanner(text string) *banner {
	return &banner{
		text:   text,
		spring: harmonica.NewSpring(harmonica.FPS(config.TPS), 7.0, 0.6),
		y:      bannerHiddenY,
	}
}

func (b *banner) show() {
	b.ttl = config.BannerTicks
}

func (b *banner) update() {
	target := bannerHiddenY
	if b.ttl > 0 {
		b.ttl--
		target = bannerShownY
	}
	b.y, b.vy = b.spring.Update(b.y, b.vy, target)
}

func (b *banner) visible() bool {
	return b.y > bannerHiddenY+0.5
}

func (b *banner) draw(screen *ebiten.Image) {
	if !b.visible() {
		return
	}
	w := float32(len(b.text)*8 + 24)
	vector.DrawFilledRect(screen, 12, float32(b.y), w, bannerHeight, color.RGBA{R: 30, G: 36, B: 52, A: 230}, false)
	vector.StrokeRect(screen, 12, float32(b.y), w, bannerHeight, 1, color.RGBA{R: 90, G: 104, B: 140, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, b.text, 24, int(b.y)+4)
}
