package shape

import (
	"image/color"

	"github.com/iburimskiy/dot-pop/internal/config"
	"github.com/iburimskiy/dot-pop/internal/field"
)

// Dot is one authored entry of the seed layout.
type Dot struct {
	X, Y, Z float64
	Size    float64
	Color   color.Color
}

var (
	blue   = color.RGBA{R: 66, G: 133, B: 244, A: 255}
	red    = color.RGBA{R: 234, G: 67, B: 53, A: 255}
	yellow = color.RGBA{R: 251, G: 188, B: 5, A: 255}
	green  = color.RGBA{R: 52, G: 168, B: 83, A: 255}
)

// stencil is the authored layout, one cell per dot, one letter per color.
// Its bounding box is what the shape half-extent constants encode.
var stencil = []string{
	"  bbbbbb    rrrrrr     yy ",
	" bb    bb  rr    rr    yy ",
	"bb        rr      rr   yy ",
	"bb        rr      rr   yy ",
	"bb   bbbb rr      rr   yy ",
	"bb     bb rr      rr   yy ",
	"bb     bb rr      rr      ",
	"bb     bb rr      rr   gg ",
	" bb   bb   rr    rr    gg ",
	"  bbbbb     rrrrrr        ",
}

// Dots is the flat authored seed list, in paint order.
var Dots = expand()

func expand() []Dot {
	var dots []Dot
	for row, line := range stencil {
		for col, cell := range line {
			var c color.Color
			switch cell {
			case 'b':
				c = blue
			case 'r':
				c = red
			case 'y':
				c = yellow
			case 'g':
				c = green
			default:
				continue
			}
			dots = append(dots, Dot{
				X:     float64(col) * config.DotSpacing,
				Y:     float64(row) * config.DotSpacing,
				Size:  config.DotRadius,
				Color: c,
			})
		}
	}
	return dots
}

// Populate seeds f with the authored layout, placed by the same centering
// rule the field applies when it recenters after a resize.
func Populate(f *field.Field) {
	ox, oy := f.Offset()
	for _, d := range Dots {
		f.AddPoint(ox+d.X, oy+d.Y, d.Z, d.Size, d.Color)
	}
}
