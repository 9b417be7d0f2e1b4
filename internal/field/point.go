package field

import (
	"image/color"
	"math"

	"github.com/iburimskiy/dot-pop/internal/config"
	"github.com/iburimskiy/dot-pop/internal/render"
)

// Point is one animated particle: a damped spring pulls its current
// position toward a target, and a derived depth axis scales its radius by
// how far it has strayed from its rest position.
type Point struct {
	Cur    *Position
	Target *Position
	Rest   *Position
	Vel    *Position

	SpringStrength float64
	Friction       float64

	BaseRadius float64
	Radius     float64
	Color      color.Color
}

func NewPoint(x, y, z, size float64, c color.Color) *Point {
	return &Point{
		Cur:            NewPosition(x, y, z),
		Target:         NewPosition(x, y, z),
		Rest:           NewPosition(x, y, z),
		Vel:            NewPosition(0, 0, 0),
		SpringStrength: config.SpringStrength,
		Friction:       config.Friction,
		BaseRadius:     size,
		Radius:         size,
		Color:          c,
	}
}

// Update advances the point by one tick. The order per axis is fixed: the
// spring impulse is accumulated into the velocity, the velocity is damped,
// then the position moves. Damping before the impulse settles differently.
func (p *Point) Update() {
	p.Vel.X += (p.Target.X - p.Cur.X) * p.SpringStrength
	p.Vel.X *= p.Friction
	p.Cur.AddX(p.Vel.X)

	p.Vel.Y += (p.Target.Y - p.Cur.Y) * p.SpringStrength
	p.Vel.Y *= p.Friction
	p.Cur.AddY(p.Vel.Y)

	// Depth tracks planar displacement from rest, not from target: the
	// further the point has been pushed, the larger it aims to grow.
	dx := p.Rest.X - p.Cur.X
	dy := p.Rest.Y - p.Cur.Y
	p.Target.Z = math.Sqrt(dx*dx+dy*dy)/100 + 1

	p.Vel.Z += (p.Target.Z - p.Cur.Z) * p.SpringStrength
	p.Vel.Z *= p.Friction
	p.Cur.AddZ(p.Vel.Z)

	p.Radius = p.BaseRadius * p.Cur.Z
	if p.Radius < 1 {
		p.Radius = 1
	}
}

func (p *Point) Draw(s render.Surface) {
	s.FillDisc(p.Cur.X, p.Cur.Y, p.Radius, p.Color)
}
