package field

import (
	"image/color"
	"math"

	"github.com/iburimskiy/dot-pop/internal/config"
	"github.com/iburimskiy/dot-pop/internal/render"
)

// Field owns the ordered point collection and the last pointer sample.
// Insertion order is paint order: later points draw on top. The pointer
// starts at the origin until the first sample arrives.
type Field struct {
	points  []*Point
	pointer Position

	// surface dimensions the rest positions are currently anchored to
	width, height float64
}

func New(width, height float64) *Field {
	return &Field{width: width, height: height}
}

// Offset is the placement reference the shape is anchored to: the surface
// center pulled back by the shape's half extents.
func (f *Field) Offset() (x, y float64) {
	return f.width/2 - config.ShapeHalfWidth, f.height/2 - config.ShapeHalfHeight
}

func (f *Field) AddPoint(x, y, z, size float64, c color.Color) *Point {
	p := NewPoint(x, y, z, size, c)
	f.points = append(f.points, p)
	return p
}

// SetPointer records the most recent pointer sample, in surface
// coordinates, as one full coordinate write.
func (f *Field) SetPointer(x, y float64) {
	f.pointer.Set(x, y)
}

// Update retargets every point against the pointer, then advances it. A
// pointer within the interaction radius repels: the target is the current
// position reflected away by the raw pointer offset. This intentionally is
// not a normalized push; the magnitude comes straight from the offset.
// Beyond the radius the point is sent back to its rest position.
func (f *Field) Update() {
	for _, p := range f.points {
		dx := f.pointer.X - p.Cur.X
		dy := f.pointer.Y - p.Cur.Y
		dd := dx*dx + dy*dy
		if math.Sqrt(dd) < config.InteractionRadius {
			p.Target.X = p.Cur.X - dx
			p.Target.Y = p.Cur.Y - dy
		} else {
			p.Target.X = p.Rest.X
			p.Target.Y = p.Rest.Y
		}
		p.Update()
	}
}

func (f *Field) Draw(s render.Surface) {
	for _, p := range f.points {
		p.Draw(s)
	}
}

// Recenter re-anchors every rest position after a surface resize, keeping
// each point's displacement relative to the placement reference. Current
// positions snap to the new rest positions; targets and velocities are left
// alone. Calling it again with the same dimensions is a no-op.
func (f *Field) Recenter(width, height float64) {
	oldX, oldY := f.Offset()
	f.width, f.height = width, height
	newX, newY := f.Offset()
	for _, p := range f.points {
		p.Rest.X = newX + (p.Rest.X - oldX)
		p.Rest.Y = newY + (p.Rest.Y - oldY)
		p.Cur.Set(p.Rest.X, p.Rest.Y)
	}
}
