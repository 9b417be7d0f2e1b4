package field

// Position is a mutable 3-component vector. Every Point owns its own
// Position instances; they are never aliased between points.
type Position struct {
	X, Y, Z float64
}

func NewPosition(x, y, z float64) *Position {
	return &Position{X: x, Y: y, Z: z}
}

func (p *Position) AddX(delta float64) { p.X += delta }
func (p *Position) AddY(delta float64) { p.Y += delta }
func (p *Position) AddZ(delta float64) { p.Z += delta }

// Set always writes x. y and z are written only when supplied, so a caller
// can move x alone without clobbering the other components. The test is
// presence, not value: an explicit 0 is supplied and gets written.
func (p *Position) Set(x float64, rest ...float64) {
	p.X = x
	if len(rest) > 0 {
		p.Y = rest[0]
	}
	if len(rest) > 1 {
		p.Z = rest[1]
	}
}
