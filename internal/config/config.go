package config

const (
	WindowWidth  = 920
	WindowHeight = 560

	// Animation tick rate (~33ms per tick)
	TPS = 30

	// Point physics
	SpringStrength    = 0.1
	Friction          = 0.8
	InteractionRadius = 150.0

	// Shape placement: half the authored stencil's bounding box, so the
	// placement rule centers the shape rather than its top-left corner.
	ShapeHalfWidth  = 180.0
	ShapeHalfHeight = 65.0

	// Authored stencil expansion
	DotSpacing = 13.0
	DotRadius  = 6.0

	// Reload banner lifetime in ticks
	BannerTicks = 90
)
