package orbits

import "orbits/gfx"

const (
	RotIncrement  float32 = 1.0
	MoonRotSpeed  float32 = 0.5
	EarthRotSpeed float32 = 0.7

	RadiusMoon  float32 = 2.0
	RadiusEarth float32 = 3.0

	GrowthFactor float32 = 1.10
	ShrinkFactor float32 = 0.90
	PulseFrames          = 40
)

var (
	InitPosSun   = gfx.V3(-1.0, 0.0, 0.0)
	InitPosMoon  = gfx.V3(-2.0, 2.0, 0.0)
	InitPosEarth = gfx.V3(2.5, 2.5, 0.0)
	InitPosStars = gfx.V3(3.0, 2.50, 0.0)

	StarsScale = gfx.V3(2.0, 3.02, 0.0)

	// Orbit centre offsets relative to the initial positions.
	MoonBias  = gfx.V3(1, -2, 0)
	EarthBias = gfx.V3(-3.5, -2.5, 0)
)
