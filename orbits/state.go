package orbits

import (
	"math"

	"orbits/gfx"
)

// Orbit is a body moving on a circle around a fixed centre.
type Orbit struct {
	Angle  float32 // radians, grows with time
	Radius float32
	Speed  float32 // radians per second

	// Offset is the position on the circle for the current Angle.
	Offset gfx.Vec3
}

func newOrbit(radius, speed float32) Orbit {
	return Orbit{Radius: radius, Speed: speed, Offset: gfx.V3(radius, 0, 0)}
}

func (o *Orbit) advance(dt float32) {
	o.Angle += o.Speed * dt
	a := float64(o.Angle)
	o.Offset = gfx.V3(o.Radius*float32(math.Cos(a)), o.Radius*float32(math.Sin(a)), 0)
}

// Pulse alternates between growing and shrinking every PulseFrames updates.
type Pulse struct {
	Counter int
	Growing bool
}

// step advances the frame counter and returns this frame's scale factor.
func (p *Pulse) step() float32 {
	p.Counter++
	if p.Counter >= PulseFrames {
		p.Growing = !p.Growing
		p.Counter = 0
	}
	if p.Growing {
		return GrowthFactor
	}
	return ShrinkFactor
}

// AnimationState is everything the updater carries from one frame to the next,
// plus the model matrices it produced last.
type AnimationState struct {
	SunAngle float32
	Moon     Orbit
	Earth    Orbit
	Stars    Pulse

	Models [BodyCount]gfx.Mat4
}

func NewAnimationState() *AnimationState {
	s := &AnimationState{
		Moon:  newOrbit(RadiusMoon, MoonRotSpeed),
		Earth: newOrbit(RadiusEarth, EarthRotSpeed),
		Stars: Pulse{Growing: true},
	}
	for i := range s.Models {
		s.Models[i] = gfx.Mat4Identity()
	}
	return s
}

// Model returns the transform computed for b by the last Update.
func (s *AnimationState) Model(b Body) gfx.Mat4 {
	if b >= BodyCount {
		return gfx.Mat4Identity()
	}
	return s.Models[b]
}

// Update advances the animation by dt seconds and rebuilds every model matrix.
// dt is used as given, including a large first-frame value.
func (s *AnimationState) Update(dt float32) {
	s.SunAngle += RotIncrement * dt
	s.Models[Sun] = gfx.Mat4Identity().
		Translate(InitPosSun).
		RotateY(s.SunAngle)

	s.Moon.advance(dt)
	s.Models[Moon] = gfx.Mat4Identity().
		Translate(InitPosMoon).
		Translate(s.Moon.Offset.Add(MoonBias))

	s.Earth.advance(dt)
	s.Models[Earth] = gfx.Mat4Identity().
		Translate(InitPosEarth).
		Translate(s.Earth.Offset.Add(EarthBias))

	f := s.Stars.step()
	s.Models[Stars] = gfx.Mat4Identity().
		Translate(InitPosStars).
		Scale(StarsScale).
		Scale(gfx.V3(f, f, 1))
}
