package gfx

// World bounds covered by the orthographic projection.
const (
	WorldLeft   Scalar = -5.0
	WorldRight  Scalar = 5.0
	WorldBottom Scalar = -3.75
	WorldTop    Scalar = 3.75
	WorldNear   Scalar = -1.0
	WorldFar    Scalar = 1.0
)

// Viewport is the destination rectangle in pixels (or cells), origin top-left.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Camera maps model space to a viewport.
type Camera struct {
	Projection Mat4
	View       Mat4
	Viewport   Viewport

	viewProj Mat4
}

// NewCamera returns the fixed orthographic camera over the world bounds.
func NewCamera(vp Viewport) Camera {
	c := Camera{
		Projection: Mat4Ortho(WorldLeft, WorldRight, WorldBottom, WorldTop, WorldNear, WorldFar),
		View:       Mat4Identity(),
		Viewport:   vp,
	}
	c.viewProj = c.Projection.Mul(c.View)
	return c
}

// Resize keeps the projection and changes the target rectangle.
func (c *Camera) Resize(vp Viewport) { c.Viewport = vp }

// Project maps a model-space point to viewport coordinates. Y grows downwards.
func (c Camera) Project(model Mat4, p Vec3) (x, y Scalar) {
	ndc := c.viewProj.Mul(model).TransformPoint(p)
	return c.ndcToViewport(ndc)
}

func (c Camera) ndcToViewport(ndc Vec3) (x, y Scalar) {
	vp := c.Viewport
	x = Scalar(vp.X) + (ndc.X+1)/2*Scalar(vp.Width)
	y = Scalar(vp.Y) + (1-ndc.Y)/2*Scalar(vp.Height)
	return x, y
}
