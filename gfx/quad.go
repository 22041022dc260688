package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderable pairs a model matrix with what each backend draws for it.
type Renderable struct {
	Name    string
	Model   Mat4
	Texture *Texture

	// Terminal backend.
	Glyph rune
	Tint  color.RGBA
}

// Unit quad, two triangles. V runs top-down in the source image.
var (
	quadPositions = [6]Vec3{
		{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0.5, 0.5, 0},
		{-0.5, -0.5, 0}, {0.5, 0.5, 0}, {-0.5, 0.5, 0},
	}
	quadUVs = [6][2]Scalar{
		{0, 1}, {1, 1}, {1, 0},
		{0, 1}, {1, 0}, {0, 0},
	}
	quadIndices = []uint16{0, 1, 2, 3, 4, 5}
)

// QuadRenderer draws textured unit quads through a Kage shader.
type QuadRenderer struct {
	Camera Camera

	shader *ebiten.Shader
	verts  [6]ebiten.Vertex
	opts   ebiten.DrawTrianglesShaderOptions
}

func NewQuadRenderer(shader *ebiten.Shader, cam Camera) *QuadRenderer {
	r := &QuadRenderer{Camera: cam, shader: shader}
	r.opts.Blend = ebiten.BlendSourceOver
	return r
}

// DrawAll clears dst and draws items in order, so later items composite on top.
func (r *QuadRenderer) DrawAll(dst *ebiten.Image, items []Renderable) {
	dst.Fill(ClearColor)
	for i := range items {
		r.Draw(dst, items[i].Model, items[i].Texture)
	}
}

// Draw issues one six-vertex draw for tex under model. tex must come from
// LoadTexture or NewTexture.
func (r *QuadRenderer) Draw(dst *ebiten.Image, model Mat4, tex *Texture) {
	fillQuad(&r.verts, r.Camera, model, tex.Width, tex.Height)
	r.opts.Images[0] = tex.img
	dst.DrawTrianglesShader(r.verts[:], quadIndices, r.shader, &r.opts)
}

func fillQuad(dst *[6]ebiten.Vertex, cam Camera, model Mat4, texW, texH int) {
	for i, p := range quadPositions {
		x, y := cam.Project(model, p)
		dst[i] = ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   quadUVs[i][0] * Scalar(texW),
			SrcY:   quadUVs[i][1] * Scalar(texH),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
}
