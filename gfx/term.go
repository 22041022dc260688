package gfx

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// TermRenderer rasterises renderables into terminal cells.
type TermRenderer struct {
	Camera Camera
}

func NewTermRenderer() *TermRenderer {
	return &TermRenderer{Camera: NewCamera(Viewport{})}
}

// DrawAll clears s and fills each item's projected quad with its glyph.
func (r *TermRenderer) DrawAll(s tcell.Screen, items []Renderable) {
	w, h := s.Size()
	r.Camera.Resize(Viewport{Width: w, Height: h})
	s.Clear()
	for i := range items {
		r.draw(s, w, h, &items[i])
	}
}

func (r *TermRenderer) draw(s tcell.Screen, w, h int, it *Renderable) {
	minX, minY := Scalar(math.Inf(1)), Scalar(math.Inf(1))
	maxX, maxY := Scalar(math.Inf(-1)), Scalar(math.Inf(-1))
	for _, p := range quadPositions {
		x, y := r.Camera.Project(it.Model, p)
		minX = min(minX, x)
		minY = min(minY, y)
		maxX = max(maxX, x)
		maxY = max(maxY, y)
	}

	x0, x1 := cellSpan(minX, maxX)
	y0, y1 := cellSpan(minY, maxY)
	x0, x1 = max(x0, 0), min(x1, w-1)
	y0, y1 = max(y0, 0), min(y1, h-1)

	glyph := it.Glyph
	if glyph == 0 {
		glyph = '#'
	}
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(it.Tint.R), int32(it.Tint.G), int32(it.Tint.B)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.SetContent(x, y, glyph, nil, style)
		}
	}
}

// cellSpan returns the cells covered by [lo, hi), at least one cell wide.
func cellSpan(lo, hi Scalar) (int, int) {
	a := int(math.Floor(float64(lo)))
	b := int(math.Ceil(float64(hi))) - 1
	if b < a {
		c := int(math.Floor(float64(lo+hi) / 2))
		return c, c
	}
	return a, b
}
