package gfx

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// HUD is a small text overlay rasterised on the CPU with tinyfont.
type HUD struct {
	Scale float64
	Font  tinyfont.Fonter

	buf   *image.RGBA
	img   *ebiten.Image
	text  string
	dirty bool
}

func NewHUD(width, height int) *HUD {
	return &HUD{
		Scale: 2,
		Font:  &tinyfont.TomThumb,
		buf:   image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// SetLines replaces the overlay text. Unchanged text is not re-rasterised.
func (h *HUD) SetLines(lines ...string) {
	text := strings.Join(lines, "\n")
	if text == h.text {
		return
	}
	h.text = text
	h.rasterise()
	h.dirty = true
}

func (h *HUD) rasterise() {
	clear(h.buf.Pix)
	d := hudDisplay{img: h.buf}
	y := int16(h.Font.GetYAdvance())
	for _, line := range strings.Split(h.text, "\n") {
		tinyfont.WriteLine(d, h.Font, 1, y, line, HUDColor)
		y += int16(h.Font.GetYAdvance())
	}
}

// Draw uploads the overlay if it changed and composites it at the top-left.
func (h *HUD) Draw(dst *ebiten.Image) {
	if h.text == "" {
		return
	}
	if h.img == nil {
		b := h.buf.Bounds()
		h.img = ebiten.NewImage(b.Dx(), b.Dy())
		h.dirty = true
	}
	if h.dirty {
		h.img.WritePixels(h.buf.Pix)
		h.dirty = false
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(h.Scale, h.Scale)
	op.GeoM.Translate(8, 8)
	dst.DrawImage(h.img, &op)
}

type hudDisplay struct {
	img *image.RGBA
}

var _ drivers.Displayer = hudDisplay{}

func (d hudDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d hudDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.img.SetRGBA(int(x), int(y), c)
}

func (d hudDisplay) Display() error { return nil }
