package main

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

type texture struct {
	name string
	img  *image.NRGBA
}

// textures returns the four scene textures, named as the program loads them.
func textures(size int, seed int64) []texture {
	return []texture{
		{"sun.png", disk(size, func(r, _, _ float64) color.NRGBA {
			return color.NRGBA{R: 0xFF, G: uint8(0xF0 - 0x70*r), B: uint8(0x60 - 0x50*r), A: 0xFF}
		})},
		{"moon.png", disk(size, func(r, x, y float64) color.NRGBA {
			v := uint8(0xC8 - 0x28*r)
			if crater(x, y) {
				v -= 0x30
			}
			return color.NRGBA{R: v, G: v, B: v + 8, A: 0xFF}
		})},
		{"earth.png", disk(size, func(_, x, y float64) color.NRGBA {
			if land(x, y) {
				return color.NRGBA{R: 0x3A, G: 0x9A, B: 0x40, A: 0xFF}
			}
			return color.NRGBA{R: 0x20, G: 0x60, B: 0xD0, A: 0xFF}
		})},
		{"stars.png", starfield(size, seed)},
	}
}

// disk shades a filled circle; r is the normalised distance from the centre and
// x, y are in [-1, 1]. Outside the circle is transparent.
func disk(size int, shade func(r, x, y float64) color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			x := (float64(px) + 0.5 - half) / half
			y := (float64(py) + 0.5 - half) / half
			r := math.Hypot(x, y)
			if r > 1 {
				continue
			}
			img.SetNRGBA(px, py, shade(r, x, y))
		}
	}
	return img
}

func crater(x, y float64) bool {
	return math.Hypot(x+0.3, y+0.2) < 0.18 || math.Hypot(x-0.35, y-0.3) < 0.12
}

func land(x, y float64) bool {
	return math.Sin(x*5)+math.Cos(y*4) > 0.9
}

// starfield scatters soft, semi-transparent points over a transparent image.
func starfield(size int, seed int64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	rng := rand.New(rand.NewSource(seed))
	n := size * size / 64
	for i := 0; i < n; i++ {
		x, y := rng.Intn(size), rng.Intn(size)
		a := uint8(0x60 + rng.Intn(0xA0))
		img.SetNRGBA(x, y, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xF0, A: a})
	}
	return img
}
