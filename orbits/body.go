package orbits

import "image/color"

// Body identifies one of the four animated objects.
type Body uint8

const (
	Sun Body = iota
	Moon
	Earth
	Stars

	BodyCount
)

func (b Body) String() string {
	switch b {
	case Sun:
		return "sun"
	case Moon:
		return "moon"
	case Earth:
		return "earth"
	case Stars:
		return "stars"
	default:
		return "unknown"
	}
}

// BodyInfo is the static description of a body: its texture file and how the
// terminal preview shows it.
type BodyInfo struct {
	Body    Body
	Texture string
	Glyph   rune
	Tint    color.RGBA
}

// Bodies lists every body in draw order. The starfield is last so it
// composites on top of the others.
var Bodies = [BodyCount]BodyInfo{
	{Body: Sun, Texture: "sun.png", Glyph: 'O', Tint: color.RGBA{R: 0xFF, G: 0xC0, B: 0x30, A: 0xFF}},
	{Body: Moon, Texture: "moon.png", Glyph: 'o', Tint: color.RGBA{R: 0xC8, G: 0xC8, B: 0xD0, A: 0xFF}},
	{Body: Earth, Texture: "earth.png", Glyph: '@', Tint: color.RGBA{R: 0x40, G: 0x90, B: 0xFF, A: 0xFF}},
	{Body: Stars, Texture: "stars.png", Glyph: '*', Tint: color.RGBA{R: 0xF9, G: 0xF8, B: 0xF5, A: 0xFF}},
}
