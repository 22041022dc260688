package gfx

import "image/color"

// ClearColor fills the screen before the first quad of a frame.
var ClearColor = color.RGBA{R: 0, G: 0, B: 0, A: 0xFF}

// HUDColor is the overlay text colour.
var HUDColor = color.RGBA{R: 0xF9, G: 0xF8, B: 0xF5, A: 0xFF}
