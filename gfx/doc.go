// Package gfx holds the drawing side of the orbit demo.
//
// Pipeline (fixed):
//
//	Model → View → Projection → Viewport → Fragment shader → Screen.
//
// The vertex stage runs on the CPU: every body shares one constant unit quad,
// and only its model matrix and texture vary. The fragment stage is a Kage
// shader loaded from disk and run by ebiten. The same projection feeds the
// terminal renderer, which rasterises bodies into character cells instead.
package gfx
