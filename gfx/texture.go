package gfx

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrAssetLoad marks every failure to turn an image file into a texture.
var ErrAssetLoad = errors.New("unable to load image")

// Texture is a GPU-resident image. It lives until process exit.
type Texture struct {
	Name   string
	Width  int
	Height int

	img *ebiten.Image
}

// DecodeImage reads path from fsys and decodes it into an RGBA pixel buffer.
func DecodeImage(fsys fs.FS, path string) (*image.RGBA, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gfx: open %s: %w: %w", path, ErrAssetLoad, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("gfx: decode %s: %w: %w", path, ErrAssetLoad, err)
	}

	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("gfx: decode %s: %w: empty image", path, ErrAssetLoad)
	}
	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba, nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	return rgba, nil
}

// LoadTexture decodes path and uploads it. The decoded buffer is not retained.
func LoadTexture(fsys fs.FS, path string) (*Texture, error) {
	pix, err := DecodeImage(fsys, path)
	if err != nil {
		return nil, err
	}
	return NewTexture(path, pix), nil
}

// NewTexture uploads pix to the GPU.
func NewTexture(name string, pix *image.RGBA) *Texture {
	b := pix.Bounds()
	return &Texture{
		Name:   name,
		Width:  b.Dx(),
		Height: b.Dy(),
		img:    ebiten.NewImageFromImage(pix),
	}
}
