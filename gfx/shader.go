package gfx

import (
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadShader reads and compiles a Kage fragment shader.
func LoadShader(fsys fs.FS, path string) (*ebiten.Shader, error) {
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("gfx: read shader %s: %w", path, err)
	}
	sh, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("gfx: compile shader %s: %w", path, err)
	}
	return sh, nil
}
