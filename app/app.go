package app

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"orbits/gfx"
	"orbits/hal"
	"orbits/internal/buildinfo"
	"orbits/orbits"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	WindowWidth  = 1280
	WindowHeight = 960

	DefaultShaderPath = "shaders/fragment_textured.kage"

	hudRefreshFrames = 30
)

type Config struct {
	// Assets is where textures and shaders are read from. Nil means the working
	// directory.
	Assets fs.FS

	ShaderPath string

	// HUD draws a small text overlay in window mode.
	HUD bool
}

func (c Config) withDefaults() Config {
	if c.Assets == nil {
		c.Assets = os.DirFS(".")
	}
	if c.ShaderPath == "" {
		c.ShaderPath = DefaultShaderPath
	}
	return c
}

// App owns the animation and the renderables built from it.
type App struct {
	log     hal.Logger
	cfg     Config
	session string

	loop  *orbits.Loop
	items [orbits.BodyCount]gfx.Renderable

	quads *gfx.QuadRenderer
	term  *gfx.TermRenderer
	hud   *gfx.HUD
}

func newApp(h hal.HAL, cfg Config) *App {
	a := &App{
		log:     h.Logger(),
		cfg:     cfg.withDefaults(),
		session: uuid.NewString(),
		loop:    orbits.NewLoop(orbits.NewAnimationState(), h.Clock(), h.Input()),
	}
	for i, b := range orbits.Bodies {
		a.items[i] = gfx.Renderable{
			Name:  b.Body.String(),
			Model: gfx.Mat4Identity(),
			Glyph: b.Glyph,
			Tint:  b.Tint,
		}
	}
	a.logf("orbits: session %s start build=%s", a.session, buildinfo.Long())
	return a
}

// NewWindow loads every texture onto the GPU and compiles the shader.
// A texture that cannot be decoded aborts the process.
func NewWindow(h hal.HAL, cfg Config) (hal.Game, error) {
	a := newApp(h, cfg)

	sh, err := gfx.LoadShader(a.cfg.Assets, a.cfg.ShaderPath)
	if err != nil {
		return nil, err
	}
	a.quads = gfx.NewQuadRenderer(sh, gfx.NewCamera(gfx.Viewport{Width: WindowWidth, Height: WindowHeight}))

	a.loadTextures()
	if a.cfg.HUD {
		a.hud = gfx.NewHUD(200, 24)
	}
	return a, nil
}

// NewHeadless decodes the textures without uploading them.
func NewHeadless(h hal.HAL, cfg Config) (hal.Stepper, error) {
	a := newApp(h, cfg)
	for _, b := range orbits.Bodies {
		a.mustDecode(b.Texture)
	}
	return a, nil
}

// NewTerminal draws the scene as character cells.
func NewTerminal(h hal.HAL, cfg Config) (hal.TerminalGame, error) {
	a := newApp(h, cfg)
	for _, b := range orbits.Bodies {
		a.mustDecode(b.Texture)
	}
	a.term = gfx.NewTermRenderer()
	return a, nil
}

// loadTexture uploads one texture. Tests replace it to stay off the GPU.
var loadTexture = gfx.LoadTexture

// loadTextures gives every renderable its texture, aborting on the first
// one that cannot be loaded.
func (a *App) loadTextures() {
	for i, b := range orbits.Bodies {
		tex, err := loadTexture(a.cfg.Assets, b.Texture)
		if err != nil {
			abort(a.log, err)
		}
		a.logf("asset: loaded %s %dx%d", b.Texture, tex.Width, tex.Height)
		a.items[i].Texture = tex
	}
}

func (a *App) mustDecode(path string) *image.RGBA {
	pix, err := gfx.DecodeImage(a.cfg.Assets, path)
	if err != nil {
		abort(a.log, err)
	}
	b := pix.Bounds()
	a.logf("asset: loaded %s %dx%d", path, b.Dx(), b.Dy())
	return pix
}

// Loop exposes the frame loop, mainly for inspection in tests.
func (a *App) Loop() *orbits.Loop { return a.loop }

// Step advances one frame and refreshes the renderables' transforms.
func (a *App) Step() error {
	if err := a.loop.Step(); err != nil {
		if errors.Is(err, orbits.ErrTerminated) {
			a.logf("orbits: session %s stopped after %d frames (%.2fs)", a.session, a.loop.Frames(), a.loop.Elapsed())
			return hal.ErrQuit
		}
		return err
	}
	for i, b := range orbits.Bodies {
		a.items[i].Model = a.loop.State.Model(b.Body)
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.quads.DrawAll(screen, a.items[:])
	if a.hud == nil {
		return
	}
	if a.loop.Frames()%hudRefreshFrames == 1 {
		a.hud.SetLines(
			"PLANET ORBITS "+buildinfo.Short(),
			fmt.Sprintf("FRAME %d  FPS %.0f", a.loop.Frames(), ebiten.ActualFPS()),
			fmt.Sprintf("SUN %.2f RAD", a.loop.State.SunAngle),
		)
	}
	a.hud.Draw(screen)
}

func (a *App) DrawTerminal(s tcell.Screen) {
	a.term.DrawAll(s, a.items[:])
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}
