package hal

import (
	"errors"

	"orbits/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// Game is a Stepper that can also draw itself into the window.
type Game interface {
	Stepper
	Draw(screen *ebiten.Image)
}

// RunWindow opens a window and runs the game until it is closed.
// Update and draw run once per displayed frame; there is no separate tick cap.
func RunWindow(cfg WindowConfig, newGame func(HAL) (Game, error)) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 960
	}
	if cfg.Title == "" {
		cfg.Title = "Planet Orbits"
	}

	in := newWindowInput()
	h := newHost(newMonoClock(), in)
	game, err := newGame(h)
	if err != nil {
		return err
	}

	g := &hostGame{game: game, input: in, width: cfg.Width, height: cfg.Height}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	game   Game
	input  *windowInput
	width  int
	height int
}

func (g *hostGame) Update() error {
	g.input.poll()
	if err := g.game.Step(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
