package hal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the character-cell preview.
type TerminalConfig struct {
	Hz int

	// Screen overrides the terminal screen. Nil opens the controlling terminal.
	Screen tcell.Screen
}

// TerminalGame is a Stepper that can draw itself into terminal cells.
type TerminalGame interface {
	Stepper
	DrawTerminal(s tcell.Screen)
}

// RunTerminal runs the program in the terminal until Esc, Ctrl-C or q, or
// until ctx is cancelled.
func RunTerminal(ctx context.Context, cfg TerminalConfig, newGame func(HAL) (TerminalGame, error)) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("hal: invalid terminal hz: %d", cfg.Hz)
	}

	screen := cfg.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("hal: terminal: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("hal: terminal init: %w", err)
	}
	defer screen.Fini()

	in := NewSignalQueue(16)
	h := newHost(newMonoClock(), in)
	game, err := newGame(h)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 100)
	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stopped:
				return
			}
		}
	}()

	t := time.NewTicker(d)
	defer t.Stop()

	done := ctx.Done()
	for {
		select {
		case <-done:
			in.Push(SignalQuit)
			done = nil
		case ev := <-events:
			handleTerminalEvent(screen, in, ev)
			continue
		case <-t.C:
		}

		if err := game.Step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		game.DrawTerminal(screen)
		screen.Show()
	}
}

func handleTerminalEvent(screen tcell.Screen, in *SignalQueue, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			in.Push(SignalQuit)
		}
	case *tcell.EventResize:
		screen.Sync()
	}
}
