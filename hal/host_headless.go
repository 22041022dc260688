package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
}

// RunHeadless runs the program without opening a window.
//
// Time is simulated: every tick advances the clock by exactly 1/Hz seconds, so a
// run of N ticks is reproducible regardless of host load. Cancelling ctx is
// delivered as a quit signal rather than aborting the frame in progress.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(HAL) (Stepper, error)) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("hal: invalid headless hz: %d", cfg.Hz)
	}

	clk := newStepClock(cfg.Hz)
	in := NewSignalQueue(4)
	h := newHost(clk, in)
	app, err := newApp(h)
	if err != nil {
		return err
	}

	t := time.NewTicker(d)
	defer t.Stop()

	done := ctx.Done()
	var tick uint64
	for {
		select {
		case <-done:
			in.Push(SignalQuit)
			done = nil
		case <-t.C:
			clk.step(1)
		}

		if err := app.Step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		if done == nil {
			continue
		}
		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}
