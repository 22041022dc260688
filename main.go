package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"orbits/app"
	"orbits/hal"
)

func main() {
	var (
		headless bool
		terminal bool
		assets   string
		hcfg     hal.HeadlessConfig
		tcfg     hal.TerminalConfig
		acfg     app.Config
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&terminal, "terminal", false, "Render into the terminal instead of a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.StringVar(&assets, "assets", ".", "Directory holding the textures and shaders/.")
	flag.BoolVar(&acfg.HUD, "hud", false, "Show a text overlay in window mode.")
	flag.Parse()

	acfg.Assets = os.DirFS(assets)
	tcfg.Hz = hcfg.Hz

	var err error
	switch {
	case headless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, hcfg, func(h hal.HAL) (hal.Stepper, error) {
			return app.NewHeadless(h, acfg)
		})
	case terminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunTerminal(ctx, tcfg, func(h hal.HAL) (hal.TerminalGame, error) {
			return app.NewTerminal(h, acfg)
		})
	default:
		err = hal.RunWindow(hal.WindowConfig{
			Title:  "Planet Orbits",
			Width:  app.WindowWidth,
			Height: app.WindowHeight,
		}, func(h hal.HAL) (hal.Game, error) {
			return app.NewWindow(h, acfg)
		})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
