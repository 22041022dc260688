package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	var (
		outDir = flag.String("out", ".", "Directory to write the textures into.")
		size   = flag.Int("size", 128, "Texture edge length in pixels.")
		seed   = flag.Int64("seed", 1, "Seed for the starfield.")
	)
	flag.Parse()

	if *size < 8 {
		fatalf("usage: mkassets [-out dir] [-size 128] [-seed 1]\n       size must be at least 8")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("mkdir %s: %v", *outDir, err)
	}

	for _, a := range textures(*size, *seed) {
		path := filepath.Join(*outDir, a.name)
		if err := writePNG(path, a.img); err != nil {
			fatalf("write %s: %v", path, err)
		}
		fmt.Printf("wrote %s (%dx%d)\n", path, *size, *size)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
