package app

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"math"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"orbits/gfx"
	"orbits/hal"
	"orbits/orbits"

	"github.com/gdamore/tcell/v2"
)

type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *captureLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *captureLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *captureLogger) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type tenthClock struct{ n int }

func (c *tenthClock) Seconds() float64 { return float64(c.n) / 10 }

type flagInput struct{ quit bool }

func (in *flagInput) PollQuit() bool { return in.quit }

type testHAL struct {
	log   *captureLogger
	clock *tenthClock
	input *flagInput
}

func newTestHAL() *testHAL {
	return &testHAL{log: &captureLogger{}, clock: &tenthClock{}, input: &flagInput{}}
}

func (h *testHAL) Logger() hal.Logger { return h.log }
func (h *testHAL) Clock() hal.Clock   { return h.clock }
func (h *testHAL) Input() hal.Input   { return h.input }

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 0x80, A: 0xC0})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func assetsFS(t *testing.T) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, b := range orbits.Bodies {
		fsys[b.Texture] = &fstest.MapFile{Data: pngBytes(t, 4, 4)}
	}
	return fsys
}

func TestHeadlessRunsFiftyFrames(t *testing.T) {
	h := newTestHAL()
	s, err := NewHeadless(h, Config{Assets: assetsFS(t)})
	if err != nil {
		t.Fatalf("NewHeadless: %v", err)
	}
	a := s.(*App)

	for i := 0; i < 50; i++ {
		h.clock.n++
		if err := a.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	st := a.Loop().State
	if math.Abs(float64(st.SunAngle)-5) > 1e-4 {
		t.Fatalf("sun angle: got %v want 5", st.SunAngle)
	}
	if st.Stars.Growing || st.Stars.Counter != 10 {
		t.Fatalf("stars: growing=%v counter=%d", st.Stars.Growing, st.Stars.Counter)
	}
	for i, b := range orbits.Bodies {
		if a.items[i].Model != st.Model(b.Body) {
			t.Fatalf("%s renderable out of sync with state", b.Body)
		}
	}
	if !h.log.contains("asset: loaded stars.png 4x4") {
		t.Fatalf("missing load log: %v", h.log.lines)
	}
}

func TestStepReportsQuit(t *testing.T) {
	h := newTestHAL()
	s, err := NewHeadless(h, Config{Assets: assetsFS(t)})
	if err != nil {
		t.Fatalf("NewHeadless: %v", err)
	}
	h.clock.n = 1
	if err := s.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	h.input.quit = true
	if err := s.Step(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if !h.log.contains("stopped after 1 frames") {
		t.Fatalf("missing stop log: %v", h.log.lines)
	}
}

func TestMissingTextureAborts(t *testing.T) {
	fsys := assetsFS(t)
	delete(fsys, "earth.png")
	h := newTestHAL()

	var got any
	func() {
		defer func() { got = recover() }()
		_, _ = NewHeadless(h, Config{Assets: fsys})
	}()

	err, ok := got.(error)
	if !ok {
		t.Fatalf("expected abort with an error, got %v", got)
	}
	if !errors.Is(err, gfx.ErrAssetLoad) {
		t.Fatalf("abort error does not wrap ErrAssetLoad: %v", err)
	}
	if !h.log.contains("Unable to load image") {
		t.Fatalf("abort not logged: %v", h.log.lines)
	}
}

// decodeOnly stands in for the GPU upload in gfx.LoadTexture.
func decodeOnly(fsys fs.FS, path string) (*gfx.Texture, error) {
	pix, err := gfx.DecodeImage(fsys, path)
	if err != nil {
		return nil, err
	}
	b := pix.Bounds()
	return &gfx.Texture{Name: path, Width: b.Dx(), Height: b.Dy()}, nil
}

func useDecodeOnly(t *testing.T) {
	t.Helper()
	prev := loadTexture
	loadTexture = decodeOnly
	t.Cleanup(func() { loadTexture = prev })
}

func TestWindowTexturesLoadInDrawOrder(t *testing.T) {
	useDecodeOnly(t)
	h := newTestHAL()
	a := newApp(h, Config{Assets: assetsFS(t)})
	a.loadTextures()

	for i, b := range orbits.Bodies {
		tex := a.items[i].Texture
		if tex == nil || tex.Name != b.Texture {
			t.Fatalf("item %d: texture %v, want %s", i, tex, b.Texture)
		}
	}
	if !h.log.contains("asset: loaded sun.png 4x4") {
		t.Fatalf("missing load log: %v", h.log.lines)
	}
}

func TestWindowMissingTextureAborts(t *testing.T) {
	useDecodeOnly(t)
	fsys := assetsFS(t)
	delete(fsys, "stars.png")
	h := newTestHAL()
	a := newApp(h, Config{Assets: fsys})

	var got any
	func() {
		defer func() { got = recover() }()
		a.loadTextures()
	}()

	err, ok := got.(error)
	if !ok || !errors.Is(err, gfx.ErrAssetLoad) {
		t.Fatalf("expected asset abort, got %v", got)
	}
	if a.items[orbits.Stars].Texture != nil {
		t.Fatal("failed texture reached the renderable")
	}
	if !h.log.contains("Unable to load image") {
		t.Fatalf("abort not logged: %v", h.log.lines)
	}
}

func TestCorruptTextureAborts(t *testing.T) {
	fsys := assetsFS(t)
	fsys["moon.png"] = &fstest.MapFile{Data: []byte("not a png")}

	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, gfx.ErrAssetLoad) {
			t.Fatalf("expected asset abort, got %v", err)
		}
	}()
	NewHeadless(newTestHAL(), Config{Assets: fsys})
	t.Fatal("NewHeadless returned after a corrupt texture")
}

func TestTerminalDrawsBodies(t *testing.T) {
	h := newTestHAL()
	g, err := NewTerminal(h, Config{Assets: assetsFS(t)})
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	h.clock.n = 1
	if err := g.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 30)

	g.DrawTerminal(screen)

	seen := map[rune]bool{}
	for y := 0; y < 30; y++ {
		for x := 0; x < 80; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			seen[r] = true
		}
	}
	for _, b := range orbits.Bodies {
		if !seen[b.Glyph] {
			t.Fatalf("glyph %q for %s not drawn", b.Glyph, b.Body)
		}
	}
}
