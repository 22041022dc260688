package gfx

import "testing"

func litPixels(h *HUD) int {
	n := 0
	for i := 3; i < len(h.buf.Pix); i += 4 {
		if h.buf.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestHUDRasterisesText(t *testing.T) {
	h := NewHUD(64, 16)
	h.SetLines("FRAME 1")
	if litPixels(h) == 0 {
		t.Fatal("no pixels drawn")
	}
	if !h.dirty {
		t.Fatal("new text must mark the overlay dirty")
	}
}

func TestHUDSkipsUnchangedText(t *testing.T) {
	h := NewHUD(64, 16)
	h.SetLines("A")
	h.dirty = false
	h.SetLines("A")
	if h.dirty {
		t.Fatal("unchanged text re-rasterised")
	}
	h.SetLines("")
	if litPixels(h) != 0 {
		t.Fatal("empty text left pixels behind")
	}
}
