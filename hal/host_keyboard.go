package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// windowInput turns window events into signals. ebiten only exposes input
// state from inside Update, so poll runs there and PollQuit drains the queue.
type windowInput struct {
	q *SignalQueue
}

func newWindowInput() *windowInput {
	return &windowInput{q: NewSignalQueue(16)}
}

func (in *windowInput) PollQuit() bool { return in.q.PollQuit() }

func (in *windowInput) poll() {
	if ebiten.IsWindowBeingClosed() {
		in.q.Push(SignalQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.q.Push(SignalQuit)
	}
}
