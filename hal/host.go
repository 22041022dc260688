package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	clock  Clock
	input  Input
}

func newHost(clock Clock, input Input) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stderr},
		clock:  clock,
		input:  input,
	}
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) Clock() Clock   { return h.clock }
func (h *hostHAL) Input() Input   { return h.input }

// NewLogger returns a line logger over w, safe for concurrent use.
func NewLogger(w io.Writer) Logger { return &hostLogger{w: w} }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
