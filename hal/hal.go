package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Clock is a monotonic time source in seconds.
type Clock interface {
	Seconds() float64
}

// Signal is a platform event the program reacts to.
type Signal uint8

const (
	SignalQuit Signal = iota + 1
)

// Input drains pending platform signals.
//
// PollQuit never blocks; it consumes everything queued so far and reports
// whether any of it was a quit request.
type Input interface {
	PollQuit() bool
}

// HAL provides the only contact point between the program and the outside world.
type HAL interface {
	Logger() Logger
	Clock() Clock
	Input() Input
}

// Stepper runs one frame of the program.
type Stepper interface {
	Step() error
}

// ErrQuit is returned by a Stepper to end its runner cleanly.
var ErrQuit = errors.New("quit")
