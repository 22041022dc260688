package orbits

import "errors"

// ErrTerminated is returned by Step once a quit signal has been seen.
var ErrTerminated = errors.New("orbits: terminated")

// Status is the frame loop state.
type Status uint8

const (
	Running Status = iota
	Terminated
)

func (s Status) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Clock is a monotonic time source in seconds.
type Clock interface {
	Seconds() float64
}

// Input drains pending platform signals without blocking and reports whether
// any of them asked to quit.
type Input interface {
	PollQuit() bool
}

// Loop drives one frame at a time: poll input, then advance the animation by
// the time elapsed since the previous frame. Drawing is left to the caller.
type Loop struct {
	State *AnimationState

	clock  Clock
	input  Input
	status Status
	prev   float64
	frames uint64
}

func NewLoop(state *AnimationState, clock Clock, input Input) *Loop {
	if state == nil {
		state = NewAnimationState()
	}
	return &Loop{State: state, clock: clock, input: input}
}

func (l *Loop) Status() Status { return l.status }

// Frames is the number of completed updates.
func (l *Loop) Frames() uint64 { return l.frames }

// Elapsed is the clock reading at the last update.
func (l *Loop) Elapsed() float64 { return l.prev }

// Step runs one frame. It returns ErrTerminated on the frame that sees a quit
// signal and on every call after that.
func (l *Loop) Step() error {
	if l.status == Terminated {
		return ErrTerminated
	}
	if l.input != nil && l.input.PollQuit() {
		l.status = Terminated
		return ErrTerminated
	}

	now := l.clock.Seconds()
	dt := float32(now - l.prev)
	l.prev = now

	l.State.Update(dt)
	l.frames++
	return nil
}
