package hal

// SignalQueue is a bounded, non-blocking signal buffer. Producers drop signals
// when it is full.
type SignalQueue struct {
	ch      chan Signal
	scratch []Signal
}

func NewSignalQueue(size int) *SignalQueue {
	if size <= 0 {
		size = 1
	}
	return &SignalQueue{ch: make(chan Signal, size)}
}

// Push enqueues s without blocking.
func (q *SignalQueue) Push(s Signal) {
	select {
	case q.ch <- s:
	default:
	}
}

// Poll appends every pending signal to dst.
func (q *SignalQueue) Poll(dst []Signal) []Signal {
	for {
		select {
		case s := <-q.ch:
			dst = append(dst, s)
		default:
			return dst
		}
	}
}

// PollQuit drains the queue and reports whether it held a quit request.
// It must only be called from the consuming goroutine.
func (q *SignalQueue) PollQuit() bool {
	q.scratch = q.Poll(q.scratch[:0])
	for _, s := range q.scratch {
		if s == SignalQuit {
			return true
		}
	}
	return false
}
