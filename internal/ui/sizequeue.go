package ui

import "sync"

// Size is a window size in logical pixels.
type Size struct {
	Width, Height float64
}

// SizeQueue collects observed window sizes between frames. Readers take
// the most recent size and discard the rest.
type SizeQueue struct {
	mu      sync.Mutex
	pending []Size
	last    Size
}

// NewSizeQueue returns a queue whose Latest is initial until something is
// pushed.
func NewSizeQueue(initial Size) *SizeQueue {
	return &SizeQueue{last: initial}
}

// Push records an observed size. Repeats of the newest pending size are
// dropped.
func (q *SizeQueue) Push(s Size) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n := len(q.pending); n > 0 && q.pending[n-1] == s {
		return
	}
	q.pending = append(q.pending, s)
}

// Latest drains the queue and returns the newest size. changed reports
// whether it differs from the previously returned one.
func (q *SizeQueue) Latest() (s Size, changed bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n := len(q.pending); n > 0 {
		s = q.pending[n-1]
		q.pending = q.pending[:0]
		changed = s != q.last
		q.last = s
		return s, changed
	}
	return q.last, false
}
