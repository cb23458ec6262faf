package input

import "sync"

// Queue is an unbounded FIFO of commands. One side pushes as keys arrive and
// the tick loop drains whatever is pending without ever blocking.
type Queue struct {
	mu      sync.Mutex
	pending []Command
}

func (q *Queue) Push(cmd Command) {
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()
}

// Drain removes and returns every pending command in arrival order. It
// returns nil when nothing is pending.
func (q *Queue) Drain() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
