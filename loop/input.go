package loop

import (
	"sync"

	"github.com/plus3/srstris/srs"
)

// Input is a FIFO of player actions. Front-ends push from their event
// goroutine and the scheduler drains it at the start of each frame. Repeated
// actions are kept; two MoveLeft presses move the piece twice.
type Input struct {
	mu     sync.Mutex
	queue  []srs.Action
	closed bool
}

func NewInput() *Input {
	return &Input{}
}

// Push appends a to the queue. It is a no-op after Close.
func (in *Input) Push(a srs.Action) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed {
		return
	}
	in.queue = append(in.queue, a)
}

// Drain returns every queued action in arrival order and empties the queue.
func (in *Input) Drain() []srs.Action {
	in.mu.Lock()
	defer in.mu.Unlock()
	if len(in.queue) == 0 {
		return nil
	}
	out := in.queue
	in.queue = nil
	return out
}

func (in *Input) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.queue)
}

// Close drops anything still queued and rejects later pushes.
func (in *Input) Close() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.closed = true
	in.queue = nil
}
