package srs

// ClearEvent is a non-empty line clear and the time it happened.
type ClearEvent struct {
	Time  float64
	Clear LineClear
}

// History is a bounded ring buffer of clear events; the oldest is evicted first.
type History struct {
	events []ClearEvent
	start  int
	size   int
}

// NewHistory creates a history holding at most capacity events.
func NewHistory(capacity int) *History {
	return &History{events: make([]ClearEvent, max(capacity, 1))}
}

func (h *History) Len() int { return h.size }
func (h *History) Cap() int { return len(h.events) }

// Push appends e, evicting the oldest event when full.
func (h *History) Push(e ClearEvent) {
	if h.size < len(h.events) {
		h.events[(h.start+h.size)%len(h.events)] = e
		h.size++
		return
	}
	h.events[h.start] = e
	h.start = (h.start + 1) % len(h.events)
}

// Last returns the most recent event.
func (h *History) Last() (ClearEvent, bool) {
	if h.size == 0 {
		return ClearEvent{}, false
	}
	return h.events[(h.start+h.size-1)%len(h.events)], true
}

// Events returns the stored events, oldest first.
func (h *History) Events() []ClearEvent {
	out := make([]ClearEvent, h.size)
	for i := range out {
		out[i] = h.events[(h.start+i)%len(h.events)]
	}
	return out
}

func (h *History) Clear() {
	h.start, h.size = 0, 0
}
