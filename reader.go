// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

// Reader composes a Message under construction with two buffer queues to
// turn arbitrarily segmented input buffers into a stream of completed
// messages, preserving decoder state across buffer boundaries.
//
// GetMessage advances one phase at a time: decode into the current buffer,
// return as soon as one completed Message is produced, and resume exactly
// where the previous call left off. There is no I/O, so a call either
// produces a Message or it doesn't, promptly, every time.
//
// A Reader is not safe for concurrent use. Distinct Readers share no state.
type Reader struct {
	pending  bufQueue
	depleted bufQueue
	position int
	current  *Message

	stats Stats
}

// Stats is a read-only snapshot of a Reader's lifetime counters, useful for
// monitoring a long-running decode without affecting its behavior.
type Stats struct {
	// Delivered counts messages returned by GetMessage.
	Delivered uint64
	// InvalidComplete counts delivered messages where IsComplete() holds
	// but IsValid() does not: a structural error in the input stream.
	InvalidComplete uint64
	// WordsConsumed counts words consumed across all ReadFrom calls.
	WordsConsumed uint64
}

// NewReader allocates an empty reader.
func NewReader(opts ...Option) *Reader {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	r := &Reader{current: NewMessage()}
	if o.PendingCapacityHint > 0 {
		r.pending.items = make([]bufHandle, 0, o.PendingCapacityHint)
	}
	return r
}

// Reset moves all pending buffers to depleted (so the caller can reclaim
// them), drops the in-flight message, and clears accumulated stats.
// Nothing is done if r is nil.
func (r *Reader) Reset() {
	if r == nil {
		return
	}
	for {
		h, ok := r.pending.pop()
		if !ok {
			break
		}
		r.depleted.append(h)
	}
	r.position = 0
	r.current = NewMessage()
	r.stats = Stats{}
}

// AddBuffer appends buf to the pending queue. It does not itself consume
// any words. It is a no-op, returning false, if buf is empty.
func (r *Reader) AddBuffer(buf []uint16) bool {
	if r == nil || len(buf) == 0 {
		return false
	}
	r.pending.append(bufHandle{words: buf})
	return true
}

// IsEmpty reports whether the pending queue is empty.
func (r *Reader) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.pending.isEmpty()
}

// GetMessage advances decoding until either one complete message is
// produced (returned with ok=true, ownership transferred to the caller) or
// the pending queue is exhausted with no completed message (ok=false).
//
// At most one message is produced per call. A partially filled message
// persists across calls, and across however many buffers it takes to
// complete it. A buffer is never moved to the depleted queue until its
// last word has been processed.
func (r *Reader) GetMessage() (*Message, bool) {
	if r == nil {
		return nil, false
	}
	for {
		head, ok := r.pending.peek()
		if !ok {
			return nil, false
		}

		n := r.current.ReadFrom(head.words[r.position:])
		r.position += n
		r.stats.WordsConsumed += uint64(n)

		if r.position < len(head.words) {
			// ReadFrom stopped early: it saw an end-of-message word.
			return r.deliver(), true
		}

		// The head buffer is exhausted; move it to depleted.
		depleted, _ := r.pending.pop()
		r.depleted.append(depleted)
		r.position = 0

		if r.current.IsComplete() {
			// The end word was the last word of the buffer.
			return r.deliver(), true
		}
		// Otherwise keep decoding into the same message from the next
		// pending buffer, if any.
	}
}

func (r *Reader) deliver() *Message {
	m := r.current
	r.stats.Delivered++
	if m.IsComplete() && !m.IsValid() {
		r.stats.InvalidComplete++
	}
	r.current = NewMessage()
	return m
}

// GetDepleted pops and returns the oldest depleted buffer, or ok=false if
// none are waiting. The caller may release the underlying memory once it
// has been returned here.
func (r *Reader) GetDepleted() ([]uint16, bool) {
	if r == nil {
		return nil, false
	}
	h, ok := r.depleted.pop()
	if !ok {
		return nil, false
	}
	return h.words, true
}

// Stats returns a snapshot of the reader's lifetime counters.
func (r *Reader) Stats() Stats {
	if r == nil {
		return Stats{}
	}
	return r.stats
}
