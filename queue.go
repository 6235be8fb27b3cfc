// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

// bufHandle is a caller-owned input buffer handle. The package owns the
// queue slot, never the underlying word memory.
type bufHandle struct {
	words []uint16
}

// bufQueue is a FIFO of buffer handles: O(1) append at the tail, O(1) pop
// at the head. The Reader keeps two independent instances (pending,
// depleted); see reader.go. The only observable property is FIFO ordering,
// not node identity.
type bufQueue struct {
	items []bufHandle
}

func (q *bufQueue) isEmpty() bool {
	return len(q.items) == 0
}

func (q *bufQueue) append(h bufHandle) {
	q.items = append(q.items, h)
}

// pop removes and returns the head handle, or ok=false if the queue is
// empty.
func (q *bufQueue) pop() (h bufHandle, ok bool) {
	if len(q.items) == 0 {
		return bufHandle{}, false
	}
	h = q.items[0]
	q.items[0] = bufHandle{}
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil // release the backing array once fully drained
	}
	return h, true
}

// peek returns a pointer to the head handle without removing it, or
// ok=false if the queue is empty.
func (q *bufQueue) peek() (h *bufHandle, ok bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return &q.items[0], true
}
