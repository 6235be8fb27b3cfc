// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

// Options configures a Reader. There is no equivalent for a bare Message:
// decoding has no configurable behavior of its own, only the pipeline
// around it does (queue sizing hints).
type Options struct {
	// PendingCapacityHint preallocates the pending-buffer queue's backing
	// slice. Zero means no preallocation.
	PendingCapacityHint int
}

var defaultOptions = Options{}

// Option configures a Reader at construction time.
type Option func(*Options)

// WithPendingCapacityHint preallocates room for n pending input buffers.
func WithPendingCapacityHint(n int) Option {
	return func(o *Options) { o.PendingCapacityHint = n }
}
