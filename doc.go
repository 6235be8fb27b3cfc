// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package message decodes the 16-bit word stream emitted by the SPADIC 1.0
// front-end readout ASIC into structured, semantically typed messages.
//
// Semantics and design:
//   - Word-driven state machine: Message.ReadFrom consumes words from a
//     caller-supplied []uint16 one at a time, classifying each (kind.go),
//     applying its fixed bit-field extraction recipe (fields.go), and
//     OR-ing a validity bit into the message's bitmap. A start-of-message
//     word resets the message in progress; an end-of-message word stops
//     consumption and returns the count of words consumed.
//   - Streaming across buffers: Reader composes ReadFrom with two FIFOs of
//     caller-owned buffer handles (pending, depleted) so that a partially
//     filled message survives arbitrarily many calls to AddBuffer, and a
//     buffer is never handed back via GetDepleted until its last word has
//     been processed.
//   - Pull-based and synchronous: no goroutines, no channels, no callbacks.
//     GetMessage either returns a completed message or it doesn't; there is
//     no continuation.
//   - Lazy sample unpacking: the interleaved 9-bit sample payload carried by
//     a hit message's raw-data words is only expanded (internal/river) on
//     first call to Message.Samples, then cached for the message's
//     lifetime.
//
// This package performs no I/O of its own; buffers are produced and owned
// by the caller (see AppendWords for assembling raw bytes into words before
// handing them to a Reader).
package message
