// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

import (
	"encoding/binary"

	"github.com/spadic10/message/internal/bo"
)

// AppendWords assembles data, a buffer of raw bytes, into 16-bit words
// appended to dst, using order to interpret each pair of bytes. It returns
// the extended slice. A trailing odd byte, if any, is left unconsumed and
// is not represented in the result — the caller is responsible for
// prepending it to the next call if more bytes of the same word are still
// to arrive.
//
// Decoding itself (ReadFrom, AddBuffer) starts from already-assembled
// []uint16 words; callers fed from a byte-oriented source (a capture file,
// a socket read into a []byte) use AppendWords as a small, pure, I/O-free
// step to get there. order defaults to the host's native order (bo.Native())
// when nil.
func AppendWords(dst []uint16, data []byte, order binary.ByteOrder) []uint16 {
	if order == nil {
		order = bo.Native()
	}
	n := len(data) / 2
	for i := 0; i < n; i++ {
		dst = append(dst, order.Uint16(data[2*i:2*i+2]))
	}
	return dst
}
