// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package river implements the SPADIC sample unpacker: concatenating a run
// of variable-width raw-data words into a single bit river, MSB-first, and
// chopping that river into fixed-width signed fields.
package river

// Entry is one raw payload word together with the number of significant,
// MSB-first bits it contributes to the river: 12 for the first (RDA) word,
// 15 for every continuation (CON) word that follows it.
type Entry struct {
	Val   uint16
	Width uint8
}

// sampleWidth is the width of one sample field in the river.
const sampleWidth = 9

// signBit marks a negative 9-bit sample (values 0x100..0x1FF).
const signBit = 1 << (sampleWidth - 1)

// Unpack concatenates entries in order into a bit river, most significant
// bit of each entry first, and chops it into at most maxSamples signed
// 9-bit fields, sign-extended to int16. Trailing bits that do not form a
// full field are discarded.
func Unpack(entries []Entry, maxSamples int) []int16 {
	if maxSamples <= 0 || len(entries) == 0 {
		return nil
	}

	var acc uint64 // the nbits least-significant bits hold the unread river
	var nbits uint

	samples := make([]int16, 0, maxSamples)
	for _, e := range entries {
		width := uint(e.Width)
		acc = acc<<width | uint64(e.Val)&(1<<width-1)
		nbits += width

		for nbits >= sampleWidth {
			if len(samples) == maxSamples {
				return samples
			}
			shift := nbits - sampleWidth
			field := uint16((acc >> shift) & (1<<sampleWidth - 1))
			samples = append(samples, signExtend9(field))
			nbits -= sampleWidth
			acc &= 1<<nbits - 1
		}
	}
	return samples
}

func signExtend9(v uint16) int16 {
	v &= (1 << sampleWidth) - 1
	if v&signBit != 0 {
		return int16(v) - (1 << sampleWidth)
	}
	return int16(v)
}
