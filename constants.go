// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

// StopType is the 3-bit field carried by an EOM word (message.StopType()).
type StopType uint8

const (
	StopEnd             StopType = 0x0 // sEND: normal end of message
	StopChannelBufFull  StopType = 0x1 // sEBF: channel buffer full
	StopFifoFull        StopType = 0x2 // sEFF: ordering FIFO full
	StopMultiHit        StopType = 0x3 // sEDH: multi hit
	StopMultiHitBufFull StopType = 0x4 // sEDB: multi hit and channel buffer full
	StopMultiHitFifo    StopType = 0x5 // sEDO: multi hit and ordering FIFO full
)

// HitType is the 2-bit field carried by an EOM word (message.HitType()).
type HitType uint8

const (
	HitGlobal   HitType = 0x0 // hGLB: global trigger
	HitSelf     HitType = 0x1 // hSLF: self triggered
	HitNeighbor HitType = 0x2 // hNBR: neighbor triggered
	HitSelfNbr  HitType = 0x3 // hSAN: self and neighbor triggered
)
