// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

// Kind identifies the category of a 16-bit SPADIC word, determined by
// matching (word & mask) == value against a fixed table, tried in a fixed
// order. Continuation (KindCON) carries the loosest mask and is therefore
// tried last; every word not matched by an earlier entry falls into it by
// construction, so classification never fails.
type Kind uint8

const (
	KindSOM Kind = iota // start of message: group_id, channel_id
	KindTSW             // timestamp
	KindRDA             // raw data, first payload word
	KindEOM             // end of message: num_samples, hit_type, stop_type
	KindBOM             // buffer overflow count
	KindEPM             // epoch marker
	KindEXD             // extracted data, reserved, not decoded
	KindINF             // info word, carries an InfoType
	KindCON             // continuation of raw-data payload
)

func (k Kind) String() string {
	switch k {
	case KindSOM:
		return "SOM"
	case KindTSW:
		return "TSW"
	case KindRDA:
		return "RDA"
	case KindEOM:
		return "EOM"
	case KindBOM:
		return "BOM"
	case KindEPM:
		return "EPM"
	case KindEXD:
		return "EXD"
	case KindINF:
		return "INF"
	case KindCON:
		return "CON"
	default:
		return "UNKNOWN"
	}
}

// Validity bitmap bits, one per observed word kind. EXD and CON contribute
// no bit: a message built from nothing but EXD/CON words has valid == 0.
const (
	bitSOM uint8 = 1 << iota
	bitTSW
	bitRDA
	bitEOM
	bitBOM
	bitEPM
	bitINF
)

// validBit is the bit this kind contributes to a message's validity bitmap.
func (k Kind) validBit() uint8 {
	switch k {
	case KindSOM:
		return bitSOM
	case KindTSW:
		return bitTSW
	case KindRDA:
		return bitRDA
	case KindEOM:
		return bitEOM
	case KindBOM:
		return bitBOM
	case KindEPM:
		return bitEPM
	case KindINF:
		return bitINF
	default:
		return 0
	}
}

type kindMatch struct {
	kind  Kind
	mask  uint16
	value uint16
}

// kindTable is tried in order; KindCON's mask (0x8000) is the loosest and
// must stay last.
var kindTable = [...]kindMatch{
	{KindSOM, 0xF000, 0x8000},
	{KindTSW, 0xF000, 0x9000},
	{KindRDA, 0xF000, 0xA000},
	{KindEOM, 0xF000, 0xB000},
	{KindBOM, 0xF000, 0xC000},
	{KindEPM, 0xF000, 0xD000},
	{KindEXD, 0xF000, 0xE000},
	{KindINF, 0xF000, 0xF000},
	{KindCON, 0x8000, 0x0000},
}

// InfoType identifies the sub-type of an INF word (bits 11-8).
type InfoType uint8

const (
	InfoChannelDisabled  InfoType = 0x0 // DIS: channel disabled during message building
	InfoNextGrantTimeout InfoType = 0x1 // NGT
	InfoNextReqTimeout   InfoType = 0x2 // NRT
	InfoNewGrantEmpty    InfoType = 0x3 // NBE: new grant but channel empty
	InfoBuilderCorrupt   InfoType = 0x4 // MSB: corruption in message builder
	InfoNop              InfoType = 0x5 // NOP: empty word
	InfoEpochOutOfSync   InfoType = 0x6 // SYN: epoch out of sync
)

// classify returns the kind of w and, when kind is KindINF, its info
// sub-type. info is meaningless for any other kind.
func classify(w uint16) (kind Kind, info InfoType) {
	for _, m := range kindTable {
		if w&m.mask == m.value {
			kind = m.kind
			break
		}
	}
	if kind == KindINF {
		info = InfoType((w >> 8) & 0xF)
	}
	return kind, info
}

// isIgnore reports whether w must be silently skipped by the decoder loop:
// an INF/NOP word.
func isIgnore(w uint16) bool {
	kind, info := classify(w)
	return kind == KindINF && info == InfoNop
}

// isStart reports whether w begins a new message: SOM, or a self-contained
// INF/NGT, INF/NRT, INF/NBE info message.
func isStart(w uint16) bool {
	kind, info := classify(w)
	if kind == KindSOM {
		return true
	}
	if kind != KindINF {
		return false
	}
	return info == InfoNextGrantTimeout || info == InfoNextReqTimeout || info == InfoNewGrantEmpty
}

// isEnd reports whether w terminates the in-flight message.
func isEnd(w uint16) bool {
	kind, _ := classify(w)
	switch kind {
	case KindEOM, KindBOM, KindEPM, KindINF:
		return true
	default:
		return false
	}
}
