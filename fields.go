// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

// This file holds the fixed unpack recipe for each word kind's payload bits
// (the low 12 bits, or the low 15 bits of a CON word).
// Each extractor is a pure function from a word to the field(s) it carries;
// applying one to a *Message is the decoder's only side-effecting step
// (message.go's ReadFrom dispatches into these).

func fieldsSOM(w uint16) (groupID, channelID uint8) {
	return uint8((w >> 4) & 0xFF), uint8(w & 0xF)
}

func fieldsTSW(w uint16) (timestamp uint16) {
	return w & 0xFFF
}

func fieldsEOM(w uint16) (numSamples uint8, hitType HitType, stopType StopType) {
	return uint8((w >> 6) & 0x3F), HitType((w >> 4) & 0x3), StopType(w & 0x7)
}

func fieldsBOM(w uint16) (overflowCount uint8) {
	return uint8(w & 0xFF)
}

func fieldsEPM(w uint16) (epochCount uint16) {
	return w & 0xFFF
}

func fieldsINF(w uint16) (infoType InfoType) {
	return InfoType((w >> 8) & 0xF)
}

// fieldsINFChannelID extracts the channel ID side effect carried by
// INF/DIS, INF/NGT, INF/NBE, and INF/MSB words (bits 7-4).
func fieldsINFChannelID(w uint16) (channelID uint8) {
	return uint8((w >> 4) & 0xF)
}

// fieldsINFEpoch extracts the low 8 bits of epoch count carried by INF/SYN.
func fieldsINFEpoch(w uint16) (epochCount uint16) {
	return w & 0xFF
}

// fieldsRDA extracts the 12-bit first payload word.
func fieldsRDA(w uint16) (payload uint16) {
	return w & 0x0FFF
}

// fieldsCON extracts the 15-bit continuation payload word.
func fieldsCON(w uint16) (payload uint16) {
	return w & 0x7FFF
}
