// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

import "github.com/spadic10/message/internal/river"

// rawBufCap bounds the number of raw payload words (RDA + CON) captured per
// message. Additional CON words beyond this bound are silently discarded;
// EOM still carries the authoritative sample count.
const rawBufCap = 20

// Message is a single decoded SPADIC word stream entity: a hit, a buffer
// overflow notification, an epoch marker, or a diagnostic info message.
// It is allocated empty and filled incrementally by ReadFrom, possibly
// across many calls and many input buffers (see Reader). A Message is not
// safe for concurrent access while it is being filled; once delivered by a
// Reader and no longer touched by this package, its read-only accessors may
// be called concurrently (Samples() mutates a cache on first call — force
// it once, or synchronize externally, before sharing across goroutines).
type Message struct {
	groupID       uint8
	channelID     uint8
	timestamp     uint16
	numSamples    uint8
	hitType       HitType
	stopType      StopType
	overflowCount uint8
	epochCount    uint16
	infoType      InfoType
	valid         uint8

	raw        [rawBufCap]river.Entry
	rawLen     int
	rawDropped bool

	samples      []int16
	samplesReady bool
}

// NewMessage allocates an empty message, ready for ReadFrom.
func NewMessage() *Message {
	return &Message{}
}

// Reset returns m to its initial empty state: valid bitmap cleared, raw
// payload and cached samples discarded. Nothing is done if m is nil.
func (m *Message) Reset() {
	if m == nil {
		return
	}
	*m = Message{}
}

// ReadFrom consumes words from buf in order, filling m, and returns the
// number of words consumed.
//
// Words are consumed until either an end-of-message word is seen (n <=
// len(buf)) or the buffer is exhausted (n == len(buf)); IsComplete
// distinguishes the two cases when n == len(buf). A word that starts a new
// message (SOM, or a self-contained INF/NGT, INF/NRT, INF/NBE) resets m
// first, discarding any partial message in progress — the last
// start-of-message in the consumed run wins. INF/NOP words are silently
// skipped. Nothing is done, and 0 is returned, if m is nil.
//
// Four termination shapes are possible:
//
//	xxx(....)   start then end            -> complete message
//	xxx(..|     start, buffer ends first  -> partial message preserved
//	........)   end without a prior start -> complete but not valid
//	......|     neither                   -> partial/empty message
func (m *Message) ReadFrom(buf []uint16) (n int) {
	if m == nil {
		return 0
	}
	for n < len(buf) {
		w := buf[n]
		n++
		if isIgnore(w) {
			continue
		}
		if isStart(w) {
			m.Reset()
		}
		m.fill(w)
		if isEnd(w) {
			return n
		}
	}
	return n
}

func (m *Message) fill(w uint16) {
	kind, _ := classify(w)
	switch kind {
	case KindSOM:
		m.groupID, m.channelID = fieldsSOM(w)
	case KindTSW:
		m.timestamp = fieldsTSW(w)
	case KindRDA:
		m.appendRaw(fieldsRDA(w), 12)
	case KindEOM:
		m.numSamples, m.hitType, m.stopType = fieldsEOM(w)
	case KindBOM:
		m.overflowCount = fieldsBOM(w)
	case KindEPM:
		m.epochCount = fieldsEPM(w)
	case KindEXD:
		// Reserved, not decoded in SPADIC 1.0.
	case KindINF:
		m.infoType = fieldsINF(w)
		switch m.infoType {
		case InfoChannelDisabled, InfoNextGrantTimeout, InfoNewGrantEmpty, InfoBuilderCorrupt:
			m.channelID = fieldsINFChannelID(w)
		case InfoEpochOutOfSync:
			m.epochCount = fieldsINFEpoch(w)
		}
	case KindCON:
		m.appendRaw(fieldsCON(w), 15)
	}
	m.valid |= kind.validBit()
}

func (m *Message) appendRaw(val uint16, width uint8) {
	if m.rawLen >= rawBufCap {
		m.rawDropped = true
		return
	}
	m.raw[m.rawLen] = river.Entry{Val: val, Width: width}
	m.rawLen++
	m.samplesReady = false
	m.samples = nil
}

// IsHit reports whether m is a regular hit message: group ID, channel ID,
// timestamp, sample count, hit type, and stop type are all available.
func (m *Message) IsHit() bool {
	if m == nil {
		return false
	}
	return m.valid == bitSOM|bitTSW|bitRDA|bitEOM
}

// IsHitAborted reports whether m is an aborted hit: channel ID and an info
// type of InfoChannelDisabled or InfoBuilderCorrupt are available.
func (m *Message) IsHitAborted() bool {
	if m == nil {
		return false
	}
	return m.valid == bitINF && (m.infoType == InfoChannelDisabled || m.infoType == InfoBuilderCorrupt)
}

// IsBufferOverflow reports whether m notifies of hits lost in the source
// FIFO: group ID, channel ID, timestamp, and a lost-hit count are available.
func (m *Message) IsBufferOverflow() bool {
	if m == nil {
		return false
	}
	return m.valid == bitSOM|bitTSW|bitBOM
}

// IsEpochMarker reports whether m is a timekeeping synchronization record:
// group ID and epoch count are available.
func (m *Message) IsEpochMarker() bool {
	if m == nil {
		return false
	}
	return m.valid == bitSOM|bitEPM
}

// IsEpochOutOfSync reports whether m is an epoch marker whose source
// reported loss of synchronization (INF/SYN in place of EPM).
func (m *Message) IsEpochOutOfSync() bool {
	if m == nil {
		return false
	}
	return m.valid == bitSOM|bitINF && m.infoType == InfoEpochOutOfSync
}

// IsInfo reports whether m is a diagnostic record about the readout state
// machine (timeout, empty grant).
func (m *Message) IsInfo() bool {
	if m == nil {
		return false
	}
	return m.valid == bitINF &&
		(m.infoType == InfoNextGrantTimeout || m.infoType == InfoNextReqTimeout || m.infoType == InfoNewGrantEmpty)
}

// IsValid reports whether m matches exactly one of the six recognized
// message shapes. IsValid implies IsComplete; the converse does not hold.
func (m *Message) IsValid() bool {
	if m == nil {
		return false
	}
	return m.IsHit() || m.IsHitAborted() || m.IsBufferOverflow() ||
		m.IsEpochMarker() || m.IsEpochOutOfSync() || m.IsInfo()
}

// IsComplete reports whether an end-of-message word (EOM, BOM, EPM, or INF)
// has been observed. A complete message that is not valid indicates a
// structural error in the input stream; it is not treated as a fault.
func (m *Message) IsComplete() bool {
	if m == nil {
		return false
	}
	return m.valid&(bitEOM|bitBOM|bitEPM|bitINF) != 0
}

// GroupID returns the group ID, set by SOM, if available.
func (m *Message) GroupID() uint8 {
	if m == nil {
		return 0
	}
	return m.groupID
}

// ChannelID returns the channel ID, set by SOM or certain INF sub-types,
// if available.
func (m *Message) ChannelID() uint8 {
	if m == nil {
		return 0
	}
	return m.channelID
}

// Timestamp returns the 12-bit timestamp, set by TSW, if available.
func (m *Message) Timestamp() uint16 {
	if m == nil {
		return 0
	}
	return m.timestamp
}

// NumSamples returns the authoritative sample count, set by EOM.
func (m *Message) NumSamples() uint8 {
	if m == nil {
		return 0
	}
	return m.numSamples
}

// HitType returns the 2-bit hit type, set by EOM.
func (m *Message) HitType() HitType {
	if m == nil {
		return 0
	}
	return m.hitType
}

// StopType returns the 3-bit stop type, set by EOM.
func (m *Message) StopType() StopType {
	if m == nil {
		return 0
	}
	return m.stopType
}

// BufferOverflowCount returns the count of hits lost in the source FIFO,
// set by BOM.
func (m *Message) BufferOverflowCount() uint8 {
	if m == nil {
		return 0
	}
	return m.overflowCount
}

// EpochCount returns the epoch count, set by EPM (12 bits) or by INF/SYN
// (low 8 bits).
func (m *Message) EpochCount() uint16 {
	if m == nil {
		return 0
	}
	return m.epochCount
}

// InfoType returns the 4-bit info sub-type, set by INF.
func (m *Message) InfoType() InfoType {
	if m == nil {
		return 0
	}
	return m.infoType
}

// RawOverflowed reports whether more continuation words arrived for this
// message than the raw payload buffer can hold (rawBufCap). The excess
// words were discarded; EOM's NumSamples remains authoritative regardless.
func (m *Message) RawOverflowed() bool {
	if m == nil {
		return false
	}
	return m.rawDropped
}

// Samples unpacks and returns the decoded signed 9-bit sample payload,
// capped at NumSamples. Unpacking is lazy: the first call performs the
// bit-river expansion (internal/river) and caches the result for the
// lifetime of m; repeated calls return the same backing slice.
func (m *Message) Samples() []int16 {
	if m == nil {
		return nil
	}
	if !m.samplesReady {
		m.samples = river.Unpack(m.raw[:m.rawLen], int(m.numSamples))
		m.samplesReady = true
	}
	return m.samples
}
