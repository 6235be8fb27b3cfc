// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	msg "github.com/spadic10/message"
)

// snapshot captures the observable classification+field state of a Message
// for cmp-based comparisons across scenarios (e.g. the boundary-invariance
// test further down reconstructs the same message two different ways and
// diffs the snapshots).
type snapshot struct {
	Hit, HitAborted, BufferOverflow, EpochMarker, EpochOutOfSync, Info bool
	Valid, Complete                                                   bool
	GroupID, ChannelID                                                uint8
	Timestamp                                                         uint16
	NumSamples                                                        uint8
	HitType                                                           msg.HitType
	StopType                                                          msg.StopType
	OverflowCount                                                     uint8
	EpochCount                                                        uint16
	InfoType                                                          msg.InfoType
}

func snap(m *msg.Message) snapshot {
	return snapshot{
		Hit:            m.IsHit(),
		HitAborted:     m.IsHitAborted(),
		BufferOverflow: m.IsBufferOverflow(),
		EpochMarker:    m.IsEpochMarker(),
		EpochOutOfSync: m.IsEpochOutOfSync(),
		Info:           m.IsInfo(),
		Valid:          m.IsValid(),
		Complete:       m.IsComplete(),
		GroupID:        m.GroupID(),
		ChannelID:      m.ChannelID(),
		Timestamp:      m.Timestamp(),
		NumSamples:     m.NumSamples(),
		HitType:        m.HitType(),
		StopType:       m.StopType(),
		OverflowCount:  m.BufferOverflowCount(),
		EpochCount:     m.EpochCount(),
		InfoType:       m.InfoType(),
	}
}

// A single self-contained hit message.
func TestReadFrom_SingleHit(t *testing.T) {
	words := []uint16{0x8012, 0x9666, 0xA008, 0x0403, 0x0100, 0x5030, 0x0E00, 0xB1D0}
	m := msg.NewMessage()

	n := m.ReadFrom(words)
	require.Equal(t, len(words), n)

	assert.True(t, m.IsHit())
	assert.True(t, m.IsComplete())
	assert.True(t, m.IsValid())
	assert.Equal(t, uint8(1), m.GroupID())
	assert.Equal(t, uint8(2), m.ChannelID())
	assert.Equal(t, uint16(0x666), m.Timestamp())
	assert.Equal(t, uint8(7), m.NumSamples())
	assert.Equal(t, msg.HitType(1), m.HitType())
	assert.Equal(t, msg.StopType(0), m.StopType())
}

// Scenario 2: missing raw data still classifies as a hit; fewer samples may
// come back than NumSamples claims.
func TestReadFrom_MissingRawData(t *testing.T) {
	words := []uint16{0x8012, 0x9666, 0xA008, 0x0100, 0x5030, 0x0E00, 0xB1D0} // 0x0403 removed
	m := msg.NewMessage()

	n := m.ReadFrom(words)
	require.Equal(t, len(words), n)

	assert.True(t, m.IsHit())
	assert.Equal(t, uint8(7), m.NumSamples())
	assert.LessOrEqual(t, len(m.Samples()), int(m.NumSamples()))
}

// Scenario 3: a buffer boundary falling inside a message does not change
// the result, compared field-by-field against the unsplit decode.
func TestReadFrom_BufferBoundaryInMiddleOfMessage(t *testing.T) {
	words := []uint16{0x8012, 0x9666, 0xA008, 0x0403, 0x0100, 0x5030, 0x0E00, 0xB1D0}

	whole := msg.NewMessage()
	whole.ReadFrom(words)

	r := msg.NewReader()
	r.AddBuffer(words[:4])
	r.AddBuffer(words[4:])

	got, ok := r.GetMessage()
	require.True(t, ok)

	if diff := cmp.Diff(snap(whole), snap(got)); diff != "" {
		t.Fatalf("split decode differs from whole decode (-whole +split):\n%s", diff)
	}

	_, ok = r.GetMessage()
	assert.False(t, ok)
	assert.True(t, r.IsEmpty())
}

// Scenario 4: a stray end-of-message word on a fresh reader yields a
// complete-but-not-valid message.
func TestReadFrom_StrayEndOfMessage(t *testing.T) {
	m := msg.NewMessage()
	n := m.ReadFrom([]uint16{0xB000})
	require.Equal(t, 1, n)
	assert.True(t, m.IsComplete())
	assert.False(t, m.IsValid())
}

// Scenario 5: epoch marker.
func TestReadFrom_EpochMarker(t *testing.T) {
	m := msg.NewMessage()
	n := m.ReadFrom([]uint16{0x8010, 0xD123})
	require.Equal(t, 2, n)
	assert.True(t, m.IsEpochMarker())
	assert.Equal(t, uint8(1), m.GroupID())
	assert.Equal(t, uint8(0), m.ChannelID())
	assert.Equal(t, uint16(0x123), m.EpochCount())
}

// Scenario 6: a lone info word is itself a complete message.
func TestReadFrom_LoneInfoWord(t *testing.T) {
	m := msg.NewMessage()
	n := m.ReadFrom([]uint16{0xF100})
	require.Equal(t, 1, n)
	assert.True(t, m.IsInfo())
	assert.Equal(t, msg.InfoType(1), m.InfoType())
}

// Scenario 7: a leading NOP is silently dropped.
func TestReadFrom_IgnoredNop(t *testing.T) {
	m := msg.NewMessage()
	n := m.ReadFrom([]uint16{0xF500, 0x8010, 0xD123})
	require.Equal(t, 3, n)
	assert.True(t, m.IsEpochMarker())
}

// Reset law: after a start-of-message word, the validity bitmap contains
// exactly that kind's bit, and no field set by an earlier unterminated
// message is observable.
func TestReadFrom_ResetLaw(t *testing.T) {
	m := msg.NewMessage()
	m.ReadFrom([]uint16{0x8012, 0x9666, 0xA008}) // partial hit, no EOM yet
	require.False(t, m.IsComplete())

	n := m.ReadFrom([]uint16{0x8034}) // new SOM: discards the old partial message
	require.Equal(t, 1, n)

	assert.False(t, m.IsComplete())
	assert.Equal(t, uint8(3), m.GroupID())
	assert.Equal(t, uint8(4), m.ChannelID())
	assert.Equal(t, uint16(0), m.Timestamp(), "TSW from the discarded message must not survive a reset")
}

// An end word with no prior start yields complete-but-not-valid.
func TestReadFrom_CaseC_EndWithoutStart(t *testing.T) {
	m := msg.NewMessage()
	m.ReadFrom([]uint16{0xA008}) // RDA with no SOM
	n := m.ReadFrom([]uint16{0xB1D0})
	require.Equal(t, 1, n)
	assert.True(t, m.IsComplete())
	assert.False(t, m.IsValid())
}

func TestReset_ClearsEverything(t *testing.T) {
	m := msg.NewMessage()
	m.ReadFrom([]uint16{0x8012, 0x9666, 0xA008, 0xB1D0})
	m.Samples() // force the cache to populate
	m.Reset()

	assert.False(t, m.IsComplete())
	assert.False(t, m.IsValid())
	assert.Equal(t, uint8(0), m.GroupID())
	assert.Nil(t, m.Samples())
}

func TestAccessors_Idempotent(t *testing.T) {
	m := msg.NewMessage()
	m.ReadFrom([]uint16{0x8012, 0x9666, 0xA008, 0x0403, 0xB1D0})

	first := m.Samples()
	second := m.Samples()
	assert.Equal(t, len(first), len(second))
	if len(first) > 0 {
		// Same backing storage: mutate through one view, observe via the
		// other.
		first[0] = 42
		assert.Equal(t, int16(42), second[0])
	}

	assert.Equal(t, m.GroupID(), m.GroupID())
	assert.Equal(t, m.IsHit(), m.IsHit())
}

// Nil receivers must tolerate every accessor and predicate without panicking.
func TestNilMessage_Tolerant(t *testing.T) {
	var m *msg.Message
	assert.NotPanics(t, func() {
		m.Reset()
		_ = m.ReadFrom([]uint16{0x8000})
		assert.False(t, m.IsValid())
		assert.False(t, m.IsComplete())
		assert.Equal(t, uint8(0), m.GroupID())
		assert.Nil(t, m.Samples())
		assert.False(t, m.RawOverflowed())
	})
}

// More than rawBufCap (20) continuation words: the overflow is tracked but
// never surfaces as an error, and EOM's NumSamples remains authoritative.
func TestReadFrom_RawBufferOverflow(t *testing.T) {
	words := []uint16{0x8012, 0x9666, 0xA000}
	for i := 0; i < 25; i++ {
		words = append(words, 0x0001) // CON
	}
	words = append(words, 0xB1D0)

	m := msg.NewMessage()
	m.ReadFrom(words)

	assert.True(t, m.IsHit())
	assert.True(t, m.RawOverflowed())
	assert.Equal(t, uint8(7), m.NumSamples())
}
