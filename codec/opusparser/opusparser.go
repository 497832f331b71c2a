package opusparser

import (
	"errors"
	"time"
)

// CodecData describes an Opus track. Opus always decodes at 48 kHz.
type CodecData struct {
	Channels int
}

func NewCodecData(channels int) *CodecData {
	return &CodecData{Channels: channels}
}

func (d CodecData) SampleRate() int {
	return 48000
}

func (d CodecData) PacketDuration(pkt []byte) (time.Duration, error) {
	return PacketDuration(pkt)
}

var (
	ErrEmptyPacket   = errors.New("opusparser: empty opus packet")
	ErrInvalidPacket = errors.New("opusparser: invalid opus packet")
)

// PacketDuration returns the playback duration of one Opus packet from its
// TOC byte and frame count code.
func PacketDuration(pkt []byte) (time.Duration, error) {
	if len(pkt) < 1 {
		return 0, ErrEmptyPacket
	}
	toc := pkt[0]
	config := toc >> 3
	code := toc & 0x3
	numFr := 0
	switch code {
	case 0:
		// one frame
		if len(pkt) > 1 {
			numFr = 1
		}
	case 1, 2:
		// two frames
		if len(pkt) > 2 {
			numFr = 2
		}
	case 3:
		// N frames
		if len(pkt) < 2 {
			return 0, ErrInvalidPacket
		}
		numFr = int(pkt[1] & 0x3f)
	}
	return time.Duration(numFr) * opusFrameTimes[config], nil
}

var opusFrameTimes = []time.Duration{
	// SILK NB
	10 * time.Millisecond,
	20 * time.Millisecond,
	40 * time.Millisecond,
	60 * time.Millisecond,
	// SILK MB
	10 * time.Millisecond,
	20 * time.Millisecond,
	40 * time.Millisecond,
	60 * time.Millisecond,
	// SILK WB
	10 * time.Millisecond,
	20 * time.Millisecond,
	40 * time.Millisecond,
	60 * time.Millisecond,
	// Hybrid SWB
	10 * time.Millisecond,
	20 * time.Millisecond,
	// Hybrid FB
	10 * time.Millisecond,
	20 * time.Millisecond,
	// CELT NB
	2500 * time.Microsecond,
	5 * time.Millisecond,
	10 * time.Millisecond,
	20 * time.Millisecond,
	// CELT WB
	2500 * time.Microsecond,
	5 * time.Millisecond,
	10 * time.Millisecond,
	20 * time.Millisecond,
	// CELT SWB
	2500 * time.Microsecond,
	5 * time.Millisecond,
	10 * time.Millisecond,
	20 * time.Millisecond,
	// CELT FB
	2500 * time.Microsecond,
	5 * time.Millisecond,
	10 * time.Millisecond,
	20 * time.Millisecond,
}
