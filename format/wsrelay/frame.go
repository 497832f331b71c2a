package wsrelay

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/deepch/mkv/av"
	"github.com/deepch/mkv/utils/timescale"
)

// Binary frame layout, big endian:
//
//	[0]      stream index
//	[1]      flags, bit 0 set for key frames
//	[2:10]   decode time in 90 kHz units
//	[10:14]  duration in 90 kHz units
//	[14:]    payload
const (
	frameHeaderSize = 14
	frameKeyFrame   = 0x01

	// ClockRate is the timescale of frame timestamps.
	ClockRate = 90000
)

var ErrShortFrame = errors.New("wsrelay: frame shorter than header")

func EncodeFrame(pkt av.Packet) []byte {
	b := make([]byte, frameHeaderSize+len(pkt.Data))
	b[0] = byte(pkt.Idx)
	if pkt.IsKeyFrame {
		b[1] |= frameKeyFrame
	}
	var t uint64
	if pkt.Time > 0 {
		t = timescale.ToScale(pkt.Time, ClockRate)
	}
	binary.BigEndian.PutUint64(b[2:10], t)
	var d uint64
	if pkt.Duration > 0 {
		d = timescale.ToScale(pkt.Duration, ClockRate)
	}
	binary.BigEndian.PutUint32(b[10:14], uint32(d))
	copy(b[frameHeaderSize:], pkt.Data)
	return b
}

// DecodeFrame is the client side inverse of EncodeFrame. Times come back
// rounded to the 90 kHz clock; Data aliases b.
func DecodeFrame(b []byte) (pkt av.Packet, err error) {
	if len(b) < frameHeaderSize {
		err = ErrShortFrame
		return
	}
	pkt.Idx = int8(b[0])
	pkt.IsKeyFrame = b[1]&frameKeyFrame != 0
	pkt.Time = ticks(binary.BigEndian.Uint64(b[2:10]))
	pkt.Duration = ticks(uint64(binary.BigEndian.Uint32(b[10:14])))
	pkt.Data = b[frameHeaderSize:]
	return
}

func ticks(v uint64) time.Duration {
	return time.Duration(v) * time.Second / ClockRate
}
