package mkv

import (
	"time"

	"github.com/deepch/mkv/av"
)

type Stream struct {
	Track uint64
	Codec av.CodecType

	idx int8

	started bool
	last    time.Duration
}

// Idx is the stream index carried by packets of this stream.
func (self *Stream) Idx() int8 {
	return self.idx
}

// duration returns the time elapsed since the previous packet of the
// stream, or 0 for the first packet and for out of order timestamps.
func (self *Stream) duration(t time.Duration) (dur time.Duration) {
	if self.started && t > self.last {
		dur = t - self.last
	}
	self.started = true
	self.last = t
	return
}
