package timescale

import (
	"math/bits"
	"time"
)

// DefaultTimecodeScale is the Matroska default of one millisecond per tick.
const DefaultTimecodeScale = uint64(time.Millisecond)

// ToScale converts a decode time from time.Duration to a specified timescale
func ToScale(t time.Duration, scale uint32) uint64 {
	hi, lo := bits.Mul64(uint64(t), uint64(scale))
	dts, rem := bits.Div64(hi, lo, uint64(time.Second))
	if rem >= uint64(time.Second/2) {
		// round up
		dts++
	}
	return dts
}

// FromTimecode converts Matroska timecode ticks to a time.Duration,
// given the segment TimecodeScale in nanoseconds per tick.
// A zero scale means DefaultTimecodeScale.
func FromTimecode(ticks int64, scaleNs uint64) time.Duration {
	if scaleNs == 0 {
		scaleNs = DefaultTimecodeScale
	}
	return time.Duration(ticks) * time.Duration(scaleNs)
}
