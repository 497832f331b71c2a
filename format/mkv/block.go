package mkv

// Lacing is the lacing mode stored in SimpleBlock flag bits 1-2.
type Lacing uint8

const (
	LacingNone  Lacing = 0
	LacingXiph  Lacing = 1
	LacingFixed Lacing = 2
	LacingEBML  Lacing = 3
)

const (
	flagKeyFrame    = 0x80
	flagInvisible   = 0x08
	flagLacing      = 0x06
	flagDiscardable = 0x01
)

func (self SimpleBlock) IsKeyFrame() bool {
	return self.Flags&flagKeyFrame != 0
}

func (self SimpleBlock) Invisible() bool {
	return self.Flags&flagInvisible != 0
}

func (self SimpleBlock) Discardable() bool {
	return self.Flags&flagDiscardable != 0
}

func (self SimpleBlock) Lacing() Lacing {
	return Lacing((self.Flags & flagLacing) >> 1)
}

// RelativeTimecode is the block timecode as the signed offset from the
// Cluster timecode it is stored as.
func (self SimpleBlock) RelativeTimecode() int16 {
	return int16(self.Timecode)
}
