package mkv

import (
	"github.com/deepch/mkv/format/mkv/mkvio"
)

// SimpleBlock is one SimpleBlock element of a Cluster.
// Payload points into the buffer the Cluster was parsed from.
type SimpleBlock struct {
	Track    uint64
	Timecode uint16
	Flags    uint8
	Payload  []byte
}

// Cluster holds the timecode and simple blocks of one Matroska Cluster.
//
// The block table has a fixed capacity chosen at NewCluster and never
// grows; a Cluster with more SimpleBlocks than that fails to parse.
// Blocks borrow their payload from the parsed buffer, so the buffer must
// stay unmodified while any block is in use. A Cluster whose Parse failed
// holds partial data and must be Reset or dropped.
type Cluster struct {
	Timecode uint64

	blocks []SimpleBlock
}

// NewCluster allocates a Cluster able to hold maxSimpleBlocks blocks.
// It returns nil if maxSimpleBlocks is negative.
func NewCluster(maxSimpleBlocks int) *Cluster {
	if maxSimpleBlocks < 0 {
		return nil
	}
	return &Cluster{
		blocks: make([]SimpleBlock, 0, maxSimpleBlocks),
	}
}

// Len returns the number of decoded blocks.
func (self *Cluster) Len() int {
	return len(self.blocks)
}

// Cap returns the block capacity fixed at construction.
func (self *Cluster) Cap() int {
	return cap(self.blocks)
}

// Blocks returns the decoded blocks in stream order.
func (self *Cluster) Blocks() []SimpleBlock {
	return self.blocks[:len(self.blocks):len(self.blocks)]
}

// TrackBlocks returns the blocks of one track, in stream order.
func (self *Cluster) TrackBlocks(track uint64) (blocks []SimpleBlock) {
	for _, b := range self.blocks {
		if b.Track == track {
			blocks = append(blocks, b)
		}
	}
	return
}

// Reset empties the Cluster so it can parse another buffer.
func (self *Cluster) Reset() {
	for i := range self.blocks {
		self.blocks[i] = SimpleBlock{}
	}
	self.blocks = self.blocks[:0]
	self.Timecode = 0
}

// Destroy releases the block table and every payload reference.
// The Cluster cannot hold blocks afterwards.
func (self *Cluster) Destroy() {
	self.Reset()
	self.blocks = nil
}

// appendBlock must only be called while Len() < Cap().
func (self *Cluster) appendBlock(b SimpleBlock) {
	self.blocks = append(self.blocks, b)
}

// Parse decodes the Cluster element at c. The top element must be a
// Cluster; every child must be one of Timecode, SimpleBlock, SilentTracks,
// Position, PrevSize or BlockGroup. c is left after the Cluster on
// success. On failure neither c nor the Cluster is rolled back.
func (self *Cluster) Parse(c *mkvio.Cursor) error {
	start := *c
	tag, body, err := c.ReadElement()
	if err != nil {
		return err
	}
	if tag != mkvio.ElementCluster.ID {
		return mkvio.NewDecodeError(mkvio.ErrUnexpectedTag, &start, tag)
	}

	for !body.Empty() {
		child := body
		if tag, err = body.ReadTag(); err != nil {
			return err
		}

		handler, ok := clusterHandlers[tag]
		if !ok {
			return mkvio.NewDecodeError(mkvio.ErrUnrecognizedChildTag, &child, tag)
		}
		if err = handler(self, &body); err != nil {
			return err
		}
	}

	return nil
}
