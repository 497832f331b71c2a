package mkv

import (
	"errors"
	"io"

	"github.com/deepch/mkv/av"
	"github.com/deepch/mkv/format/mkv/mkvio"
	"github.com/deepch/mkv/metrics"
	"github.com/deepch/mkv/utils/timescale"
)

var ErrNoCluster = errors.New("mkv: no cluster fed")

// Demuxer turns cluster buffers into packets.
//
// Locating clusters inside a file is the caller's job: each Feed gets one
// buffer holding exactly one Cluster element. Packets reference the fed
// buffer and are valid until the buffer is reused.
type Demuxer struct {
	cluster *Cluster
	scale   uint64
	streams []*Stream
	open    bool
	next    int
	fed     bool
}

// NewDemuxer creates a Demuxer whose clusters hold at most maxBlocks
// simple blocks. Without AddTrack every track is demuxed.
// It returns nil if maxBlocks is negative.
func NewDemuxer(maxBlocks int) *Demuxer {
	cluster := NewCluster(maxBlocks)
	if cluster == nil {
		return nil
	}
	return &Demuxer{
		cluster: cluster,
		scale:   timescale.DefaultTimecodeScale,
		open:    true,
	}
}

// SetTimecodeScale sets the segment TimecodeScale in nanoseconds per tick.
func (self *Demuxer) SetTimecodeScale(ns uint64) {
	self.scale = ns
}

// AddTrack restricts demuxing to the added tracks and returns the packet
// index assigned to track.
func (self *Demuxer) AddTrack(track uint64, codec av.CodecType) int8 {
	self.open = false
	if stream := self.stream(track); stream != nil {
		stream.Codec = codec
		return stream.idx
	}
	return self.addStream(track, codec).idx
}

func (self *Demuxer) addStream(track uint64, codec av.CodecType) *Stream {
	stream := &Stream{
		Track: track,
		Codec: codec,
		idx:   int8(len(self.streams)),
	}
	self.streams = append(self.streams, stream)
	return stream
}

func (self *Demuxer) stream(track uint64) *Stream {
	for _, stream := range self.streams {
		if stream.Track == track {
			return stream
		}
	}
	return nil
}

// Streams returns the known streams in index order.
func (self *Demuxer) Streams() []*Stream {
	return self.streams
}

// Cluster returns the last fed cluster.
func (self *Demuxer) Cluster() *Cluster {
	return self.cluster
}

// Feed parses one Cluster element. A failed Feed leaves no packets to read.
func (self *Demuxer) Feed(b []byte) (err error) {
	self.cluster.Reset()
	self.next = 0
	self.fed = true

	c := mkvio.NewCursor(b)
	if err = self.cluster.Parse(&c); err != nil {
		self.cluster.Reset()
		metrics.ObserveDecodeError(err)
		return
	}

	var size int
	for _, blk := range self.cluster.Blocks() {
		size += len(blk.Payload)
	}
	metrics.ObserveCluster(self.cluster.Len(), size)

	return
}

// ReadPacket returns the next packet of a selected track from the fed
// cluster, or io.EOF once the cluster is exhausted.
func (self *Demuxer) ReadPacket() (pkt av.Packet, err error) {
	if !self.fed {
		err = ErrNoCluster
		return
	}

	blocks := self.cluster.Blocks()
	for self.next < len(blocks) {
		blk := blocks[self.next]
		self.next++

		stream := self.stream(blk.Track)
		if stream == nil {
			if !self.open {
				continue
			}
			stream = self.addStream(blk.Track, 0)
		}

		ticks := int64(self.cluster.Timecode) + int64(blk.RelativeTimecode())
		t := timescale.FromTimecode(ticks, self.scale)

		pkt = av.Packet{
			IsKeyFrame: blk.IsKeyFrame(),
			Idx:        stream.idx,
			Track:      blk.Track,
			Time:       t,
			Duration:   stream.duration(t),
			Data:       blk.Payload,
		}
		return
	}

	err = io.EOF
	return
}
