package webrtc

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pion/webrtc/v3"
	"github.com/pion/webrtc/v3/pkg/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepch/mkv/av"
)

type fakeTrack struct {
	samples []media.Sample
	err     error
}

func (f *fakeTrack) WriteSample(s media.Sample) error {
	if f.err != nil {
		return f.err
	}
	f.samples = append(f.samples, s)
	return nil
}

func connectedMuxer(codecs ...av.CodecType) (*Muxer, []*fakeTrack) {
	m := NewMuxer()
	m.setStatus(webrtc.ICEConnectionStateConnected)
	var tracks []*fakeTrack
	for i, codec := range codecs {
		track := &fakeTrack{}
		m.streams[int8(i)] = newStream(codec, track)
		tracks = append(tracks, track)
	}
	return m, tracks
}

func TestWritePacketVP8(t *testing.T) {
	m, tracks := connectedMuxer(av.VP8)
	defer m.Close()

	require.NoError(t, m.WritePacket(av.Packet{Idx: 0, Time: time.Second, Data: []byte{1}}))
	require.NoError(t, m.WritePacket(av.Packet{Idx: 0, Time: time.Second + 33*time.Millisecond, Data: []byte{2}}))
	require.NoError(t, m.WritePacket(av.Packet{Idx: 0, Time: 2 * time.Second, Duration: 40 * time.Millisecond, Data: []byte{3}}))

	require.Len(t, tracks[0].samples, 3)
	assert.Equal(t, []byte{1}, tracks[0].samples[0].Data)
	assert.Equal(t, time.Duration(0), tracks[0].samples[0].Duration)
	assert.Equal(t, 33*time.Millisecond, tracks[0].samples[1].Duration)
	assert.Equal(t, 40*time.Millisecond, tracks[0].samples[2].Duration)
}

func TestWritePacketOpusDuration(t *testing.T) {
	m, tracks := connectedMuxer(av.VP8, av.OPUS)
	defer m.Close()

	require.NoError(t, m.WritePacket(av.Packet{Idx: 1, Time: time.Second, Data: []byte{0xfc, 0x00}}))
	require.Len(t, tracks[1].samples, 1)
	assert.Equal(t, 20*time.Millisecond, tracks[1].samples[0].Duration)
	assert.Empty(t, tracks[0].samples)
}

func TestWritePacketH264(t *testing.T) {
	m, tracks := connectedMuxer(av.H264)
	defer m.Close()

	avcc := []byte{0, 0, 0, 2, 0x65, 0xaa, 0, 0, 0, 1, 0x06}
	require.NoError(t, m.WritePacket(av.Packet{Idx: 0, IsKeyFrame: true, Data: avcc}))
	assert.Equal(t, []byte{0, 0, 0, 1, 0x65, 0xaa, 0, 0, 0, 1, 0x06}, tracks[0].samples[0].Data)

	err := m.WritePacket(av.Packet{Idx: 0, Data: []byte{0, 0, 0, 9, 0x41}})
	assert.Equal(t, ErrorBadAVCC, err)
	_, stopped := m.state()
	assert.True(t, stopped)
}

func TestWritePacketNotConnected(t *testing.T) {
	m, tracks := connectedMuxer(av.VP8)
	defer m.Close()
	m.setStatus(webrtc.ICEConnectionStateChecking)

	require.NoError(t, m.WritePacket(av.Packet{Idx: 0, Data: []byte{1}}))
	assert.Empty(t, tracks[0].samples)
	_, stopped := m.state()
	assert.False(t, stopped)

	m.setStatus(webrtc.ICEConnectionStateConnected)
	require.NoError(t, m.WritePacket(av.Packet{Idx: 5, Data: []byte{1}}))
	assert.Empty(t, tracks[0].samples)
}

func TestWritePacketAfterClose(t *testing.T) {
	m, _ := connectedMuxer(av.VP8)
	require.NoError(t, m.Close())
	assert.Equal(t, ErrorClientOffline, m.WritePacket(av.Packet{Idx: 0}))
}

func TestWritePacketTrackError(t *testing.T) {
	m, tracks := connectedMuxer(av.VP9)
	tracks[0].err = errors.New("closed pipe")

	err := m.WritePacket(av.Packet{Idx: 0, Data: []byte{1}})
	assert.EqualError(t, err, "closed pipe")
	_, stopped := m.state()
	assert.True(t, stopped)
}

func TestWriteHeaderWithoutStreams(t *testing.T) {
	m := NewMuxer()
	defer m.Close()
	_, err := m.WriteHeader(nil, "")
	assert.Equal(t, ErrorNotFound, err)
}

func TestMimeType(t *testing.T) {
	assert.Equal(t, webrtc.MimeTypeVP9, MimeType(av.VP9))
	assert.Equal(t, webrtc.MimeTypeOpus, MimeType(av.OPUS))
	assert.Equal(t, "", MimeType(av.AAC))
}

func TestCodecCapability(t *testing.T) {
	capability, ok := codecCapability(av.OPUS)
	require.True(t, ok)
	assert.Equal(t, webrtc.MimeTypeOpus, capability.MimeType)
	assert.Equal(t, uint32(48000), capability.ClockRate)
	assert.Equal(t, uint16(2), capability.Channels)

	capability, ok = codecCapability(av.PCM_ALAW)
	require.True(t, ok)
	assert.Equal(t, uint32(8000), capability.ClockRate)

	capability, ok = codecCapability(av.VP8)
	require.True(t, ok)
	assert.Equal(t, uint32(90000), capability.ClockRate)
	assert.Equal(t, uint16(0), capability.Channels)

	_, ok = codecCapability(av.AAC)
	assert.False(t, ok)
}

func TestStateChangesDuringWrites(t *testing.T) {
	m, tracks := connectedMuxer(av.VP8)
	defer m.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			m.setStatus(webrtc.ICEConnectionStateConnected)
		}
	}()
	for i := 0; i < 100; i++ {
		require.NoError(t, m.WritePacket(av.Packet{Idx: 0, Time: time.Duration(i) * time.Millisecond, Data: []byte{1}}))
	}
	wg.Wait()

	assert.Len(t, tracks[0].samples, 100)

	go m.Close()
	assert.Eventually(t, func() bool {
		_, stopped := m.state()
		return stopped
	}, time.Second, time.Millisecond)
}
