package webrtc

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/pion/webrtc/v3"
	"github.com/pion/webrtc/v3/pkg/media"

	"github.com/deepch/mkv/av"
	"github.com/deepch/mkv/codec/opusparser"
)

var (
	ErrorNotFound          = errors.New("WebRTC Stream Not Found")
	ErrorCodecNotSupported = errors.New("WebRTC Codec Not Supported")
	ErrorClientOffline     = errors.New("WebRTC Client Offline")
	ErrorNotTrackAvailable = errors.New("WebRTC Not Track Available")
	ErrorIgnoreAudioTrack  = errors.New("WebRTC Ignore Audio Track codec not supported WebRTC")
	ErrorBadAVCC           = errors.New("WebRTC Bad AVCC Payload")
)

// sampleWriter is satisfied by *webrtc.TrackLocalStaticSample.
type sampleWriter interface {
	WriteSample(s media.Sample) error
}

// opusChannels is the channel count WebRTC always signals for Opus.
const opusChannels = 2

type Muxer struct {
	streams map[int8]*Stream

	// mu guards status, stop and pc, which pion callbacks and WaitCloser
	// change from their own goroutines.
	mu        sync.Mutex
	status    webrtc.ICEConnectionState
	stop      bool
	pc        *webrtc.PeerConnection
	ClientACK *time.Timer
	StreamACK *time.Timer
}

type Stream struct {
	codec av.CodecType
	ts    time.Duration
	track sampleWriter
	opus  *opusparser.CodecData
}

func newStream(codec av.CodecType, track sampleWriter) *Stream {
	stream := &Stream{codec: codec, track: track}
	if codec == av.OPUS {
		stream.opus = opusparser.NewCodecData(opusChannels)
	}
	return stream
}

func NewMuxer() *Muxer {
	tmp := Muxer{ClientACK: time.NewTimer(time.Second * 20), StreamACK: time.NewTimer(time.Second * 20), streams: make(map[int8]*Stream)}
	go tmp.WaitCloser()
	return &tmp
}

// MimeType returns the WebRTC mime type for a codec, or "" when WebRTC
// cannot carry it.
func MimeType(codec av.CodecType) string {
	switch codec {
	case av.H264:
		return webrtc.MimeTypeH264
	case av.VP8:
		return webrtc.MimeTypeVP8
	case av.VP9:
		return webrtc.MimeTypeVP9
	case av.AV1:
		return webrtc.MimeTypeAV1
	case av.OPUS:
		return webrtc.MimeTypeOpus
	case av.PCM_MULAW:
		return webrtc.MimeTypePCMU
	case av.PCM_ALAW:
		return webrtc.MimeTypePCMA
	}
	return ""
}

// codecCapability describes codec for a local track. ok is false when
// WebRTC cannot carry the codec.
func codecCapability(codec av.CodecType) (capability webrtc.RTPCodecCapability, ok bool) {
	if capability.MimeType = MimeType(codec); capability.MimeType == "" {
		return
	}
	switch codec {
	case av.OPUS:
		cd := opusparser.NewCodecData(opusChannels)
		capability.ClockRate = uint32(cd.SampleRate())
		capability.Channels = uint16(cd.Channels)
	case av.PCM_MULAW, av.PCM_ALAW:
		capability.ClockRate = 8000
	default:
		capability.ClockRate = 90000
	}
	return capability, true
}

func (element *Muxer) setStatus(status webrtc.ICEConnectionState) {
	element.mu.Lock()
	element.status = status
	element.mu.Unlock()
}

// state returns the ICE connection state and whether the muxer is closed.
func (element *Muxer) state() (webrtc.ICEConnectionState, bool) {
	element.mu.Lock()
	defer element.mu.Unlock()
	return element.status, element.stop
}

// WriteHeader negotiates a peer connection from a base64 SDP offer and
// returns the base64 answer. streams is indexed like av.Packet.Idx.
func (element *Muxer) WriteHeader(streams []av.CodecType, sdp64 string) (string, error) {
	var WriteHeaderSuccess bool
	if len(streams) == 0 {
		return "", ErrorNotFound
	}
	sdpB, err := base64.StdEncoding.DecodeString(sdp64)
	if err != nil {
		return "", err
	}
	offer := webrtc.SessionDescription{
		Type: webrtc.SDPTypeOffer,
		SDP:  string(sdpB),
	}
	peerConnection, err := webrtc.NewPeerConnection(webrtc.Configuration{})
	if err != nil {
		return "", err
	}
	defer func() {
		if !WriteHeaderSuccess {
			err = element.Close()
			if err != nil {
				log.Println(err)
			}
		}
	}()
	for i, codec := range streams {
		capability, ok := codecCapability(codec)
		if !ok {
			if codec.IsAudio() {
				log.Println(ErrorIgnoreAudioTrack, codec)
			} else {
				log.Println(ErrorCodecNotSupported, codec)
			}
			continue
		}
		kind := "video"
		if codec.IsAudio() {
			kind = "audio"
		}
		track, err := webrtc.NewTrackLocalStaticSample(capability, "mkv-"+kind, "mkv-"+kind)
		if err != nil {
			return "", err
		}
		if _, err = peerConnection.AddTrack(track); err != nil {
			return "", err
		}
		element.streams[int8(i)] = newStream(codec, track)
	}
	if len(element.streams) == 0 {
		return "", ErrorNotTrackAvailable
	}
	peerConnection.OnICEConnectionStateChange(func(connectionState webrtc.ICEConnectionState) {
		element.setStatus(connectionState)
		if connectionState == webrtc.ICEConnectionStateDisconnected {
			element.Close()
		}
	})
	peerConnection.OnDataChannel(func(d *webrtc.DataChannel) {
		d.OnMessage(func(msg webrtc.DataChannelMessage) {
			element.ClientACK.Reset(5 * time.Second)
		})
	})

	if err = peerConnection.SetRemoteDescription(offer); err != nil {
		return "", err
	}
	gatherCompletePromise := webrtc.GatheringCompletePromise(peerConnection)
	answer, err := peerConnection.CreateAnswer(nil)
	if err != nil {
		return "", err
	}
	if err = peerConnection.SetLocalDescription(answer); err != nil {
		return "", err
	}
	element.mu.Lock()
	element.pc = peerConnection
	element.mu.Unlock()
	waitT := time.NewTimer(time.Second * 10)
	select {
	case <-waitT.C:
		return "", errors.New("gatherCompletePromise wait")
	case <-gatherCompletePromise:
		//Connected
	}
	resp := peerConnection.LocalDescription()
	WriteHeaderSuccess = true
	return base64.StdEncoding.EncodeToString([]byte(resp.SDP)), nil
}

// WritePacket sends pkt on the track negotiated for pkt.Idx. Packets for
// streams without a track are dropped silently.
func (element *Muxer) WritePacket(pkt av.Packet) (err error) {
	var WritePacketSuccess bool
	defer func() {
		if !WritePacketSuccess {
			element.Close()
		}
	}()
	status, stopped := element.state()
	if stopped {
		return ErrorClientOffline
	}
	if status != webrtc.ICEConnectionStateConnected {
		WritePacketSuccess = true
		return nil
	}
	tmp, ok := element.streams[pkt.Idx]
	if !ok {
		WritePacketSuccess = true
		return nil
	}
	element.StreamACK.Reset(10 * time.Second)
	if tmp.ts == 0 {
		tmp.ts = pkt.Time
	}
	data := pkt.Data
	dur := pkt.Duration
	switch tmp.codec {
	case av.H264:
		if data, err = avccToAnnexB(pkt.Data); err != nil {
			return err
		}
	case av.OPUS:
		if d, derr := tmp.opus.PacketDuration(pkt.Data); derr == nil && d > 0 {
			dur = d
		}
	case av.VP8, av.VP9, av.AV1, av.PCM_MULAW, av.PCM_ALAW:
	default:
		return ErrorCodecNotSupported
	}
	if dur == 0 {
		dur = pkt.Time - tmp.ts
	}
	err = tmp.track.WriteSample(media.Sample{Data: data, Duration: dur})
	if err == nil {
		tmp.ts = pkt.Time
		WritePacketSuccess = true
	}
	return err
}

// avccToAnnexB rewrites 4 byte NALU length prefixes, as stored in
// Matroska V_MPEG4/ISO/AVC blocks, into start codes.
func avccToAnnexB(b []byte) ([]byte, error) {
	out := make([]byte, 0, len(b)+4)
	for len(b) > 0 {
		if len(b) < 4 {
			return nil, ErrorBadAVCC
		}
		n := int(binary.BigEndian.Uint32(b))
		b = b[4:]
		if n > len(b) {
			return nil, ErrorBadAVCC
		}
		out = append(out, 0, 0, 0, 1)
		out = append(out, b[:n]...)
		b = b[n:]
	}
	return out, nil
}

func (element *Muxer) WaitCloser() {
	waitT := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-waitT.C:
			if _, stopped := element.state(); stopped {
				return
			}
			waitT.Reset(time.Second * 10)
		case <-element.StreamACK.C:
			element.Close()
		case <-element.ClientACK.C:
			element.Close()
		}
	}
}

func (element *Muxer) Close() error {
	element.mu.Lock()
	element.stop = true
	pc := element.pc
	element.mu.Unlock()
	if pc != nil {
		err := pc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
