// Package av defines the packet and codec types shared by demuxers and muxers.
package av

import (
	"fmt"
	"time"
)

type CodecType uint32

const avCodecTypeMagic = 233333

const (
	codecTypeAudioBit  = 0x1
	codecTypeOtherBits = 1
)

func MakeVideoCodecType(base uint32) (c CodecType) {
	c = CodecType(base) << codecTypeOtherBits
	return
}

func MakeAudioCodecType(base uint32) (c CodecType) {
	c = CodecType(base)<<codecTypeOtherBits | CodecType(codecTypeAudioBit)
	return
}

var (
	H264      = MakeVideoCodecType(avCodecTypeMagic + 1)
	H265      = MakeVideoCodecType(avCodecTypeMagic + 2)
	VP8       = MakeVideoCodecType(avCodecTypeMagic + 3)
	VP9       = MakeVideoCodecType(avCodecTypeMagic + 4)
	AV1       = MakeVideoCodecType(avCodecTypeMagic + 5)
	OPUS      = MakeAudioCodecType(avCodecTypeMagic + 1)
	PCM_MULAW = MakeAudioCodecType(avCodecTypeMagic + 2)
	PCM_ALAW  = MakeAudioCodecType(avCodecTypeMagic + 3)
	AAC       = MakeAudioCodecType(avCodecTypeMagic + 4)
)

func (self CodecType) String() string {
	switch self {
	case H264:
		return "H264"
	case H265:
		return "H265"
	case VP8:
		return "VP8"
	case VP9:
		return "VP9"
	case AV1:
		return "AV1"
	case OPUS:
		return "OPUS"
	case PCM_MULAW:
		return "PCM_MULAW"
	case PCM_ALAW:
		return "PCM_ALAW"
	case AAC:
		return "AAC"
	}
	return fmt.Sprintf("CodecType(%d)", uint32(self))
}

func (self CodecType) IsAudio() bool {
	return self&codecTypeAudioBit != 0
}

func (self CodecType) IsVideo() bool {
	return self&codecTypeAudioBit == 0
}

// CodecTypeFromMatroska maps a Matroska CodecID string to a CodecType.
func CodecTypeFromMatroska(codecID string) (CodecType, bool) {
	switch codecID {
	case "V_MPEG4/ISO/AVC":
		return H264, true
	case "V_MPEGH/ISO/HEVC":
		return H265, true
	case "V_VP8":
		return VP8, true
	case "V_VP9":
		return VP9, true
	case "V_AV1":
		return AV1, true
	case "A_OPUS":
		return OPUS, true
	case "A_AAC":
		return AAC, true
	}
	return 0, false
}

// Packet stores one compressed frame.
type Packet struct {
	IsKeyFrame bool          // video packet is key frame
	Idx        int8          // stream index in container format
	Track      uint64        // Matroska track number the packet came from
	Time       time.Duration // packet decode time
	Duration   time.Duration // packet duration
	Data       []byte        // packet data
}
