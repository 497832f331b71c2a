package mkvio

const (
	ElementTypeUnknown uint8 = 0x0
	ElementTypeMaster  uint8 = 0x1
	ElementTypeUint    uint8 = 0x2
	ElementTypeInt     uint8 = 0x3
	ElementTypeString  uint8 = 0x4
	ElementTypeUnicode uint8 = 0x5
	ElementTypeBinary  uint8 = 0x6
	ElementTypeFloat   uint8 = 0x7
	ElementTypeDate    uint8 = 0x8
)

// ElementRegister contains the ID, type and name of a Matroska element
type ElementRegister struct {
	ID   Tag
	Type uint8
	Name string
}

var (
	ElementUnknown         = ElementRegister{0x0, ElementTypeUnknown, "Unknown"}
	ElementEBML            = ElementRegister{0x1a45dfa3, ElementTypeMaster, "EBML"}
	ElementVoid            = ElementRegister{0xec, ElementTypeBinary, "Void"}
	ElementCRC32           = ElementRegister{0xbf, ElementTypeBinary, "CRC-32"}
	ElementSegment         = ElementRegister{0x18538067, ElementTypeMaster, "Segment"}
	ElementSeekHead        = ElementRegister{0x114d9b74, ElementTypeMaster, "SeekHead"}
	ElementInfo            = ElementRegister{0x1549a966, ElementTypeMaster, "Info"}
	ElementTimecodeScale   = ElementRegister{0x2ad7b1, ElementTypeUint, "TimecodeScale"}
	ElementCluster         = ElementRegister{0x1f43b675, ElementTypeMaster, "Cluster"}
	ElementTimecode        = ElementRegister{0xe7, ElementTypeUint, "Timecode"}
	ElementSilentTracks    = ElementRegister{0x5854, ElementTypeMaster, "SilentTracks"}
	ElementSilentTrackNum  = ElementRegister{0x58d7, ElementTypeUint, "SilentTrackNumber"}
	ElementPosition        = ElementRegister{0xa7, ElementTypeUint, "Position"}
	ElementPrevSize        = ElementRegister{0xab, ElementTypeUint, "PrevSize"}
	ElementSimpleBlock     = ElementRegister{0xa3, ElementTypeBinary, "SimpleBlock"}
	ElementBlockGroup      = ElementRegister{0xa0, ElementTypeMaster, "BlockGroup"}
	ElementBlock           = ElementRegister{0xa1, ElementTypeBinary, "Block"}
	ElementBlockDuration   = ElementRegister{0x9b, ElementTypeUint, "BlockDuration"}
	ElementReferenceBlock  = ElementRegister{0xfb, ElementTypeInt, "ReferenceBlock"}
	ElementDiscardPadding  = ElementRegister{0x75a2, ElementTypeInt, "DiscardPadding"}
	ElementEncryptedBlock  = ElementRegister{0xaf, ElementTypeBinary, "EncryptedBlock"}
	ElementTracks          = ElementRegister{0x1654ae6b, ElementTypeMaster, "Tracks"}
	ElementTrackEntry      = ElementRegister{0xae, ElementTypeMaster, "TrackEntry"}
	ElementTrackNumber     = ElementRegister{0xd7, ElementTypeUint, "TrackNumber"}
	ElementCodecID         = ElementRegister{0x86, ElementTypeString, "CodecID"}
	ElementCodecPrivate    = ElementRegister{0x63a2, ElementTypeBinary, "CodecPrivate"}
	ElementCues            = ElementRegister{0x1c53bb6b, ElementTypeMaster, "Cues"}
	ElementAttachments     = ElementRegister{0x1941a469, ElementTypeMaster, "Attachments"}
	ElementChapters        = ElementRegister{0x1043a770, ElementTypeMaster, "Chapters"}
	ElementTags            = ElementRegister{0x1254c367, ElementTypeMaster, "Tags"}
)

// GetElementRegister returns the infos concerning the provided element ID.
// IDs this package does not know map to ElementUnknown.
func GetElementRegister(id Tag) ElementRegister {
	switch id {
	case ElementEBML.ID:
		return ElementEBML
	case ElementVoid.ID:
		return ElementVoid
	case ElementCRC32.ID:
		return ElementCRC32
	case ElementSegment.ID:
		return ElementSegment
	case ElementSeekHead.ID:
		return ElementSeekHead
	case ElementInfo.ID:
		return ElementInfo
	case ElementTimecodeScale.ID:
		return ElementTimecodeScale
	case ElementCluster.ID:
		return ElementCluster
	case ElementTimecode.ID:
		return ElementTimecode
	case ElementSilentTracks.ID:
		return ElementSilentTracks
	case ElementSilentTrackNum.ID:
		return ElementSilentTrackNum
	case ElementPosition.ID:
		return ElementPosition
	case ElementPrevSize.ID:
		return ElementPrevSize
	case ElementSimpleBlock.ID:
		return ElementSimpleBlock
	case ElementBlockGroup.ID:
		return ElementBlockGroup
	case ElementBlock.ID:
		return ElementBlock
	case ElementBlockDuration.ID:
		return ElementBlockDuration
	case ElementReferenceBlock.ID:
		return ElementReferenceBlock
	case ElementDiscardPadding.ID:
		return ElementDiscardPadding
	case ElementEncryptedBlock.ID:
		return ElementEncryptedBlock
	case ElementTracks.ID:
		return ElementTracks
	case ElementTrackEntry.ID:
		return ElementTrackEntry
	case ElementTrackNumber.ID:
		return ElementTrackNumber
	case ElementCodecID.ID:
		return ElementCodecID
	case ElementCodecPrivate.ID:
		return ElementCodecPrivate
	case ElementCues.ID:
		return ElementCues
	case ElementAttachments.ID:
		return ElementAttachments
	case ElementChapters.ID:
		return ElementChapters
	case ElementTags.ID:
		return ElementTags
	default:
		return ElementUnknown
	}
}
