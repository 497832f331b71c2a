package mkv

import (
	"github.com/deepch/mkv/format/mkv/mkvio"
)

// clusterHandler decodes one Cluster child. c is positioned right after
// the child's ID; the handler consumes the size and the body.
type clusterHandler func(cluster *Cluster, c *mkvio.Cursor) error

// Children missing from this table fail the parse. BlockGroup and
// SilentTracks are skipped whole, so blocks inside a BlockGroup are not
// extracted.
var clusterHandlers = map[mkvio.Tag]clusterHandler{
	mkvio.ElementTimecode.ID:     handleTimecode,
	mkvio.ElementSimpleBlock.ID:  handleSimpleBlock,
	mkvio.ElementSilentTracks.ID: skipElement,
	mkvio.ElementPosition.ID:     skipUint,
	mkvio.ElementPrevSize.ID:     skipUint,
	mkvio.ElementBlockGroup.ID:   skipElement,
}

func handleTimecode(cluster *Cluster, c *mkvio.Cursor) error {
	v, err := c.ReadUintElement()
	if err != nil {
		return err
	}
	cluster.Timecode = v
	return nil
}

func handleSimpleBlock(cluster *Cluster, c *mkvio.Cursor) error {
	if cluster.Len() == cluster.Cap() {
		return mkvio.NewDecodeError(mkvio.ErrCapacityExceeded, c, mkvio.ElementSimpleBlock.ID)
	}

	body, err := c.ReadElementBody()
	if err != nil {
		return err
	}

	track, err := body.ReadSize()
	if err != nil {
		return err
	}
	timecode, err := body.ReadUint(2)
	if err != nil {
		return err
	}
	flags, err := body.ReadUint(1)
	if err != nil {
		return err
	}

	cluster.appendBlock(SimpleBlock{
		Track:    track,
		Timecode: uint16(timecode),
		Flags:    uint8(flags),
		Payload:  body.Bytes(),
	})

	return nil
}

func skipElement(cluster *Cluster, c *mkvio.Cursor) error {
	return c.SkipElement()
}

func skipUint(cluster *Cluster, c *mkvio.Cursor) error {
	_, err := c.ReadUintElement()
	return err
}
