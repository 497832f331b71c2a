package mkvio_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepch/mkv/format/mkv/mkvio"
	"github.com/deepch/mkv/format/mkv/mkvtesting"
)

func TestReadElement(t *testing.T) {
	b := append(
		mkvtesting.Element(mkvtesting.TagCluster,
			mkvtesting.UintElement(mkvtesting.TagTimecode, 1000),
		),
		0xec, 0x80,
	)

	c := mkvio.NewCursor(b)
	tag, body, err := c.ReadElement()
	require.NoError(t, err)
	assert.Equal(t, mkvio.ElementCluster.ID, tag)
	assert.Equal(t, 5, body.Offset())
	assert.Equal(t, 4, body.Len())
	assert.Equal(t, 2, c.Len())

	tag, err = body.ReadTag()
	require.NoError(t, err)
	assert.Equal(t, mkvio.ElementTimecode.ID, tag)
	assert.Equal(t, 6, body.Offset())

	v, err := body.ReadUintElement()
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), v)
	assert.True(t, body.Empty())

	tag, void, err := c.ReadElement()
	require.NoError(t, err)
	assert.Equal(t, mkvio.ElementVoid.ID, tag)
	assert.True(t, void.Empty())
	assert.True(t, c.Empty())
}

func TestReadElementErrorCarriesTag(t *testing.T) {
	c := mkvio.NewCursor([]byte{0x1f, 0x43, 0xb6, 0x75, 0x90, 0x00})
	_, _, err := c.ReadElement()
	require.Error(t, err)

	var de *mkvio.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, mkvio.ErrInsufficientData, de.Kind)
	assert.Equal(t, mkvio.ElementCluster.ID, de.Tag)
	assert.Equal(t, 5, de.Offset)
	assert.Equal(t, 6, c.Len())
}

func TestSkipElement(t *testing.T) {
	b := append(mkvtesting.MinSize(3), 0x01, 0x02, 0x03, 0xe7)
	c := mkvio.NewCursor(b)
	require.NoError(t, c.SkipElement())
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []byte{0xe7}, c.Bytes())
}

func TestReadUintElement(t *testing.T) {
	values := []struct {
		B []byte
		V uint64
	}{
		{[]byte{0x80}, 0},
		{[]byte{0x81, 0x2a}, 42},
		{[]byte{0x82, 0x03, 0xe8}, 1000},
		{[]byte{0x88, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 0xffffffffffffffff},
	}
	for _, ex := range values {
		c := mkvio.NewCursor(ex.B)
		v, err := c.ReadUintElement()
		require.NoError(t, err)
		if v != ex.V {
			t.Errorf("% x: expected %d, got %d", ex.B, ex.V, v)
		}
		assert.True(t, c.Empty())
	}

	c := mkvio.NewCursor(append([]byte{0x89}, make([]byte, 9)...))
	_, err := c.ReadUintElement()
	assert.True(t, errors.Is(err, mkvio.ErrIntegerTooWide))
	assert.Equal(t, 10, c.Len())
}

func TestCursorsAreIndependent(t *testing.T) {
	b := mkvtesting.Element(mkvtesting.TagTimecode, []byte{0x01, 0x02})

	c1 := mkvio.NewCursor(b)
	c2 := mkvio.NewCursor(b)

	_, _, err := c1.ReadElement()
	require.NoError(t, err)
	assert.True(t, c1.Empty())
	assert.Equal(t, len(b), c2.Len())

	tag, body, err := c2.ReadElement()
	require.NoError(t, err)
	assert.Equal(t, mkvio.ElementTimecode.ID, tag)
	assert.Equal(t, []byte{0x01, 0x02}, body.Bytes())
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &mkvio.DecodeError{Kind: mkvio.ErrUnrecognizedChildTag, Offset: 7, Tag: 0xec}
	assert.Equal(t, "mkvio: decode error: unrecognized child tag at offset 7 (tag 0xec Void)", err.Error())

	err = &mkvio.DecodeError{Kind: mkvio.ErrInsufficientData, Offset: 3}
	assert.Equal(t, "mkvio: decode error: insufficient data at offset 3", err.Error())

	assert.False(t, errors.Is(err, mkvio.ErrCapacityExceeded))
	assert.Equal(t, "capacity_exceeded", mkvio.ErrCapacityExceeded.String())
}

func TestGetElementRegister(t *testing.T) {
	assert.Equal(t, "SimpleBlock", mkvio.GetElementRegister(0xa3).Name)
	assert.Equal(t, mkvio.ElementTypeMaster, mkvio.GetElementRegister(0x1f43b675).Type)
	assert.Equal(t, mkvio.ElementUnknown, mkvio.GetElementRegister(0x4242))
}
