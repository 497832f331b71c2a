package mkvio

import (
	"math/bits"
)

// lengthDescriptor returns how many octets the variable length integer at
// the cursor occupies. The descriptor byte is not consumed, since its low
// bits belong to the value.
//
//	1xxxxxxx                    -> 1
//	01xxxxxx xxxxxxxx           -> 2
//	...
//	00000001 xxxxxxxx x 6       -> 8
func (c *Cursor) lengthDescriptor() (int, error) {
	if !c.has(1) {
		return 0, c.fail(ErrInsufficientData, 0)
	}

	d := c.org[c.pos]
	if d == 0 {
		return 0, c.fail(ErrMalformedLengthDescriptor, 0)
	}

	return bits.LeadingZeros8(d) + 1, nil
}

// ReadUint consumes n octets and composes them big endian, without masking.
// Zero octets decode as 0.
func (c *Cursor) ReadUint(n int) (uint64, error) {
	if n < 0 || n > 8 {
		return 0, c.fail(ErrIntegerTooWide, 0)
	}
	if !c.has(uint64(n)) {
		return 0, c.fail(ErrInsufficientData, 0)
	}

	var v uint64
	for i := 0; i < n; i++ {
		v <<= 8
		v |= uint64(c.readByte())
	}

	return v, nil
}

// ReadSize decodes an element size or other unsigned VINT: the length
// marker bits are masked off the first octet.
func (c *Cursor) ReadSize() (uint64, error) {
	n, err := c.lengthDescriptor()
	if err != nil {
		return 0, err
	}
	if !c.has(uint64(n)) {
		return 0, c.fail(ErrInsufficientData, 0)
	}

	var v uint64
	if n == 8 {
		// 0x01, all marker
		c.readByte()
	} else {
		v = uint64(c.readByte() & (0xff >> uint(n)))
	}

	for i := 1; i < n; i++ {
		v <<= 8
		v |= uint64(c.readByte())
	}

	return v, nil
}
