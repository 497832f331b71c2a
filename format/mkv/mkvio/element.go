package mkvio

// Tag is an element ID exactly as stored, length marker bits included.
type Tag uint64

// ReadTag decodes the element ID at the cursor.
func (c *Cursor) ReadTag() (Tag, error) {
	n, err := c.lengthDescriptor()
	if err != nil {
		return 0, err
	}

	v, err := c.ReadUint(n)
	if err != nil {
		return 0, err
	}

	return Tag(v), nil
}

// ReadElementBody decodes an element size and returns a Cursor scoped to
// the element content. The parent moves past the content. This is the
// only place a declared size is checked against the remaining bytes.
func (c *Cursor) ReadElementBody() (Cursor, error) {
	tmp := *c

	size, err := tmp.ReadSize()
	if err != nil {
		return Cursor{}, err
	}
	if !tmp.has(size) {
		return Cursor{}, tmp.fail(ErrInsufficientData, 0)
	}

	child := tmp.sub(int(size))
	*c = tmp

	return child, nil
}

// ReadElement decodes a whole element header and returns its ID together
// with a Cursor over its content. On failure the cursor does not move.
func (c *Cursor) ReadElement() (Tag, Cursor, error) {
	tmp := *c

	tag, err := tmp.ReadTag()
	if err != nil {
		return 0, Cursor{}, err
	}

	child, err := tmp.ReadElementBody()
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.Tag = tag
		}
		return 0, Cursor{}, err
	}

	*c = tmp

	return tag, child, nil
}

// SkipElement discards a size-prefixed element body. The ID must already
// have been read.
func (c *Cursor) SkipElement() error {
	tmp := *c

	size, err := tmp.ReadSize()
	if err != nil {
		return err
	}
	if !tmp.has(size) {
		return tmp.fail(ErrInsufficientData, 0)
	}

	tmp.advance(int(size))
	*c = tmp

	return nil
}

// ReadUintElement decodes a size-prefixed unsigned integer element body.
func (c *Cursor) ReadUintElement() (uint64, error) {
	tmp := *c

	size, err := tmp.ReadSize()
	if err != nil {
		return 0, err
	}
	if size > 8 {
		return 0, tmp.fail(ErrIntegerTooWide, 0)
	}

	v, err := tmp.ReadUint(int(size))
	if err != nil {
		return 0, err
	}

	*c = tmp

	return v, nil
}
