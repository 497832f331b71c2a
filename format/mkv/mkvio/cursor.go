package mkvio

// Cursor is a read position over a byte buffer it does not own.
// The buffer must outlive the Cursor and every slice taken from it.
type Cursor struct {
	org  []byte
	pos  int
	base int
}

// NewCursor creates a Cursor viewing b. Nothing is copied.
func NewCursor(b []byte) Cursor {
	return Cursor{org: b}
}

// readByte returns the next byte and advances.
// Callers must have checked has(1) first.
func (c *Cursor) readByte() byte {
	v := c.org[c.pos]
	c.pos++
	return v
}

func (c *Cursor) has(n uint64) bool {
	return uint64(len(c.org)-c.pos) >= n
}

func (c *Cursor) advance(n int) {
	c.pos += n
}

// Empty reports whether no bytes remain.
func (c *Cursor) Empty() bool {
	return c.pos == len(c.org)
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.org) - c.pos
}

// Offset returns the absolute position of the next unread byte within the
// outermost buffer this cursor was derived from.
func (c *Cursor) Offset() int {
	return c.base + c.pos
}

// Bytes returns the unread bytes without consuming them.
func (c *Cursor) Bytes() []byte {
	return c.org[c.pos:len(c.org):len(c.org)]
}

// sub returns a Cursor over the next n bytes and moves past them.
// Callers must have checked has(n) first.
func (c *Cursor) sub(n int) Cursor {
	child := Cursor{
		org:  c.org[c.pos : c.pos+n : c.pos+n],
		base: c.base + c.pos,
	}
	c.pos += n
	return child
}

func (c *Cursor) fail(kind ErrorKind, tag Tag) error {
	return &DecodeError{Kind: kind, Offset: c.Offset(), Tag: tag}
}
