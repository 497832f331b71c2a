package mkvio

import (
	"fmt"
)

// ErrorKind classifies a decode failure. Every kind is terminal for the
// parse call that produced it.
type ErrorKind int

const (
	ErrInsufficientData ErrorKind = iota + 1
	ErrMalformedLengthDescriptor
	ErrUnexpectedTag
	ErrUnrecognizedChildTag
	ErrCapacityExceeded
	ErrIntegerTooWide
)

var errKindMessages = map[ErrorKind]string{
	ErrInsufficientData:          "insufficient data",
	ErrMalformedLengthDescriptor: "malformed length descriptor",
	ErrUnexpectedTag:             "unexpected tag",
	ErrUnrecognizedChildTag:      "unrecognized child tag",
	ErrCapacityExceeded:          "simple block capacity exceeded",
	ErrIntegerTooWide:            "integer wider than 8 octets",
}

func (k ErrorKind) Error() string {
	if s, ok := errKindMessages[k]; ok {
		return s
	}
	return "unknown decode error"
}

// String returns the metric-friendly name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrInsufficientData:
		return "insufficient_data"
	case ErrMalformedLengthDescriptor:
		return "malformed_length_descriptor"
	case ErrUnexpectedTag:
		return "unexpected_tag"
	case ErrUnrecognizedChildTag:
		return "unrecognized_child_tag"
	case ErrCapacityExceeded:
		return "capacity_exceeded"
	case ErrIntegerTooWide:
		return "integer_too_wide"
	}
	return "unknown"
}

// DecodeError reports where decoding stopped.
// Offset is relative to the start of the outermost buffer.
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	Tag    Tag
}

func (e *DecodeError) Error() string {
	s := fmt.Sprintf("mkvio: decode error: %s at offset %d", e.Kind.Error(), e.Offset)
	if e.Tag != 0 {
		s += fmt.Sprintf(" (tag 0x%x %s)", uint64(e.Tag), GetElementRegister(e.Tag).Name)
	}
	return s
}

// Is makes errors.Is(err, ErrCapacityExceeded) and friends work.
func (e *DecodeError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// NewDecodeError builds a DecodeError at the cursor's current offset.
func NewDecodeError(kind ErrorKind, c *Cursor, tag Tag) error {
	return c.fail(kind, tag)
}
