// Package mkvtesting builds small EBML documents for tests.
package mkvtesting

const (
	TagCluster      = 0x1f43b675
	TagTimecode     = 0xe7
	TagSimpleBlock  = 0xa3
	TagSilentTracks = 0x5854
	TagPosition     = 0xa7
	TagPrevSize     = 0xab
	TagBlockGroup   = 0xa0
	TagBlock        = 0xa1
	TagVoid         = 0xec
)

// Size encodes v as an n octet VINT (length marker included).
// v must be below 2^(7n).
func Size(v uint64, n int) []byte {
	b := Uint(v, n)
	b[0] |= 0x80 >> uint(n-1)
	return b
}

// MinSize encodes v with the fewest octets that avoid the all-ones
// reserved pattern.
func MinSize(v uint64) []byte {
	n := 1
	for n < 8 && v >= (uint64(1)<<(7*uint(n)))-1 {
		n++
	}
	return Size(v, n)
}

// Uint encodes v big endian in exactly n octets.
func Uint(v uint64, n int) []byte {
	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// ID encodes an element ID in as many octets as its value needs.
func ID(tag uint64) []byte {
	n := 1
	for n < 8 && tag>>(8*uint(n)) != 0 {
		n++
	}
	return Uint(tag, n)
}

func join(parts [][]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Element encodes tag, the size of the concatenated body, then the body.
func Element(tag uint64, body ...[]byte) []byte {
	b := join(body)
	out := append(ID(tag), MinSize(uint64(len(b)))...)
	return append(out, b...)
}

// UintElement encodes v as an unsigned integer element using the fewest
// octets, at least one.
func UintElement(tag uint64, v uint64) []byte {
	n := 1
	for n < 8 && v>>(8*uint(n)) != 0 {
		n++
	}
	return Element(tag, Uint(v, n))
}

// SimpleBlock encodes a SimpleBlock element.
func SimpleBlock(track uint64, timecode uint16, flags uint8, payload []byte) []byte {
	return Element(TagSimpleBlock,
		MinSize(track),
		Uint(uint64(timecode), 2),
		[]byte{flags},
		payload,
	)
}

// Cluster encodes a Cluster element around children.
func Cluster(children ...[]byte) []byte {
	return Element(TagCluster, children...)
}
