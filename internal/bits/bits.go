package bits

import "errors"

// ErrNotByteAligned is returned when a bit sequence cannot be collapsed into
// bytes because its length is not a multiple of 8.
var ErrNotByteAligned = errors.New("bit stream length is not a multiple of 8")

// Bit is a single binary digit, always 0 or 1.
type Bit = byte

// Expand converts a byte buffer into its ordered sequence of bits, most
// significant bit of each byte first.
func Expand(data []byte) []Bit {
	expanded := make([]Bit, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			expanded = append(expanded, (b>>uint(i))&1)
		}
	}
	return expanded
}

// Collapse packs an ordered bit sequence back into bytes, most significant
// bit first. The sequence must be byte aligned.
func Collapse(stream []Bit) ([]byte, error) {
	if len(stream)%8 != 0 {
		return nil, ErrNotByteAligned
	}

	collapsed := make([]byte, 0, len(stream)/8)
	var acc byte
	for i, b := range stream {
		acc = acc<<1 | (b & 1)
		if i%8 == 7 {
			collapsed = append(collapsed, acc)
			acc = 0
		}
	}
	return collapsed, nil
}

// Reader reads bits from a byte buffer, most significant bit of each byte
// first. Reads past the end of the buffer return fewer bits than requested.
type Reader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewReader(bytes []byte) *Reader {
	return &Reader{
		bytes: bytes,
	}
}

// BitsLeft returns the number of bits that have not been read yet.
func (r *Reader) BitsLeft() int {
	if len(r.bytes) == 0 {
		return 0
	}
	return (len(r.bytes)-1)*8 + (8 - int(r.currentBitIdx))
}

// ReadBit reads the next bit. The second return value is false once the
// stream is exhausted.
func (r *Reader) ReadBit() (Bit, bool) {
	if len(r.bytes) == 0 {
		return 0, false
	}

	bit := (r.bytes[0] >> (7 - r.currentBitIdx)) & 1
	r.currentBitIdx++
	if r.currentBitIdx == 8 {
		r.bytes = r.bytes[1:]
		r.currentBitIdx = 0
	}
	return bit, true
}

// ReadBits reads up to bitsToRead bits and packs them into an unsigned
// value, first bit read in the most significant position. It returns the
// packed value and how many bits were actually read, which may be fewer
// than requested when the stream runs dry.
func (r *Reader) ReadBits(bitsToRead uint) (value byte, read uint) {
	for read < bitsToRead {
		bit, ok := r.ReadBit()
		if !ok {
			break
		}
		value = value<<1 | bit
		read++
	}
	return value, read
}
