// Package charset provides the ordered invisible-rune alphabets used by the
// trailing-character channel. Index 0 is reserved for "no rune", so a set of
// size n encodes n+1 distinct values.
package charset

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an index exceeds the set size. Correct
// bit-width derivation never produces such an index, so hitting this error
// means a programming mistake, not bad input.
var ErrIndexOutOfRange = errors.New("charset: index out of range")

// Set is an ordered, fixed alphabet of distinct runes.
type Set struct {
	name  string
	runes []rune
}

var (
	// OneBit carries a single bit per line (zero-width space).
	OneBit = Set{name: "one-bit", runes: []rune{'\u200B'}}

	// TwoBit carries two bits per line using the zero-width space, non-joiner
	// and joiner.
	TwoBit = Set{name: "two-bit", runes: []rune{'\u200B', '\u200C', '\u200D'}}

	// FourBit carries four bits per line. Fifteen runes plus the reserved
	// zero index fill the whole four-bit value range.
	FourBit = Set{name: "four-bit", runes: []rune{
		'\u200B', '\u200C', '\u200D', '\u2060', '\u2061',
		'\u2062', '\u2063', '\u2064', '\u206A', '\u206B',
		'\u206C', '\u206D', '\u206E', '\u206F', '\uFEFF',
	}}
)

var setsByName = map[string]Set{
	OneBit.name:  OneBit,
	TwoBit.name:  TwoBit,
	FourBit.name: FourBit,
}

// ByName resolves a set from its CLI/API name.
func ByName(name string) (Set, error) {
	set, found := setsByName[name]
	if !found {
		return Set{}, fmt.Errorf("charset: unknown character set %q", name)
	}
	return set, nil
}

func (s Set) Name() string {
	return s.name
}

func (s Set) Size() int {
	return len(s.runes)
}

// BitWidth returns the number of bits needed to address the set, the
// smallest b such that 2^b - 1 >= size.
func (s Set) BitWidth() uint {
	width := uint(1)
	for (1<<width)-1 < len(s.runes) {
		width++
	}
	return width
}

// Rune returns the rune stored at a non-zero index. Index 0 is the reserved
// "no rune" value and reports ok == false.
func (s Set) Rune(index byte) (r rune, ok bool, err error) {
	if index == 0 {
		return 0, false, nil
	}
	if int(index) > len(s.runes) {
		return 0, false, ErrIndexOutOfRange
	}
	return s.runes[index-1], true, nil
}

// Index maps a rune back to its index. Runes outside the set map to 0, the
// "no rune" value, so foreign whitespace decodes as empty rather than
// failing.
func (s Set) Index(r rune) byte {
	for i, candidate := range s.runes {
		if candidate == r {
			return byte(i + 1)
		}
	}
	return 0
}
