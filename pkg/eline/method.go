// Package eline implements the extended-line steganography method: a
// composite of three reversible per-line bit channels that hide data in
// line-wrapping and whitespace choices of plain text.
package eline

import (
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/config"
)

// SubMethod identifies one of the per-line bit channels. The set is closed,
// so the composite dispatches over it directly instead of through dynamic
// method values.
type SubMethod int

const (
	// LineExtend hides one bit in whether a line was extended past the pivot
	// by one extra cover word.
	LineExtend SubMethod = iota
	// RandomWhitespace hides one bit in the presence of a duplicated word
	// separator somewhere in the line.
	RandomWhitespace
	// TrailingRune hides charset-width bits in an invisible rune appended to
	// the line.
	TrailingRune
)

func (m SubMethod) String() string {
	switch m {
	case LineExtend:
		return "line-extend"
	case RandomWhitespace:
		return "random-whitespace"
	case TrailingRune:
		return "trailing-rune"
	}
	return "unknown"
}

// variantOrder is the single source of truth for sub-channel execution
// order. Conceal walks an entry left to right, reveal walks it right to
// left. Orders that would run line-extension after the trailing rune are
// excluded: they would bury the trailing marker mid-line and break
// reversibility.
var variantOrder = map[config.Variant][3]SubMethod{
	config.VariantV1: {LineExtend, RandomWhitespace, TrailingRune},
	config.VariantV2: {LineExtend, TrailingRune, RandomWhitespace},
	config.VariantV3: {RandomWhitespace, LineExtend, TrailingRune},
}
