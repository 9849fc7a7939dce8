package eline

import (
	"strings"
	"time"

	"github.com/bluebears-dev/ptero-cli-sub000/internal/bits"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/config"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/cover"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/model"
)

// Decoder recovers a concealed byte buffer from stego text. The pivot,
// variant and charset must match the values used at conceal time.
type Decoder struct {
	config config.TextConfig
	stats  model.DecodeStats
}

func NewDecoder(dConfig config.TextConfig) (*Decoder, error) {
	if err := dConfig.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{config: dConfig}, nil
}

func (d *Decoder) Stats() model.DecodeStats {
	return d.stats
}

// Reveal extracts the hidden bit stream from stegoText and returns it as
// bytes, zero-padded to a byte boundary. The result may carry trailing zero
// bytes beyond the true payload; callers that know the payload length trim
// it themselves.
func (d *Decoder) Reveal(stegoText string) ([]byte, error) {
	d.stats = model.DecodeStats{}

	decodeStart := time.Now()
	order := variantOrder[d.config.Variant]

	var stream []bits.Bit
	for _, line := range cover.SplitLines(stegoText) {
		// Sub-decoders peel the line in reverse encode order, each removing
		// the transformation it recognizes before the next one looks.
		chunks := make([][]bits.Bit, 0, len(order))
		for i := len(order) - 1; i >= 0; i-- {
			chunks = append(chunks, d.decodeSubMethod(order[i], &line))
		}
		// The chunks were collected in peel order; flip them back so the
		// line's bits are assembled in the order they were consumed.
		for i := len(chunks) - 1; i >= 0; i-- {
			stream = append(stream, chunks[i]...)
		}
	}

	for len(stream)%8 != 0 {
		stream = append(stream, 0)
	}
	data, err := bits.Collapse(stream)
	if err != nil {
		return nil, err
	}
	d.stats.DataDecoding = time.Since(decodeStart)
	return data, nil
}

func (d *Decoder) decodeSubMethod(subMethod SubMethod, line *string) []bits.Bit {
	switch subMethod {
	case LineExtend:
		return []bits.Bit{d.decodeLineExtension(*line)}
	case RandomWhitespace:
		return []bits.Bit{decodeRandomWhitespace(line)}
	case TrailingRune:
		return d.decodeTrailingRune(line)
	}
	return nil
}

// decodeLineExtension reads the extension bit from the line's normalized
// length: extended lines exceed the pivot even after whitespace collapse.
func (d *Decoder) decodeLineExtension(line string) bits.Bit {
	if cover.Length(cover.NormalizeWhitespace(line)) > d.config.Pivot {
		return 1
	}
	return 0
}

// decodeRandomWhitespace scans for a duplicated word separator and removes
// one copy. Any duplicate position decodes to the same bit, mirroring the
// encoder's freedom in choosing the insertion point.
func decodeRandomWhitespace(line *string) bits.Bit {
	idx := strings.Index(*line, "  ")
	if idx < 0 {
		return 0
	}
	*line = (*line)[:idx] + (*line)[idx+1:]
	return 1
}

// decodeTrailingRune reads the line's last rune through the charset and
// emits its index as charset-width bits, first bit most significant. A line
// whose last rune is foreign to the set decodes as index 0 and stays
// untouched; a recognized rune is removed so the remaining sub-decoders see
// the line without it.
func (d *Decoder) decodeTrailingRune(line *string) []bits.Bit {
	width := d.config.Charset.BitWidth()
	chunk := make([]bits.Bit, width)

	runes := []rune(*line)
	if len(runes) == 0 {
		return chunk
	}

	index := d.config.Charset.Index(runes[len(runes)-1])
	if index != 0 {
		*line = string(runes[:len(runes)-1])
	}
	for i := uint(0); i < width; i++ {
		chunk[width-1-i] = (index >> i) & 1
	}
	return chunk
}
