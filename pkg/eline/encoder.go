package eline

import (
	"fmt"
	"strings"
	"time"

	"github.com/bluebears-dev/ptero-cli-sub000/internal/bits"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/config"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/cover"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/model"
)

// Encoder conceals byte buffers inside cover text by modulating line
// wrapping, whitespace duplication and trailing invisible runes. An encoder
// is not safe for concurrent use; its random source is owned by one conceal
// call at a time.
type Encoder struct {
	observerRegistry

	config config.TextConfig
	stats  model.EncodeStats
}

func NewEncoder(eConfig config.TextConfig) (*Encoder, error) {
	if err := eConfig.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{config: eConfig}, nil
}

func (e *Encoder) Stats() model.EncodeStats {
	return e.stats
}

// Conceal hides data inside coverText and returns the transformed stego
// text. Cover words that were not needed to carry payload are appended
// verbatim, preserving the cover's tail. On any error no text is returned.
func (e *Encoder) Conceal(coverText string, data []byte) (string, error) {
	e.stats = model.EncodeStats{}

	setupStart := time.Now()
	cursor := cover.NewCursor(coverText)
	if word, length := cursor.LongestWord(); length > e.config.Pivot {
		return "", &PivotTooSmallError{Word: word, Pivot: e.config.Pivot}
	}
	reader := bits.NewReader(data)
	order := variantOrder[e.config.Variant]
	e.stats.Setup = time.Since(setupStart)

	encodeStart := time.Now()
	var stegoText strings.Builder
	var totalBitsWritten int
	for reader.BitsLeft() > 0 {
		line, err := cursor.BuildLine(e.config.Pivot)
		if err != nil {
			return "", err
		}
		if line == "" {
			return "", &CoverTextTooSmallError{
				Reason:        NoCoverWordsLeft,
				RemainingBits: reader.BitsLeft(),
				Pivot:         e.config.Pivot,
			}
		}

		for _, subMethod := range order {
			written, err := e.encodeSubMethod(subMethod, &line, cursor, reader)
			if err != nil {
				return "", err
			}
			totalBitsWritten += written
		}

		stegoText.WriteString(line)
		stegoText.WriteByte('\n')
		e.notify(Event{Kind: DataWritten, BitsWritten: totalBitsWritten})
	}

	if tail := cursor.Remainder(); tail != "" {
		stegoText.WriteString(tail)
	}
	e.stats.DataEncoding = time.Since(encodeStart)

	e.notify(Event{Kind: Finished, BitsWritten: totalBitsWritten})
	return stegoText.String(), nil
}

// encodeSubMethod runs one sub-channel against the current line. Each
// channel takes only the bits that are still available, so an exhausted
// stream degrades to no-ops instead of failing the line.
func (e *Encoder) encodeSubMethod(subMethod SubMethod, line *string, cursor *cover.Cursor, reader *bits.Reader) (int, error) {
	switch subMethod {
	case LineExtend:
		return e.encodeLineExtension(line, cursor, reader)
	case RandomWhitespace:
		return e.encodeRandomWhitespace(line, reader)
	case TrailingRune:
		return e.encodeTrailingRune(line, reader)
	}
	return 0, fmt.Errorf("eline: unknown sub-method %d", int(subMethod))
}

// encodeLineExtension appends one extra cover word when the bit is set. The
// extension must push the line's normalized length past the pivot, otherwise
// the decoder could not tell it apart from an ordinary line.
func (e *Encoder) encodeLineExtension(line *string, cursor *cover.Cursor, reader *bits.Reader) (int, error) {
	bit, ok := reader.ReadBit()
	if !ok {
		return 0, nil
	}
	if bit == 0 {
		return 1, nil
	}

	word, ok := cursor.Peek()
	if !ok {
		return 0, &CoverTextTooSmallError{
			Reason:        NoCoverWordsLeft,
			RemainingBits: reader.BitsLeft() + 1,
			Pivot:         e.config.Pivot,
		}
	}

	extended := *line + " " + word
	if cover.Length(cover.NormalizeWhitespace(extended)) <= e.config.Pivot {
		return 0, &CoverTextTooSmallError{
			Reason:        ConstructedTooShortLine,
			RemainingBits: reader.BitsLeft() + 1,
			Pivot:         e.config.Pivot,
		}
	}

	cursor.Consume()
	*line = extended
	return 1, nil
}

// encodeRandomWhitespace duplicates one word separator when the bit is set.
// The insertion point is the last separator at or before a random offset,
// falling back to the first separator. The random choice only picks between
// equally valid insertion points, decoding does not depend on it.
func (e *Encoder) encodeRandomWhitespace(line *string, reader *bits.Reader) (int, error) {
	bit, ok := reader.ReadBit()
	if !ok {
		return 0, nil
	}
	if bit == 0 {
		return 1, nil
	}

	runes := []rune(*line)
	var separatorIdxs []int
	for i, r := range runes {
		if r == ' ' {
			separatorIdxs = append(separatorIdxs, i)
		}
	}
	if len(separatorIdxs) == 0 {
		return 0, &NotEnoughWordsOnPivotLineError{Line: *line}
	}

	offset := e.config.Rng.Intn(len(runes))
	insertAt := separatorIdxs[0]
	for _, idx := range separatorIdxs {
		if idx > offset {
			break
		}
		insertAt = idx
	}

	duplicated := make([]rune, 0, len(runes)+1)
	duplicated = append(duplicated, runes[:insertAt]...)
	duplicated = append(duplicated, ' ')
	duplicated = append(duplicated, runes[insertAt:]...)
	*line = string(duplicated)
	return 1, nil
}

// encodeTrailingRune takes up to charset-width bits and appends the rune
// they index. A final chunk shorter than the full width is shifted into the
// high bits, so the missing low bits decode as trailing zero padding.
func (e *Encoder) encodeTrailingRune(line *string, reader *bits.Reader) (int, error) {
	width := e.config.Charset.BitWidth()
	value, read := reader.ReadBits(width)
	if read == 0 {
		return 0, nil
	}

	index := value << (width - read)
	r, ok, err := e.config.Charset.Rune(index)
	if err != nil {
		return 0, err
	}
	if ok {
		*line += string(r)
	}
	return int(read), nil
}
