package eline

import "fmt"

// CoverTooSmallReason distinguishes the two ways a cover text can run out of
// room mid-conceal.
type CoverTooSmallReason int

const (
	// NoCoverWordsLeft means the cover was fully consumed while payload bits
	// remained.
	NoCoverWordsLeft CoverTooSmallReason = iota
	// ConstructedTooShortLine means a line could not be extended past the
	// pivot to prove a set extension bit.
	ConstructedTooShortLine
)

func (r CoverTooSmallReason) String() string {
	if r == ConstructedTooShortLine {
		return "constructed line too short to extend"
	}
	return "no cover words left"
}

// PivotTooSmallError reports a cover word longer than the configured pivot.
// Line construction is impossible with such a word, so the error surfaces
// before any output is produced.
type PivotTooSmallError struct {
	Word  string
	Pivot int
}

func (e *PivotTooSmallError) Error() string {
	return fmt.Sprintf("pivot %d is smaller than the cover word %q", e.Pivot, e.Word)
}

// CoverTextTooSmallError reports that the cover cannot hold the remaining
// payload. RemainingBits lets the caller size a bigger cover or a smaller
// payload.
type CoverTextTooSmallError struct {
	Reason        CoverTooSmallReason
	RemainingBits int
	Pivot         int
}

func (e *CoverTextTooSmallError) Error() string {
	return fmt.Sprintf("cover text too small (%s): %d bits left to hide at pivot %d",
		e.Reason, e.RemainingBits, e.Pivot)
}

// NotEnoughWordsOnPivotLineError reports a line without any word separator,
// which leaves the whitespace channel no insertion point.
type NotEnoughWordsOnPivotLineError struct {
	Line string
}

func (e *NotEnoughWordsOnPivotLineError) Error() string {
	return fmt.Sprintf("not enough words on line %q to duplicate a separator", e.Line)
}
