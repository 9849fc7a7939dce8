// Package cover walks cover text word by word and constructs the
// pivot-bounded lines the extended-line channels operate on. All lengths are
// measured in grapheme clusters, not bytes or runes, so combining characters
// and emoji count as single characters.
package cover

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Length returns the number of grapheme clusters in s.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// SplitLines yields the raw lines of a text, unmodified. Decoders need the
// lines exactly as they appear, including any extensions past the pivot.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// NormalizeWhitespace collapses every whitespace run to a single space and
// trims surrounding whitespace, undoing the whitespace channels for length
// measurement.
func NormalizeWhitespace(line string) string {
	return strings.Join(strings.Fields(line), " ")
}

type word struct {
	text   string
	offset int
}

// Cursor walks the words of a cover text. It is created once per
// conceal/reveal call, advances monotonically and is never rewound.
type Cursor struct {
	text  string
	words []word
	pos   int
}

func NewCursor(text string) *Cursor {
	c := &Cursor{text: text}

	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				c.words = append(c.words, word{text: text[start:i], offset: start})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		c.words = append(c.words, word{text: text[start:], offset: start})
	}
	return c
}

// Peek returns the next word without advancing. It reports false once the
// cover is exhausted.
func (c *Cursor) Peek() (string, bool) {
	if c.pos >= len(c.words) {
		return "", false
	}
	return c.words[c.pos].text, true
}

// Consume advances past the word last returned by Peek.
func (c *Cursor) Consume() {
	if c.pos < len(c.words) {
		c.pos++
	}
}

// Remainder returns the untouched tail of the original text, starting at the
// next unconsumed word. The tail keeps its original line structure verbatim.
func (c *Cursor) Remainder() string {
	if c.pos >= len(c.words) {
		return ""
	}
	return c.text[c.words[c.pos].offset:]
}

// LongestWord returns the longest word of the cover and its grapheme length.
func (c *Cursor) LongestWord() (string, int) {
	var longest string
	var longestLen int
	for _, w := range c.words {
		if l := Length(w.text); l > longestLen {
			longest, longestLen = w.text, l
		}
	}
	return longest, longestLen
}

// BuildLine accumulates consecutive words, separated by single spaces, into
// the longest line not exceeding pivot grapheme clusters. The word that
// would overflow the line is left unconsumed. An empty line signals that the
// cover is exhausted.
func (c *Cursor) BuildLine(pivot int) (string, error) {
	var line strings.Builder
	lineLen := 0

	for {
		next, ok := c.Peek()
		if !ok {
			break
		}

		wordLen := Length(next)
		if wordLen > pivot {
			// Unreachable after the engine's upfront validation.
			return "", fmt.Errorf("cover: word %q does not fit the pivot %d", next, pivot)
		}

		appendedLen := wordLen
		if lineLen > 0 {
			appendedLen += lineLen + 1
		}
		if appendedLen > pivot {
			break
		}

		if lineLen > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(next)
		lineLen = appendedLen
		c.Consume()
	}
	return line.String(), nil
}
