package eline

import (
	"strings"
	"testing"

	"github.com/bluebears-dev/ptero-cli-sub000/pkg/charset"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/config"
)

// fixedRng always returns the same offset, clamped to the requested range,
// so tests can pin whitespace insertion points.
type fixedRng struct {
	offset int
}

func (r fixedRng) Intn(n int) int {
	if r.offset >= n {
		return n - 1
	}
	return r.offset
}

func testConfig(pivot int, variant config.Variant, set charset.Set, rng config.Rng) config.TextConfig {
	return config.TextConfig{
		Pivot:   pivot,
		Variant: variant,
		Charset: set,
		Rng:     rng,
	}
}

// generateCover repeats a harmless word sequence until the cover holds at
// least wordCount words on a single line.
func generateCover(wordCount int) string {
	words := []string{
		"lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
		"adipiscing", "elit", "sed", "do", "eiusmod", "tempor",
	}
	cover := make([]string, 0, wordCount)
	for len(cover) < wordCount {
		cover = append(cover, words[len(cover)%len(words)])
	}
	return strings.Join(cover, " ")
}

func mustEncoder(t *testing.T, eConfig config.TextConfig) *Encoder {
	t.Helper()
	encoder, err := NewEncoder(eConfig)
	if err != nil {
		t.Fatalf("Error creating encoder: %s", err)
	}
	return encoder
}

func mustDecoder(t *testing.T, dConfig config.TextConfig) *Decoder {
	t.Helper()
	decoder, err := NewDecoder(dConfig)
	if err != nil {
		t.Fatalf("Error creating decoder: %s", err)
	}
	return decoder
}
