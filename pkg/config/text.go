package config

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/bluebears-dev/ptero-cli-sub000/pkg/charset"
)

var (
	ErrInvalidPivot = errors.New("config: pivot must be a positive number of grapheme clusters")
)

// Rng is the random source consulted by the whitespace-insertion channel. It
// is satisfied by *math/rand.Rand and small enough to stub in tests. The
// source is owned exclusively by one conceal call at a time.
type Rng interface {
	Intn(n int) int
}

// Variant fixes the per-line execution order of the three sub-channels. The
// same variant must be used for conceal and reveal, or the recovered bits
// are garbage.
type Variant int

const (
	// VariantV1 runs line-extension, then whitespace insertion, then the
	// trailing character.
	VariantV1 Variant = iota + 1
	// VariantV2 runs line-extension, then the trailing character, then
	// whitespace insertion.
	VariantV2
	// VariantV3 runs whitespace insertion, then line-extension, then the
	// trailing character.
	VariantV3
)

var variantNames = map[Variant]string{
	VariantV1: "v1",
	VariantV2: "v2",
	VariantV3: "v3",
}

func (v Variant) String() string {
	if name, found := variantNames[v]; found {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// VariantByName resolves a variant from its CLI/API name.
func VariantByName(name string) (Variant, error) {
	for variant, variantName := range variantNames {
		if variantName == name {
			return variant, nil
		}
	}
	return 0, fmt.Errorf("config: unknown variant %q", name)
}

// TextConfig carries everything one conceal or reveal call needs. It is
// immutable for the duration of the call.
type TextConfig struct {
	// Pivot is the maximum length of a constructed cover line, in grapheme
	// clusters.
	Pivot int
	// Variant selects the sub-channel execution order. Defaults to VariantV1.
	Variant Variant
	// Charset is the trailing-character alphabet. Defaults to charset.FourBit.
	Charset charset.Set
	// Rng drives whitespace insertion points. Defaults to a time-seeded
	// math/rand source.
	Rng Rng
}

// Validate fills unset fields with their defaults and rejects invalid
// combinations. It runs before any conceal/reveal starts, so configuration
// mistakes never surface mid-encode.
func (c *TextConfig) Validate() error {
	if c.Pivot < 1 {
		return ErrInvalidPivot
	}
	if c.Variant == 0 {
		c.Variant = VariantV1
	}
	if _, found := variantNames[c.Variant]; !found {
		return fmt.Errorf("config: unknown variant %d", int(c.Variant))
	}
	if c.Charset.Size() == 0 {
		c.Charset = charset.FourBit
	}
	if c.Rng == nil {
		c.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return nil
}
