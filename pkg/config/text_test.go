package config

import (
	"errors"
	"testing"

	"github.com/bluebears-dev/ptero-cli-sub000/pkg/charset"
)

func TestValidatePopulatesDefaults(t *testing.T) {
	cfg := TextConfig{Pivot: 20}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %s", err)
	}

	if cfg.Variant != VariantV1 {
		t.Errorf("Expected default variant v1, got %s", cfg.Variant)
	}
	if cfg.Charset.Name() != charset.FourBit.Name() {
		t.Errorf("Expected default four-bit charset, got %s", cfg.Charset.Name())
	}
	if cfg.Rng == nil {
		t.Error("Expected a default random source")
	}
}

func TestValidateRejectsInvalidPivot(t *testing.T) {
	for _, pivot := range []int{0, -4} {
		cfg := TextConfig{Pivot: pivot}
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidPivot) {
			t.Errorf("Expected ErrInvalidPivot for pivot %d, got %v", pivot, err)
		}
	}
}

func TestValidateRejectsUnknownVariant(t *testing.T) {
	cfg := TextConfig{Pivot: 10, Variant: Variant(42)}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected unknown variant to fail validation")
	}
}

func TestVariantByName(t *testing.T) {
	for _, name := range []string{"v1", "v2", "v3"} {
		variant, err := VariantByName(name)
		if err != nil {
			t.Fatalf("VariantByName(%q) failed: %s", name, err)
		}
		if variant.String() != name {
			t.Errorf("Expected %q to survive the round trip, got %s", name, variant)
		}
	}

	if _, err := VariantByName("v9"); err == nil {
		t.Error("Expected unknown variant name to fail")
	}
}
