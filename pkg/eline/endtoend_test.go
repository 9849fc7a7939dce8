package eline

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/bluebears-dev/ptero-cli-sub000/pkg/charset"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/config"
)

func TestConcealRevealRoundTrip(t *testing.T) {
	variants := []config.Variant{config.VariantV1, config.VariantV2, config.VariantV3}
	sets := []charset.Set{charset.OneBit, charset.TwoBit, charset.FourBit}

	for _, variant := range variants {
		for _, set := range sets {
			variant, set := variant, set
			t.Run(fmt.Sprintf("%s-%s", variant, set.Name()), func(t *testing.T) {
				t.Parallel()
				roundTrip(t, variant, set)
			})
		}
	}
}

func roundTrip(t *testing.T, variant config.Variant, set charset.Set) {
	coverText := generateCover(600)

	report, err := Capacity(coverText, testConfig(24, variant, set, nil))
	if err != nil {
		t.Fatalf("Capacity failed: %s", err)
	}

	// Stay well under the estimate: extension bits consume extra cover words
	// the estimate does not account for.
	payload := make([]byte, report.PayloadBytes/4)
	rng := rand.New(rand.NewSource(7))
	rng.Read(payload)

	encoder := mustEncoder(t, testConfig(24, variant, set, rand.New(rand.NewSource(13))))
	stegoText, err := encoder.Conceal(coverText, payload)
	if err != nil {
		t.Fatalf("Conceal failed: %s", err)
	}

	decoder := mustDecoder(t, testConfig(24, variant, set, nil))
	revealed, err := decoder.Reveal(stegoText)
	if err != nil {
		t.Fatalf("Reveal failed: %s", err)
	}

	if len(revealed) < len(payload) {
		t.Fatalf("Revealed only %d of %d payload bytes", len(revealed), len(payload))
	}
	if !bytes.Equal(revealed[:len(payload)], payload) {
		t.Errorf("Round trip mismatch: expected %v, got %v", payload, revealed[:len(payload)])
	}
}

func TestRoundTripWithPartialTrailingChunk(t *testing.T) {
	// 16 payload bits against a 6-bit line rate leave a final chunk of 2
	// bits for the four-bit trailing channel, exercising the partial write.
	payload := []byte{0xB7, 0x29}
	coverText := generateCover(120)

	encoder := mustEncoder(t, testConfig(24, config.VariantV1, charset.FourBit, fixedRng{offset: 3}))
	stegoText, err := encoder.Conceal(coverText, payload)
	if err != nil {
		t.Fatalf("Conceal failed: %s", err)
	}

	decoder := mustDecoder(t, testConfig(24, config.VariantV1, charset.FourBit, nil))
	revealed, err := decoder.Reveal(stegoText)
	if err != nil {
		t.Fatalf("Reveal failed: %s", err)
	}
	if !bytes.Equal(revealed[:len(payload)], payload) {
		t.Errorf("Round trip mismatch: expected %v, got %v", payload, revealed[:len(payload)])
	}
}

func TestRoundTripPreservesCoverTail(t *testing.T) {
	coverText := generateCover(400) + "\nfinal untouched line"

	encoder := mustEncoder(t, testConfig(24, config.VariantV1, charset.FourBit, fixedRng{}))
	stegoText, err := encoder.Conceal(coverText, []byte{0x42})
	if err != nil {
		t.Fatalf("Conceal failed: %s", err)
	}

	if !bytes.HasSuffix([]byte(stegoText), []byte("\nfinal untouched line")) {
		t.Error("Expected the untouched cover tail to survive verbatim")
	}
}
