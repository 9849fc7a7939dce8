package eline

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/bluebears-dev/ptero-cli-sub000/pkg/charset"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/config"
)

const sampleCover = "This is a sample text that is harmless"

func TestConcealSampleText(t *testing.T) {
	encoder := mustEncoder(t, testConfig(11, config.VariantV1, charset.OneBit, fixedRng{}))

	stegoText, err := encoder.Conceal(sampleCover, []byte{'E'})
	if err != nil {
		t.Fatalf("Conceal failed: %s", err)
	}

	// 'E' = 01000101: extension 0 + whitespace 1 double the first separator,
	// the sixth bit selects the trailing zero-width space on the second line.
	expected := "This  is a\nsample text\u200b\nthat  is\nharmless"
	if stegoText != expected {
		t.Errorf("Expected stego text %q, got %q", expected, stegoText)
	}
}

func TestConcealFailsOnWordLongerThanPivot(t *testing.T) {
	encoder := mustEncoder(t, testConfig(2, config.VariantV1, charset.OneBit, fixedRng{}))

	_, err := encoder.Conceal("a little lamb", []byte{1})
	var pivotErr *PivotTooSmallError
	if !errors.As(err, &pivotErr) {
		t.Fatalf("Expected PivotTooSmallError, got %v", err)
	}
	if pivotErr.Word != "little" || pivotErr.Pivot != 2 {
		t.Errorf(`Expected the error to name "little" at pivot 2, got %q at %d`, pivotErr.Word, pivotErr.Pivot)
	}
}

func TestConcealFailsWhenCoverExhausted(t *testing.T) {
	encoder := mustEncoder(t, testConfig(10, config.VariantV1, charset.OneBit, fixedRng{}))

	payload := make([]byte, 64)
	for i := range payload {
		payload[i] = byte(i)
	}

	_, err := encoder.Conceal("just a few short words here", payload)
	var coverErr *CoverTextTooSmallError
	if !errors.As(err, &coverErr) {
		t.Fatalf("Expected CoverTextTooSmallError, got %v", err)
	}
	if coverErr.RemainingBits == 0 {
		t.Error("Expected the error to carry the remaining bit count")
	}
}

func TestConcealFailsOnSingleWordLine(t *testing.T) {
	encoder := mustEncoder(t, testConfig(11, config.VariantV1, charset.OneBit, fixedRng{}))

	// "consectetur" fills the whole 11-cluster line by itself, so the set
	// whitespace bit (0x40 = 01000000) has no separator to duplicate.
	_, err := encoder.Conceal("consectetur adipiscing elit", []byte{0x40})
	var lineErr *NotEnoughWordsOnPivotLineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("Expected NotEnoughWordsOnPivotLineError, got %v", err)
	}
	if lineErr.Line != "consectetur" {
		t.Errorf(`Expected the error to name line "consectetur", got %q`, lineErr.Line)
	}
}

func TestConcealIsDeterministicWithSeededRng(t *testing.T) {
	coverText := generateCover(200)
	payload := []byte("determinism")

	var outputs [2]string
	for i := range outputs {
		encoder := mustEncoder(t, testConfig(24, config.VariantV1, charset.FourBit,
			rand.New(rand.NewSource(42))))
		stegoText, err := encoder.Conceal(coverText, payload)
		if err != nil {
			t.Fatalf("Conceal failed: %s", err)
		}
		outputs[i] = stegoText
	}

	if outputs[0] != outputs[1] {
		t.Error("Expected byte-identical stego text across runs with the same seed")
	}
}

func TestConcealNotifiesObservers(t *testing.T) {
	encoder := mustEncoder(t, testConfig(24, config.VariantV1, charset.FourBit, fixedRng{}))

	var lastTotal, finishedCount int
	id := encoder.Subscribe(ObserverFunc(func(event Event) {
		switch event.Kind {
		case DataWritten:
			if event.BitsWritten < lastTotal {
				t.Errorf("Bits written decreased from %d to %d", lastTotal, event.BitsWritten)
			}
			lastTotal = event.BitsWritten
		case Finished:
			finishedCount++
		}
	}))
	defer encoder.Unsubscribe(id)

	payload := []byte{0xDE, 0xAD}
	if _, err := encoder.Conceal(generateCover(100), payload); err != nil {
		t.Fatalf("Conceal failed: %s", err)
	}

	if lastTotal != len(payload)*8 {
		t.Errorf("Expected %d bits reported, got %d", len(payload)*8, lastTotal)
	}
	if finishedCount != 1 {
		t.Errorf("Expected exactly one Finished event, got %d", finishedCount)
	}
}

func TestUnsubscribedObserverReceivesNothing(t *testing.T) {
	encoder := mustEncoder(t, testConfig(24, config.VariantV1, charset.FourBit, fixedRng{}))

	var notified bool
	id := encoder.Subscribe(ObserverFunc(func(Event) { notified = true }))
	encoder.Unsubscribe(id)

	if _, err := encoder.Conceal(generateCover(50), []byte{1}); err != nil {
		t.Fatalf("Conceal failed: %s", err)
	}
	if notified {
		t.Error("Expected no events after unsubscribe")
	}
}

func TestCapacityReport(t *testing.T) {
	report, err := Capacity(sampleCover, testConfig(11, config.VariantV1, charset.OneBit, fixedRng{}))
	if err != nil {
		t.Fatalf("Capacity failed: %s", err)
	}

	// "This is a" / "sample text" / "that is" / "harmless"
	if report.Lines != 4 {
		t.Errorf("Expected 4 lines, got %d", report.Lines)
	}
	if report.BitsPerLine != 3 {
		t.Errorf("Expected 3 bits per line with the one-bit charset, got %d", report.BitsPerLine)
	}
	if report.TotalBits != 12 || report.PayloadBytes != 1 {
		t.Errorf("Expected 12 bits / 1 byte, got %d / %d", report.TotalBits, report.PayloadBytes)
	}
}

func TestCapacityRejectsOversizedWords(t *testing.T) {
	_, err := Capacity("a little lamb", testConfig(3, config.VariantV1, charset.OneBit, fixedRng{}))
	var pivotErr *PivotTooSmallError
	if !errors.As(err, &pivotErr) {
		t.Fatalf("Expected PivotTooSmallError, got %v", err)
	}
}
