package charset

import (
	"errors"
	"testing"
)

func TestIndexInvertsRune(t *testing.T) {
	for _, set := range []Set{OneBit, TwoBit, FourBit} {
		t.Run(set.Name(), func(t *testing.T) {
			for index := byte(1); int(index) <= set.Size(); index++ {
				r, ok, err := set.Rune(index)
				if err != nil {
					t.Fatalf("Rune(%d) failed: %s", index, err)
				}
				if !ok {
					t.Fatalf("Rune(%d) reported no rune", index)
				}
				if mapped := set.Index(r); mapped != index {
					t.Errorf("Index(Rune(%d)) = %d, expected %d", index, mapped, index)
				}
			}
		})
	}
}

func TestZeroIndexCarriesNoRune(t *testing.T) {
	_, ok, err := FourBit.Rune(0)
	if err != nil {
		t.Fatalf("Rune(0) failed: %s", err)
	}
	if ok {
		t.Error("Expected index 0 to carry no rune")
	}
}

func TestIndexOutOfRange(t *testing.T) {
	_, _, err := OneBit.Rune(2)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestForeignRunesMapToZero(t *testing.T) {
	for _, r := range []rune{'a', ' ', '\t', '\u00A0'} {
		if index := FourBit.Index(r); index != 0 {
			t.Errorf("Expected foreign rune %q to map to 0, got %d", r, index)
		}
	}
}

func TestBitWidth(t *testing.T) {
	widths := map[string]uint{
		OneBit.Name():  1,
		TwoBit.Name():  2,
		FourBit.Name(): 4,
	}
	for _, set := range []Set{OneBit, TwoBit, FourBit} {
		if width := set.BitWidth(); width != widths[set.Name()] {
			t.Errorf("Expected %s width %d, got %d", set.Name(), widths[set.Name()], width)
		}
	}
}

func TestByName(t *testing.T) {
	set, err := ByName("two-bit")
	if err != nil {
		t.Fatalf("ByName failed: %s", err)
	}
	if set.Size() != 3 {
		t.Errorf("Expected two-bit set of size 3, got %d", set.Size())
	}

	if _, err = ByName("eight-bit"); err == nil {
		t.Error("Expected unknown charset name to fail")
	}
}
