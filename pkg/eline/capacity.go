package eline

import (
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/config"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/cover"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/model"
)

// Capacity estimates how much payload coverText can carry under the given
// configuration, by counting the pivot-bounded lines the cover produces and
// multiplying by the method's fixed per-line bitrate.
func Capacity(coverText string, cConfig config.TextConfig) (model.CapacityReport, error) {
	if err := cConfig.Validate(); err != nil {
		return model.CapacityReport{}, err
	}

	cursor := cover.NewCursor(coverText)
	if word, length := cursor.LongestWord(); length > cConfig.Pivot {
		return model.CapacityReport{}, &PivotTooSmallError{Word: word, Pivot: cConfig.Pivot}
	}

	var lines int
	for {
		line, err := cursor.BuildLine(cConfig.Pivot)
		if err != nil {
			return model.CapacityReport{}, err
		}
		if line == "" {
			break
		}
		lines++
	}

	// One extension bit, one whitespace bit, charset-width trailing bits.
	bitsPerLine := 2 + int(cConfig.Charset.BitWidth())
	totalBits := lines * bitsPerLine
	return model.CapacityReport{
		Lines:        lines,
		BitsPerLine:  bitsPerLine,
		TotalBits:    totalBits,
		PayloadBytes: totalBits / 8,
	}, nil
}
