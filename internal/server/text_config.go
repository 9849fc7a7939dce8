package server

import (
	"math/rand"

	"github.com/bluebears-dev/ptero-cli-sub000/pkg/charset"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/config"
)

// buildTextConfig assembles an engine configuration from the request fields,
// leaving defaults to config.Validate. A request-supplied seed pins the
// whitespace channel for reproducible output.
func buildTextConfig(pivot int, variantName, charsetName string, seed *int64) (config.TextConfig, error) {
	textConfig := config.TextConfig{Pivot: pivot}

	if variantName != "" {
		variant, err := config.VariantByName(variantName)
		if err != nil {
			return config.TextConfig{}, err
		}
		textConfig.Variant = variant
	}
	if charsetName != "" {
		set, err := charset.ByName(charsetName)
		if err != nil {
			return config.TextConfig{}, err
		}
		textConfig.Charset = set
	}
	if seed != nil {
		textConfig.Rng = rand.New(rand.NewSource(*seed))
	}
	return textConfig, nil
}
