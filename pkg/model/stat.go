package model

import (
	"time"
)

type EncodeStats struct {
	Setup        time.Duration `json:"setup"`
	DataEncoding time.Duration `json:"data_encoding"`
}

type DecodeStats struct {
	DataDecoding time.Duration `json:"data_decoding"`
}

// CapacityReport estimates how much payload a cover text can carry under a
// given pivot and character set, before attempting a conceal.
type CapacityReport struct {
	Lines        int `json:"lines"`
	BitsPerLine  int `json:"bits_per_line"`
	TotalBits    int `json:"total_bits"`
	PayloadBytes int `json:"payload_bytes"`
}
