package server

import (
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/model"
)

type humanizedEncodeStats struct {
	model.EncodeStats
	SetupHuman        string `json:"setup_human"`
	DataEncodingHuman string `json:"data_encoding_human"`
}

type humanizedDecodeStats struct {
	model.DecodeStats
	DataDecodingHuman string `json:"data_decoding_human"`
}

func toHumanizedEncodeStats(encodeStats model.EncodeStats) humanizedEncodeStats {
	return humanizedEncodeStats{
		EncodeStats:       encodeStats,
		SetupHuman:        encodeStats.Setup.String(),
		DataEncodingHuman: encodeStats.DataEncoding.String(),
	}
}

func toHumanizedDecodeStats(decodeStats model.DecodeStats) humanizedDecodeStats {
	return humanizedDecodeStats{
		DecodeStats:       decodeStats,
		DataDecodingHuman: decodeStats.DataDecoding.String(),
	}
}
