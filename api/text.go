package api

import "github.com/bluebears-dev/ptero-cli-sub000/pkg/model"

type Error struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

type EncodeTextRequest struct {
	CoverText string `json:"cover_text"`
	Data      []byte `json:"data"`
	Pivot     int    `json:"pivot"`
	Variant   string `json:"variant,omitempty"`
	Charset   string `json:"charset,omitempty"`
	Seed      *int64 `json:"seed,omitempty"`
}

type EncodeTextResponse struct {
	StegoText   string            `json:"stego_text"`
	BitsWritten int               `json:"bits_written"`
	Stats       model.EncodeStats `json:"stats"`
}

type DecodeTextRequest struct {
	StegoText string `json:"stego_text"`
	Pivot     int    `json:"pivot"`
	Variant   string `json:"variant,omitempty"`
	Charset   string `json:"charset,omitempty"`
	// PayloadLength trims the zero-padded tail from the revealed data when
	// the caller knows the true payload size.
	PayloadLength int `json:"payload_length,omitempty"`
}

type DecodeTextResponse struct {
	Data  []byte            `json:"data"`
	Stats model.DecodeStats `json:"stats"`
}

type CapacityTextRequest struct {
	CoverText string `json:"cover_text"`
	Pivot     int    `json:"pivot"`
	Charset   string `json:"charset,omitempty"`
}

type CapacityTextResponse struct {
	model.CapacityReport
	PayloadBytesHuman string `json:"payload_bytes_human"`
}
