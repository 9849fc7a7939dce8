package server

import (
	"errors"
	"net/http"

	"github.com/bluebears-dev/ptero-cli-sub000/api"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/eline"
)

var (
	errRequestBodyDecode = api.Error{Error: "Error reading request body"}
	errInvalidConfig     = api.Error{Code: "invalid_config", Error: "Invalid method configuration supplied in request body"}
	errEncode            = api.Error{Code: "encode_error", Error: "An error occurred while concealing data in the text"}
	errDecode            = api.Error{Code: "decode_error", Error: "An error occurred while revealing data from the text"}
)

// engineErrorResponse maps the engine's error taxonomy to a status code and
// canned error body. Capacity and pivot errors are caller mistakes; anything
// else is reported as a server-side failure.
func engineErrorResponse(err error, fallback api.Error) (int, api.Error) {
	var pivotErr *eline.PivotTooSmallError
	if errors.As(err, &pivotErr) {
		return http.StatusBadRequest, api.Error{Code: "pivot_too_small", Error: pivotErr.Error()}
	}

	var coverErr *eline.CoverTextTooSmallError
	if errors.As(err, &coverErr) {
		return http.StatusBadRequest, api.Error{Code: "cover_too_small", Error: coverErr.Error()}
	}

	var wordsErr *eline.NotEnoughWordsOnPivotLineError
	if errors.As(err, &wordsErr) {
		return http.StatusBadRequest, api.Error{Code: "not_enough_words", Error: wordsErr.Error()}
	}

	return http.StatusInternalServerError, fallback
}
