package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bluebears-dev/ptero-cli-sub000/api"
	"github.com/bluebears-dev/ptero-cli-sub000/internal/logging"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/eline"
)

// EncodeTextHandler godoc
//
// @Summary Conceal data inside the supplied cover text
// @Description This endpoint will hide the supplied data in the cover text by modulating line wrapping and whitespace, and return the resulting stego text. The pivot, variant and charset must be remembered to reveal the data later
// @Tags text
// @Accept json
// @Produce json
// @Param requestBody body api.EncodeTextRequest true "Body with cover text, data to hide and the method configuration"
// @Success 200 {object} api.EncodeTextResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode/text [post]
func EncodeTextHandler(ctx *gin.Context) {
	var requestBody api.EncodeTextRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing text encode request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	textConfig, err := buildTextConfig(requestBody.Pivot, requestBody.Variant, requestBody.Charset, requestBody.Seed)
	if err != nil {
		logger.WithError(err).Error("Invalid method configuration")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidConfig)
		return
	}

	encoder, err := eline.NewEncoder(textConfig)
	if err != nil {
		logger.WithError(err).Error("Invalid method configuration")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidConfig)
		return
	}

	var bitsWritten int
	encoder.Subscribe(eline.ObserverFunc(func(event eline.Event) {
		if event.Kind == eline.DataWritten {
			bitsWritten = event.BitsWritten
		}
	}))

	stegoText, err := encoder.Conceal(requestBody.CoverText, requestBody.Data)
	if err != nil {
		logger.WithError(err).Error("Error concealing data in text")
		ctx.AbortWithStatusJSON(engineErrorResponse(err, errEncode))
		return
	}

	logger.With("stats", toHumanizedEncodeStats(encoder.Stats())).Info("Text encoding was successful")

	ctx.JSON(http.StatusOK, api.EncodeTextResponse{
		StegoText:   stegoText,
		BitsWritten: bitsWritten,
		Stats:       encoder.Stats(),
	})
}
