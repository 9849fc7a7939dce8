package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bluebears-dev/ptero-cli-sub000/api"
	"github.com/bluebears-dev/ptero-cli-sub000/internal/logging"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/eline"
)

// DecodeTextHandler godoc
//
// @Summary Reveal data previously concealed in stego text
// @Description This endpoint will recover the data hidden in the supplied stego text. The pivot, variant and charset must match the values used at encode time. Without payload_length the recovered data may carry trailing zero padding
// @Tags text
// @Accept json
// @Produce json
// @Param requestBody body api.DecodeTextRequest true "Body with stego text and the method configuration used at encode time"
// @Success 200 {object} api.DecodeTextResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /decode/text [post]
func DecodeTextHandler(ctx *gin.Context) {
	var requestBody api.DecodeTextRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing text decode request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	textConfig, err := buildTextConfig(requestBody.Pivot, requestBody.Variant, requestBody.Charset, nil)
	if err != nil {
		logger.WithError(err).Error("Invalid method configuration")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidConfig)
		return
	}

	decoder, err := eline.NewDecoder(textConfig)
	if err != nil {
		logger.WithError(err).Error("Invalid method configuration")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidConfig)
		return
	}

	data, err := decoder.Reveal(requestBody.StegoText)
	if err != nil {
		logger.WithError(err).Error("Error revealing data from text")
		ctx.AbortWithStatusJSON(engineErrorResponse(err, errDecode))
		return
	}

	if requestBody.PayloadLength > 0 && requestBody.PayloadLength < len(data) {
		data = data[:requestBody.PayloadLength]
	}

	logger.With("stats", toHumanizedDecodeStats(decoder.Stats())).Info("Text decoding was successful")

	ctx.JSON(http.StatusOK, api.DecodeTextResponse{
		Data:  data,
		Stats: decoder.Stats(),
	})
}
