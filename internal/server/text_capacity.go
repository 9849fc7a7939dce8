package server

import (
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/bluebears-dev/ptero-cli-sub000/api"
	"github.com/bluebears-dev/ptero-cli-sub000/internal/logging"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/eline"
)

// CapacityTextHandler godoc
//
// @Summary Estimate how much payload a cover text can carry
// @Description This endpoint counts the lines the cover text would produce under the given pivot and multiplies by the method's per-line bitrate, estimating the maximum payload size before attempting an encode
// @Tags text
// @Accept json
// @Produce json
// @Param requestBody body api.CapacityTextRequest true "Body with cover text, pivot and charset"
// @Success 200 {object} api.CapacityTextResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /capacity/text [post]
func CapacityTextHandler(ctx *gin.Context) {
	var requestBody api.CapacityTextRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing text capacity request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	textConfig, err := buildTextConfig(requestBody.Pivot, "", requestBody.Charset, nil)
	if err != nil {
		logger.WithError(err).Error("Invalid method configuration")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidConfig)
		return
	}

	report, err := eline.Capacity(requestBody.CoverText, textConfig)
	if err != nil {
		logger.WithError(err).Error("Error estimating cover capacity")
		ctx.AbortWithStatusJSON(engineErrorResponse(err, errEncode))
		return
	}

	ctx.JSON(http.StatusOK, api.CapacityTextResponse{
		CapacityReport:    report,
		PayloadBytesHuman: humanize.Bytes(uint64(report.PayloadBytes)),
	})
}
