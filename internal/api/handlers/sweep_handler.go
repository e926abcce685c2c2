package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/signflow/internal/application"
	"github.com/linskybing/signflow/internal/domain/document"
	"github.com/linskybing/signflow/pkg/response"
	"go.uber.org/zap"
)

type SweepHandler struct {
	svc    *application.SweepService
	logger *zap.Logger
}

func NewSweepHandler(svc *application.SweepService, logger *zap.Logger) *SweepHandler {
	return &SweepHandler{svc: svc, logger: logger}
}

// SendPendingLinks godoc
// @Summary Resend every sign link waiting on a phone
// @Description Returns as soon as the sweep is scheduled; messages go out in the background.
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body document.SendPendingLinksDTO true "Signer phone"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /doc/send-pending-links [post]
func (h *SweepHandler) SendPendingLinks(c *gin.Context) {
	var input document.SendPendingLinksDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindErrorMessage(err, "Phone is required")})
		return
	}

	phone, err := h.svc.Trigger(c.Request.Context(), input.Phone)
	if err != nil {
		respondError(c, h.logger, err, "Failed to send pending links")
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Sending pending sign links to " + phone})
}
