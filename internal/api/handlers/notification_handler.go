package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/signflow/internal/application"
	"github.com/linskybing/signflow/internal/domain/notification"
	"github.com/linskybing/signflow/internal/repository"
	"github.com/linskybing/signflow/pkg/response"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	svc    *application.NotificationService
	logger *zap.Logger
}

func NewNotificationHandler(svc *application.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, logger: logger}
}

// ListNotifications godoc
// @Summary Query outbound notification logs
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param file_id query string false "Filter by document file id"
// @Param recipient query string false "Filter by recipient"
// @Param channel query string false "whatsapp, email or callback"
// @Param limit query int false "Max results (default 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} notification.NotificationLog
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	var params repository.NotificationQueryParams

	if v := c.Query("file_id"); v != "" {
		params.FileID = &v
	}
	if v := c.Query("recipient"); v != "" {
		params.Recipient = &v
	}
	if v := c.Query("channel"); v != "" {
		ch := notification.Channel(v)
		switch ch {
		case notification.ChannelWhatsApp, notification.ChannelEmail, notification.ChannelCallback:
		default:
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "channel must be one of [whatsapp email callback]"})
			return
		}
		params.Channel = &ch
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			params.Offset = n
		}
	}

	logs, err := h.svc.ListLogs(params)
	if err != nil {
		respondError(c, h.logger, err, "Failed to query notification logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}
