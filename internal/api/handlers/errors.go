package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/signflow/internal/application"
	"github.com/linskybing/signflow/pkg/response"
	"go.uber.org/zap"
)

var fieldLabels = map[string]string{
	"Code":        "code",
	"FileID":      "file_id",
	"Reason":      "reason",
	"Phone":       "phone",
	"CallbackURL": "callback_url",
	"OwnerEmail":  "owner_email",
	"ReferenceID": "reference_id",
}

// respondError maps a service error onto its HTTP status. Anything that is
// not a known workflow error is logged and hidden behind fallback.
func respondError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	switch application.KindOf(err) {
	case application.KindValidation, application.KindConflict:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case application.KindNotFound:
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback,
			zap.String("request_id", c.GetString("request_id")),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: fallback})
	}
}

// bindErrorMessage turns binding failures into something a client can show.
// Missing fields collapse into requiredMsg.
func bindErrorMessage(err error, requiredMsg string) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return requiredMsg
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := fieldLabels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		switch fe.Tag() {
		case "required":
			return requiredMsg
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", lbl))
		case "url":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid URL", lbl))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", lbl))
		}
	}
	return strings.Join(msgs, "; ")
}
