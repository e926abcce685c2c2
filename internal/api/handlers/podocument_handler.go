package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/signflow/internal/application"
	"github.com/linskybing/signflow/internal/domain/document"
	"github.com/linskybing/signflow/internal/domain/podocument"
	"github.com/linskybing/signflow/pkg/response"
	"go.uber.org/zap"
)

type PoDocumentHandler struct {
	svc    *application.PoDocumentService
	logger *zap.Logger
}

func NewPoDocumentHandler(svc *application.PoDocumentService, logger *zap.Logger) *PoDocumentHandler {
	return &PoDocumentHandler{svc: svc, logger: logger}
}

// CreatePoDocument godoc
// @Summary Upload a single-signer purchase order
// @Tags po
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file"
// @Param phone formData string true "Signer phone"
// @Param reference_id formData string false "Caller reference"
// @Success 200 {object} response.DocumentResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /po/doc/create [post]
func (h *PoDocumentHandler) CreatePoDocument(c *gin.Context) {
	var input podocument.CreatePoDocumentDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindErrorMessage(err, application.ErrPhoneRequired.Error())})
		return
	}

	up, err := formUpload(c, "file")
	if err != nil {
		respondError(c, h.logger, err, "Failed to read uploaded file")
		return
	}
	if up == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: application.ErrPhoneRequired.Error()})
		return
	}
	defer up.Close()

	doc, err := h.svc.Create(c.Request.Context(), application.CreatePoInput{
		File:        up.file,
		FileName:    up.name,
		ContentType: up.contentType,
		Size:        up.size,
		Phone:       input.Phone,
		ReferenceID: input.ReferenceID,
	})
	if err != nil {
		respondError(c, h.logger, err, "Failed to create document")
		return
	}
	c.JSON(http.StatusOK, response.DocumentResponse{
		Success: true,
		FileID:  doc.FileID,
		Message: "Document created successfully",
	})
}

// SignPoDocument godoc
// @Summary Sign a purchase order
// @Tags po
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Signed file"
// @Param code formData string true "Signer code"
// @Param file_id formData string true "Document file id"
// @Success 200 {object} response.DocumentResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /po/doc/sign [post]
func (h *PoDocumentHandler) SignPoDocument(c *gin.Context) {
	const required = "File, code, and file_id are required"

	var input document.SignDocumentDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindErrorMessage(err, required)})
		return
	}

	up, err := formUpload(c, "file")
	if err != nil {
		respondError(c, h.logger, err, "Failed to read uploaded file")
		return
	}
	if up == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: required})
		return
	}
	defer up.Close()

	doc, err := h.svc.Sign(c.Request.Context(), application.SignInput{
		Code:        input.Code,
		FileID:      input.FileID,
		File:        up.file,
		ContentType: up.contentType,
		Size:        up.size,
	})
	if err != nil {
		respondError(c, h.logger, err, "Failed to sign document")
		return
	}
	c.JSON(http.StatusOK, response.DocumentResponse{
		Success: true,
		FileID:  doc.FileID,
		Message: "Document signed successfully",
	})
}

// RejectPoDocument godoc
// @Summary Reject a purchase order
// @Tags po
// @Accept x-www-form-urlencoded
// @Produce json
// @Param code formData string true "Signer code"
// @Param file_id formData string true "Document file id"
// @Param reason formData string true "Rejection reason"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /po/doc/reject [post]
func (h *PoDocumentHandler) RejectPoDocument(c *gin.Context) {
	var input document.RejectDocumentDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindErrorMessage(err, application.ErrReasonRequired.Error())})
		return
	}

	if _, err := h.svc.Reject(c.Request.Context(), application.RejectInput{
		Code:   input.Code,
		FileID: input.FileID,
		Reason: input.Reason,
	}); err != nil {
		respondError(c, h.logger, err, "Failed to reject document")
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true, Message: "Document rejected successfully"})
}

// CheckPoDocument godoc
// @Summary Signing status of a purchase order
// @Tags po
// @Produce json
// @Param code query string true "Signer code"
// @Param file_id query string true "Document file id"
// @Success 200 {object} CheckResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /po/doc/check [get]
func (h *PoDocumentHandler) CheckPoDocument(c *gin.Context) {
	var query document.CheckDocumentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindErrorMessage(err, "Code and file_id are required")})
		return
	}

	view, err := h.svc.Check(c.Request.Context(), query.Code, query.FileID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to check document")
		return
	}
	c.JSON(http.StatusOK, CheckResponse{Success: true, StatusView: view})
}
