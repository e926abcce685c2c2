package handlers

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/signflow/internal/application"
	"github.com/linskybing/signflow/internal/domain/document"
	"github.com/linskybing/signflow/pkg/response"
	"go.uber.org/zap"
)

// CheckResponse is the status view returned by the check endpoints.
type CheckResponse struct {
	Success bool `json:"success"`
	*application.StatusView
}

type DocumentHandler struct {
	svc    *application.DocumentService
	status *application.StatusService
	logger *zap.Logger
}

func NewDocumentHandler(svc *application.DocumentService, status *application.StatusService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{svc: svc, status: status, logger: logger}
}

// CreateDocument godoc
// @Summary Upload a document and start the signing chain
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file"
// @Param phones[] formData []string true "Signer phones in signing order" collectionFormat(multi)
// @Param reference_id formData string false "Caller reference"
// @Param use_stempel formData string false "true to request a company stamp"
// @Param callback_url formData string false "URL notified when the document completes or is rejected"
// @Param owner_email formData string false "Owner email for the completion notice"
// @Param cc formData string false "Comma separated CC emails"
// @Success 200 {object} response.DocumentResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /doc/create [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var input document.CreateDocumentDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindErrorMessage(err, application.ErrFileRequired.Error())})
		return
	}

	up, err := formUpload(c, "file")
	if err != nil {
		respondError(c, h.logger, err, "Failed to read uploaded file")
		return
	}
	defer up.Close()

	in := application.CreateDocumentInput{
		Phones:      formPhones(c),
		ReferenceID: input.ReferenceID,
		UseStempel:  document.ParseStempel(input.UseStempel),
		CallbackURL: input.CallbackURL,
		OwnerEmail:  input.OwnerEmail,
		CarbonCopy:  input.CarbonCopy,
	}
	if up != nil {
		in.File = up.file
		in.FileName = up.name
		in.ContentType = up.contentType
		in.Size = up.size
	}

	doc, err := h.svc.CreateDocument(c.Request.Context(), in)
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

// SignDocument godoc
// @Summary Record a signature with the signed file
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Signed file"
// @Param code formData string true "Signer code"
// @Param file_id formData string true "Document file id"
// @Success 200 {object} response.DocumentResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /doc/sign [post]
func (h *DocumentHandler) SignDocument(c *gin.Context) {
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

	res, err := h.svc.RecordSignature(c.Request.Context(), application.SignInput{
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
		FileID:  res.Document.FileID,
		Message: "Document signed successfully",
	})
}

// RejectDocument godoc
// @Summary Reject a document as one of its signers
// @Tags documents
// @Accept x-www-form-urlencoded
// @Produce json
// @Param code formData string true "Signer code"
// @Param file_id formData string true "Document file id"
// @Param reason formData string true "Rejection reason"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /doc/reject [post]
func (h *DocumentHandler) RejectDocument(c *gin.Context) {
	var input document.RejectDocumentDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindErrorMessage(err, application.ErrReasonRequired.Error())})
		return
	}

	if _, err := h.svc.RejectSigner(c.Request.Context(), application.RejectInput{
		Code:   input.Code,
		FileID: input.FileID,
		Reason: input.Reason,
	}); err != nil {
		respondError(c, h.logger, err, "Failed to reject document")
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true, Message: "Signer rejected successfully"})
}

// CheckDocument godoc
// @Summary Signing status of a document as seen by one signer
// @Tags documents
// @Produce json
// @Param code query string true "Signer code"
// @Param file_id query string true "Document file id"
// @Success 200 {object} CheckResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /doc/check [get]
func (h *DocumentHandler) CheckDocument(c *gin.Context) {
	var query document.CheckDocumentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindErrorMessage(err, "Code and file_id are required")})
		return
	}

	view, err := h.status.GetStatus(c.Request.Context(), query.Code, query.FileID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to check document")
		return
	}
	c.JSON(http.StatusOK, CheckResponse{Success: true, StatusView: view})
}

// DownloadFile godoc
// @Summary Download a stored document
// @Tags documents
// @Produce octet-stream
// @Param fileId path string true "Document file id"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /download/{fileId} [get]
func (h *DocumentHandler) DownloadFile(c *gin.Context) {
	rc, info, err := h.svc.Download(c.Request.Context(), c.Param("fileId"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to download file")
		return
	}
	defer rc.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	headers := map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": info.Name}),
	}
	c.DataFromReader(http.StatusOK, info.Size, contentType, rc, headers)
}
