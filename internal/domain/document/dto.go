package document

import "strings"

type CreateDocumentDTO struct {
	ReferenceID string `form:"reference_id"`
	UseStempel  string `form:"use_stempel"`
	CallbackURL string `form:"callback_url" binding:"omitempty,url"`
	OwnerEmail  string `form:"owner_email" binding:"omitempty,email"`
	CarbonCopy  string `form:"cc"`
}

type SignDocumentDTO struct {
	Code   string `form:"code" binding:"required"`
	FileID string `form:"file_id" binding:"required"`
}

type RejectDocumentDTO struct {
	Code   string `form:"code" binding:"required"`
	FileID string `form:"file_id" binding:"required"`
	Reason string `form:"reason" binding:"required"`
}

type CheckDocumentQuery struct {
	Code   string `form:"code" binding:"required"`
	FileID string `form:"file_id" binding:"required"`
}

type SendPendingLinksDTO struct {
	Phone string `json:"phone" form:"phone" binding:"required"`
}

// ParseStempel accepts "true"/"1" in any case; anything else is false.
func ParseStempel(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1"
}
