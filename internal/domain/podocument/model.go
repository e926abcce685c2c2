// Package podocument is the older single-signer document shape, kept for
// clients of the legacy purchase-order endpoints.
package podocument

import (
	"time"

	"github.com/linskybing/signflow/internal/domain/document"
)

type PoDocument struct {
	ID           uint               `json:"id" gorm:"primaryKey"`
	Phone        string             `json:"phone" gorm:"size:32;not null"`
	ReferenceID  *string            `json:"reference_id" gorm:"size:255"`
	Code         string             `json:"code" gorm:"size:20;not null;uniqueIndex"`
	FileID       string             `json:"file_id" gorm:"size:255;not null;index"`
	FileName     string             `json:"file_name" gorm:"size:255;not null"`
	IsSigned     bool               `json:"is_signed" gorm:"not null;default:false"`
	SignedAt     *time.Time         `json:"signed_at"`
	DocStatus    document.DocStatus `json:"doc_status" gorm:"size:16;not null;default:'approved'"`
	RejectedAt   *time.Time         `json:"rejected_at"`
	RejectReason *string            `json:"reject_reason" gorm:"type:text"`
	RejectedBy   *string            `json:"rejected_by" gorm:"size:32"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (PoDocument) TableName() string {
	return "po_documents"
}

func (p *PoDocument) IsRejected() bool {
	return p.DocStatus == document.DocStatusRejected
}

type CreatePoDocumentDTO struct {
	Phone       string `form:"phone" binding:"required"`
	ReferenceID string `form:"reference_id"`
}
