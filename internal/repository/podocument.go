package repository

import (
	"time"

	"github.com/linskybing/signflow/internal/domain/document"
	"github.com/linskybing/signflow/internal/domain/podocument"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/mock_podocument.go -package=mock github.com/linskybing/signflow/internal/repository PoDocumentRepo
type PoDocumentRepo interface {
	Create(doc *podocument.PoDocument) error
	FindByCodeAndFileID(code, fileID string) (*podocument.PoDocument, error)
	FindUnsignedByCodeAndFileID(code, fileID string) (*podocument.PoDocument, error)
	MarkSigned(id uint, at time.Time) error
	MarkRejected(id uint, reason, rejectedBy string, at time.Time) error
	WithTx(tx *gorm.DB) PoDocumentRepo
}

type DBPoDocumentRepo struct {
	db *gorm.DB
}

func NewPoDocumentRepo(db *gorm.DB) *DBPoDocumentRepo {
	return &DBPoDocumentRepo{
		db: db,
	}
}

func (r *DBPoDocumentRepo) Create(doc *podocument.PoDocument) error {
	return r.db.Create(doc).Error
}

func (r *DBPoDocumentRepo) FindByCodeAndFileID(code, fileID string) (*podocument.PoDocument, error) {
	var doc podocument.PoDocument
	if err := r.db.Where("code = ? AND file_id = ?", code, fileID).First(&doc).Error; err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

func (r *DBPoDocumentRepo) FindUnsignedByCodeAndFileID(code, fileID string) (*podocument.PoDocument, error) {
	var doc podocument.PoDocument
	err := r.db.Where("code = ? AND file_id = ? AND is_signed = ? AND rejected_at IS NULL", code, fileID, false).
		First(&doc).Error
	if err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

func (r *DBPoDocumentRepo) MarkSigned(id uint, at time.Time) error {
	res := r.db.Model(&podocument.PoDocument{}).
		Where("id = ? AND is_signed = ? AND rejected_at IS NULL", id, false).
		Updates(map[string]any{
			"is_signed": true,
			"signed_at": at,
		})
	return affected(res)
}

func (r *DBPoDocumentRepo) MarkRejected(id uint, reason, rejectedBy string, at time.Time) error {
	res := r.db.Model(&podocument.PoDocument{}).
		Where("id = ? AND is_signed = ? AND doc_status = ?", id, false, document.DocStatusApproved).
		Updates(map[string]any{
			"doc_status":    document.DocStatusRejected,
			"rejected_at":   at,
			"reject_reason": reason,
			"rejected_by":   rejectedBy,
		})
	return affected(res)
}

func (r *DBPoDocumentRepo) WithTx(tx *gorm.DB) PoDocumentRepo {
	if tx == nil {
		return r
	}
	return &DBPoDocumentRepo{
		db: tx,
	}
}
