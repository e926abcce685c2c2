package repository

import (
	"time"

	"github.com/linskybing/signflow/internal/domain/document"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -destination=mock/mock_document.go -package=mock github.com/linskybing/signflow/internal/repository DocumentRepo
type DocumentRepo interface {
	CreateDocument(doc *document.Document) error
	CreateSigner(signer *document.Signer) error
	FindSignerByCode(code string) (*document.Signer, error)
	FindByID(id uint) (*document.Document, error)
	FindByFileID(fileID string) (*document.Document, error)
	LockDocument(id uint) error
	MarkSignerSigned(id uint, at time.Time) error
	MarkSignerRejected(id uint, at time.Time) error
	MarkDocumentSigned(id uint, at time.Time) error
	MarkDocumentRejected(id uint, reason, rejectedBy string, at time.Time) error
	ListPendingSignersByPhone(phone string) ([]document.Signer, error)
	WithTx(tx *gorm.DB) DocumentRepo
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{
		db: db,
	}
}

func orderedSigners(db *gorm.DB) *gorm.DB {
	return db.Order("signers.id ASC")
}

// CreateDocument inserts the document row only; signers are created one by
// one so callers control ordering inside their transaction.
func (r *DBDocumentRepo) CreateDocument(doc *document.Document) error {
	return r.db.Omit("Signers").Create(doc).Error
}

func (r *DBDocumentRepo) CreateSigner(signer *document.Signer) error {
	return r.db.Create(signer).Error
}

func (r *DBDocumentRepo) FindSignerByCode(code string) (*document.Signer, error) {
	var s document.Signer
	if err := r.db.Where("code = ?", code).First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *DBDocumentRepo) FindByID(id uint) (*document.Document, error) {
	var doc document.Document
	if err := r.db.Preload("Signers", orderedSigners).First(&doc, id).Error; err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

func (r *DBDocumentRepo) FindByFileID(fileID string) (*document.Document, error) {
	var doc document.Document
	if err := r.db.Preload("Signers", orderedSigners).Where("file_id = ?", fileID).First(&doc).Error; err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

// LockDocument takes a row lock on the document until the surrounding
// transaction ends. Signer transitions on one document are serialised
// through it.
func (r *DBDocumentRepo) LockDocument(id uint) error {
	var doc document.Document
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&doc, id).Error
	return translate(err)
}

func (r *DBDocumentRepo) MarkSignerSigned(id uint, at time.Time) error {
	res := r.db.Model(&document.Signer{}).
		Where("id = ? AND status = ?", id, document.SignerStatusPending).
		Updates(map[string]any{
			"status":    document.SignerStatusSigned,
			"signed_at": at,
		})
	return affected(res)
}

func (r *DBDocumentRepo) MarkSignerRejected(id uint, at time.Time) error {
	res := r.db.Model(&document.Signer{}).
		Where("id = ? AND status = ?", id, document.SignerStatusPending).
		Updates(map[string]any{
			"status":      document.SignerStatusRejected,
			"rejected_at": at,
		})
	return affected(res)
}

func (r *DBDocumentRepo) MarkDocumentSigned(id uint, at time.Time) error {
	res := r.db.Model(&document.Document{}).
		Where("id = ? AND is_signed = ? AND doc_status = ?", id, false, document.DocStatusApproved).
		Updates(map[string]any{
			"is_signed": true,
			"signed_at": at,
		})
	return affected(res)
}

func (r *DBDocumentRepo) MarkDocumentRejected(id uint, reason, rejectedBy string, at time.Time) error {
	res := r.db.Model(&document.Document{}).
		Where("id = ? AND is_signed = ? AND doc_status = ?", id, false, document.DocStatusApproved).
		Updates(map[string]any{
			"doc_status":    document.DocStatusRejected,
			"rejected_at":   at,
			"reject_reason": reason,
			"rejected_by":   rejectedBy,
		})
	return affected(res)
}

// ListPendingSignersByPhone returns pending signers of open documents for a
// phone, oldest first. Whether it is actually their turn is decided by the
// caller against the full document.
func (r *DBDocumentRepo) ListPendingSignersByPhone(phone string) ([]document.Signer, error) {
	var signers []document.Signer
	err := r.db.Model(&document.Signer{}).
		Select("signers.*").
		Joins("JOIN documents ON documents.id = signers.document_id").
		Where("signers.phone = ? AND signers.status = ?", phone, document.SignerStatusPending).
		Where("documents.doc_status = ? AND documents.is_signed = ?", document.DocStatusApproved, false).
		Order("signers.id ASC").
		Find(&signers).Error
	return signers, err
}

func (r *DBDocumentRepo) WithTx(tx *gorm.DB) DocumentRepo {
	if tx == nil {
		return r
	}
	return &DBDocumentRepo{
		db: tx,
	}
}
