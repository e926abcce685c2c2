package repository

import (
	"time"

	"github.com/linskybing/signflow/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationQueryParams struct {
	Recipient *string
	FileID    *string
	Channel   *notification.Channel
	Limit     int
	Offset    int
}

//go:generate mockgen -destination=mock/mock_notification.go -package=mock github.com/linskybing/signflow/internal/repository NotificationRepo
type NotificationRepo interface {
	Create(entry *notification.NotificationLog) error
	List(params NotificationQueryParams) ([]notification.NotificationLog, error)
	DeleteOlderThan(retentionDays int) (int64, error)
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{
		db: db,
	}
}

func (r *DBNotificationRepo) Create(entry *notification.NotificationLog) error {
	return r.db.Create(entry).Error
}

func (r *DBNotificationRepo) List(params NotificationQueryParams) ([]notification.NotificationLog, error) {
	var logs []notification.NotificationLog
	query := r.db.Model(&notification.NotificationLog{})

	if params.Recipient != nil {
		query = query.Where("recipient = ?", *params.Recipient)
	}
	if params.FileID != nil {
		query = query.Where("file_id = ?", *params.FileID)
	}
	if params.Channel != nil {
		query = query.Where("channel = ?", *params.Channel)
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Find(&logs).Error
	return logs, err
}

func (r *DBNotificationRepo) DeleteOlderThan(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res := r.db.Where("created_at < ?", cutoff).Delete(&notification.NotificationLog{})
	return res.RowsAffected, res.Error
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{
		db: tx,
	}
}
