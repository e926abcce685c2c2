package application

import (
	"github.com/linskybing/signflow/internal/domain/notification"
	"github.com/linskybing/signflow/internal/repository"
)

type NotificationService struct {
	Repos *repository.Repos
}

func NewNotificationService(repos *repository.Repos) *NotificationService {
	return &NotificationService{
		Repos: repos,
	}
}

func (s *NotificationService) ListLogs(params repository.NotificationQueryParams) ([]notification.NotificationLog, error) {
	if params.Limit <= 0 || params.Limit > 500 {
		params.Limit = 100
	}
	return s.Repos.Notification.List(params)
}

// CleanupOldLogs deletes delivery logs older than retentionDays.
func (s *NotificationService) CleanupOldLogs(retentionDays int) (int64, error) {
	return s.Repos.Notification.DeleteOlderThan(retentionDays)
}
