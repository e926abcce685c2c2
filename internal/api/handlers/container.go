package handlers

import (
	"github.com/linskybing/signflow/internal/application"
	"go.uber.org/zap"
)

type Handlers struct {
	Document     *DocumentHandler
	PoDocument   *PoDocumentHandler
	Sweep        *SweepHandler
	StatusStream *StatusStreamHandler
	Notification *NotificationHandler
	Health       *HealthHandler
}

func New(svc *application.Services, db Pinger, allowOrigin func(origin string) bool, logger *zap.Logger) *Handlers {
	logger = logger.With(zap.String("component", "http"))
	h := &Handlers{
		Document:     NewDocumentHandler(svc.Document, svc.Status, logger),
		PoDocument:   NewPoDocumentHandler(svc.PoDocument, logger),
		Sweep:        NewSweepHandler(svc.Sweep, logger),
		StatusStream: NewStatusStreamHandler(svc.Status, allowOrigin, logger),
		Notification: NewNotificationHandler(svc.Notification, logger),
		Health:       NewHealthHandler(db, logger),
	}
	return h
}
