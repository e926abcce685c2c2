package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Document     DocumentRepo
	PoDocument   PoDocumentRepo
	Notification NotificationRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Document:     NewDocumentRepo(db),
		PoDocument:   NewPoDocumentRepo(db),
		Notification: NewNotificationRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Document:     r.Document.WithTx(tx),
		PoDocument:   r.PoDocument.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside one transaction; any error or panic rolls back.
// Repos built from mocks (no db) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
