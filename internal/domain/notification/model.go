package notification

import (
	"time"

	"gorm.io/datatypes"
)

type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
	ChannelCallback Channel = "callback"
)

type Status string

const (
	StatusSent   Status = "sent"
	StatusFailed Status = "failed"
)

// NotificationLog records one outbound delivery attempt and whatever the
// gateway answered.
type NotificationLog struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Channel   Channel        `json:"channel" gorm:"size:16;not null;index"`
	Recipient string         `json:"recipient" gorm:"size:255;not null;index"`
	Template  string         `json:"template" gorm:"size:128"`
	FileID    string         `json:"file_id" gorm:"size:255;index"`
	Status    Status         `json:"status" gorm:"size:16;not null"`
	Error     string         `json:"error" gorm:"type:text"`
	Receipt   datatypes.JSON `json:"receipt"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
}
