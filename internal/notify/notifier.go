// Package notify delivers workflow notifications to signers and document
// owners over the messaging gateway, email and HTTP callbacks.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/linskybing/signflow/pkg/messaging"
)

//go:generate mockgen -destination=mock/mock_notify.go -package=mock github.com/linskybing/signflow/internal/notify Notifier,CallbackPoster
type Notifier interface {
	NotifySignRequest(ctx context.Context, phone, fileName, senderLabel, signLink string) error
	NotifyCompletion(ctx context.Context, ownerEmail string, ccEmails []string, fileName, downloadLink string) error
	NotifyRejection(ctx context.Context, ownerEmail, fileName, reason, rejectorLabel string, alreadySignedPhones []string) error
	NotifyText(ctx context.Context, phone, body string) error
}

// CallbackEvent is the JSON body posted to a document's callback URL once
// it reaches a terminal state.
type CallbackEvent struct {
	FileID      string     `json:"file_id"`
	ReferenceID *string    `json:"reference_id"`
	Status      string     `json:"status"`
	IsSigned    bool       `json:"is_signed"`
	SignedAt    *time.Time `json:"signed_at"`
	Reason      *string    `json:"reason"`
	RejectedBy  *string    `json:"rejected_by"`
}

type CallbackPoster interface {
	PostCallback(ctx context.Context, url string, event CallbackEvent) error
}

// MessageSender is the subset of the messaging client the dispatcher uses.
type MessageSender interface {
	SendTemplate(ctx context.Context, to string, tpl messaging.Template, params ...string) (json.RawMessage, error)
	SendText(ctx context.Context, to, body string) (json.RawMessage, error)
}

type fileIDKey struct{}

// WithFileID tags ctx so delivery logs can be traced back to a document.
func WithFileID(ctx context.Context, fileID string) context.Context {
	return context.WithValue(ctx, fileIDKey{}, fileID)
}

func fileIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(fileIDKey{}).(string)
	return v
}
