package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/linskybing/signflow/internal/domain/document"
	"github.com/linskybing/signflow/internal/repository"
	"go.uber.org/zap"
)

const (
	MessageRejected  = "document has been rejected"
	MessageSigned    = "Document has been signed."
	MessageNotSigned = "Document is not yet signed."

	signatureTrue  = "TRUE"
	signatureFalse = "FALSE"

	timelineLayout = "2006-01-02T15:04:05.000Z"
)

type Activity struct {
	ID          string `json:"id"`
	Signatures  string `json:"signatures"`
	Sender      string `json:"sender"`
	TimeSender  string `json:"timeSender"`
	SignatureBy string `json:"signatureBy"`
	TimeSigned  string `json:"timeSigned"`
}

type DetailData struct {
	IDDoc      string     `json:"idDoc"`
	NameFile   string     `json:"nameFile"`
	Sender     string     `json:"sender"`
	SenderTime string     `json:"senderTime"`
	CarbonCopy string     `json:"carbonCopy"`
	Activity   []Activity `json:"activity"`
}

type DataDetails struct {
	Data DetailData `json:"data"`
}

type DataSummary struct {
	IsSigned    bool       `json:"is_signed"`
	SignedAt    *time.Time `json:"signed_at"`
	ReferenceID *string    `json:"reference_id"`
	Phones      []string   `json:"phones,omitempty"`
	Phone       string     `json:"phone,omitempty"`
}

// StatusView is the read model returned by the check endpoints.
type StatusView struct {
	Signature   bool                   `json:"signature"`
	SignedAt    *time.Time             `json:"signed_at"`
	Status      document.DocStatus     `json:"status"`
	Reason      *string                `json:"reason"`
	PicRejected *string                `json:"picRejected"`
	Message     string                 `json:"message"`
	Datas       map[string]DataSummary `json:"datas"`
	DataDetails DataDetails            `json:"dataDetails"`
}

type StatusService struct {
	Repos        *repository.Repos
	sender       string
	pollInterval time.Duration
	logger       *zap.Logger
}

func NewStatusService(deps Deps) *StatusService {
	deps = deps.withDefaults()
	return &StatusService{
		Repos:        deps.Repos,
		sender:       deps.Options.SenderLabel,
		pollInterval: deps.Options.PollInterval,
		logger:       deps.Logger.With(zap.String("service", "status")),
	}
}

// GetStatus builds the status of the document behind code and fileID as
// seen by that signer. It never writes.
func (s *StatusService) GetStatus(ctx context.Context, code, fileID string) (*StatusView, error) {
	signer, doc, err := lookupSigner(s.Repos.Document, code, fileID)
	if err != nil {
		return nil, err
	}

	isSigned := signer.Status == document.SignerStatusSigned
	var signedAt *time.Time
	if isSigned {
		signedAt = signer.SignedAt
	}

	phones := make([]string, 0, len(doc.Signers))
	for _, sg := range doc.Signers {
		phones = append(phones, sg.Phone)
	}

	message := MessageNotSigned
	switch {
	case doc.IsRejected() || doc.AnyRejected():
		message = MessageRejected
	case isSigned:
		message = MessageSigned
	}

	return &StatusView{
		Signature:   isSigned,
		SignedAt:    signedAt,
		Status:      doc.DocStatus,
		Reason:      doc.RejectReason,
		PicRejected: doc.RejectedBy,
		Message:     message,
		Datas: map[string]DataSummary{
			fileID: {
				IsSigned:    isSigned,
				SignedAt:    signedAt,
				ReferenceID: doc.ReferenceID,
				Phones:      phones,
			},
		},
		DataDetails: DataDetails{Data: DetailData{
			IDDoc:      fileID,
			NameFile:   doc.FileName,
			Sender:     s.sender,
			SenderTime: formatTimeline(&doc.CreatedAt),
			CarbonCopy: doc.CarbonCopy,
			Activity:   BuildTimeline(doc, s.sender),
		}},
	}, nil
}

// BuildTimeline lists one activity per signer in signing order. A step
// becomes current exactly when the previous step finished; the first one
// when the document was created.
func BuildTimeline(doc *document.Document, sender string) []Activity {
	activity := make([]Activity, 0, len(doc.Signers))
	becameCurrent := formatTimeline(&doc.CreatedAt)

	for _, sg := range doc.Signers {
		finished := ""
		signature := signatureFalse
		switch sg.Status {
		case document.SignerStatusSigned:
			finished = formatTimeline(sg.SignedAt)
			signature = signatureTrue
		case document.SignerStatusRejected:
			finished = formatTimeline(sg.RejectedAt)
		}

		activity = append(activity, Activity{
			ID:          sg.Code,
			Signatures:  signature,
			Sender:      sender,
			TimeSender:  becameCurrent,
			SignatureBy: sg.Phone,
			TimeSigned:  finished,
		})
		becameCurrent = finished
	}
	return activity
}

func formatTimeline(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(timelineLayout)
}

// Watch sends the current view, then every changed view until ctx is done
// or send fails.
func (s *StatusService) Watch(ctx context.Context, code, fileID string, send func(*StatusView) error) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	var last []byte
	for {
		view, err := s.GetStatus(ctx, code, fileID)
		if err != nil {
			return err
		}
		encoded, err := json.Marshal(view)
		if err != nil {
			return fmt.Errorf("encode status: %w", err)
		}
		if !bytes.Equal(encoded, last) {
			if err := send(view); err != nil {
				return err
			}
			if last != nil {
				s.logger.Debug("status changed", zap.String("file_id", fileID))
			}
			last = encoded
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
