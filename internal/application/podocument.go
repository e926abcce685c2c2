package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/linskybing/signflow/internal/domain/document"
	"github.com/linskybing/signflow/internal/domain/podocument"
	"github.com/linskybing/signflow/internal/notify"
	"github.com/linskybing/signflow/internal/repository"
	"go.uber.org/zap"
)

type CreatePoInput struct {
	File        io.Reader
	FileName    string
	ContentType string
	Size        int64
	Phone       string
	ReferenceID string
}

// PoDocumentService serves the single-signer purchase order flow.
type PoDocumentService struct {
	Repos  *repository.Repos
	deps   Deps
	logger *zap.Logger
}

func NewPoDocumentService(deps Deps) *PoDocumentService {
	deps = deps.withDefaults()
	return &PoDocumentService{
		Repos:  deps.Repos,
		deps:   deps,
		logger: deps.Logger.With(zap.String("service", "podocument")),
	}
}

func (s *PoDocumentService) Create(ctx context.Context, in CreatePoInput) (*podocument.PoDocument, error) {
	if in.File == nil || strings.TrimSpace(in.Phone) == "" {
		return nil, ErrPhoneRequired
	}
	phones, err := normalizePhones(s.deps, []string{in.Phone})
	if err != nil {
		return nil, err
	}

	fileID, err := s.deps.Blobs.Create(ctx, in.FileName, s.deps.Options.PoFolder, in.ContentType, in.File, in.Size)
	if err != nil {
		return nil, fmt.Errorf("upload po document: %w", err)
	}

	doc := &podocument.PoDocument{
		Phone:       phones[0],
		ReferenceID: optional(in.ReferenceID),
		Code:        s.deps.NewCode(),
		FileID:      fileID,
		FileName:    in.FileName,
		DocStatus:   document.DocStatusApproved,
	}
	if err := s.Repos.PoDocument.Create(doc); err != nil {
		return nil, fmt.Errorf("create po document: %w", err)
	}

	body, err := notify.RenderText(s.deps.Templates.PoSignRequestText, map[string]string{
		"FileName": doc.FileName,
		"Sender":   s.deps.Options.SenderLabel,
		"Link":     SignLink(s.deps.Options.SignBaseURL, doc.FileID, doc.Code, false),
	})
	if err != nil {
		return nil, err
	}
	to := doc.Phone
	s.deps.Tasks.Go(notify.WithFileID(ctx, doc.FileID), "po-sign-request", func(ctx context.Context) error {
		return s.deps.Notifier.NotifyText(ctx, to, body)
	})
	return doc, nil
}

func (s *PoDocumentService) Sign(ctx context.Context, in SignInput) (*podocument.PoDocument, error) {
	if in.File == nil {
		return nil, ErrFileRequired
	}
	doc, err := s.Repos.PoDocument.FindUnsignedByCodeAndFileID(in.Code, in.FileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPoNotSignable
		}
		return nil, fmt.Errorf("find po document: %w", err)
	}

	if err := s.deps.Blobs.Update(ctx, doc.FileID, doc.FileName, in.ContentType, in.File, in.Size); err != nil {
		return nil, fmt.Errorf("update po document file: %w", err)
	}

	now := s.deps.Now().UTC()
	if err := s.Repos.PoDocument.MarkSigned(doc.ID, now); err != nil {
		if errors.Is(err, repository.ErrStaleState) {
			return nil, ErrPoNotSignable
		}
		return nil, fmt.Errorf("mark po document signed: %w", err)
	}
	doc.IsSigned = true
	doc.SignedAt = &now
	return doc, nil
}

func (s *PoDocumentService) Reject(ctx context.Context, in RejectInput) (*podocument.PoDocument, error) {
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	doc, err := s.find(in.Code, in.FileID)
	if err != nil {
		return nil, err
	}
	if err := poRejectConflict(doc); err != nil {
		return nil, err
	}

	now := s.deps.Now().UTC()
	if err := s.Repos.PoDocument.MarkRejected(doc.ID, reason, doc.Phone, now); err != nil {
		if !errors.Is(err, repository.ErrStaleState) {
			return nil, fmt.Errorf("mark po document rejected: %w", err)
		}
		latest, findErr := s.find(in.Code, in.FileID)
		if findErr != nil {
			return nil, findErr
		}
		if conflict := poRejectConflict(latest); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("mark po document rejected: %w", err)
	}

	doc.DocStatus = document.DocStatusRejected
	doc.RejectedAt = &now
	doc.RejectReason = &reason
	doc.RejectedBy = &doc.Phone
	return doc, nil
}

// Check projects a po document onto the same status view as the multi
// signer flow, with a single activity entry.
func (s *PoDocumentService) Check(ctx context.Context, code, fileID string) (*StatusView, error) {
	doc, err := s.find(code, fileID)
	if err != nil {
		return nil, err
	}

	sender := s.deps.Options.SenderLabel
	created := formatTimeline(&doc.CreatedAt)
	signature := signatureFalse
	if doc.IsSigned {
		signature = signatureTrue
	}

	message := MessageNotSigned
	switch {
	case doc.IsRejected():
		message = MessageRejected
	case doc.IsSigned:
		message = MessageSigned
	}

	return &StatusView{
		Signature:   doc.IsSigned,
		SignedAt:    doc.SignedAt,
		Status:      doc.DocStatus,
		Reason:      doc.RejectReason,
		PicRejected: doc.RejectedBy,
		Message:     message,
		Datas: map[string]DataSummary{
			fileID: {
				IsSigned:    doc.IsSigned,
				SignedAt:    doc.SignedAt,
				ReferenceID: doc.ReferenceID,
				Phone:       doc.Phone,
			},
		},
		DataDetails: DataDetails{Data: DetailData{
			IDDoc:      fileID,
			NameFile:   doc.FileName,
			Sender:     sender,
			SenderTime: created,
			Activity: []Activity{{
				ID:          doc.Code,
				Signatures:  signature,
				Sender:      sender,
				TimeSender:  created,
				SignatureBy: doc.Phone,
				TimeSigned:  formatTimeline(doc.SignedAt),
			}},
		}},
	}, nil
}

func (s *PoDocumentService) find(code, fileID string) (*podocument.PoDocument, error) {
	doc, err := s.Repos.PoDocument.FindByCodeAndFileID(code, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPoDocumentNotFound
		}
		return nil, fmt.Errorf("find po document: %w", err)
	}
	return doc, nil
}

func poRejectConflict(doc *podocument.PoDocument) error {
	if doc.IsRejected() {
		return ErrPoAlreadyRejected
	}
	if doc.IsSigned {
		return ErrPoAlreadySigned
	}
	return nil
}
