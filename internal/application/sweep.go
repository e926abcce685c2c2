package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/signflow/internal/domain/document"
	"github.com/linskybing/signflow/internal/notify"
	"github.com/linskybing/signflow/internal/repository"
	"go.uber.org/zap"
)

// SweepService re-sends sign links to a signer for every document that is
// currently waiting on them.
type SweepService struct {
	Repos  *repository.Repos
	deps   Deps
	logger *zap.Logger
}

func NewSweepService(deps Deps) *SweepService {
	deps = deps.withDefaults()
	return &SweepService{
		Repos:  deps.Repos,
		deps:   deps,
		logger: deps.Logger.With(zap.String("service", "sweep")),
	}
}

// Trigger validates phone and starts the sweep in the background. It
// returns as soon as the sweep is scheduled.
func (s *SweepService) Trigger(ctx context.Context, phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", ErrPhonesRequired
	}
	phones, err := normalizePhones(s.deps, []string{phone})
	if err != nil {
		return "", err
	}
	normalized := phones[0]

	s.deps.Tasks.Go(ctx, "pending-links", func(ctx context.Context) error {
		sent, err := s.SendPendingLinks(ctx, normalized)
		s.logger.Info("pending links sweep finished", zap.String("phone", normalized), zap.Int("sent", sent))
		return err
	})
	return normalized, nil
}

// SendPendingLinks messages phone one link per document where it is their
// turn to sign, or a single "nothing to sign" message. phone must already
// be normalized.
func (s *SweepService) SendPendingLinks(ctx context.Context, phone string) (int, error) {
	signers, err := s.Repos.Document.ListPendingSignersByPhone(phone)
	if err != nil {
		return 0, fmt.Errorf("list pending signers: %w", err)
	}

	docs := make(map[uint]*document.Document)
	sent := 0
	var errs []error
	for _, signer := range signers {
		doc, ok := docs[signer.DocumentID]
		if !ok {
			doc, err = s.Repos.Document.FindByID(signer.DocumentID)
			if err != nil {
				errs = append(errs, fmt.Errorf("load document %d: %w", signer.DocumentID, err))
				continue
			}
			docs[signer.DocumentID] = doc
		}
		if !doc.IsCurrent(signer.ID) {
			continue
		}

		body, err := notify.RenderText(s.deps.Templates.PendingLinkText, map[string]string{
			"FileName": doc.FileName,
			"Link":     SignLink(s.deps.Options.SignBaseURL, doc.FileID, signer.Code, doc.UseStempel),
		})
		if err != nil {
			return sent, err
		}
		if err := s.deps.Notifier.NotifyText(notify.WithFileID(ctx, doc.FileID), phone, body); err != nil {
			if ctx.Err() != nil {
				return sent, errors.Join(append(errs, err)...)
			}
			errs = append(errs, err)
			continue
		}
		sent++
	}

	if sent == 0 && len(errs) == 0 {
		if err := s.deps.Notifier.NotifyText(ctx, phone, s.deps.Templates.NoPendingText); err != nil {
			errs = append(errs, err)
		}
	}
	return sent, errors.Join(errs...)
}
