package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/linskybing/signflow/internal/domain/document"
	"github.com/linskybing/signflow/internal/notify"
	"github.com/linskybing/signflow/internal/repository"
	"github.com/linskybing/signflow/pkg/blob"
	"go.uber.org/zap"
)

type CreateDocumentInput struct {
	File        io.Reader
	FileName    string
	ContentType string
	Size        int64
	Phones      []string
	ReferenceID string
	UseStempel  bool
	CallbackURL string
	OwnerEmail  string
	CarbonCopy  string
}

type SignInput struct {
	Code        string
	FileID      string
	File        io.Reader
	ContentType string
	Size        int64
}

type RejectInput struct {
	Code   string
	FileID string
	Reason string
}

type Outcome string

const (
	// OutcomeCompleted: every signer signed and the document is now final.
	OutcomeCompleted Outcome = "completed"
	// OutcomeAdvance: the next pending signer has to be asked.
	OutcomeAdvance Outcome = "advance"
	// OutcomeStalled: nobody after this signer can act.
	OutcomeStalled Outcome = "stalled"
)

type SignResult struct {
	Outcome  Outcome
	Next     *document.Signer
	Document *document.Document
}

type DocumentService struct {
	Repos     *repository.Repos
	deps      Deps
	logger    *zap.Logger
	callbacks notify.CallbackPoster
}

func NewDocumentService(deps Deps) *DocumentService {
	deps = deps.withDefaults()
	return &DocumentService{
		Repos:     deps.Repos,
		deps:      deps,
		logger:    deps.Logger.With(zap.String("service", "document")),
		callbacks: deps.Callbacks,
	}
}

func (s *DocumentService) CreateDocument(ctx context.Context, in CreateDocumentInput) (*document.Document, error) {
	if in.File == nil {
		return nil, ErrFileRequired
	}
	if len(in.Phones) == 0 {
		return nil, ErrPhonesRequired
	}
	phones, err := normalizePhones(s.deps, in.Phones)
	if err != nil {
		return nil, err
	}

	fileID, err := s.deps.Blobs.Create(ctx, in.FileName, s.deps.Options.InboxFolder, in.ContentType, in.File, in.Size)
	if err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}

	createdAt := s.deps.Now().UTC()
	var docID uint
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		doc := &document.Document{
			FileID:      fileID,
			FileName:    in.FileName,
			ReferenceID: optional(in.ReferenceID),
			CallbackURL: optional(in.CallbackURL),
			OwnerEmail:  strings.TrimSpace(in.OwnerEmail),
			CarbonCopy:  in.CarbonCopy,
			DocStatus:   document.DocStatusApproved,
			UseStempel:  in.UseStempel,
			CreatedAt:   createdAt,
		}
		if err := tx.Document.CreateDocument(doc); err != nil {
			return err
		}
		for _, p := range phones {
			signer := &document.Signer{
				DocumentID: doc.ID,
				Phone:      p,
				Code:       s.deps.NewCode(),
				Status:     document.SignerStatusPending,
			}
			if err := tx.Document.CreateSigner(signer); err != nil {
				return err
			}
		}
		docID = doc.ID
		return nil
	})
	if err != nil {
		s.logger.Warn("document records not created, blob left orphaned", zap.String("file_id", fileID), zap.Error(err))
		return nil, fmt.Errorf("create document records: %w", err)
	}

	doc, err := s.Repos.Document.FindByID(docID)
	if err != nil {
		return nil, fmt.Errorf("reload document: %w", err)
	}

	if len(doc.Signers) > 0 {
		s.dispatchSignRequest(ctx, doc, doc.Signers[0])
	}
	return doc, nil
}

func (s *DocumentService) RecordSignature(ctx context.Context, in SignInput) (*SignResult, error) {
	if in.File == nil {
		return nil, ErrFileRequired
	}
	signer, doc, err := lookupSigner(s.Repos.Document, in.Code, in.FileID)
	if err != nil {
		return nil, err
	}
	if err := signConflict(signer.Status); err != nil {
		return nil, err
	}

	if err := s.deps.Blobs.Update(ctx, doc.FileID, doc.FileName, in.ContentType, in.File, in.Size); err != nil {
		return nil, fmt.Errorf("update document file: %w", err)
	}

	now := s.deps.Now().UTC()
	result := &SignResult{Outcome: OutcomeStalled}
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Document.LockDocument(doc.ID); err != nil {
			return err
		}
		if err := tx.Document.MarkSignerSigned(signer.ID, now); err != nil {
			if errors.Is(err, repository.ErrStaleState) {
				return currentConflict(tx.Document, signer.Code, signConflict)
			}
			return err
		}

		fresh, err := tx.Document.FindByID(doc.ID)
		if err != nil {
			return err
		}
		result.Document = fresh

		switch {
		case fresh.IsRejected() || fresh.IsSigned:
			// document already terminal; the signer transition stands on its own
		case fresh.AllSigned():
			if err := tx.Document.MarkDocumentSigned(fresh.ID, now); err != nil {
				if errors.Is(err, repository.ErrStaleState) {
					return nil
				}
				return err
			}
			fresh.IsSigned = true
			fresh.SignedAt = &now
			result.Outcome = OutcomeCompleted
		default:
			if next := fresh.NextPendingAfter(signer.ID); next != nil {
				result.Outcome = OutcomeAdvance
				result.Next = next
			}
		}
		return nil
	})
	if err != nil {
		if KindOf(err) != KindInternal {
			return nil, err
		}
		return nil, fmt.Errorf("record signature: %w", err)
	}

	switch result.Outcome {
	case OutcomeCompleted:
		s.dispatchCompletion(ctx, result.Document)
		s.postCallback(ctx, result.Document)
	case OutcomeAdvance:
		s.dispatchSignRequest(ctx, result.Document, *result.Next)
	}
	return result, nil
}

func (s *DocumentService) RejectSigner(ctx context.Context, in RejectInput) (*document.Document, error) {
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	signer, doc, err := lookupSigner(s.Repos.Document, in.Code, in.FileID)
	if err != nil {
		return nil, err
	}
	if err := rejectConflict(signer.Status); err != nil {
		return nil, err
	}

	now := s.deps.Now().UTC()
	rejectedHere := false
	var fresh *document.Document
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Document.LockDocument(doc.ID); err != nil {
			return err
		}
		if err := tx.Document.MarkSignerRejected(signer.ID, now); err != nil {
			if errors.Is(err, repository.ErrStaleState) {
				return currentConflict(tx.Document, signer.Code, rejectConflict)
			}
			return err
		}

		err := tx.Document.MarkDocumentRejected(doc.ID, reason, signer.Phone, now)
		switch {
		case err == nil:
			rejectedHere = true
		case errors.Is(err, repository.ErrStaleState):
			// an earlier rejection already closed the document
		default:
			return err
		}

		fresh, err = tx.Document.FindByID(doc.ID)
		return err
	})
	if err != nil {
		if KindOf(err) != KindInternal {
			return nil, err
		}
		return nil, fmt.Errorf("reject signer: %w", err)
	}

	if rejectedHere {
		s.dispatchRejection(ctx, fresh, reason, signer.Phone)
		s.postCallback(ctx, fresh)
	}
	return fresh, nil
}

// Download opens a stored file for streaming. The caller closes the reader.
func (s *DocumentService) Download(ctx context.Context, fileID string) (io.ReadCloser, *blob.FileInfo, error) {
	rc, info, err := s.deps.Blobs.Open(ctx, fileID)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, fmt.Errorf("open file: %w", err)
	}
	return rc, info, nil
}

func (s *DocumentService) dispatchSignRequest(ctx context.Context, doc *document.Document, signer document.Signer) {
	link := SignLink(s.deps.Options.SignBaseURL, doc.FileID, signer.Code, doc.UseStempel)
	fileName := doc.FileName
	sender := s.deps.Options.SenderLabel

	s.deps.Tasks.Go(notify.WithFileID(ctx, doc.FileID), "sign-request", func(ctx context.Context) error {
		return s.deps.Notifier.NotifySignRequest(ctx, signer.Phone, fileName, sender, link)
	})
}

func (s *DocumentService) dispatchCompletion(ctx context.Context, doc *document.Document) {
	fileID := doc.FileID
	fileName := doc.FileName
	owner := doc.OwnerEmail
	cc := doc.CCList()
	link := DownloadLink(s.deps.Options.DownloadBaseURL, fileID)
	folder := s.deps.Options.SignedFolder

	s.deps.Tasks.Go(notify.WithFileID(ctx, fileID), "completion", func(ctx context.Context) error {
		var errs []error
		if folder != "" {
			if err := s.deps.Blobs.Move(ctx, fileID, folder); err != nil {
				errs = append(errs, fmt.Errorf("move signed file: %w", err))
			}
		}
		if err := s.deps.Notifier.NotifyCompletion(ctx, owner, cc, fileName, link); err != nil {
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	})
}

func (s *DocumentService) dispatchRejection(ctx context.Context, doc *document.Document, reason, rejector string) {
	fileName := doc.FileName
	owner := doc.OwnerEmail
	signed := doc.SignedPhones()

	s.deps.Tasks.Go(notify.WithFileID(ctx, doc.FileID), "rejection", func(ctx context.Context) error {
		return s.deps.Notifier.NotifyRejection(ctx, owner, fileName, reason, rejector, signed)
	})
}

func (s *DocumentService) postCallback(ctx context.Context, doc *document.Document) {
	if s.callbacks == nil || doc.CallbackURL == nil || *doc.CallbackURL == "" {
		return
	}
	target := *doc.CallbackURL
	event := notify.CallbackEvent{
		FileID:      doc.FileID,
		ReferenceID: doc.ReferenceID,
		Status:      string(doc.DocStatus),
		IsSigned:    doc.IsSigned,
		SignedAt:    doc.SignedAt,
		Reason:      doc.RejectReason,
		RejectedBy:  doc.RejectedBy,
	}

	s.deps.Tasks.Go(notify.WithFileID(ctx, doc.FileID), "callback", func(ctx context.Context) error {
		return s.callbacks.PostCallback(ctx, target, event)
	})
}

// lookupSigner resolves a code to its signer and owning document, checking
// the claimed file id.
func lookupSigner(repo repository.DocumentRepo, code, fileID string) (*document.Signer, *document.Document, error) {
	signer, err := repo.FindSignerByCode(code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrSignerNotFound
		}
		return nil, nil, fmt.Errorf("find signer: %w", err)
	}

	doc, err := repo.FindByID(signer.DocumentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrDocumentMismatch
		}
		return nil, nil, fmt.Errorf("find document: %w", err)
	}
	if doc.FileID != fileID {
		return nil, nil, ErrDocumentMismatch
	}
	return signer, doc, nil
}

func signConflict(status document.SignerStatus) error {
	switch status {
	case document.SignerStatusSigned:
		return ErrAlreadySigned
	case document.SignerStatusRejected:
		return ErrCannotSignRejected
	}
	return nil
}

func rejectConflict(status document.SignerStatus) error {
	switch status {
	case document.SignerStatusRejected:
		return ErrAlreadyRejected
	case document.SignerStatusSigned:
		return ErrCannotRejectSigned
	}
	return nil
}

// currentConflict explains a lost race on a signer update by re-reading it.
func currentConflict(repo repository.DocumentRepo, code string, conflict func(document.SignerStatus) error) error {
	signer, err := repo.FindSignerByCode(code)
	if err != nil {
		return err
	}
	if err := conflict(signer.Status); err != nil {
		return err
	}
	return repository.ErrStaleState
}

func normalizePhones(deps Deps, raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		n, err := deps.Phones.Normalize(strings.TrimSpace(p), deps.Options.Region)
		if err != nil {
			return nil, &InvalidPhoneError{Phone: p}
		}
		out = append(out, n)
	}
	return out, nil
}

// SignLink builds the link a signer opens to sign fileID with code.
func SignLink(base, fileID, code string, useStempel bool) string {
	u, err := url.Parse(base)
	if err != nil {
		u = &url.URL{Path: base}
	}
	stempel := "FALSE"
	if useStempel {
		stempel = "TRUE"
	}
	q := u.Query()
	q.Set("id", fileID)
	q.Set("code", code)
	q.Set("type", "po")
	q.Set("stempelSigner", stempel)
	u.RawQuery = q.Encode()
	return u.String()
}

func DownloadLink(base, fileID string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(fileID)
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
