package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/signflow/internal/config"
	"github.com/linskybing/signflow/internal/domain/document"
	notifymock "github.com/linskybing/signflow/internal/notify/mock"
	"github.com/linskybing/signflow/internal/repository"
	"github.com/linskybing/signflow/internal/testutils"
	blobmock "github.com/linskybing/signflow/pkg/blob/mock"
	"github.com/linskybing/signflow/pkg/phone"
	"github.com/stretchr/testify/require"
)

// ---- Task runner ----

// inlineRunner runs tasks synchronously so expectations are met before the
// service call returns.
type inlineRunner struct {
	mu    sync.Mutex
	names []string
	errs  []error
}

func (r *inlineRunner) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	err := fn(context.WithoutCancel(ctx))
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, name)
	if err != nil {
		r.errs = append(r.errs, err)
	}
}

// ---- Clock ----

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

// ---- Fixtures ----

// fakePhones maps local numbers to +62 and refuses anything containing "x".
var fakePhones = phone.NormalizerFunc(func(raw, region string) (string, error) {
	if raw == "" || strings.Contains(raw, "x") {
		return "", phone.ErrInvalidNumber
	}
	if strings.HasPrefix(raw, "0") {
		return "+62" + raw[1:], nil
	}
	return raw, nil
})

type serviceEnv struct {
	Repos     *repository.Repos
	Blobs     *blobmock.MockStore
	Notifier  *notifymock.MockNotifier
	Callbacks *notifymock.MockCallbackPoster
	Tasks     *inlineRunner
	Clock     *stepClock
	Deps      Deps
}

func setupServiceEnv(t *testing.T) *serviceEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	templates, err := config.LoadTemplates("")
	require.NoError(t, err)

	env := &serviceEnv{
		Repos:     repository.NewRepositories(testutils.NewSQLiteDB(t)),
		Blobs:     blobmock.NewMockStore(ctrl),
		Notifier:  notifymock.NewMockNotifier(ctrl),
		Callbacks: notifymock.NewMockCallbackPoster(ctrl),
		Tasks:     &inlineRunner{},
		Clock:     newStepClock(),
	}
	env.Deps = Deps{
		Repos:     env.Repos,
		Blobs:     env.Blobs,
		Phones:    fakePhones,
		Notifier:  env.Notifier,
		Callbacks: env.Callbacks,
		Tasks:     env.Tasks,
		Templates: templates,
		Options: Options{
			SenderLabel:     "PT Media Antar Nusa",
			SignBaseURL:     "https://sign.example.com",
			DownloadBaseURL: "https://api.example.com/download",
			InboxFolder:     "incoming",
			SignedFolder:    "signed",
			PoFolder:        "po",
			PollInterval:    10 * time.Millisecond,
		},
		Now: env.Clock.Now,
	}
	return env
}

var fileSeq int

// createDocument stores a document straight through the service with the
// notifier expecting exactly the first sign request.
func (e *serviceEnv) createDocument(t *testing.T, svc *DocumentService, in CreateDocumentInput) *document.Document {
	t.Helper()
	fileSeq++
	fileID := fmt.Sprintf("file-%d", fileSeq)
	if in.File == nil {
		in.File = strings.NewReader("%PDF-1.4")
	}
	if in.FileName == "" {
		in.FileName = "contract.pdf"
	}
	e.Blobs.EXPECT().Create(gomock.Any(), in.FileName, "incoming", gomock.Any(), gomock.Any(), gomock.Any()).Return(fileID, nil)
	e.Notifier.EXPECT().NotifySignRequest(gomock.Any(), gomock.Any(), in.FileName, "PT Media Antar Nusa", gomock.Any()).Return(nil)

	doc, err := svc.CreateDocument(context.Background(), in)
	require.NoError(t, err)
	return doc
}

func (e *serviceEnv) expectUpdate(fileID string) {
	e.Blobs.EXPECT().Update(gomock.Any(), fileID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
}

func signInput(doc *document.Document, idx int) SignInput {
	return SignInput{
		Code:        doc.Signers[idx].Code,
		FileID:      doc.FileID,
		File:        strings.NewReader("signed"),
		ContentType: "application/pdf",
		Size:        6,
	}
}

var errBoom = errors.New("boom")
