package application

import (
	"time"

	"github.com/linskybing/signflow/internal/config"
	"github.com/linskybing/signflow/internal/notify"
	"github.com/linskybing/signflow/internal/repository"
	"github.com/linskybing/signflow/pkg/blob"
	"github.com/linskybing/signflow/pkg/codegen"
	"github.com/linskybing/signflow/pkg/phone"
	"go.uber.org/zap"
)

// Options carries the deployment specific values the workflow needs to
// build links and place files.
type Options struct {
	SenderLabel     string
	SignBaseURL     string
	DownloadBaseURL string
	InboxFolder     string
	SignedFolder    string
	PoFolder        string
	Region          string
	PollInterval    time.Duration
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		SenderLabel:     cfg.SenderLabel,
		SignBaseURL:     cfg.SignBaseURL,
		DownloadBaseURL: cfg.DownloadBaseURL,
		InboxFolder:     cfg.FolderDoc,
		SignedFolder:    cfg.FolderSigned,
		PoFolder:        cfg.FolderPo,
		Region:          cfg.PhoneRegion,
		PollInterval:    cfg.StatusPollInterval,
	}
}

// Deps is everything the services are built from. Now and NewCode default
// to the wall clock and codegen.New.
type Deps struct {
	Repos     *repository.Repos
	Blobs     blob.Store
	Phones    phone.Normalizer
	Notifier  notify.Notifier
	Callbacks notify.CallbackPoster
	Tasks     TaskRunner
	Templates *config.Templates
	Logger    *zap.Logger
	Options   Options
	Now       func() time.Time
	NewCode   codegen.Generator
}

func (d Deps) withDefaults() Deps {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.NewCode == nil {
		d.NewCode = codegen.New
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Phones == nil {
		d.Phones = phone.NewNormalizer()
	}
	if d.Options.Region == "" {
		d.Options.Region = phone.DefaultRegion
	}
	if d.Options.PollInterval <= 0 {
		d.Options.PollInterval = 5 * time.Second
	}
	return d
}

type Services struct {
	Document     *DocumentService
	Status       *StatusService
	PoDocument   *PoDocumentService
	Sweep        *SweepService
	Notification *NotificationService
}

func New(deps Deps) *Services {
	deps = deps.withDefaults()
	return &Services{
		Document:     NewDocumentService(deps),
		Status:       NewStatusService(deps),
		PoDocument:   NewPoDocumentService(deps),
		Sweep:        NewSweepService(deps),
		Notification: NewNotificationService(deps.Repos),
	}
}
