package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/linskybing/signflow/internal/domain/notification"
	"github.com/linskybing/signflow/internal/repository"
	"go.uber.org/zap"
)

type HTTPCallbackPoster struct {
	client *http.Client
	logs   repository.NotificationRepo
	logger *zap.Logger
}

func NewCallbackPoster(timeout time.Duration, logs repository.NotificationRepo, logger *zap.Logger) *HTTPCallbackPoster {
	return &HTTPCallbackPoster{
		client: &http.Client{Timeout: timeout},
		logs:   logs,
		logger: logger.With(zap.String("component", "callback")),
	}
}

func (p *HTTPCallbackPoster) PostCallback(ctx context.Context, url string, event CallbackEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode callback: %w", err)
	}

	err = p.post(ctx, url, body)
	entry := newLogEntry(WithFileID(ctx, event.FileID), notification.ChannelCallback, url, event.Status, nil, err)
	if p.logs != nil {
		if logErr := p.logs.Create(entry); logErr != nil {
			p.logger.Error("failed to record callback", zap.Error(logErr))
		}
	}
	return err
}

func (p *HTTPCallbackPoster) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("post callback %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("post callback %s: unexpected status %d", url, resp.StatusCode)
	}
	return nil
}
