package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"text/template"
	"time"

	"github.com/linskybing/signflow/internal/config"
	"github.com/linskybing/signflow/internal/domain/notification"
	"github.com/linskybing/signflow/internal/repository"
	"github.com/linskybing/signflow/pkg/mailer"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/datatypes"
)

// Dispatcher implements Notifier. Messages to the gateway share one limiter
// so fan-out loops never exceed one message per interval.
type Dispatcher struct {
	messages  MessageSender
	mail      mailer.Mailer
	templates *config.Templates
	logs      repository.NotificationRepo
	limiter   *rate.Limiter
	logger    *zap.Logger
}

func NewDispatcher(messages MessageSender, mail mailer.Mailer, templates *config.Templates, logs repository.NotificationRepo, interval time.Duration, logger *zap.Logger) *Dispatcher {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Dispatcher{
		messages:  messages,
		mail:      mail,
		templates: templates,
		logs:      logs,
		limiter:   rate.NewLimiter(limit, 1),
		logger:    logger.With(zap.String("component", "notify")),
	}
}

type messageData struct {
	FileName string
	Link     string
	Reason   string
	Rejector string
	Sender   string
}

func (d *Dispatcher) NotifySignRequest(ctx context.Context, phone, fileName, senderLabel, signLink string) error {
	tpl := d.templates.SignRequest
	return d.sendTemplate(ctx, phone, tpl.Name, func() (json.RawMessage, error) {
		return d.messages.SendTemplate(ctx, phone, tpl, fileName, senderLabel, signLink)
	})
}

func (d *Dispatcher) NotifyCompletion(ctx context.Context, ownerEmail string, ccEmails []string, fileName, downloadLink string) error {
	data := messageData{FileName: fileName, Link: downloadLink}
	var errs []error

	if ownerEmail != "" {
		if err := d.sendEmail(ctx, ownerEmail, "completion_email", d.templates.CompletionEmail, data); err != nil {
			errs = append(errs, err)
		}
	}
	for _, cc := range ccEmails {
		if err := d.sendEmail(ctx, cc, "completion_cc_email", d.templates.CompletionCCEmail, data); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *Dispatcher) NotifyRejection(ctx context.Context, ownerEmail, fileName, reason, rejectorLabel string, alreadySignedPhones []string) error {
	data := messageData{FileName: fileName, Reason: reason, Rejector: rejectorLabel}
	var errs []error

	if ownerEmail != "" {
		if err := d.sendEmail(ctx, ownerEmail, "rejection_email", d.templates.RejectionEmail, data); err != nil {
			errs = append(errs, err)
		}
	}

	tpl := d.templates.Rejection
	for _, phone := range alreadySignedPhones {
		err := d.sendTemplate(ctx, phone, tpl.Name, func() (json.RawMessage, error) {
			return d.messages.SendTemplate(ctx, phone, tpl, fileName, reason, rejectorLabel)
		})
		if err != nil {
			if ctx.Err() != nil {
				return errors.Join(append(errs, err)...)
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *Dispatcher) NotifyText(ctx context.Context, phone, body string) error {
	return d.sendTemplate(ctx, phone, "text", func() (json.RawMessage, error) {
		return d.messages.SendText(ctx, phone, body)
	})
}

// RenderText renders a free-text template such as the legacy sign request.
func RenderText(text string, data any) (string, error) {
	tpl, err := template.New("text").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

func renderHTML(text string, data any) (string, error) {
	tpl, err := htmltemplate.New("html").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse html template: %w", err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render html template: %w", err)
	}
	return buf.String(), nil
}

func (d *Dispatcher) sendTemplate(ctx context.Context, phone, name string, send func() (json.RawMessage, error)) error {
	if err := d.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for message slot: %w", err)
	}
	receipt, err := send()
	d.record(ctx, notification.ChannelWhatsApp, phone, name, receipt, err)
	if err != nil {
		return fmt.Errorf("send %s to %s: %w", name, phone, err)
	}
	return nil
}

func (d *Dispatcher) sendEmail(ctx context.Context, to, name string, tpl config.EmailTemplate, data messageData) error {
	subject, err := RenderText(tpl.Subject, data)
	if err != nil {
		return err
	}
	text, err := RenderText(tpl.Text, data)
	if err != nil {
		return err
	}
	html, err := renderHTML(tpl.HTML, data)
	if err != nil {
		return err
	}

	err = d.mail.Send(ctx, to, subject, text, html)
	d.record(ctx, notification.ChannelEmail, to, name, nil, err)
	if err != nil {
		return fmt.Errorf("send %s to %s: %w", name, to, err)
	}
	return nil
}

func (d *Dispatcher) record(ctx context.Context, channel notification.Channel, recipient, name string, receipt json.RawMessage, sendErr error) {
	entry := newLogEntry(ctx, channel, recipient, name, receipt, sendErr)
	if sendErr != nil {
		d.logger.Warn("notification failed",
			zap.String("channel", string(channel)),
			zap.String("recipient", recipient),
			zap.String("template", name),
			zap.Error(sendErr),
		)
	}
	if d.logs == nil {
		return
	}
	if err := d.logs.Create(entry); err != nil {
		d.logger.Error("failed to record notification", zap.Error(err))
	}
}

func newLogEntry(ctx context.Context, channel notification.Channel, recipient, name string, receipt json.RawMessage, sendErr error) *notification.NotificationLog {
	entry := &notification.NotificationLog{
		Channel:   channel,
		Recipient: recipient,
		Template:  name,
		FileID:    fileIDFrom(ctx),
		Status:    notification.StatusSent,
	}
	if len(receipt) > 0 && json.Valid(receipt) {
		entry.Receipt = datatypes.JSON(receipt)
	}
	if sendErr != nil {
		entry.Status = notification.StatusFailed
		entry.Error = sendErr.Error()
	}
	return entry
}
