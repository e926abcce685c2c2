// Package messaging talks to the WhatsApp business message gateway.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type Config struct {
	BaseURL       string
	PhoneNumberID string
	AccessKey     string
	Timeout       time.Duration
}

// Template identifies an approved message template on the gateway.
type Template struct {
	Namespace string `yaml:"namespace"`
	Name      string `yaml:"name"`
	Language  string `yaml:"language"`
}

// Client sends templated and free-text messages. Responses are returned
// raw so callers can keep them as delivery receipts.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: timeout}}
}

type textBody struct {
	Body string `json:"body"`
}

type templateParam struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type templateComponent struct {
	Type       string          `json:"type"`
	Parameters []templateParam `json:"parameters"`
}

type templateLanguage struct {
	Code string `json:"code"`
}

type templateBody struct {
	Namespace  string              `json:"namespace,omitempty"`
	Name       string              `json:"name"`
	Language   templateLanguage    `json:"language"`
	Components []templateComponent `json:"components"`
}

type messageRequest struct {
	MessagingProduct string        `json:"messaging_product"`
	RecipientType    string        `json:"recipient_type"`
	To               string        `json:"to"`
	Type             string        `json:"type"`
	Text             *textBody     `json:"text,omitempty"`
	Template         *templateBody `json:"template,omitempty"`
}

func (c *Client) SendTemplate(ctx context.Context, to string, tpl Template, params ...string) (json.RawMessage, error) {
	component := templateComponent{Type: "body", Parameters: make([]templateParam, 0, len(params))}
	for _, p := range params {
		component.Parameters = append(component.Parameters, templateParam{Type: "text", Text: p})
	}
	req := messageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "template",
		Template: &templateBody{
			Namespace:  tpl.Namespace,
			Name:       tpl.Name,
			Language:   templateLanguage{Code: tpl.Language},
			Components: []templateComponent{component},
		},
	}
	return c.send(ctx, req)
}

func (c *Client) SendText(ctx context.Context, to, body string) (json.RawMessage, error) {
	req := messageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             &textBody{Body: body},
	}
	return c.send(ctx, req)
}

func (c *Client) endpoint() string {
	q := url.Values{}
	q.Set("phone_number_id", c.cfg.PhoneNumberID)
	q.Set("no_save", "1")
	return c.cfg.BaseURL + "/api/messages?" + q.Encode()
}

func (c *Client) send(ctx context.Context, payload messageRequest) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.cfg.AccessKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send %s message to %s: %w", payload.Type, payload.To, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read gateway response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return raw, fmt.Errorf("gateway returned %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}
	if !json.Valid(raw) {
		quoted, _ := json.Marshal(string(raw))
		raw = quoted
	}
	return raw, nil
}
