package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/linskybing/signflow/pkg/messaging"
	"gopkg.in/yaml.v2"
)

//go:embed templates.yaml
var defaultTemplates []byte

type EmailTemplate struct {
	Subject string `yaml:"subject"`
	Text    string `yaml:"text"`
	HTML    string `yaml:"html"`
}

// Templates holds the message templates used by notifications. Email and
// free-text bodies are Go templates rendered with the notification data.
type Templates struct {
	SignRequest       messaging.Template `yaml:"sign_request"`
	Rejection         messaging.Template `yaml:"rejection"`
	CompletionEmail   EmailTemplate      `yaml:"completion_email"`
	CompletionCCEmail EmailTemplate      `yaml:"completion_cc_email"`
	RejectionEmail    EmailTemplate      `yaml:"rejection_email"`
	PoSignRequestText string             `yaml:"po_sign_request_text"`
	PendingLinkText   string             `yaml:"pending_link_text"`
	NoPendingText     string             `yaml:"no_pending_text"`
}

// LoadTemplates returns the embedded defaults overlaid with path, if set.
func LoadTemplates(path string) (*Templates, error) {
	t := &Templates{}
	if err := yaml.Unmarshal(defaultTemplates, t); err != nil {
		return nil, fmt.Errorf("parse default templates: %w", err)
	}
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse templates %s: %w", path, err)
	}
	return t, nil
}
