// Package phone normalizes recipient phone numbers to E.164.
package phone

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used when a number carries no country prefix.
const DefaultRegion = "ID"

var ErrInvalidNumber = errors.New("invalid phone number")

type Normalizer interface {
	Normalize(raw, region string) (string, error)
}

// NormalizerFunc adapts a plain function to Normalizer.
type NormalizerFunc func(raw, region string) (string, error)

func (f NormalizerFunc) Normalize(raw, region string) (string, error) {
	return f(raw, region)
}

// LibNormalizer validates numbers against libphonenumber metadata.
type LibNormalizer struct{}

func NewNormalizer() *LibNormalizer {
	return &LibNormalizer{}
}

func (LibNormalizer) Normalize(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidNumber
	}
	if region == "" {
		region = DefaultRegion
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", ErrInvalidNumber
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidNumber
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
