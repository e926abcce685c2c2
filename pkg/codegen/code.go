// Package codegen produces the one-time signing codes handed to signers.
package codegen

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

// MaxLength is the upper bound on a generated code.
const MaxLength = 20

const randomLength = 10

// Generator returns a fresh signing code on every call.
type Generator func() string

// New mixes the current time in base36 with a random alphanumeric suffix.
// Uniqueness is enforced by the store, not here.
func New() string {
	return newAt(time.Now())
}

func newAt(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	random := rand.Text()[:randomLength]
	code := strings.ToUpper(ts + random)
	if len(code) > MaxLength {
		code = code[:MaxLength]
	}
	return code
}
