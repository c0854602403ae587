// Package llm asks a hosted text model for one short line in a child's
// language. Every backend answers with the same {"line": "..."} JSON
// shape, checked against a JSON schema before the caller sees it.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/wordgarden/internal/catalog"
)

// PurposeCheer labels mascot praise requests in the event journal.
const PurposeCheer = "mascot-cheer"

// Prompt is one request for a line.
type Prompt struct {
	Purpose     string
	Lang        catalog.Language
	System      string
	Text        string
	MaxTokens   int
	Temperature float64
}

// Reply is a checked line plus what the call cost.
type Reply struct {
	Line         string
	Model        string
	InputTokens  int
	OutputTokens int
}

// Provider produces lines.
type Provider interface {
	Line(ctx context.Context, p Prompt) (Reply, error)

	// ModelID is the model used for languages without an override.
	ModelID() string
}

// ModelSet is a default model plus per-language overrides. Mandarin lines,
// for example, can go to a model that writes better Chinese.
type ModelSet struct {
	Default string
	ByLang  map[catalog.Language]string
}

// For returns the model for lang.
func (m ModelSet) For(lang catalog.Language) string {
	if id, ok := m.ByLang[lang]; ok && id != "" {
		return id
	}
	return m.Default
}

// Kind classifies a failed call.
type Kind int

const (
	KindUnavailable Kind = iota
	KindRateLimited
	KindTruncated
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate limited"
	case KindTruncated:
		return "truncated"
	case KindMalformed:
		return "malformed reply"
	}
	return "unavailable"
}

// Error is returned by every backend.
type Error struct {
	Kind       Kind
	RetryAfter time.Duration
	Raw        string
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "llm: " + e.Kind.String()
	}
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err, or KindUnavailable for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnavailable
}

// statusError maps an HTTP status from a vendor SDK.
func statusError(status int, err error) error {
	switch {
	case status == 429:
		return &Error{Kind: KindRateLimited, Err: err}
	default:
		return &Error{Kind: KindUnavailable, Err: err}
	}
}
