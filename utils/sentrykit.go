package utils

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/samgozman/orc-brief/pkg/errlvl"
)

// SentryKit is a wrapper around sentry-go SDK that provides some convenience methods for logging and tracing.
// All methods are safe to use when Sentry was never initialised, events are just dropped.
type SentryKit struct {
	log *slog.Logger
}

// NewSentryKit creates a SentryKit that logs through l.
func NewSentryKit(l *slog.Logger) *SentryKit {
	return &SentryKit{log: l}
}

// GetHub returns a sentry hub from the context, or a clone of the current hub with the context carrying it.
func (s *SentryKit) GetHub(ctx context.Context) (*sentry.Hub, context.Context) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
		ctx = sentry.SetHubOnContext(ctx, hub)
	}
	return hub, ctx
}

// StartJobTransaction starts a new transaction for a job with the given name.
func (s *SentryKit) StartJobTransaction(ctx context.Context, name, op string) *sentry.Span {
	tx := sentry.StartTransaction(ctx, name)
	tx.Op = op
	return tx
}

// AddBreadcrumb adds a breadcrumb to the given hub with the given category and message.
func (s *SentryKit) AddBreadcrumb(hub *sentry.Hub, c, m string) {
	hub.AddBreadcrumb(&sentry.Breadcrumb{
		Category: c,
		Message:  m,
		Level:    sentry.LevelInfo,
	}, nil)
}

// CaptureError logs the error with the level it was tagged with and captures it in the given hub.
func (s *SentryKit) CaptureError(ctx context.Context, hub sentryHub, name, m string, err error) {
	s.log.Log(ctx, errlvl.SlogLevel(err), m, "error", err)
	CaptureSentryException(name, hub, err)
}
