// Package analytics provides the fire-and-forget event emitter used for
// notification/analytics side effects. Emission failures never surface to
// callers; the primary operation's success is independent of them.
package analytics

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"artwalls/internal/domain"
)

type logEmitter struct {
	logger *slog.Logger
}

// NewLogEmitter returns an Emitter that writes events to the structured log.
// It stands in for a real analytics pipeline; the event shape (id, name,
// payload) is what a queue-backed emitter would publish.
func NewLogEmitter(logger *slog.Logger) domain.Emitter {
	return &logEmitter{logger: logger}
}

func (e *logEmitter) Emit(ctx context.Context, event string, payload map[string]any) {
	args := []any{"event_id", uuid.NewString(), "event", event}
	for k, v := range payload {
		args = append(args, k, v)
	}
	e.logger.InfoContext(ctx, "analytics event", args...)
}

// NoopEmitter discards all events. Useful in tests.
type NoopEmitter struct{}

func (NoopEmitter) Emit(ctx context.Context, event string, payload map[string]any) {}
