package domain

import "context"

// Emitter publishes fire-and-forget analytics/notification events.
// Implementations must never block the caller on delivery and must swallow
// delivery failures; the primary operation's success is independent of them.
type Emitter interface {
	Emit(ctx context.Context, event string, payload map[string]any)
}
