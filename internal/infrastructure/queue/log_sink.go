package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

// LogSink writes audit events to the application log. It is used when no
// MongoDB audit store is configured.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "audit").Logger()}
}

func (s *LogSink) Write(_ context.Context, event domain.AuditEvent) error {
	s.log.Info().
		Str("event_id", event.ID).
		Str("action", string(event.Action)).
		Str("resource", event.Resource).
		Uint("resource_id", event.ResourceID).
		Uint("actor_id", event.ActorID).
		Time("occurred_at", event.OccurredAt).
		Msg("audit")
	return nil
}
