package favorites

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"eventhub/internal/domain"
)

// Add stores the event as a favorite. Adding an event that is already a
// favorite is not an error; the caller learns which via the status.
func (s *Service) Add(ctx context.Context, ev domain.Event) (string, error) {
	if err := s.available(); err != nil {
		return "", err
	}
	if ev.ID == "" {
		return "", domain.ErrValidation("event id is required")
	}
	if ev.Name == "" {
		return "", domain.ErrValidation("event name is required")
	}

	inserted, err := s.repo.Insert(ctx, ev, s.clock.Now().UTC())
	if err != nil {
		zlog.Error().Err(err).Str("event_id", ev.ID).Msg("favorite insert failed")
		return "", domain.ErrUnavailable("favorites store unavailable")
	}
	if !inserted {
		return StatusAlreadyExists, nil
	}
	return StatusAdded, nil
}
