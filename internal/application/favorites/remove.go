package favorites

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"eventhub/internal/domain"
)

// Remove deletes a favorite by event id. Removing an id that is not a
// favorite is not an error; the status reports it.
func (s *Service) Remove(ctx context.Context, eventID string) (string, error) {
	if err := s.available(); err != nil {
		return "", err
	}
	if eventID == "" {
		return "", domain.ErrValidation("event id is required")
	}

	removed, err := s.repo.Delete(ctx, eventID)
	if err != nil {
		zlog.Error().Err(err).Str("event_id", eventID).Msg("favorite delete failed")
		return "", domain.ErrUnavailable("favorites store unavailable")
	}
	if !removed {
		return StatusNotFound, nil
	}
	return StatusRemoved, nil
}
