package favorites

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"eventhub/internal/domain"
)

// List returns every favorite in insertion order.
func (s *Service) List(ctx context.Context) ([]domain.Favorite, error) {
	if err := s.available(); err != nil {
		return nil, err
	}

	favs, err := s.repo.List(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("favorite list failed")
		return nil, domain.ErrUnavailable("favorites store unavailable")
	}
	if favs == nil {
		favs = []domain.Favorite{}
	}
	return favs, nil
}
