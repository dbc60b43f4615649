package search

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"eventhub/internal/domain"
)

func cacheKeyEventDetails(id string) string { return "event:" + id }

// GetEvent fetches one normalized event, served from cache when possible.
func (s *Service) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	key := cacheKeyEventDetails(id)
	var cached domain.Event

	if s.cache != nil {
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			zlog.Debug().Str("key", key).Msg("cache hit")
			return &cached, nil
		}
	}

	raw, err := s.source.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	e := Normalize(*raw)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, e, s.ttlDetails); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}

	return &e, nil
}
