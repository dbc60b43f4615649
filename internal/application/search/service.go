package search

import (
	"context"
	"time"

	"eventhub/internal/providers/ticketmaster"
)

// maxResults caps every search response, applied after sorting.
const maxResults = 20

// minKeywordLen is the shortest keyword worth sending upstream; anything
// shorter short-circuits to an empty result.
const minKeywordLen = 2

type EventSource interface {
	SearchEvents(ctx context.Context, p ticketmaster.SearchParams) ([]ticketmaster.RawEvent, error)
	Suggest(ctx context.Context, keyword string, limit int) ([]string, error)
	GetEvent(ctx context.Context, id string) (*ticketmaster.RawEvent, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
}

type Service struct {
	source EventSource
	cache  Cache

	ttlDetails time.Duration
}

func New(source EventSource, cache Cache, ttlDetails time.Duration) *Service {
	if ttlDetails == 0 {
		ttlDetails = 5 * time.Minute
	}
	return &Service{source: source, cache: cache, ttlDetails: ttlDetails}
}
