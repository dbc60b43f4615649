package search

import (
	"context"
	"strings"
	"unicode/utf8"

	zlog "github.com/rs/zerolog/log"

	"eventhub/internal/domain"
	"eventhub/internal/providers/ticketmaster"
)

type Query struct {
	Keyword  string
	Category string // one of domain.Categories, "All" = no filter
	Radius   int
	GeoPoint string // "lat,long"
}

type Result struct {
	Events []domain.Event `json:"events"`
	Total  int            `json:"total"`
	// Available is the raw upstream count before truncation.
	Available int    `json:"available"`
	Message   string `json:"message,omitempty"`
}

// Search runs a discovery search and returns the normalized, sorted,
// truncated result. Keywords shorter than two runes never reach the
// provider.
func (s *Service) Search(ctx context.Context, q Query) (*Result, error) {
	keyword := strings.TrimSpace(q.Keyword)
	if utf8.RuneCountInString(keyword) < minKeywordLen {
		return &Result{
			Events:  []domain.Event{},
			Message: "keyword too short",
		}, nil
	}

	segmentID, _ := domain.SegmentID(q.Category)

	raws, err := s.source.SearchEvents(ctx, ticketmaster.SearchParams{
		Keyword:   keyword,
		Radius:    q.Radius,
		GeoPoint:  q.GeoPoint,
		SegmentID: segmentID,
	})
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(raws))
	for _, raw := range raws {
		events = append(events, Normalize(raw))
	}
	events = SortAndTruncate(events)

	zlog.Debug().Str("keyword", keyword).Int("results", len(events)).Msg("search completed")
	return &Result{Events: events, Total: len(events), Available: len(raws)}, nil
}

// Suggest returns autocomplete attraction names. Short keywords
// short-circuit to an empty list.
func (s *Service) Suggest(ctx context.Context, keyword string, limit int) ([]string, error) {
	keyword = strings.TrimSpace(keyword)
	if utf8.RuneCountInString(keyword) < minKeywordLen {
		return []string{}, nil
	}
	if limit <= 0 {
		limit = 10
	}
	return s.source.Suggest(ctx, keyword, limit)
}
