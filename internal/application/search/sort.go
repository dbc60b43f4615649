package search

import (
	"sort"

	"eventhub/internal/domain"
)

// SortAndTruncate orders events by start instant ascending, undated events
// last in their original relative order, then caps the list at maxResults.
// Truncation happens after sorting so the earliest events always survive.
func SortAndTruncate(events []domain.Event) []domain.Event {
	sort.SliceStable(events, func(i, j int) bool {
		ti, iOK := events[i].StartsAt()
		tj, jOK := events[j].StartsAt()
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return ti.Before(tj)
	})

	if len(events) > maxResults {
		events = events[:maxResults]
	}
	return events
}
