package search

import (
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/providers/ticketmaster"
)

// Normalize flattens a raw discovery event into the shape the frontend
// consumes. It never fails: absent provider fields fall back to defaults.
func Normalize(raw ticketmaster.RawEvent) domain.Event {
	e := domain.Event{
		ID:           raw.ID,
		Name:         raw.Name,
		URL:          raw.URL,
		Images:       []domain.Image{},
		Category:     domain.DefaultCategory,
		VenueName:    domain.DefaultVenueName,
		Genres:       []string{},
		PriceRanges:  []domain.PriceRange{},
		TicketStatus: domain.NormalizeTicketStatus(""),
	}
	if e.Name == "" {
		e.Name = domain.DefaultEventName
	}

	for _, img := range raw.Images {
		if img.URL == "" {
			continue
		}
		e.Images = append(e.Images, domain.Image{URL: img.URL, Width: img.Width, Height: img.Height})
	}
	if len(e.Images) > 0 {
		e.FirstImage = e.Images[0].URL
	}

	if raw.Dates != nil {
		if raw.Dates.Start != nil {
			e.Date = raw.Dates.Start.LocalDate
			e.Time = raw.Dates.Start.LocalTime
		}
		if raw.Dates.Status != nil {
			e.TicketStatus = domain.NormalizeTicketStatus(raw.Dates.Status.Code)
		}
	}
	if at, ok := e.StartsAt(); ok {
		e.FullDateTime = at.Format(time.RFC3339)
	}

	if len(raw.Classifications) > 0 {
		c := raw.Classifications[0]
		if c.Segment != nil && c.Segment.Name != "" {
			e.Category = c.Segment.Name
		}
		// Five classification levels, blanks and "Undefined" dropped.
		for _, n := range []*ticketmaster.Named{c.Segment, c.Genre, c.SubGenre, c.Type, c.SubType} {
			if n == nil || n.Name == "" || n.Name == "Undefined" {
				continue
			}
			e.Genres = append(e.Genres, n.Name)
		}
	}

	if raw.Embedded != nil && len(raw.Embedded.Venues) > 0 && raw.Embedded.Venues[0].Name != "" {
		e.VenueName = raw.Embedded.Venues[0].Name
	}

	for _, p := range raw.PriceRanges {
		e.PriceRanges = append(e.PriceRanges, domain.PriceRange{
			Currency: p.Currency, Min: p.Min, Max: p.Max,
		})
	}

	if raw.Seatmap != nil {
		e.SeatmapURL = raw.Seatmap.StaticURL
	}

	return e
}
