package domain

import "time"

// Event is the normalized shape served to the frontend. Every field is derived
// defensively from the Ticketmaster payload: any nested provider field may be
// absent.
type Event struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	URL          string       `json:"url,omitempty"`
	Images       []Image      `json:"images"`
	FirstImage   string       `json:"firstImage"`
	Category     string       `json:"category"`
	Date         string       `json:"date"`
	Time         string       `json:"time"`
	FullDateTime string       `json:"fullDateTime,omitempty"`
	VenueName    string       `json:"venueName"`
	Genres       []string     `json:"genres"`
	PriceRanges  []PriceRange `json:"priceRanges"`
	TicketStatus string       `json:"ticketStatus"`
	SeatmapURL   string       `json:"seatmapUrl,omitempty"`
}

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type PriceRange struct {
	Currency string  `json:"currency"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// StartsAt parses the event's local date and optional local time. ok is false
// when the date is missing or unparseable; such events sort after dated ones.
func (e Event) StartsAt() (time.Time, bool) {
	if e.Date == "" {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return time.Time{}, false
	}
	if e.Time == "" {
		return d, true
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, e.Time); err == nil {
			return d.Add(time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second), true
		}
	}
	return d, true
}

// Favorite is a persisted association with an Event, carrying a denormalized
// snapshot so the favorites page renders without re-fetching the provider.
type Favorite struct {
	EventID string    `json:"eventId"`
	Event   Event     `json:"event"`
	AddedAt time.Time `json:"addedAt"`
}

const (
	DefaultEventName = "Unknown Event"
	DefaultCategory  = "Miscellaneous"
	DefaultVenueName = "TBA"
)
