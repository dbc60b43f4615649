package ticketmaster

// Raw discovery API shapes. Every nested field is optional in practice: the
// decoder must never be the reason a search fails.

type RawEvent struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	Images          []RawImage       `json:"images"`
	Dates           *RawDates        `json:"dates"`
	Classifications []Classification `json:"classifications"`
	PriceRanges     []RawPriceRange  `json:"priceRanges"`
	Seatmap         *RawSeatmap      `json:"seatmap"`
	Embedded        *RawEmbedded     `json:"_embedded"`
}

type RawImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type RawDates struct {
	Start  *RawStart  `json:"start"`
	Status *RawStatus `json:"status"`
}

type RawStart struct {
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
}

type RawStatus struct {
	Code string `json:"code"`
}

type Classification struct {
	Segment  *Named `json:"segment"`
	Genre    *Named `json:"genre"`
	SubGenre *Named `json:"subGenre"`
	Type     *Named `json:"type"`
	SubType  *Named `json:"subType"`
}

type Named struct {
	Name string `json:"name"`
}

type RawPriceRange struct {
	Currency string  `json:"currency"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

type RawSeatmap struct {
	StaticURL string `json:"staticUrl"`
}

type RawVenue struct {
	Name string `json:"name"`
}

type RawAttraction struct {
	Name string `json:"name"`
}

type RawEmbedded struct {
	Venues      []RawVenue      `json:"venues"`
	Attractions []RawAttraction `json:"attractions"`
	Events      []RawEvent      `json:"events"`
}

type searchResponse struct {
	Embedded *RawEmbedded `json:"_embedded"`
}

type suggestResponse struct {
	Embedded *RawEmbedded `json:"_embedded"`
}
