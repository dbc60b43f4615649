package client

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"eventhub/internal/domain"
)

var formValidator = validator.New()

// SearchForm is the validated search input. With AutoDetect set the Location
// text is ignored and the coordinate comes from IP detection; otherwise
// Location is geocoded and must resolve.
type SearchForm struct {
	Keyword    string `validate:"required"`
	Category   string `validate:"required"`
	Distance   int    `validate:"min=1,max=100"`
	Location   string
	AutoDetect bool
}

// FormError is a per-field validation failure.
type FormError struct {
	Field  string
	Reason string
}

func (e *FormError) Error() string { return e.Field + ": " + e.Reason }

// Validate checks the form before any network call.
func (f *SearchForm) Validate() error {
	f.Keyword = strings.TrimSpace(f.Keyword)
	f.Location = strings.TrimSpace(f.Location)

	if err := formValidator.Struct(f); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok || len(errs) == 0 {
			return err
		}
		switch errs[0].Field() {
		case "Keyword":
			return &FormError{Field: "keyword", Reason: "is required"}
		case "Category":
			return &FormError{Field: "category", Reason: "is required"}
		default:
			return &FormError{Field: "distance", Reason: "must be between 1 and 100"}
		}
	}
	if !domain.ValidCategory(f.Category) {
		return &FormError{Field: "category", Reason: "must be one of: " + strings.Join(domain.Categories, ", ")}
	}
	if !f.AutoDetect && f.Location == "" {
		return &FormError{Field: "location", Reason: "is required unless auto-detect is enabled"}
	}
	return nil
}

// ResolveLocation produces the search coordinate. Auto-detect never fails:
// the server substitutes a fallback coordinate and the notice surfaces
// through the notifier. The manual path refuses to fall back: an address
// that does not geocode is an error and the search must not proceed.
func (f *SearchForm) ResolveLocation(ctx context.Context, api *Client, notifier Notifier) (*Location, error) {
	if notifier == nil {
		notifier = nopNotifier{}
	}

	if f.AutoDetect {
		loc, err := api.AutoDetect(ctx)
		if err != nil {
			return nil, err
		}
		if loc.Fallback {
			notifier.Info("Could not detect your location, using "+loc.City, nil)
		}
		return loc, nil
	}

	loc, err := api.Geocode(ctx, f.Location)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.Code == "not_found" {
			notifier.Error("No results for \"" + f.Location + "\", try adding a city, state or ZIP code")
		}
		return nil, err
	}
	return loc, nil
}

// Run validates, resolves the location, and executes the search.
func (f *SearchForm) Run(ctx context.Context, api *Client, notifier Notifier) (*SearchResult, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	loc, err := f.ResolveLocation(ctx, api, notifier)
	if err != nil {
		return nil, err
	}

	return api.Search(ctx, SearchParams{
		Keyword:   f.Keyword,
		Category:  f.Category,
		Distance:  f.Distance,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	})
}
