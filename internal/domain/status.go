package domain

import "strings"

const StatusOnSale = "onsale"

// NormalizeTicketStatus lower-cases a provider status code, defaulting to
// "onsale" when absent. Unknown codes pass through lower-cased: the provider
// taxonomy (onsale, offsale, canceled, postponed, rescheduled) is open-ended.
func NormalizeTicketStatus(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return StatusOnSale
	}
	return code
}
