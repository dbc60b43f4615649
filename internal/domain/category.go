package domain

// Categories is the fixed search category enumeration, "All" included.
var Categories = []string{"All", "Music", "Sports", "Arts & Theatre", "Film", "Miscellaneous"}

// segmentIDs maps a category to the Ticketmaster discovery segment id.
// "All" is deliberately absent: it applies no segment filter.
var segmentIDs = map[string]string{
	"Music":          "KZFzniwnSyZfZ7v7nJ",
	"Sports":         "KZFzniwnSyZfZ7v7nE",
	"Arts & Theatre": "KZFzniwnSyZfZ7v7na",
	"Film":           "KZFzniwnSyZfZ7v7nn",
	"Miscellaneous":  "KZFzniwnSyZfZ7v7n1",
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// SegmentID returns the segment id for a category; ok is false for "All" and
// unknown values.
func SegmentID(category string) (string, bool) {
	id, ok := segmentIDs[category]
	return id, ok
}
