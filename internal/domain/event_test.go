package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvent_StartsAt(t *testing.T) {
	t.Run("date_and_time", func(t *testing.T) {
		e := Event{Date: "2025-03-01", Time: "19:30:00"}
		at, ok := e.StartsAt()
		assert.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 1, 19, 30, 0, 0, time.UTC), at)
	})

	t.Run("date_only", func(t *testing.T) {
		e := Event{Date: "2025-03-01"}
		at, ok := e.StartsAt()
		assert.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), at)
	})

	t.Run("short_time_layout", func(t *testing.T) {
		e := Event{Date: "2025-03-01", Time: "19:30"}
		at, ok := e.StartsAt()
		assert.True(t, ok)
		assert.Equal(t, 19, at.Hour())
		assert.Equal(t, 30, at.Minute())
	})

	t.Run("missing_date", func(t *testing.T) {
		_, ok := Event{}.StartsAt()
		assert.False(t, ok)
	})

	t.Run("garbage_date", func(t *testing.T) {
		_, ok := Event{Date: "soon"}.StartsAt()
		assert.False(t, ok)
	})

	t.Run("garbage_time_still_dated", func(t *testing.T) {
		at, ok := Event{Date: "2025-03-01", Time: "evening"}.StartsAt()
		assert.True(t, ok)
		assert.Equal(t, 0, at.Hour())
	})
}

func TestNormalizeTicketStatus(t *testing.T) {
	assert.Equal(t, "onsale", NormalizeTicketStatus(""))
	assert.Equal(t, "onsale", NormalizeTicketStatus("OnSale"))
	assert.Equal(t, "canceled", NormalizeTicketStatus("Canceled"))
	assert.Equal(t, "sold out", NormalizeTicketStatus(" Sold Out "))
}

func TestSegmentID(t *testing.T) {
	id, ok := SegmentID("Arts & Theatre")
	assert.True(t, ok)
	assert.Equal(t, "KZFzniwnSyZfZ7v7na", id)

	_, ok = SegmentID("All")
	assert.False(t, ok)

	assert.True(t, ValidCategory("All"))
	assert.False(t, ValidCategory("music"))
}
