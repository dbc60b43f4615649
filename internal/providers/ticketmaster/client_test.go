package ticketmaster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func TestClient_SearchEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("apikey"))
		assert.Equal(t, "concert", q.Get("keyword"))
		assert.Equal(t, "25", q.Get("radius"))
		assert.Equal(t, "miles", q.Get("unit"))
		assert.Equal(t, "34.0522,-118.2437", q.Get("geoPoint"))
		assert.Equal(t, "20", q.Get("size"))
		assert.Equal(t, "date,asc", q.Get("sort"))
		assert.Equal(t, "KZFzniwnSyZfZ7v7nJ", q.Get("segmentId"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_embedded":{"events":[
			{"id":"e1","name":"Show One"},
			{"id":"e2","name":"Show Two"}
		]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", 2*time.Second)
	events, err := c.SearchEvents(context.Background(), SearchParams{
		Keyword:   "concert",
		Radius:    25,
		GeoPoint:  "34.0522,-118.2437",
		SegmentID: "KZFzniwnSyZfZ7v7nJ",
	})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Show One", events[0].Name)
}

func TestClient_SearchEvents_NoEmbedded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":{"totalElements":0}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", time.Second)
	events, err := c.SearchEvents(context.Background(), SearchParams{Keyword: "nothing", Radius: 10, GeoPoint: "0,0"})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestClient_SearchEvents_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"fault":{"faultstring":"Rate limit quota violation"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", time.Second)
	_, err := c.SearchEvents(context.Background(), SearchParams{Keyword: "x", Radius: 10, GeoPoint: "0,0"})
	require.Error(t, err)

	var ae *domain.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, domain.CodeUpstream, ae.Code)
	assert.Equal(t, "429", ae.Meta["status"])
	assert.Contains(t, ae.Meta["body"], "Rate limit")
}

func TestClient_GetEvent_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "k", time.Second)
	_, err := c.GetEvent(context.Background(), "missing")
	require.Error(t, err)

	var ae *domain.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, domain.CodeNotFound, ae.Code)
}

func TestClient_Suggest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/suggest.json", r.URL.Path)
		w.Write([]byte(`{"_embedded":{"attractions":[
			{"name":"Taylor Swift"},{"name":""},{"name":"Taylor Tomlinson"}
		]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", time.Second)
	names, err := c.Suggest(context.Background(), "tay", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Taylor Swift", "Taylor Tomlinson"}, names)
}

func TestClient_Suggest_LimitApplied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_embedded":{"attractions":[
			{"name":"a"},{"name":"b"},{"name":"c"}
		]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", time.Second)
	names, err := c.Suggest(context.Background(), "x", 2)
	require.NoError(t, err)
	assert.Len(t, names, 2)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, "k", 10*time.Millisecond)
	_, err := c.SearchEvents(context.Background(), SearchParams{Keyword: "x", Radius: 10, GeoPoint: "0,0"})
	require.Error(t, err)

	var ae *domain.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, domain.CodeUpstream, ae.Code)
}
