package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

type fakeFavAPI struct {
	favs []domain.Favorite

	addCalls    int
	removeCalls int
	addErr      error
	removeErr   error
}

func (f *fakeFavAPI) Favorites(_ context.Context) ([]domain.Favorite, error) {
	return f.favs, nil
}

func (f *fakeFavAPI) AddFavorite(_ context.Context, _ domain.Event) (string, error) {
	f.addCalls++
	if f.addErr != nil {
		return "", f.addErr
	}
	return "added", nil
}

func (f *fakeFavAPI) RemoveFavorite(_ context.Context, _ string) (string, error) {
	f.removeCalls++
	if f.removeErr != nil {
		return "", f.removeErr
	}
	return "removed", nil
}

type recordingNotifier struct {
	successes []string
	errors    []string
	infos     []string
	lastUndo  func(context.Context)
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }
func (n *recordingNotifier) Info(msg string, undo func(context.Context)) {
	n.infos = append(n.infos, msg)
	n.lastUndo = undo
}

func ev(id, name string) domain.Event { return domain.Event{ID: id, Name: name} }

func ids(events []domain.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestFavoritesStore_Load(t *testing.T) {
	api := &fakeFavAPI{favs: []domain.Favorite{
		{EventID: "a", Event: ev("a", "First")},
		{EventID: "b", Event: ev("b", "Second")},
	}}
	s := NewFavoritesStore(api, nil, 0)

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, []string{"a", "b"}, ids(s.Favorites()))
	assert.True(t, s.IsFavorite("a"))
}

func TestFavoritesStore_Add_Idempotent(t *testing.T) {
	api := &fakeFavAPI{}
	s := NewFavoritesStore(api, nil, 0)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, ev("x", "Show"), AddOptions{}))
	require.NoError(t, s.Add(ctx, ev("x", "Show"), AddOptions{}))

	assert.Equal(t, []string{"x"}, ids(s.Favorites()), "exactly one entry after double add")
	assert.Equal(t, 1, api.addCalls, "duplicate add must not hit the server")
}

func TestFavoritesStore_Add_PersistFailureKeepsLocalState(t *testing.T) {
	api := &fakeFavAPI{addErr: errors.New("server down")}
	n := &recordingNotifier{}
	s := NewFavoritesStore(api, n, 0)

	err := s.Add(context.Background(), ev("x", "Show"), AddOptions{})

	require.Error(t, err)
	assert.True(t, s.IsFavorite("x"), "optimistic insert must not roll back")
	assert.NotEmpty(t, n.errors, "persist failure surfaces an error notification")
}

func TestFavoritesStore_RemoveThenUndo_RestoresOriginalIndex(t *testing.T) {
	api := &fakeFavAPI{}
	s := NewFavoritesStore(api, nil, 0)
	ctx := context.Background()

	for _, e := range []domain.Event{ev("a", "A"), ev("b", "B"), ev("c", "C")} {
		require.NoError(t, s.Add(ctx, e, AddOptions{Silent: true}))
	}

	require.NoError(t, s.Remove(ctx, "b", RemoveOptions{Silent: true}))
	assert.Equal(t, []string{"a", "c"}, ids(s.Favorites()))

	assert.True(t, s.Undo(ctx, "b"))
	assert.Equal(t, []string{"a", "b", "c"}, ids(s.Favorites()),
		"undo must restore the original position, not append")
}

func TestFavoritesStore_Undo_ExpiresAfterTTL(t *testing.T) {
	api := &fakeFavAPI{}
	s := NewFavoritesStore(api, nil, time.Second)
	ctx := context.Background()

	base := time.Now()
	s.now = func() time.Time { return base }

	require.NoError(t, s.Add(ctx, ev("a", "A"), AddOptions{Silent: true}))
	require.NoError(t, s.Remove(ctx, "a", RemoveOptions{Silent: true}))

	s.now = func() time.Time { return base.Add(2 * time.Second) }
	assert.False(t, s.Undo(ctx, "a"), "undo after the window must not restore")
	assert.False(t, s.IsFavorite("a"))
}

func TestFavoritesStore_Undo_ViaNotificationAction(t *testing.T) {
	api := &fakeFavAPI{}
	n := &recordingNotifier{}
	s := NewFavoritesStore(api, n, 0)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, ev("a", "A"), AddOptions{Silent: true}))
	require.NoError(t, s.Remove(ctx, "a", RemoveOptions{}))

	require.NotNil(t, n.lastUndo, "removal notification must carry an undo action")
	n.lastUndo(ctx)
	assert.True(t, s.IsFavorite("a"))
}

func TestFavoritesStore_Remove_AbsentIsSilentNoop(t *testing.T) {
	api := &fakeFavAPI{}
	n := &recordingNotifier{}
	s := NewFavoritesStore(api, n, 0)

	require.NoError(t, s.Remove(context.Background(), "ghost", RemoveOptions{}))
	assert.Zero(t, api.removeCalls, "absent remove must not hit the server")
	assert.Empty(t, n.infos)
	assert.Empty(t, n.errors)
}

func TestFavoritesStore_IsFavorite_EmptyID(t *testing.T) {
	s := NewFavoritesStore(&fakeFavAPI{}, nil, 0)
	assert.False(t, s.IsFavorite(""))
}

func TestFavoritesStore_SubscribeFanout(t *testing.T) {
	s := NewFavoritesStore(&fakeFavAPI{}, nil, 0)
	ctx := context.Background()

	var calls int
	var last []domain.Event
	token := s.Subscribe(func(snap []domain.Event) {
		calls++
		last = snap
	})

	require.NoError(t, s.Add(ctx, ev("a", "A"), AddOptions{Silent: true}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"a"}, ids(last))

	require.NoError(t, s.Remove(ctx, "a", RemoveOptions{Silent: true}))
	assert.Equal(t, 2, calls)
	assert.Empty(t, last)

	s.Unsubscribe(token)
	require.NoError(t, s.Add(ctx, ev("b", "B"), AddOptions{Silent: true}))
	assert.Equal(t, 2, calls, "unsubscribed callback must not fire")
}

func TestFavoritesStore_SubscriberMayReadBackIntoStore(t *testing.T) {
	s := NewFavoritesStore(&fakeFavAPI{}, nil, 0)
	ctx := context.Background()

	var sawFavorite bool
	s.Subscribe(func(_ []domain.Event) {
		// Fan-out happens outside the lock, so this must not deadlock.
		sawFavorite = s.IsFavorite("a")
	})

	require.NoError(t, s.Add(ctx, ev("a", "A"), AddOptions{Silent: true}))
	assert.True(t, sawFavorite)
}
