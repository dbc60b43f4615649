package client

import (
	"context"
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"

	"eventhub/internal/domain"
)

// defaultUndoTTL bounds how long a removed favorite can be restored.
const defaultUndoTTL = 5 * time.Second

// Notifier receives user-facing notifications from the favorites store.
// Info carries an optional undo action valid for the notification's lifetime.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string, undo func(context.Context))
}

type nopNotifier struct{}

func (nopNotifier) Success(string)                     {}
func (nopNotifier) Error(string)                       {}
func (nopNotifier) Info(string, func(context.Context)) {}

// FavoritesAPI is the server surface the store synchronizes against.
// *Client satisfies it.
type FavoritesAPI interface {
	Favorites(ctx context.Context) ([]domain.Favorite, error)
	AddFavorite(ctx context.Context, ev domain.Event) (string, error)
	RemoveFavorite(ctx context.Context, id string) (string, error)
}

type undoEntry struct {
	event   domain.Event
	index   int
	expires time.Time
}

// FavoritesStore keeps a client-side ordered view of favorites consistent
// with the server, using optimistic mutation.
//
// Mutations apply locally first and persist after; a failed persist is
// reported but NOT rolled back, so local and server state drift until the
// next Load. Re-removing an event the user just favorited mid-interaction
// was judged more surprising than the drift.
//
// Subscribers are notified synchronously on every mutation, outside the
// store's lock, with a snapshot of the new state.
type FavoritesStore struct {
	api      FavoritesAPI
	notifier Notifier
	undoTTL  time.Duration
	now      func() time.Time

	mu      sync.Mutex
	events  []domain.Event
	undo    map[string]undoEntry
	subs    map[int]func([]domain.Event)
	nextSub int
}

func NewFavoritesStore(api FavoritesAPI, notifier Notifier, undoTTL time.Duration) *FavoritesStore {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if undoTTL == 0 {
		undoTTL = defaultUndoTTL
	}
	return &FavoritesStore{
		api:      api,
		notifier: notifier,
		undoTTL:  undoTTL,
		now:      time.Now,
		undo:     map[string]undoEntry{},
		subs:     map[int]func([]domain.Event){},
	}
}

// Load replaces the local state wholesale with the server's favorites list.
// Called once at startup and as the recovery path after drift.
func (s *FavoritesStore) Load(ctx context.Context) error {
	favs, err := s.api.Favorites(ctx)
	if err != nil {
		return err
	}

	events := make([]domain.Event, 0, len(favs))
	for _, f := range favs {
		events = append(events, f.Event)
	}

	s.mu.Lock()
	s.events = events
	s.undo = map[string]undoEntry{}
	s.mu.Unlock()

	s.fanout()
	return nil
}

type AddOptions struct {
	// InsertAt restores a specific display position (used by undo). nil
	// appends.
	InsertAt *int
	// Silent suppresses the success notification.
	Silent bool
}

// Add optimistically inserts the event, then persists it. Adding an event
// that is already a favorite is a no-op. The returned error reports a persist
// failure; the local insert stands regardless.
func (s *FavoritesStore) Add(ctx context.Context, ev domain.Event, opts AddOptions) error {
	if ev.ID == "" {
		return nil
	}

	s.mu.Lock()
	if s.indexOf(ev.ID) >= 0 {
		s.mu.Unlock()
		if !opts.Silent {
			s.notifier.Info(ev.Name+" is already in favorites", nil)
		}
		return nil
	}

	at := len(s.events)
	if opts.InsertAt != nil && *opts.InsertAt >= 0 && *opts.InsertAt < at {
		at = *opts.InsertAt
	}
	s.events = append(s.events, domain.Event{})
	copy(s.events[at+1:], s.events[at:])
	s.events[at] = ev
	delete(s.undo, ev.ID)
	s.mu.Unlock()

	s.fanout()
	if !opts.Silent {
		s.notifier.Success("Added " + ev.Name + " to favorites")
	}

	if _, err := s.api.AddFavorite(ctx, ev); err != nil {
		zlog.Warn().Err(err).Str("event_id", ev.ID).Msg("favorite persist failed, local state kept")
		s.notifier.Error("Could not save " + ev.Name + " to the server")
		return err
	}
	return nil
}

type RemoveOptions struct {
	// Silent suppresses the removal notification (and with it the undo
	// action).
	Silent bool
}

// Remove optimistically deletes the favorite and offers a time-bounded undo
// restoring its original position. Removing an id that is not a favorite is
// a silent no-op.
func (s *FavoritesStore) Remove(ctx context.Context, id string, opts RemoveOptions) error {
	s.mu.Lock()
	at := s.indexOf(id)
	if at < 0 {
		s.mu.Unlock()
		return nil
	}

	ev := s.events[at]
	s.events = append(s.events[:at], s.events[at+1:]...)
	s.undo[id] = undoEntry{event: ev, index: at, expires: s.now().Add(s.undoTTL)}
	s.mu.Unlock()

	s.fanout()
	if !opts.Silent {
		s.notifier.Info("Removed "+ev.Name+" from favorites", func(ctx context.Context) {
			s.Undo(ctx, id)
		})
	}

	if _, err := s.api.RemoveFavorite(ctx, id); err != nil {
		zlog.Warn().Err(err).Str("event_id", id).Msg("favorite delete failed, local state kept")
		s.notifier.Error("Could not remove " + ev.Name + " from the server")
		return err
	}
	return nil
}

// Undo restores a recently removed favorite at its original index. It
// reports false when there is nothing to restore or the undo window has
// passed.
func (s *FavoritesStore) Undo(ctx context.Context, id string) bool {
	s.mu.Lock()
	entry, ok := s.undo[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.undo, id)
	if s.now().After(entry.expires) {
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()

	at := entry.index
	_ = s.Add(ctx, entry.event, AddOptions{InsertAt: &at, Silent: true})
	return true
}

// IsFavorite reports membership by event id. An empty id is never a
// favorite.
func (s *FavoritesStore) IsFavorite(id string) bool {
	if id == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id) >= 0
}

// Favorites returns a snapshot of the current state in display order.
func (s *FavoritesStore) Favorites() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe registers a callback invoked synchronously after every mutation.
// The returned token unsubscribes.
func (s *FavoritesStore) Subscribe(fn func([]domain.Event)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	s.subs[s.nextSub] = fn
	return s.nextSub
}

func (s *FavoritesStore) Unsubscribe(token int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, token)
}

// indexOf requires s.mu held.
func (s *FavoritesStore) indexOf(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// snapshot requires s.mu held.
func (s *FavoritesStore) snapshot() []domain.Event {
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

// fanout notifies subscribers outside the lock so a subscriber may call back
// into the store.
func (s *FavoritesStore) fanout() {
	s.mu.Lock()
	snap := s.snapshot()
	subs := make([]func([]domain.Event), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
