package favorites

import (
	"context"
	"time"

	"eventhub/internal/domain"
)

const (
	StatusAdded         = "added"
	StatusAlreadyExists = "already_exists"
	StatusRemoved       = "removed"
	StatusNotFound      = "not_found"
)

type Clock interface{ Now() time.Time }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type Repo interface {
	Insert(ctx context.Context, ev domain.Event, addedAt time.Time) (bool, error)
	Delete(ctx context.Context, eventID string) (bool, error)
	List(ctx context.Context) ([]domain.Favorite, error)
}

// Service wraps the favorites store. A nil repo means the store never came
// up; every operation then reports the store as unavailable rather than
// failing at startup.
type Service struct {
	repo  Repo
	clock Clock
}

func New(repo Repo, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, clock: clock}
}

func (s *Service) available() error {
	if s.repo == nil {
		return domain.ErrUnavailable("favorites store unavailable")
	}
	return nil
}
