package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"eventhub/internal/domain"
)

// Repo stores favorites as JSONB documents keyed by event id.
type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// Insert stores the favorite. inserted is false when the event id was
// already present (the row is left untouched).
func (r *Repo) Insert(ctx context.Context, ev domain.Event, addedAt time.Time) (bool, error) {
	doc, err := json.Marshal(ev)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, insertFavoriteSQL, ev.ID, doc, addedAt)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes the favorite. removed is false when no row matched.
func (r *Repo) Delete(ctx context.Context, eventID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteFavoriteSQL, eventID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns all favorites ordered by insertion time.
func (r *Repo) List(ctx context.Context) ([]domain.Favorite, error) {
	rows, err := r.db.QueryContext(ctx, listFavoritesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Favorite{}
	for rows.Next() {
		var (
			f   domain.Favorite
			doc []byte
		)
		if err := rows.Scan(&f.EventID, &doc, &f.AddedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(doc, &f.Event); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) Exists(ctx context.Context, eventID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, existsFavoriteSQL, eventID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
