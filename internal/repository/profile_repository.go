package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/postflow-composer/internal/models"
)

type ProfileRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]*models.Profile, error)
}

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// ListByUserID returns the user's profiles oldest first; the first one is the default.
func (r *profileRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Profile, error) {
	query := `SELECT id, user_id, name, created_at FROM profiles WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		profiles = append(profiles, &p)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return profiles, nil
}
