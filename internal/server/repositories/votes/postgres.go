package votes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DarshanchGIT/wordverse/internal/dbx"
	"github.com/DarshanchGIT/wordverse/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID, postID string) (models.VoteDirection, error) {
	return r.get(ctx, userID, postID, false)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, userID, postID string) (models.VoteDirection, error) {
	return r.get(ctx, userID, postID, true)
}

func (r *PostgresRepository) get(ctx context.Context, userID, postID string, forUpdate bool) (models.VoteDirection, error) {
	query :=
		`SELECT direction FROM votes
		 WHERE user_id = $1 AND post_id = $2
		 `
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var direction models.VoteDirection
	err := r.db.QueryRowContext(ctx, query, userID, postID).Scan(&direction)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VoteNone, nil
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return direction, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, userID, postID string, direction models.VoteDirection) error {
	query :=
		`INSERT INTO votes (user_id, post_id, direction)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, post_id)
		 DO UPDATE SET direction = EXCLUDED.direction, updated_at = now()
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, postID, direction); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) CountForPost(ctx context.Context, postID string) (int64, error) {
	query :=
		`SELECT COUNT(*) FROM votes
		 WHERE post_id = $1 AND direction = 'up'
		 `

	var count int64
	if err := r.db.QueryRowContext(ctx, query, postID).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}
