package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DarshanchGIT/wordverse/internal/common"
	"github.com/DarshanchGIT/wordverse/internal/dbx"
	"github.com/DarshanchGIT/wordverse/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	query :=
		`INSERT INTO posts (id, author_id, title, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.AuthorID, post.Title, post.Content).Scan(&post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.PostWithMeta, error) {
	query :=
		`SELECT p.id, p.author_id, p.title, p.content, p.created_at, u.name,
		        COUNT(v.user_id) AS upvotes
		 FROM posts p
		 JOIN users u ON u.id = p.author_id
		 LEFT JOIN votes v ON v.post_id = p.id AND v.direction = 'up'
		 WHERE p.id = $1
		 GROUP BY p.id, u.name
		 `

	post := &models.PostWithMeta{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.CreatedAt,
		&post.AuthorName, &post.Upvotes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.PostWithMeta, error) {
	query :=
		`SELECT p.id, p.author_id, p.title, p.content, p.created_at, u.name,
		        COUNT(v.user_id) AS upvotes
		 FROM posts p
		 JOIN users u ON u.id = p.author_id
		 LEFT JOIN votes v ON v.post_id = p.id AND v.direction = 'up'
		 GROUP BY p.id, u.name
		 ORDER BY p.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.PostWithMeta
	for rows.Next() {
		post := &models.PostWithMeta{}
		if err := rows.Scan(
			&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.CreatedAt,
			&post.AuthorName, &post.Upvotes); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}
