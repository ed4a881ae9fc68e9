package posts

import (
	"context"

	"github.com/DarshanchGIT/wordverse/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.PostWithMeta, error)
	List(ctx context.Context) ([]*models.PostWithMeta, error)
	Exists(ctx context.Context, id string) (bool, error)
}
