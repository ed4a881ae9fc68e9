package votes

import (
	"context"

	"github.com/DarshanchGIT/wordverse/internal/server/models"
)

// Repository is the vote store adapter. Get never errors for a missing
// row: the absence of a row is the "none" direction.
//
// GetForUpdate must be called inside a transaction; it takes a row lock on
// the (user, post) pair so that concurrent toggles on the same pair
// serialize at the storage layer.
type Repository interface {
	Get(ctx context.Context, userID, postID string) (models.VoteDirection, error)
	GetForUpdate(ctx context.Context, userID, postID string) (models.VoteDirection, error)
	Upsert(ctx context.Context, userID, postID string, direction models.VoteDirection) error
	CountForPost(ctx context.Context, postID string) (int64, error)
}
