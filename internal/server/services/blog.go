package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/DarshanchGIT/wordverse/internal/common"
	"github.com/DarshanchGIT/wordverse/internal/dbx"
	"github.com/DarshanchGIT/wordverse/internal/logging"
	"github.com/DarshanchGIT/wordverse/internal/server/models"
	"github.com/DarshanchGIT/wordverse/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// BlogService holds post and vote operations. All authoritative state lives
// in the database; the service itself keeps no per-request mutable state, so
// any number of instances can run side by side.
type BlogService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewBlogService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *BlogService {
	return &BlogService{
		db:     db,
		repos:  m,
		logger: logger.With("module", "blog_service"),
	}
}

// CreatePost publishes a new post owned by authorID.
func (s *BlogService) CreatePost(ctx context.Context, authorID, title, content string) (*models.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &common.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(content) == "" {
		return nil, &common.ValidationError{Field: "content", Reason: "must not be empty"}
	}

	post := &models.Post{
		ID:       uuid.NewString(),
		AuthorID: authorID,
		Title:    title,
		Content:  content,
	}

	repo := s.repos.Posts(s.db)
	created, err := repo.Create(ctx, post)
	if err != nil {
		s.logger.Error(ctx, "post create failed", "error", err.Error())
		return nil, fmt.Errorf("%w: creating post", common.ErrorStorageUnavailable)
	}

	return created, nil
}

// GetPost returns a single post with author name and upvote count. When
// userID is non-empty, the caller's own vote direction is included.
func (s *BlogService) GetPost(ctx context.Context, postID, userID string) (*models.PostWithMeta, models.VoteDirection, error) {
	repo := s.repos.Posts(s.db)

	post, err := repo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorNotFound
		}
		s.logger.Error(ctx, "post load failed", "error", err.Error())
		return nil, "", fmt.Errorf("%w: loading post", common.ErrorStorageUnavailable)
	}

	direction := models.VoteNone
	if userID != "" {
		direction, err = s.repos.Votes(s.db).Get(ctx, userID, postID)
		if err != nil {
			s.logger.Error(ctx, "vote load failed", "error", err.Error())
			return nil, "", fmt.Errorf("%w: loading vote", common.ErrorStorageUnavailable)
		}
	}

	return post, direction, nil
}

// ListPosts returns all posts, newest first, with author names and counts.
func (s *BlogService) ListPosts(ctx context.Context) ([]*models.PostWithMeta, error) {
	repo := s.repos.Posts(s.db)

	posts, err := repo.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "post list failed", "error", err.Error())
		return nil, fmt.Errorf("%w: listing posts", common.ErrorStorageUnavailable)
	}

	return posts, nil
}

// ToggleVote flips the persisted vote of userID on postID and returns the
// authoritative new direction plus the recomputed upvote count.
//
// The requested direction is the client's guess of where it wants to end up;
// it is advisory only. The service always flips relative to the persisted
// state, so two tabs racing each other cannot diverge from the store. The
// read-flip-write and the count recomputation run in one transaction with a
// row lock on the (user, post) pair, so concurrent toggles on the same pair
// serialize; toggles on different pairs are independent.
//
// Repeated calls alternate the state: this operation is deliberately not
// idempotent.
func (s *BlogService) ToggleVote(ctx context.Context, userID, postID string, requested models.VoteDirection) (models.VoteDirection, int64, error) {
	exists, err := s.repos.Posts(s.db).Exists(ctx, postID)
	if err != nil {
		s.logger.Error(ctx, "post existence check failed", "error", err.Error())
		return "", 0, fmt.Errorf("%w: checking post", common.ErrorStorageUnavailable)
	}
	if !exists {
		return "", 0, common.ErrorNotFound
	}

	var (
		newDirection models.VoteDirection
		newCount     int64
	)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Votes(tx)

		current, err := repo.GetForUpdate(ctx, userID, postID)
		if err != nil {
			return err
		}

		newDirection = current.Flip()
		if requested != "" && requested != newDirection {
			s.logger.Debug(ctx, "client vote state diverged from store",
				"user_id", userID, "post_id", postID,
				"requested", string(requested), "applied", string(newDirection))
		}

		if err := repo.Upsert(ctx, userID, postID, newDirection); err != nil {
			return err
		}

		newCount, err = repo.CountForPost(ctx, postID)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "vote toggle failed", "error", err.Error())
		return "", 0, fmt.Errorf("%w: toggling vote", common.ErrorStorageUnavailable)
	}

	return newDirection, newCount, nil
}
