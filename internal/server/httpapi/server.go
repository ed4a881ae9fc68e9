// Package httpapi implements the public REST interface of the server.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/DarshanchGIT/wordverse/internal/logging"
	"github.com/DarshanchGIT/wordverse/internal/server/models"
)

// UserService is the slice of the user service the HTTP layer needs.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// BlogService is the slice of the blog service the HTTP layer needs.
type BlogService interface {
	CreatePost(ctx context.Context, authorID, title, content string) (*models.Post, error)
	GetPost(ctx context.Context, postID, userID string) (*models.PostWithMeta, models.VoteDirection, error)
	ListPosts(ctx context.Context) ([]*models.PostWithMeta, error)
	ToggleVote(ctx context.Context, userID, postID string, requested models.VoteDirection) (models.VoteDirection, int64, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	users     UserService
	blog      BlogService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us UserService, bs BlogService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		blog:      bs,
		jwtSecret: []byte(secretKey),
	}
}

// Handler returns the root http.Handler. Protected routes go through
// requireAuth, which rejects the request before any business logic runs.
// Public read routes use optionalAuth so a signed-in reader gets their own
// vote state back.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/health", s.handleHealth)

	mux.HandleFunc("POST /api/v1/user/signup", s.handleSignup)
	mux.HandleFunc("POST /api/v1/user/signin", s.handleSignin)

	mux.Handle("PUT /api/v1/blog/vote", s.requireAuth(http.HandlerFunc(s.handleVote)))
	mux.Handle("POST /api/v1/blog", s.requireAuth(http.HandlerFunc(s.handleCreatePost)))
	mux.HandleFunc("GET /api/v1/blog/bulk", s.handleListPosts)
	mux.Handle("GET /api/v1/blog/{id}", s.optionalAuth(http.HandlerFunc(s.handleGetPost)))

	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
