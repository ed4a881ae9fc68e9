package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/DarshanchGIT/wordverse/internal/common"
	"github.com/DarshanchGIT/wordverse/internal/server/models"
)

type voteRequest struct {
	PostID    string `json:"postId"`
	Direction string `json:"direction"`
}

type voteResponse struct {
	Direction string `json:"direction"`
	Count     int64  `json:"count"`
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type postResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	Upvotes    int64     `json:"upvotes"`
	Direction  string    `json:"direction,omitempty"`
}

func (s *Server) handleVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req voteRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PostID == "" {
		writeError(w, http.StatusBadRequest, "postId is required")
		return
	}

	requested := models.VoteDirection("")
	if req.Direction != "" {
		var err error
		requested, err = models.ParseVoteDirection(req.Direction)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid vote direction")
			return
		}
	}

	direction, count, err := s.blog.ToggleVote(r.Context(), userID, req.PostID, requested)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "post not found")
		default:
			s.logger.Error(r.Context(), "vote toggle failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, voteResponse{Direction: string(direction), Count: count})
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createPostRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := s.blog.CreatePost(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error(r.Context(), "post create failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(r.Context(), "post published", "post_id", post.ID, "author_id", userID)
	writeJSON(w, http.StatusOK, postResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.blog.ListPosts(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "post list failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, postResponse{
			ID:         p.ID,
			Title:      p.Title,
			Content:    p.Content,
			AuthorName: p.AuthorName,
			CreatedAt:  p.CreatedAt,
			Upvotes:    p.Upvotes,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": out})
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("id")
	if postID == "" {
		writeError(w, http.StatusBadRequest, "post id is required")
		return
	}

	// anonymous readers are fine here; they just get no vote direction
	userID, _ := UserIDFromContext(r.Context())

	post, direction, err := s.blog.GetPost(r.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		s.logger.Error(r.Context(), "post load failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := postResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		AuthorName: post.AuthorName,
		CreatedAt:  post.CreatedAt,
		Upvotes:    post.Upvotes,
	}
	if userID != "" {
		resp.Direction = string(direction)
	}

	writeJSON(w, http.StatusOK, resp)
}
