// Package api is the HTTP client for the Wordverse server. It mirrors the
// REST surface and maps response statuses onto sentinel errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Direction is a vote state as the server reports it.
type Direction string

const (
	DirectionNone Direction = "none"
	DirectionUp   Direction = "up"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == DirectionUp {
		return DirectionNone
	}
	return DirectionUp
}

// Post is a post as returned by the server. Direction is the caller's own
// vote and is only populated on authenticated single-post reads.
type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	Upvotes    int64     `json:"upvotes"`
	Direction  Direction `json:"direction"`
}

// VoteResult is the authoritative outcome of a vote toggle.
type VoteResult struct {
	Direction Direction `json:"direction"`
	Count     int64     `json:"count"`
}

// Client talks to one Wordverse server. It is not safe for concurrent use;
// the UI layer drives it from a single event loop.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken installs the session credential used on subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current session credential, if any.
func (c *Client) Token() string { return c.token }

type tokenResponse struct {
	Token string `json:"token"`
}

// Signup registers a new account and stores the returned credential.
func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/user/signup",
		map[string]string{"name": name, "email": email, "password": password}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// Signin authenticates and stores the returned credential.
func (c *Client) Signin(ctx context.Context, email, password string) error {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/user/signin",
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// CreatePost publishes a post. Requires a credential.
func (c *Client) CreatePost(ctx context.Context, title, content string) (*Post, error) {
	var post Post
	err := c.do(ctx, http.MethodPost, "/api/v1/blog",
		map[string]string{"title": title, "content": content}, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts returns all posts, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var resp struct {
		Posts []Post `json:"posts"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/blog/bulk", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

// GetPost returns a single post. With a credential installed the result
// includes the caller's own vote direction.
func (c *Client) GetPost(ctx context.Context, postID string) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, "/api/v1/blog/"+postID, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ToggleVote flips the caller's vote on postID and returns the
// authoritative direction and count. The requested direction is the
// client's guess and is advisory only; the server flips persisted state.
func (c *Client) ToggleVote(ctx context.Context, postID string, requested Direction) (*VoteResult, error) {
	var result VoteResult
	err := c.do(ctx, http.MethodPut, "/api/v1/blog/vote",
		map[string]string{"postId": postID, "direction": string(requested)}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapStatus(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *Client) mapStatus(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrEmailExists
	default:
		if resp.StatusCode >= 500 {
			return ErrServerUnavailable
		}
		if body.Error != "" {
			return fmt.Errorf("server rejected request: %s", body.Error)
		}
		return fmt.Errorf("server rejected request: status %d", resp.StatusCode)
	}
}
