// Package votes keeps the client-side vote state for the posts currently
// on screen. Toggles apply optimistically and are reconciled against the
// server's authoritative response when it arrives.
package votes

import (
	"context"
	"sync"

	"github.com/DarshanchGIT/wordverse/internal/client/api"
)

// Toggler is the slice of the API client the controller needs.
type Toggler interface {
	ToggleVote(ctx context.Context, postID string, requested api.Direction) (*api.VoteResult, error)
}

// State is the displayed vote state for one post.
type State struct {
	Direction api.Direction
	Count     int64
	Pending   bool
}

type postState struct {
	direction api.Direction
	count     int64
	inFlight  bool
	gen       uint64
}

// Controller tracks per-post vote state. Toggle flips the displayed state
// immediately, sends the request in the background, and reconciles or rolls
// back when the response lands. At most one request per post is in flight;
// extra toggles while one is pending are dropped.
type Controller struct {
	client   Toggler
	onUpdate func(postID string, state State)
	onError  func(postID string, err error)

	mu      sync.Mutex
	posts   map[string]*postState
	nextGen uint64
}

// NewController builds a controller. onUpdate fires after every reconcile
// or rollback so the UI can redraw; onError additionally fires when a
// toggle fails. Either callback may be nil.
func NewController(client Toggler, onUpdate func(postID string, state State), onError func(postID string, err error)) *Controller {
	return &Controller{
		client:   client,
		onUpdate: onUpdate,
		onError:  onError,
		posts:    make(map[string]*postState),
	}
}

// Track registers a post with its server-reported state. Re-tracking a post
// replaces its state and invalidates any response still in flight for it.
func (c *Controller) Track(postID string, direction api.Direction, count int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextGen++
	c.posts[postID] = &postState{direction: direction, count: count, gen: c.nextGen}
}

// Forget drops a post. A response arriving for it afterwards is discarded.
func (c *Controller) Forget(postID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.posts, postID)
}

// State returns the current displayed state for postID.
func (c *Controller) State(postID string) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.posts[postID]
	if !ok {
		return State{}, false
	}
	return State{Direction: st.direction, Count: st.count, Pending: st.inFlight}, true
}

// Toggle flips the displayed vote for postID and starts the server request.
// Returns false when the post is not tracked or a request for it is already
// in flight; the extra click is ignored, not queued.
func (c *Controller) Toggle(ctx context.Context, postID string) bool {
	c.mu.Lock()
	st, ok := c.posts[postID]
	if !ok || st.inFlight {
		c.mu.Unlock()
		return false
	}

	prevDirection, prevCount := st.direction, st.count

	st.direction = st.direction.Flip()
	if st.direction == api.DirectionUp {
		st.count++
	} else {
		st.count--
	}
	st.inFlight = true

	gen := st.gen
	requested := st.direction
	c.mu.Unlock()

	go func() {
		result, err := c.client.ToggleVote(ctx, postID, requested)
		c.settle(postID, gen, result, err, prevDirection, prevCount)
	}()
	return true
}

// settle applies the server's verdict, or rolls back on failure. Responses
// for forgotten or re-tracked posts carry a stale generation and are dropped.
func (c *Controller) settle(postID string, gen uint64, result *api.VoteResult, err error, prevDirection api.Direction, prevCount int64) {
	c.mu.Lock()
	st, ok := c.posts[postID]
	if !ok || st.gen != gen {
		c.mu.Unlock()
		return
	}
	st.inFlight = false

	if err != nil {
		st.direction, st.count = prevDirection, prevCount
	} else {
		st.direction, st.count = result.Direction, result.Count
	}
	state := State{Direction: st.direction, Count: st.count}
	c.mu.Unlock()

	if err != nil && c.onError != nil {
		c.onError(postID, err)
	}
	if c.onUpdate != nil {
		c.onUpdate(postID, state)
	}
}
