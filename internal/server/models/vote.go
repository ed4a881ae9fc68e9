package models

import "fmt"

// VoteDirection is the state of a user's vote on a post. There are exactly
// two states: a post is either upvoted by the user or it is not.
type VoteDirection string

const (
	VoteNone VoteDirection = "none"
	VoteUp   VoteDirection = "up"
)

// Flip returns the opposite direction.
func (d VoteDirection) Flip() VoteDirection {
	if d == VoteUp {
		return VoteNone
	}
	return VoteUp
}

// ParseVoteDirection accepts the canonical forms plus the legacy
// "upvote"/"downvote" aliases the original web client sends.
func ParseVoteDirection(s string) (VoteDirection, error) {
	switch s {
	case "up", "upvote":
		return VoteUp, nil
	case "none", "downvote":
		return VoteNone, nil
	default:
		return "", fmt.Errorf("unknown vote direction %q", s)
	}
}

// Vote is a single (user, post) vote row. At most one row exists per pair;
// toggled-off votes keep the row with direction "none".
type Vote struct {
	UserID    string
	PostID    string
	Direction VoteDirection
}
