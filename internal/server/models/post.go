package models

import "time"

// Post is a published blog entry.
type Post struct {
	ID        string
	AuthorID  string
	Title     string
	Content   string
	CreatedAt time.Time
}

// PostWithMeta is a Post joined with display data: the author's name and
// the derived upvote count.
type PostWithMeta struct {
	Post
	AuthorName string
	Upvotes    int64
}
