package models

import (
	"time"
)

// User is the public shape of a user row. The password hash lives only in the
// repository layer and has no field here.
type User struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
}

type Post struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	URL       string    `json:"url" db:"url"`
	AuthorID  string    `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Comment struct {
	ID        string    `json:"id" db:"id"`
	Body      string    `json:"body" db:"body"`
	PostID    string    `json:"post_id" db:"post_id"`
	AuthorID  string    `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Vote struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`
	PostID string `json:"post_id" db:"post_id"`
}

// PostSummary is a post joined with its author's username and the number of
// votes counted at read time.
type PostSummary struct {
	Post
	AuthorUsername string `json:"author_username" db:"author_username"`
	VoteCount      int    `json:"vote_count" db:"vote_count"`
}

type CommentView struct {
	Comment
	AuthorUsername string `json:"author_username" db:"author_username"`
}

type PostDetail struct {
	PostSummary
	Comments []CommentView `json:"comments"`
}

type UserDetail struct {
	User
	Posts      []Post `json:"posts"`
	VotedPosts []Post `json:"voted_posts"`
}

// VoteResult is returned by a committed upvote: the recorded vote and the
// target post with a freshly computed vote count.
type VoteResult struct {
	Vote Vote        `json:"vote"`
	Post PostSummary `json:"post"`
}

type SiteStats struct {
	Users    int `json:"users" db:"users"`
	Posts    int `json:"posts" db:"posts"`
	Comments int `json:"comments" db:"comments"`
	Votes    int `json:"votes" db:"votes"`
}
