package models

type NewUser struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	Username *string `json:"username" validate:"omitnil,min=1"`
	Email    *string `json:"email" validate:"omitnil,min=1,email"`
	Password *string `json:"password" validate:"omitnil,min=1"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type NewPost struct {
	Title    string `json:"title" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	AuthorID string `json:"author_id" validate:"required"`
}

type PostUpdate struct {
	Title *string `json:"title" validate:"omitnil,min=1"`
	URL   *string `json:"url" validate:"omitnil,min=1,url"`
}

type PostFilter struct {
	AuthorID string
	Limit    int
	Offset   int
}

type NewComment struct {
	Body     string `json:"body" validate:"required"`
	PostID   string `json:"post_id" validate:"required"`
	AuthorID string `json:"author_id" validate:"required"`
}

type CommentUpdate struct {
	Body *string `json:"body" validate:"omitnil,min=1"`
}

type CommentFilter struct {
	PostID   string
	AuthorID string
}

type VoteFilter struct {
	UserID string
	PostID string
}
