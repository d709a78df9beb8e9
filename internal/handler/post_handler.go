package handlers

import (
	"net/http"
	"strconv"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type PostRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// GetPosts lists posts newest first. Supports ?author_id=, ?limit= and
// ?offset=.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	offset, _ := strconv.Atoi(query.Get("offset"))
	if offset < 0 {
		offset = 0
	}

	posts, err := h.PostService.ListPosts(r.Context(), models.PostFilter{
		AuthorID: query.Get("author_id"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.GetPost(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req PostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), models.NewPost{
		Title:    req.Title,
		URL:      req.URL,
		AuthorID: authorID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.PostUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), actorID, pathID(r), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.PostService.DeletePost(r.Context(), actorID, pathID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpvotePost records the authenticated user's vote on the post.
func (h *Handlers) UpvotePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	result, err := h.PostService.Vote(r.Context(), userID, pathID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, result, http.StatusOK)
}

func (h *Handlers) GetPostComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.CommentService.ListPostComments(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, comments, http.StatusOK)
}
