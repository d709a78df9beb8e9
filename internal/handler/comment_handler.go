package handlers

import (
	"net/http"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
)

type CommentRequest struct {
	Body   string `json:"body"`
	PostID string `json:"post_id"`
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	authorID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req CommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.CommentService.CreateComment(r.Context(), models.NewComment{
		Body:     req.Body,
		PostID:   req.PostID,
		AuthorID: authorID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handlers) GetComment(w http.ResponseWriter, r *http.Request) {
	comment, err := h.CommentService.GetComment(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, comment, http.StatusOK)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.CommentUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.CommentService.UpdateComment(r.Context(), actorID, pathID(r), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.CommentService.DeleteComment(r.Context(), actorID, pathID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
