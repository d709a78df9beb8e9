package handlers

import (
	"net/http"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
)

func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, users, http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetUser(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, user, http.StatusOK)
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.UserUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.UpdateUser(r.Context(), actorID, pathID(r), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, user, http.StatusOK)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), actorID, pathID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
