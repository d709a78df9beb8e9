package handlers

import (
	"net/http"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
)

type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// Register creates the account and signs the new user in straight away.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.NewUser
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.AuthService.Register(r.Context(), req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, accessToken, err := h.AuthService.Login(r.Context(), models.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, AuthResponse{AccessToken: accessToken, User: *user}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.Credentials
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		WriteError(w, models.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
		return
	}

	user, accessToken, err := h.AuthService.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, AuthResponse{AccessToken: accessToken, User: *user}, http.StatusOK)
}
