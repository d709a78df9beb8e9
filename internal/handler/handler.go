package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AlexJCturbo/just-tech-news/internal/config"
	"github.com/AlexJCturbo/just-tech-news/internal/middleware"
	"github.com/AlexJCturbo/just-tech-news/internal/service"
	"github.com/gorilla/mux"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handlers struct {
	UserService    service.UserService
	AuthService    service.AuthService
	PostService    service.PostService
	CommentService service.CommentService
	StatsService   service.StatsService
	DB             HealthChecker
	Cfg            *config.Config
}

func NewHandlers(service *service.Service, db HealthChecker, config *config.Config) *Handlers {
	return &Handlers{
		UserService:    service.User,
		AuthService:    service.Auth,
		PostService:    service.Post,
		CommentService: service.Comment,
		StatsService:   service.Stats,
		DB:             db,
		Cfg:            config,
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// currentUser returns the authenticated user id, writing a 401 when the
// request carries none.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

func pathID(r *http.Request) string {
	return mux.Vars(r)["id"]
}
