package handlers

import (
	"net/http"

	"github.com/AlexJCturbo/just-tech-news/internal/middleware"
	"github.com/gorilla/mux"
)

// NewRouter registers every route. Reads are public; anything that writes on
// behalf of a user goes through the auth middleware. CORS wraps the router so
// preflight requests are answered before route matching.
func NewRouter(h *Handlers, tokens middleware.TokenParser) http.Handler {
	router := mux.NewRouter()

	auth := middleware.AuthMiddleware(tokens)
	protected := func(fn http.HandlerFunc) http.Handler {
		return auth(fn)
	}

	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/users", h.GetUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)
	api.Handle("/users/{id}", protected(h.UpdateUser)).Methods(http.MethodPut)
	api.Handle("/users/{id}", protected(h.DeleteUser)).Methods(http.MethodDelete)

	api.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	api.Handle("/posts", protected(h.CreatePost)).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	api.Handle("/posts/{id}", protected(h.UpdatePost)).Methods(http.MethodPut)
	api.Handle("/posts/{id}", protected(h.DeletePost)).Methods(http.MethodDelete)
	api.Handle("/posts/{id}/upvote", protected(h.UpvotePost)).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/comments", h.GetPostComments).Methods(http.MethodGet)

	api.Handle("/comments", protected(h.CreateComment)).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id}", h.GetComment).Methods(http.MethodGet)
	api.Handle("/comments/{id}", protected(h.UpdateComment)).Methods(http.MethodPut)
	api.Handle("/comments/{id}", protected(h.DeleteComment)).Methods(http.MethodDelete)

	return middleware.Chain(router, middleware.LoggingMiddleware, middleware.CORSMiddleware)
}
