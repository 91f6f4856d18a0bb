package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
)

// NewRouter mounts the chat routes behind request logging and panic recovery.
func NewRouter(handler *ChatHandler, serviceName string) http.Handler {
	accessLog := httplog.NewLogger(serviceName, httplog.Options{
		JSON:    true,
		Concise: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(accessLog))
	r.Use(middleware.Recoverer)

	handler.RegisterRoutes(r)
	return r
}
