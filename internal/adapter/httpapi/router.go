package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Router() http.Handler {
	admin := RequireAdmin(s.config.AdminToken)

	r := chi.NewRouter()
	r.Use(s.accessLogger())
	r.Use(s.recoverer)
	r.Get("/", s.HandlerCatalog)
	r.Get("/health", s.HandlerHealth)
	r.Get("/cdn/button.js", s.HandlerButtonScript)
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", s.HandlerListTasks)
		r.With(admin).Post("/", s.HandlerCreateTask)
		r.Get("/{id}", s.HandlerGetTask)
		r.With(admin).Put("/{id}", s.HandlerUpdateTask)
		r.With(admin).Delete("/{id}", s.HandlerDeleteTask)
		r.Post("/{id}/run", s.HandlerRunTask)
		r.Post("/{id}/stream", s.HandlerStreamTask)
	})
	return r
}
