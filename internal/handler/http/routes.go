package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/reset-password", h.resetPassword)
	})

	// routes behind the JWT gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/subjects", h.listSubjects)
		r.Post("/subjects", h.createSubject)
		r.Put("/subjects/{id}", h.updateSubject)
		r.Delete("/subjects/{id}", h.deleteSubject)

		r.Get("/assignments", h.listAssignments)
		r.Post("/assignments", h.createAssignment)
		r.Put("/assignments/{id}", h.updateAssignment)
		r.Delete("/assignments/{id}", h.deleteAssignment)

		r.Get("/notes", h.listNotes)
		r.Post("/notes", h.createNote)
		r.Put("/notes/{id}", h.updateNote)
		r.Delete("/notes/{id}", h.deleteNote)

		r.Get("/tests", h.listTests)
		r.Post("/tests", h.createTest)
		r.Put("/tests/{id}", h.updateTest)
		r.Delete("/tests/{id}", h.deleteTest)

		r.Post("/ai-assistant", h.askAssistant)
	})

	return router
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Study Sesh API is running!"))
}
