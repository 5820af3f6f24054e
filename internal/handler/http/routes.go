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

	// static asset mounts
	mountStatic(router, "/css", h.assets.CSSDir)
	mountStatic(router, "/images", h.assets.ImagesDir)
	mountStatic(router, "/html", h.assets.HTMLDir)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.With(h.loginRateLimit).Post("/index", h.login)
		r.Get("/signup", h.signupPage)
		r.Post("/signup", h.signup)
		r.Get("/logout", h.logout)
		r.Post("/api/log", h.logAction)
		r.Get("/api/release-notes-list", h.releaseNotesList)
	})

	// routes behind the access guard
	router.Group(func(r chi.Router) {
		r.Use(h.requireLogin)
		r.Get("/landing", h.landing)
		r.Get("/api/grid-data", h.gridData)
		r.Get("/api/profile", h.profile)
	})

	return router
}

// mountStatic serves the files of dir under the given URL prefix.
func mountStatic(router chi.Router, prefix, dir string) {
	fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	router.Handle(prefix+"/*", fileServer)
}
