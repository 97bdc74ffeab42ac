package handler

import (
	"net/http"

	"studio-site/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers groups every route handler of the site
type Handlers struct {
	Pages     *PageHandler
	Intake    *IntakeHandler
	Solutions *SolutionsHandler
	OG        *OGHandler
}

// NewRouter mounts the site's routes. A non-empty publicDir is served under /images and /videos.
func NewRouter(h Handlers, publicDir string, obs domain.Observability) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(obs))
	r.Use(middleware.Recoverer)

	r.Get("/", h.Pages.Home)
	r.Get("/about", h.Pages.About)
	r.Get("/web-dev", h.Pages.WebDev)
	r.Get("/iptv", h.Pages.IPTV)
	r.Get("/3d-visuals", h.Pages.Visuals)
	r.Get("/healthz", h.Pages.Health)

	r.Get("/start-project", h.Intake.Show)
	r.Post("/start-project/vibe", h.Intake.SelectVibe)
	r.Post("/start-project/details", h.Intake.Details)
	r.Post("/start-project/reset", h.Intake.Reset)

	r.Get("/solutions/{industry}", h.Solutions.Solutions)
	r.Get("/api/og", h.OG.Image)
	r.Get("/sitemap.xml", h.Solutions.Sitemap)

	if publicDir != "" {
		files := http.FileServer(http.Dir(publicDir))
		r.Handle("/images/*", files)
		r.Handle("/videos/*", files)
	}

	r.NotFound(h.Pages.NotFound)

	return r
}
