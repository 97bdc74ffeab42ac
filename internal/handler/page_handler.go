package handler

import (
	"net/http"
	"slices"

	"studio-site/internal/catalog"
	"studio-site/internal/domain"
	"studio-site/internal/view"
)

// PageHandler serves the static marketing pages
type PageHandler struct {
	videos view.VideoSource
	logger domain.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(videos view.VideoSource, logger domain.Logger) *PageHandler {
	return &PageHandler{
		videos: videos,
		logger: logger,
	}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	render(w, h.logger, http.StatusOK, view.HomePage())
}

func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	render(w, h.logger, http.StatusOK, view.AboutPage())
}

func (h *PageHandler) WebDev(w http.ResponseWriter, r *http.Request) {
	render(w, h.logger, http.StatusOK, view.WebDevPage())
}

// IPTV renders the theme preview; unknown theme ids show the standard theme
func (h *PageHandler) IPTV(w http.ResponseWriter, r *http.Request) {
	selected := catalog.Theme(r.URL.Query().Get("theme"))
	render(w, h.logger, http.StatusOK, view.IPTVPage(catalog.Themes(), selected, catalog.Channels()))
}

// Visuals renders the 3D showcase filtered by ?category=
func (h *PageHandler) Visuals(w http.ResponseWriter, r *http.Request) {
	categories := catalog.GalleryCategories()

	category := r.URL.Query().Get("category")
	if !slices.Contains(categories, category) {
		category = catalog.GalleryFilterAll
	}

	render(w, h.logger, http.StatusOK,
		view.VisualsPage(h.videos, catalog.HeroVideo, category, categories, catalog.Gallery(category)))
}

func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	render(w, h.logger, http.StatusNotFound, view.NotFoundPage())
}

// Health reports liveness for load balancers
func (h *PageHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
