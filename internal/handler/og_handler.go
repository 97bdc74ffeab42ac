package handler

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"

	"studio-site/internal/catalog"
	"studio-site/internal/domain"
)

// RenderFunc draws a share image for an industry and optional company
type RenderFunc func(w io.Writer, cfg domain.IndustryConfig, company string) error

// OGHandler serves GET /api/og
type OGHandler struct {
	render    RenderFunc
	sanitizer *TextSanitizer
	logger    domain.Observability
}

// NewOGHandler creates a new share image handler
func NewOGHandler(render RenderFunc, sanitizer *TextSanitizer, logger domain.Observability) *OGHandler {
	return &OGHandler{
		render:    render,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

// Image renders ?industry=&company= as a PNG
func (h *OGHandler) Image(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	query := r.URL.Query()

	industry := query.Get("industry")
	company := h.sanitizer.Clean(query.Get("company"))

	var buf bytes.Buffer
	if err := h.render(&buf, catalog.Industry(industry), company); err != nil {
		h.logger.WithError(err).WithField("industry", industry).Error("Failed to generate share image")
		http.Error(w, MSG_OG_FAILED, http.StatusInternalServerError)
		return
	}
	h.logger.Benchmark("og image "+industry, time.Since(start))

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
	_, _ = buf.WriteTo(w)
}
