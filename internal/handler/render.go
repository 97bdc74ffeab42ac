package handler

import (
	"html"
	"net/http"
	"strings"

	"studio-site/internal/domain"

	"github.com/microcosm-cc/bluemonday"
	g "maragu.dev/gomponents"
)

// render writes a gomponents node as an HTML response
func render(w http.ResponseWriter, log domain.Logger, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := node.Render(w); err != nil {
		log.WithError(err).Error("Failed to render page")
	}
}

// TextSanitizer strips markup from visitor supplied text
type TextSanitizer struct {
	policy *bluemonday.Policy
}

func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean removes every tag and returns plain, trimmed text. Views escape it again on output.
func (s *TextSanitizer) Clean(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}
