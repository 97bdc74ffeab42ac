package handler

import (
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"strings"

	"studio-site/internal/catalog"
	"studio-site/internal/domain"
	"studio-site/internal/ogimage"
	"studio-site/internal/view"

	"github.com/go-chi/chi/v5"
)

// SolutionsHandler serves the industry landing pages reached through magic links
type SolutionsHandler struct {
	videos    view.VideoSource
	publisher *Publisher
	sanitizer *TextSanitizer
	siteURL   string
	logger    domain.Logger
}

// NewSolutionsHandler creates a new solutions handler
func NewSolutionsHandler(
	videos view.VideoSource,
	publisher *Publisher,
	sanitizer *TextSanitizer,
	siteURL string,
	logger domain.Logger,
) *SolutionsHandler {
	return &SolutionsHandler{
		videos:    videos,
		publisher: publisher,
		sanitizer: sanitizer,
		siteURL:   strings.TrimSuffix(siteURL, "/"),
		logger:    logger,
	}
}

// Solutions renders /solutions/{industry}?company=&ref=
func (h *SolutionsHandler) Solutions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	pc := domain.PersonalizationContext{
		IndustryKey:   strings.ToLower(strings.TrimSpace(chi.URLParam(r, "industry"))),
		CompanyName:   h.sanitizer.Clean(query.Get("company")),
		ReferenceCode: h.sanitizer.Clean(query.Get("ref")),
	}

	cfg := catalog.Industry(pc.IndustryKey)
	headline := catalog.PersonalizedHeadline(cfg, pc.CompanyName)

	if pc.Personalized() {
		h.logger.WithFields(map[string]any{
			"industry": pc.IndustryKey,
			"company":  pc.CompanyName,
			"ref":      pc.ReferenceCode,
		}).Info("Personalized landing page opened")
		h.publisher.LandingPersonalized(pc)
	}

	render(w, h.logger, http.StatusOK, view.SolutionsPage(h.videos, view.SolutionsProps{
		Industry: cfg,
		Headline: headline,
		Company:  pc.CompanyName,
		Ref:      pc.ReferenceCode,
		Hero:     catalog.HeroVideo,
		OpenGraph: view.OpenGraph{
			Title:       headline,
			Description: cfg.Subheadline,
			URL:         h.siteURL + r.URL.RequestURI(),
			Image:       h.ogImageURL(pc.IndustryKey, pc.CompanyName),
			ImageWidth:  ogimage.Width,
			ImageHeight: ogimage.Height,
			ImageAlt:    headline,
		},
	}))
}

func (h *SolutionsHandler) ogImageURL(industry, company string) string {
	params := url.Values{}
	params.Set("industry", industry)
	if company != "" {
		params.Set("company", company)
	}
	return h.siteURL + "/api/og?" + params.Encode()
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var sitemapPages = []string{"/", "/about", "/web-dev", "/iptv", "/3d-visuals", "/start-project"}

// Sitemap lists the public pages plus one landing page per supported industry
func (h *SolutionsHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, page := range sitemapPages {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.siteURL + page})
	}
	for _, key := range catalog.IndustryKeys() {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.siteURL + "/solutions/" + url.PathEscape(key)})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = io.WriteString(w, xml.Header)

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		h.logger.WithError(err).Error("Failed to write sitemap")
	}
}
