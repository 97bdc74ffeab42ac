package videocdn

import (
	"fmt"
	"strings"

	"studio-site/internal/domain"
)

const (
	baseURL       = "https://res.cloudinary.com"
	maxVideoWidth = 1920
	defaultParam  = "auto"
)

// Resolver turns video configs into delivery URLs for one CDN account
type Resolver struct {
	cloudName string
	logger    domain.Logger
}

// New creates a resolver; an empty cloudName disables CDN transformations
func New(cloudName string, logger domain.Logger) *Resolver {
	return &Resolver{
		cloudName: strings.TrimSpace(cloudName),
		logger:    logger,
	}
}

// Enabled reports whether a CDN account is configured
func (r *Resolver) Enabled() bool {
	return r.cloudName != ""
}

// VideoURL returns the playable URL, falling back to the local source
func (r *Resolver) VideoURL(cfg domain.VideoConfig) string {
	if cfg.CDNID == "" {
		return cfg.Src
	}

	if !r.Enabled() {
		r.logger.WithField("cdn_id", cfg.CDNID).Warn("CDN cloud name not set, using direct video URL")
		return cfg.Src
	}

	transformations := strings.Join([]string{
		"q_" + orDefault(cfg.Quality),
		"f_" + orDefault(cfg.Format),
		"c_limit",
		fmt.Sprintf("w_%d", maxVideoWidth),
	}, ",")

	return fmt.Sprintf("%s/%s/video/upload/%s/%s", baseURL, r.cloudName, transformations, cfg.CDNID)
}

// PosterURL returns the poster image, or a blurred first-frame thumbnail from the CDN
func (r *Resolver) PosterURL(cfg domain.VideoConfig) string {
	if cfg.Poster != "" {
		return cfg.Poster
	}

	if cfg.CDNID == "" || !r.Enabled() {
		return ""
	}

	transformations := strings.Join([]string{
		"so_0",
		"e_blur:1000",
		"q_auto:low",
		"f_auto",
		"w_100",
	}, ",")

	return fmt.Sprintf("%s/%s/video/upload/%s/%s.jpg", baseURL, r.cloudName, transformations, cfg.CDNID)
}

func orDefault(v string) string {
	if v == "" {
		return defaultParam
	}
	return v
}
