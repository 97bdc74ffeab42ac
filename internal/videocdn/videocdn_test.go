package videocdn

import (
	"bytes"
	"testing"

	"studio-site/internal/domain"
	"studio-site/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoURL_NoCDNIDPassesThrough(t *testing.T) {
	r := New("studio", logger.Discard())
	assert.Equal(t, "/v.mp4", r.VideoURL(domain.VideoConfig{Src: "/v.mp4"}))
}

func TestVideoURL_WithCDN(t *testing.T) {
	r := New("studio", logger.Discard())

	got := r.VideoURL(domain.VideoConfig{Src: "/v.mp4", CDNID: "x"})
	assert.Equal(t, "https://res.cloudinary.com/studio/video/upload/q_auto,f_auto,c_limit,w_1920/x", got)
	for _, part := range []string{"q_auto", "f_auto", "w_1920", "x"} {
		assert.Contains(t, got, part)
	}

	got = r.VideoURL(domain.VideoConfig{Src: "/v.mp4", CDNID: "reel", Quality: "high", Format: "webm"})
	assert.Contains(t, got, "q_high,f_webm")
}

func TestVideoURL_MissingCloudFallsBackAndWarns(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewAdapter(&logger.Config{Level: "debug", JSONFormat: true, Output: &buf})
	require.NoError(t, err)

	r := New("", log)
	assert.Equal(t, "/v.mp4", r.VideoURL(domain.VideoConfig{Src: "/v.mp4", CDNID: "x"}))
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "CDN cloud name not set")
}

func TestPosterURL(t *testing.T) {
	withCloud := New("studio", logger.Discard())
	noCloud := New("", logger.Discard())

	assert.Equal(t, "/p.jpg", withCloud.PosterURL(domain.VideoConfig{Poster: "/p.jpg", CDNID: "x"}))
	assert.Equal(t, "", withCloud.PosterURL(domain.VideoConfig{Src: "/v.mp4"}))
	assert.Equal(t, "", noCloud.PosterURL(domain.VideoConfig{Src: "/v.mp4", CDNID: "x"}))
	assert.Equal(t,
		"https://res.cloudinary.com/studio/video/upload/so_0,e_blur:1000,q_auto:low,f_auto,w_100/x.jpg",
		withCloud.PosterURL(domain.VideoConfig{CDNID: "x"}),
	)
}
