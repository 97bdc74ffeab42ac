package ogimage

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"studio-site/internal/catalog"
	"studio-site/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Dimensions(t *testing.T) {
	cases := []struct {
		industry string
		company  string
	}{
		{"fashion", "Acme"},
		{"technology", ""},
		{"does-not-exist", "Acme"},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.industry+"/"+tc.company, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, catalog.Industry(tc.industry), tc.company))

			img, err := png.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, Width, img.Bounds().Dx())
			assert.Equal(t, Height, img.Bounds().Dy())
		})
	}
}

func TestRender_InvalidThemeColor(t *testing.T) {
	cfg := catalog.Industry("fashion")
	cfg.Theme = domain.IndustryTheme{Primary: "gold", Secondary: "#fff"}

	var buf bytes.Buffer
	assert.Error(t, Render(&buf, cfg, ""))
	assert.Zero(t, buf.Len())
}

func TestParseHex(t *testing.T) {
	c, err := parseHex("#3b82f6")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}, c)

	c, err = parseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	_, err = parseHex("#12345z")
	assert.Error(t, err)
}

func TestWithAlpha(t *testing.T) {
	got := withAlpha(color.RGBA{R: 0xff, A: 0xff}, 0x80)
	assert.Equal(t, color.RGBA{R: 0x80, A: 0x80}, got)
}
