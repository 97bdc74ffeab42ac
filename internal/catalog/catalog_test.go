package catalog

import (
	"strings"
	"testing"

	"studio-site/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndustry_KnownKeysAnyCasing(t *testing.T) {
	for _, key := range IndustryKeys() {
		for _, variant := range []string{key, strings.ToUpper(key), strings.Title(key), "  " + key + " "} {
			cfg := Industry(variant)
			assert.Equal(t, key, cfg.ID, "variant %q", variant)
		}
	}
}

func TestIndustry_UnknownFallsBackToGeneric(t *testing.T) {
	for _, key := range []string{"", "   ", "aerospace", "fashion!", "../etc/passwd", "réal-estate"} {
		cfg := Industry(key)
		assert.Equal(t, GenericIndustryID, cfg.ID, "key %q", key)
		assert.Equal(t, "Transform Your Business", cfg.Headline)
	}
}

func TestIndustry_ReturnsCopies(t *testing.T) {
	cfg := Industry("fashion")
	cfg.Services[0] = "mutated"
	cfg.Headline = "mutated"

	again := Industry("fashion")
	assert.Equal(t, "3D Product Visualization", again.Services[0])
	assert.Equal(t, "Elevate Your Fashion Brand", again.Headline)
}

func TestIndustry_TableShape(t *testing.T) {
	require.Len(t, IndustryKeys(), 6)
	for _, key := range IndustryKeys() {
		cfg := Industry(key)
		assert.NotEmpty(t, cfg.Name)
		assert.NotEmpty(t, cfg.Subheadline)
		assert.NotEmpty(t, cfg.CTA)
		assert.Len(t, cfg.Services, 4)
		assert.True(t, strings.HasPrefix(cfg.Theme.Primary, "#"))
	}
	assert.Equal(t, domain.VideoCategoryNone, Industry("technology").VideoCategory)
	assert.Equal(t, domain.VideoCategoryExterior, Industry("real-estate").VideoCategory)
}

func TestPersonalizedHeadline_NoCompanyKeepsHeadline(t *testing.T) {
	for _, key := range append(IndustryKeys(), "unknown") {
		cfg := Industry(key)
		assert.Equal(t, cfg.Headline, PersonalizedHeadline(cfg, ""))
	}
}

func TestPersonalizedHeadline_Templates(t *testing.T) {
	cases := map[string]string{
		"fashion":     "Specialized 3D Solutions for Acme",
		"hospitality": "Transforming Acme with Immersive Visuals",
		"real-estate": "Elevating Acme's Property Showcase",
		"retail":      "Powering Acme's E-Commerce Success",
		"healthcare":  "Modernizing Acme's Digital Presence",
		"technology":  "Building Acme's Next Platform",
		"mining":      "Transforming Acme with Your Industry Excellence",
	}
	for key, want := range cases {
		assert.Equal(t, want, PersonalizedHeadline(Industry(key), "Acme"), key)
	}
}

func TestOGHeadline(t *testing.T) {
	cfg := Industry("retail")
	assert.Equal(t, "Convert Browsers into Buyers", OGHeadline(cfg, ""))
	assert.Equal(t, "Bespoke Retail Solutions for Acme", OGHeadline(cfg, "Acme"))
}

func TestTheme_Registry(t *testing.T) {
	list := Themes()
	require.Len(t, list, 3)

	ids := make([]string, 0, len(list))
	for _, th := range list {
		ids = append(ids, th.ID)
		if diff := cmp.Diff(th, Theme(th.ID)); diff != "" {
			t.Errorf("Theme(%q) mismatch (-want +got):\n%s", th.ID, diff)
		}
	}
	assert.Equal(t, []string{"standard", "luxury", "cyberpunk"}, ids)
}

func TestTheme_UnknownUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultThemeID, Theme("").ID)
	assert.Equal(t, DefaultThemeID, Theme("vaporwave").ID)
}

func TestGallery_Filter(t *testing.T) {
	assert.Len(t, Gallery(""), 6)
	assert.Len(t, Gallery(GalleryFilterAll), 6)
	assert.Len(t, Gallery("nonsense"), 6)

	interior := Gallery("interior")
	require.Len(t, interior, 2)
	for _, item := range interior {
		assert.Equal(t, domain.VideoCategoryInterior, item.Category)
	}
}
