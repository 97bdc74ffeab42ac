package catalog

import (
	"fmt"
	"slices"
	"strings"

	"studio-site/internal/domain"
)

const GenericIndustryID = "generic"

var industryOrder = []string{
	"fashion",
	"hospitality",
	"real-estate",
	"retail",
	"healthcare",
	"technology",
}

var industries = map[string]domain.IndustryConfig{
	"fashion": {
		ID:          "fashion",
		Name:        "Fashion",
		Description: "Luxury fashion brands and designers",
		Theme: domain.IndustryTheme{
			Primary:   "#d4af37", // luxury gold
			Secondary: "#ffd700",
			Accent:    "#c9a961",
		},
		Headline:    "Elevate Your Fashion Brand",
		Subheadline: "Cinematic 3D visuals and premium digital experiences for luxury fashion",
		Services: []string{
			"3D Product Visualization",
			"Virtual Runway Shows",
			"Lookbook Renders",
			"E-Commerce Integration",
		},
		VideoCategory: domain.VideoCategoryFashion,
		CTA:           "Transform Your Collection",
	},
	"hospitality": {
		ID:          "hospitality",
		Name:        "Hospitality",
		Description: "Hotels, restaurants, and luxury venues",
		Theme: domain.IndustryTheme{
			Primary:   "#2d5a3d", // deep emerald
			Secondary: "#8b4513",
			Accent:    "#4a7c59",
		},
		Headline:    "Showcase Your Venue in Stunning Detail",
		Subheadline: "Photorealistic 3D renders and immersive virtual tours for hospitality",
		Services: []string{
			"Interior Visualization",
			"Virtual Tours",
			"Booking Platform Development",
			"Brand Identity Design",
		},
		VideoCategory: domain.VideoCategoryInterior,
		CTA:           "Elevate Your Guest Experience",
	},
	"real-estate": {
		ID:          "real-estate",
		Name:        "Real Estate",
		Description: "Property developers and real estate agencies",
		Theme: domain.IndustryTheme{
			Primary:   "#1e3a8a", // navy
			Secondary: "#3b82f6",
			Accent:    "#60a5fa",
		},
		Headline:    "Sell Properties Before They're Built",
		Subheadline: "Architectural visualization and virtual staging for real estate",
		Services: []string{
			"Architectural Renders",
			"Virtual Staging",
			"360° Property Tours",
			"Development Websites",
		},
		VideoCategory: domain.VideoCategoryExterior,
		CTA:           "Visualize Your Development",
	},
	"retail": {
		ID:          "retail",
		Name:        "Retail",
		Description: "E-commerce and retail businesses",
		Theme: domain.IndustryTheme{
			Primary:   "#ec4899",
			Secondary: "#f472b6",
			Accent:    "#db2777",
		},
		Headline:    "Convert Browsers into Buyers",
		Subheadline: "High-performance e-commerce platforms and product visualization",
		Services: []string{
			"E-Commerce Development",
			"Product 3D Models",
			"AR Try-On Experiences",
			"Conversion Optimization",
		},
		VideoCategory: domain.VideoCategoryFashion,
		CTA:           "Boost Your Sales",
	},
	"healthcare": {
		ID:          "healthcare",
		Name:        "Healthcare",
		Description: "Medical facilities and healthcare providers",
		Theme: domain.IndustryTheme{
			Primary:   "#10b981",
			Secondary: "#34d399",
			Accent:    "#059669",
		},
		Headline:    "Modern Digital Solutions for Healthcare",
		Subheadline: "Patient portals, facility visualization, and healthcare web applications",
		Services: []string{
			"Patient Portal Development",
			"Facility Visualization",
			"Appointment Systems",
			"HIPAA-Compliant Platforms",
		},
		VideoCategory: domain.VideoCategoryInterior,
		CTA:           "Modernize Your Practice",
	},
	"technology": {
		ID:          "technology",
		Name:        "Technology",
		Description: "Tech startups and SaaS companies",
		Theme: domain.IndustryTheme{
			Primary:   "#8b5cf6",
			Secondary: "#a78bfa",
			Accent:    "#7c3aed",
		},
		Headline:    "Build Your SaaS Platform",
		Subheadline: "Full-stack development and AI-powered web applications",
		Services: []string{
			"SaaS Development",
			"AI Integration",
			"Dashboard Design",
			"API Development",
		},
		CTA: "Launch Your Platform",
	},
}

var genericIndustry = domain.IndustryConfig{
	ID:          GenericIndustryID,
	Name:        "Your Industry",
	Description: "Custom solutions for your business",
	Theme: domain.IndustryTheme{
		Primary:   "#6366f1",
		Secondary: "#818cf8",
		Accent:    "#4f46e5",
	},
	Headline:    "Transform Your Business",
	Subheadline: "Custom web development, 3D visualization, and digital solutions",
	Services: []string{
		"Custom Web Development",
		"3D Visualization",
		"Brand Identity",
		"Digital Strategy",
	},
	CTA: "Start Your Project",
}

// Headline templates keyed by industry id, %s is the company name
var headlineTemplates = map[string]string{
	"fashion":     "Specialized 3D Solutions for %s",
	"hospitality": "Transforming %s with Immersive Visuals",
	"real-estate": "Elevating %s's Property Showcase",
	"retail":      "Powering %s's E-Commerce Success",
	"healthcare":  "Modernizing %s's Digital Presence",
	"technology":  "Building %s's Next Platform",
}

// Industry resolves an industry key case-insensitively, falling back to the generic config
func Industry(key string) domain.IndustryConfig {
	cfg, ok := industries[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		cfg = genericIndustry
	}
	cfg.Services = slices.Clone(cfg.Services)
	return cfg
}

// IsSupportedIndustry reports whether key names one of the dedicated industries
func IsSupportedIndustry(key string) bool {
	_, ok := industries[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// IndustryKeys returns the supported industry keys in display order
func IndustryKeys() []string {
	return slices.Clone(industryOrder)
}

// PersonalizedHeadline renders the headline for a company, or the stock headline when company is empty
func PersonalizedHeadline(cfg domain.IndustryConfig, company string) string {
	if company == "" {
		return cfg.Headline
	}

	if tmpl, ok := headlineTemplates[cfg.ID]; ok {
		return fmt.Sprintf(tmpl, company)
	}

	return fmt.Sprintf("Transforming %s with %s Excellence", company, cfg.Name)
}

// OGHeadline is the wording used on share images
func OGHeadline(cfg domain.IndustryConfig, company string) string {
	if company == "" {
		return cfg.Headline
	}
	return fmt.Sprintf("Bespoke %s Solutions for %s", cfg.Name, company)
}
