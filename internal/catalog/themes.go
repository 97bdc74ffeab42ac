package catalog

import "studio-site/internal/domain"

const DefaultThemeID = "standard"

var themeOrder = []string{"standard", "luxury", "cyberpunk"}

var themes = map[string]domain.IPTVTheme{
	"standard": {
		ID:          "standard",
		Name:        "Standard",
		Description: "Clean, modern interface for everyday viewing",
		Colors: domain.ThemeColors{
			Primary:    "#3b82f6",
			Secondary:  "#60a5fa",
			Background: "#0f172a",
			Surface:    "#1e293b",
			Text:       "#f1f5f9",
			TextMuted:  "#94a3b8",
			Accent:     "#06b6d4",
			Border:     "rgba(148, 163, 184, 0.2)",
		},
		Typography: domain.ThemeTypography{
			FontFamily:    "Inter, system-ui, sans-serif",
			HeadingWeight: "600",
		},
		Spacing: domain.ThemeSpacing{
			BorderRadius: "0.75rem",
			CardPadding:  "1.5rem",
		},
		Effects: domain.ThemeEffects{
			Shadow: "0 4px 6px -1px rgba(0, 0, 0, 0.3)",
			Glow:   "0 0 20px rgba(59, 130, 246, 0.3)",
		},
	},
	"luxury": {
		ID:          "luxury",
		Name:        "Luxury Mode",
		Description: "Premium gold and black aesthetic for high-end brands",
		Colors: domain.ThemeColors{
			Primary:    "#d4af37",
			Secondary:  "#ffd700",
			Background: "#000000",
			Surface:    "#1a1a1a",
			Text:       "#ffffff",
			TextMuted:  "#b8b8b8",
			Accent:     "#c9a961",
			Border:     "rgba(212, 175, 55, 0.3)",
		},
		Typography: domain.ThemeTypography{
			FontFamily:    "Georgia, serif",
			HeadingWeight: "700",
		},
		Spacing: domain.ThemeSpacing{
			BorderRadius: "0.25rem",
			CardPadding:  "2rem",
		},
		Effects: domain.ThemeEffects{
			Shadow: "0 8px 16px rgba(212, 175, 55, 0.2)",
			Glow:   "0 0 30px rgba(212, 175, 55, 0.4)",
		},
	},
	"cyberpunk": {
		ID:          "cyberpunk",
		Name:        "Cyberpunk Rebrand",
		Description: "Neon-infused, futuristic design with sharp edges",
		Colors: domain.ThemeColors{
			Primary:    "#ff00ff",
			Secondary:  "#00ffff",
			Background: "#0a0014",
			Surface:    "#1a0028",
			Text:       "#00ffff",
			TextMuted:  "#b300ff",
			Accent:     "#ff00aa",
			Border:     "rgba(255, 0, 255, 0.4)",
		},
		Typography: domain.ThemeTypography{
			FontFamily:    "ui-monospace, monospace",
			HeadingWeight: "700",
		},
		Spacing: domain.ThemeSpacing{
			BorderRadius: "0rem",
			CardPadding:  "1.25rem",
		},
		Effects: domain.ThemeEffects{
			Shadow: "0 0 20px rgba(255, 0, 255, 0.5)",
			Glow:   "0 0 40px rgba(0, 255, 255, 0.6), 0 0 80px rgba(255, 0, 255, 0.4)",
		},
	},
}

// Theme returns the theme registered under id, or the standard theme
func Theme(id string) domain.IPTVTheme {
	if t, ok := themes[id]; ok {
		return t
	}
	return themes[DefaultThemeID]
}

// Themes lists every registered theme in switcher order
func Themes() []domain.IPTVTheme {
	list := make([]domain.IPTVTheme, 0, len(themeOrder))
	for _, id := range themeOrder {
		list = append(list, themes[id])
	}
	return list
}
