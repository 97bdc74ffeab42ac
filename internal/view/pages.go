package view

import (
	"fmt"
	"strings"

	"studio-site/internal/domain"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func HomePage() g.Node {
	return Page(PageProps{Path: "/"},
		Section(Class("container section"), Style("text-align:center"),
			H1(
				g.Text("High-Performance"), Br(),
				Span(Class("gradient-text"), g.Text("Digital Solutions")),
			),
			P(Class("muted"),
				g.Text("Premium web development, IPTV rebranding, and 3D animation services."), Br(),
				g.Text("AI-accelerated workflows for future-proof digital solutions."),
			),
			Div(Class("actions"),
				ButtonLink("/start-project", "Start a Project", true),
				ButtonLink("/about", "Learn More", false),
			),
		),
		Section(Class("container section grid-3"),
			ServiceCard("/web-dev", "gradient-web", "Web Development",
				"High-performance web applications built with cutting-edge technology."),
			ServiceCard("/iptv", "gradient-iptv", "IPTV Rebranding",
				"Transform your IPTV platform with stunning UI/UX design."),
			ServiceCard("/3d-visuals", "gradient-3d", "3D Animation",
				"Cinematic 3D visuals for fashion, interior, and exterior design."),
		),
		Section(Class("container section"), Style("text-align:center"),
			BlockQuote(Class("glass"), Style("padding:3rem;font-style:italic;font-size:1.5rem"),
				g.Text(`"We believe that premium design is not just a luxury, but a core requirement for high-performance brands in the AI era."`),
			),
			P(Strong(g.Text("— Studio Team"))),
		),
	)
}

type pillar struct {
	Emoji, Title, Body, Href, Link string
}

var pillars = []pillar{
	{"💻", "Web Development", "High-performance web applications built with modern web standards. From landing pages to full-stack SaaS platforms.", "/web-dev", "Explore Web Dev →"},
	{"📺", "IPTV Rebranding", "Transform your IPTV platform with stunning UI/UX design. From standard interfaces to luxury brands and cyberpunk aesthetics.", "/iptv", "Explore IPTV →"},
	{"🎬", "3D Animation", "Cinematic 3D visuals for fashion, interior, and exterior design. Photorealistic renders and animations that captivate audiences.", "/3d-visuals", "Explore 3D →"},
}

func AboutPage() g.Node {
	return Page(PageProps{
		Title:       "About | Studio",
		Description: "Multi-disciplinary creative studio specializing in web development, IPTV rebranding, and 3D animation.",
		Path:        "/about",
	},
		Section(Class("container section"), Style("text-align:center"),
			H1(g.Text("Multi-Disciplinary"), Br(), Span(Class("gradient-text"), g.Text("Creative Studio"))),
			P(Class("muted"), g.Text("We're not your typical agency. We combine cutting-edge web development, premium IPTV rebranding, and cinematic 3D animation, all powered by AI-accelerated workflows.")),
		),
		Section(Class("container section grid-3"),
			GlowCard("", H3(g.Text("Our Mission")), P(Class("muted"), g.Text("To deliver premium digital experiences that drive results, using AI-accelerated workflows that traditional agencies can't match."))),
			GlowCard("", H3(g.Text("Our Approach")), P(Class("muted"), g.Text("We combine human creativity with AI efficiency. This lets us deliver across three disciplines simultaneously without sacrificing quality."))),
			GlowCard("", H3(g.Text("Our Promise")), P(Class("muted"), g.Text("90+ Lighthouse scores, 3x faster delivery, and premium quality that positions you as a leader in your industry."))),
		),
		Section(Class("container section"),
			H2(Style("text-align:center"), g.Text("Our Three Pillars")),
			g.Map(pillars, func(p pillar) g.Node {
				return Div(Class("glass"), Style("padding:2rem;margin-bottom:1.5rem"),
					H3(g.Textf("%s %s", p.Emoji, p.Title)),
					P(Class("muted"), g.Text(p.Body)),
					A(Href(p.Href), g.Text(p.Link)),
				)
			}),
		),
	)
}

// WebDevSnippets are typed out by the code terminal on the web development page
var WebDevSnippets = []string{
	`// This very page you're viewing
func WebDevPage() g.Node {
	return Page(PageProps{Path: "/web-dev"},
		TypewriterCode(WebDevSnippets),
	)
}`,
	`// Routing with chi
r := chi.NewRouter()
r.Use(middleware.RequestID)
r.Get("/solutions/{industry}", h.Solutions)
r.Get("/api/og", h.OGImage)`,
	`// Design tokens as CSS custom properties
const theme = "--web: #3b82f6; --iptv: #ec4899; --3d: #8b5cf6"`,
	`// Graceful shutdown
ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
defer stop()
<-ctx.Done()
return srv.Shutdown(context.Background())`,
}

type project struct {
	Title, Description string
	Tech               []string
}

var projects = []project{
	{"E-Commerce Platform", "Full-stack application with Stripe integration", []string{"Go", "PostgreSQL", "Stripe"}},
	{"SaaS Dashboard", "Real-time analytics dashboard with WebSocket integration", []string{"React", "Go", "PostgreSQL", "WebSocket"}},
	{"AI Content Platform", "AI-powered content generation pipeline", []string{"Go", "OpenAI", "Redis"}},
	{"Mobile-First PWA", "Progressive web app with offline-first architecture", []string{"Service Workers", "IndexedDB"}},
}

func WebDevPage() g.Node {
	return Page(PageProps{
		Title:       "Web Development | Studio",
		Description: "High-performance web applications built with cutting-edge technology and modern web standards.",
		Path:        "/web-dev",
		Cursor:      "web",
	},
		Section(Class("container section grid-3"),
			Div(
				H1(g.Text("Web Development"), Br(), Span(Class("gradient-text"), g.Text("That Performs"))),
				P(Class("muted"), g.Text("Lightning-fast websites and web applications with 90+ Lighthouse scores, written by a team that automates the boring parts.")),
				ButtonLink("/start-project", "Start Your Project", true),
			),
			TypewriterCode(WebDevSnippets),
		),
		Section(Class("container section"),
			H2(Style("text-align:center"), g.Text("Recent Projects")),
			Div(Class("grid-3"),
				g.Map(projects, func(p project) g.Node {
					return GlowCard("rgba(59, 130, 246, 0.15)",
						H3(g.Text(p.Title)),
						P(Class("muted"), g.Text(p.Description)),
						Small(g.Text(strings.Join(p.Tech, " • "))),
					)
				}),
			),
		),
	)
}

func IPTVPage(themes []domain.IPTVTheme, selected domain.IPTVTheme, channels []domain.Channel) g.Node {
	return Page(PageProps{
		Title:       "IPTV Rebranding | Studio",
		Description: "Transform your IPTV platform with stunning UI/UX design. Switch themes live and see your brand come alive.",
		Path:        "/iptv",
		Cursor:      "iptv",
	},
		Section(Class("container section"), Style("text-align:center"),
			H1(g.Text("IPTV "), Span(Class("gradient-text"), g.Text("Rebranding"))),
			P(Class("muted"), g.Text("Pick a theme and watch the interface transform. Every token below is swappable for your brand.")),
		),
		Section(Class("container section"),
			ThemeSwitcher("/iptv", themes, selected, channels),
		),
	)
}

func VisualsPage(src VideoSource, hero domain.VideoConfig, category string, categories []string, items []domain.GalleryItem) g.Node {
	return Page(PageProps{
		Title:       "3D Visuals | Studio",
		Description: "Cinematic 3D visuals for fashion, interior, and exterior design.",
		Path:        "/3d-visuals",
		Cursor:      "3d",
	},
		VideoHero(src, VideoHeroProps{
			Video:    hero,
			Title:    "Cinematic 3D Visuals",
			Subtitle: "Photorealistic renders and animations for fashion, interior, and exterior design.",
		}),
		Section(Class("container section"),
			H2(Style("text-align:center"), g.Text("Showcase")),
			Gallery(src, "/3d-visuals", category, categories, items),
		),
	)
}

// SolutionsProps is the resolved content of a personalized landing page
type SolutionsProps struct {
	Industry domain.IndustryConfig
	Headline string
	Company  string
	// Ref is the sales reference code, shown under the CTA
	Ref       string
	Hero      domain.VideoConfig
	OpenGraph OpenGraph
}

func SolutionsPage(src VideoSource, p SolutionsProps) g.Node {
	cfg := p.Industry
	theme := fmt.Sprintf("--industry-primary: %s; --industry-secondary: %s; --industry-accent: %s; --accent: %s",
		cfg.Theme.Primary, cfg.Theme.Secondary, cfg.Theme.Accent, cfg.Theme.Primary)
	gradient := fmt.Sprintf("background: linear-gradient(135deg, %s, %s); color: #fff", cfg.Theme.Primary, cfg.Theme.Secondary)
	industryName := strings.ToLower(cfg.Name)

	var hero g.Node
	if cfg.VideoCategory != domain.VideoCategoryNone {
		hero = VideoHero(src, VideoHeroProps{Video: p.Hero, Title: p.Headline, Subtitle: cfg.Subheadline, OverlayOpacity: 0.6})
	} else {
		hero = Section(Class("container section"), Style("text-align:center"),
			H1(g.Text(p.Headline)),
			P(Class("muted"), g.Text(cfg.Subheadline)),
		)
	}

	stats := [][3]string{
		{"3-4x", "Higher Conversion", "Personalized landing pages increase conversion by 3-4x"},
		{"90+", "Performance Score", "Lighthouse-optimized for speed and SEO"},
		{"24h", "Response Time", "We'll get back to you within one business day"},
	}

	return Page(PageProps{
		Title:       p.Headline + " | " + SiteName,
		Description: cfg.Subheadline,
		Path:        "/solutions/" + cfg.ID,
		OpenGraph:   p.OpenGraph,
	},
		Div(Class("solutions"), Data("industry", cfg.ID), Style(theme),
			hero,
			g.If(p.Company != "",
				Section(Class("container section glass"), Style("padding:2rem"),
					H2(g.Textf("Welcome, %s!", p.Company)),
					P(Class("muted"), g.Textf("We've curated these solutions specifically for your %s business. Let's transform your vision into reality.", industryName)),
				),
			),
			Section(Class("container section"),
				H2(Style("text-align:center"), g.Textf("Our %s Solutions", cfg.Name)),
				Div(Class("grid-3"),
					g.Map(cfg.Services, func(service string) g.Node {
						return GlowCard("",
							H3(g.Text("✓ "+service)),
							P(Class("muted"), g.Textf("Tailored specifically for %s businesses", industryName)),
						)
					}),
				),
			),
			Section(Class("container section"),
				H2(Style("text-align:center"), g.Textf("Why %s Leaders Choose Us", cfg.Name)),
				Div(Class("grid-3"),
					g.Map(stats, func(s [3]string) g.Node {
						return Div(Style("text-align:center"),
							Div(Class("stat"), Style(gradient+"; border-radius:1rem; padding:1rem; font-size:2rem; font-weight:700"), g.Text(s[0])),
							H3(g.Text(s[1])),
							P(Class("muted"), g.Text(s[2])),
						)
					}),
				),
			),
			Section(Class("container section"), Style("text-align:center"),
				A(Href("/start-project"), Class("btn"), Style(gradient), g.Text(cfg.CTA+" →")),
				g.If(p.Ref != "", P(Class("muted"), Style("margin-top:1rem; font-size:.875rem"), g.Text("Reference: "+p.Ref))),
			),
		),
	)
}

func NotFoundPage() g.Node {
	return Page(PageProps{Title: "Not Found | Studio"},
		Section(Class("container section"), Style("text-align:center"),
			H1(g.Text("404")),
			P(Class("muted"), g.Text("This page wandered off.")),
			ButtonLink("/", "Back Home", true),
		),
	)
}
