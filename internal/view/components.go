package view

import (
	"fmt"
	"strings"

	"studio-site/internal/domain"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// VideoSource resolves playable and poster URLs for a video config
type VideoSource interface {
	VideoURL(cfg domain.VideoConfig) string
	PosterURL(cfg domain.VideoConfig) string
}

type VideoHeroProps struct {
	Video          domain.VideoConfig
	Title          string
	Subtitle       string
	OverlayOpacity float64
	Actions        []g.Node
}

// VideoHero renders a looping muted background video behind a blurred poster and the hero copy
func VideoHero(src VideoSource, p VideoHeroProps) g.Node {
	overlay := p.OverlayOpacity
	if overlay == 0 {
		overlay = 0.6
	}
	poster := src.PosterURL(p.Video)

	return Section(
		Class("hero"),
		g.If(poster != "", Img(Class("hero-poster"), Src(poster), Alt(""), Aria("hidden", "true"))),
		Video(
			g.Attr("autoplay"), g.Attr("muted"), g.Attr("loop"), g.Attr("playsinline"),
			g.If(p.Video.Poster != "", g.Attr("poster", p.Video.Poster)),
			Source(Src(src.VideoURL(p.Video)), Type("video/mp4")),
			g.Text("Your browser does not support the video tag."),
		),
		Div(
			Class("hero-overlay"),
			Style(fmt.Sprintf(
				"background: linear-gradient(to bottom, rgba(0,0,0,%.2f), rgba(0,0,0,%.2f))",
				overlay*0.5, overlay,
			)),
		),
		g.If(p.Title != "" || p.Subtitle != "",
			Div(
				Class("hero-content container"),
				g.If(p.Title != "", H1(g.Text(p.Title))),
				g.If(p.Subtitle != "", P(Class("muted"), g.Text(p.Subtitle))),
				g.If(len(p.Actions) > 0, Div(Class("actions"), g.Group(p.Actions))),
			),
		),
	)
}

// GlowCard is a card whose border glow follows the pointer
func GlowCard(glowColor string, children ...g.Node) g.Node {
	if glowColor == "" {
		glowColor = "rgba(99, 102, 241, 0.15)"
	}
	return Div(Class("glow-card"), Style("--glow: "+glowColor), g.Group(children))
}

// ServiceCard links to a service page
func ServiceCard(href, gradient, title, description string) g.Node {
	return A(Href(href), Class("glass service-card"),
		Div(Class("icon "+gradient)),
		H3(g.Text(title)),
		P(Class("muted"), g.Text(description)),
	)
}

// Gallery renders category filters, the item grid and one lightbox dialog per item
func Gallery(src VideoSource, basePath, active string, categories []string, items []domain.GalleryItem) g.Node {
	return Div(
		Class("gallery"),
		Div(Class("filters"),
			g.Map(categories, func(cat string) g.Node {
				return A(
					Href(basePath+"?category="+cat),
					c.Classes{"active": cat == active},
					g.Text(strings.ToUpper(cat[:1])+cat[1:]),
				)
			}),
		),
		Div(Class("grid-3"),
			g.Map(items, func(item domain.GalleryItem) g.Node {
				dialogID := "lightbox-" + item.ID
				return Button(
					Type("button"),
					Class("glass gallery-item"),
					g.Attr("onclick", fmt.Sprintf("document.getElementById('%s').showModal()", dialogID)),
					Img(Src(item.Thumbnail), Alt(item.Title), g.Attr("loading", "lazy")),
					Div(
						H3(g.Text(item.Title)),
						P(Class("muted"), g.Text(item.Description)),
					),
				)
			}),
		),
		g.Map(items, func(item domain.GalleryItem) g.Node {
			return lightbox(src, item)
		}),
	)
}

func lightbox(src VideoSource, item domain.GalleryItem) g.Node {
	return g.El("dialog",
		ID("lightbox-"+item.ID),
		Class("lightbox"),
		Video(
			g.Attr("controls"), g.Attr("playsinline"), g.Attr("preload", "none"),
			g.If(src.PosterURL(item.Video) != "", g.Attr("poster", src.PosterURL(item.Video))),
			Source(Src(src.VideoURL(item.Video)), Type("video/mp4")),
		),
		H3(g.Text(item.Title)),
		P(Class("muted"), g.Text(item.Description)),
		Form(Method("dialog"),
			Button(Class("btn btn-outline"), g.Text("Close")),
		),
	)
}

// TypewriterCode shows the first snippet highlighted and lets the page script type through all of them
func TypewriterCode(snippets []string) g.Node {
	if len(snippets) == 0 {
		return nil
	}

	return Div(
		Class("terminal glass-strong"),
		Data("typewriter", ""),
		Data("speed", "30"),
		Data("pause", "2000"),
		Div(Class("terminal-bar"),
			Span(Class("dot"), Style("background:#ef4444")),
			Span(Class("dot"), Style("background:#eab308")),
			Span(Class("dot"), Style("background:#22c55e")),
			Span(Class("muted"), g.Text("~/studio-portfolio")),
		),
		Pre(Code(Class("chroma"), Highlight(snippets[0])), Span(Class("caret"))),
		g.Map(snippets, func(s string) g.Node {
			return g.El("template", Data("text", s), Highlight(s))
		}),
		Div(Class("terminal-bar muted"),
			Span(g.Text("Go • chi • gomponents")),
			Span(g.Text("● Live Coding")),
		),
	)
}

// ThemeVariables renders the theme tokens as CSS custom properties
func ThemeVariables(t domain.IPTVTheme) string {
	vars := [][2]string{
		{"primary", t.Colors.Primary},
		{"secondary", t.Colors.Secondary},
		{"background", t.Colors.Background},
		{"surface", t.Colors.Surface},
		{"text", t.Colors.Text},
		{"text-muted", t.Colors.TextMuted},
		{"accent", t.Colors.Accent},
		{"border", t.Colors.Border},
		{"font", t.Typography.FontFamily},
		{"heading-weight", t.Typography.HeadingWeight},
		{"radius", t.Spacing.BorderRadius},
		{"card-padding", t.Spacing.CardPadding},
		{"shadow", t.Effects.Shadow},
		{"glow", t.Effects.Glow},
	}

	var b strings.Builder
	for _, v := range vars {
		fmt.Fprintf(&b, "--iptv-%s: %s; ", v[0], v[1])
	}
	return strings.TrimSpace(b.String())
}

// ThemeSwitcher renders the theme picker and a live preview of the selected theme
func ThemeSwitcher(basePath string, themes []domain.IPTVTheme, selected domain.IPTVTheme, channels []domain.Channel) g.Node {
	return Div(
		Class("theme-switcher"),
		Div(Class("filters"),
			g.Map(themes, func(t domain.IPTVTheme) g.Node {
				return A(
					Href(basePath+"?theme="+t.ID),
					c.Classes{"active": t.ID == selected.ID},
					Title(t.Description),
					g.Text(t.Name),
				)
			}),
		),
		Div(
			Class("iptv-preview"),
			ID("iptv-preview"),
			Data("theme", selected.ID),
			Style(ThemeVariables(selected)),
			H3(g.Text(selected.Name)),
			P(g.Text(selected.Description)),
			Div(Class("grid-3"),
				g.Map(channels, func(ch domain.Channel) g.Node {
					return Div(Class("iptv-channel"),
						Strong(g.Text(ch.Name)),
						Br(),
						Small(g.Text(ch.Category)),
						P(Class("iptv-live"), g.Textf("● %s watching", ch.Viewers)),
					)
				}),
			),
		),
	)
}
