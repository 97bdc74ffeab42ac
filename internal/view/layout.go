package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const (
	SiteName        = "Studio"
	siteTitle       = "Studio | Multi-Disciplinary Creative Agency"
	siteDescription = "Premium web development, IPTV rebranding, and 3D animation services. AI-accelerated workflows for future-proof digital solutions."
)

// OpenGraph is the share metadata of a page. Zero value emits the site defaults.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	Image       string
	ImageWidth  int
	ImageHeight int
	ImageAlt    string
}

// PageProps describes the document around a page body
type PageProps struct {
	Title       string
	Description string
	Path        string
	Cursor      string
	OpenGraph   OpenGraph
}

type navLink struct {
	Href      string
	Label     string
	Highlight bool
}

var navLinks = []navLink{
	{Href: "/", Label: "Home"},
	{Href: "/web-dev", Label: "Web Dev"},
	{Href: "/iptv", Label: "IPTV"},
	{Href: "/3d-visuals", Label: "3D Visuals"},
	{Href: "/about", Label: "About"},
	{Href: "/start-project", Label: "Start a Project", Highlight: true},
}

// Page renders a full HTML document with the navbar and custom cursor
func Page(p PageProps, body ...g.Node) g.Node {
	title := p.Title
	if title == "" {
		title = siteTitle
	}
	description := p.Description
	if description == "" {
		description = siteDescription
	}

	return c.HTML5(c.HTML5Props{
		Title:       title,
		Description: description,
		Language:    "en",
		Head: []g.Node{
			Meta(Name("keywords"), Content("web development, IPTV, 3D animation, creative agency, digital studio")),
			g.Group(openGraphMeta(title, description, p.OpenGraph)),
			StyleEl(g.Raw(siteCSS), g.Raw(codeCSS)),
		},
		Body: []g.Node{
			Class("dark"),
			g.If(p.Cursor != "", Data("cursor", p.Cursor)),
			Navbar(p.Path),
			Main(g.Group(body)),
			footer(),
			Cursor(),
			Script(g.Raw(siteJS)),
		},
	})
}

func openGraphMeta(title, description string, og OpenGraph) []g.Node {
	if og.Title == "" {
		og.Title = title
	}
	if og.Description == "" {
		og.Description = description
	}

	property := func(name, value string) g.Node {
		return Meta(g.Attr("property", name), Content(value))
	}

	nodes := []g.Node{
		property("og:title", og.Title),
		property("og:description", og.Description),
		property("og:type", "website"),
		property("og:site_name", SiteName),
	}

	if og.URL != "" {
		nodes = append(nodes, property("og:url", og.URL))
	}

	if og.Image == "" {
		return append(nodes, Meta(Name("twitter:card"), Content("summary")))
	}

	return append(nodes,
		property("og:image", og.Image),
		property("og:image:width", strconv.Itoa(og.ImageWidth)),
		property("og:image:height", strconv.Itoa(og.ImageHeight)),
		property("og:image:alt", og.ImageAlt),
		Meta(Name("twitter:card"), Content("summary_large_image")),
		Meta(Name("twitter:title"), Content(og.Title)),
		Meta(Name("twitter:description"), Content(og.Description)),
		Meta(Name("twitter:image"), Content(og.Image)),
	)
}

// Navbar highlights the link matching the current path
func Navbar(path string) g.Node {
	return Nav(
		Class("navbar glass-strong"),
		Div(
			Class("container navbar-inner"),
			A(Href("/"), Class("brand"),
				Span(Class("brand-mark gradient-text"), g.Text("S")),
				Span(Class("gradient-text"), g.Text(SiteName)),
			),
			Div(
				Class("nav-links"),
				g.Map(navLinks, func(l navLink) g.Node {
					active := path == l.Href
					return A(
						Href(l.Href),
						c.Classes{
							"nav-link":     true,
							"gradient-web": l.Highlight,
							"active":       active && !l.Highlight,
						},
						g.If(active, Aria("current", "page")),
						g.Text(l.Label),
					)
				}),
			),
		),
	)
}

// Cursor is the follower element moved by the page script on pointer devices
func Cursor() g.Node {
	return Div(ID("cursor"), Class("cursor"), Aria("hidden", "true"),
		Div(Class("cursor-dot")),
		Div(Class("cursor-ring")),
	)
}

func footer() g.Node {
	return Footer(
		Class("site-footer container"),
		P(g.Textf("© %s. Premium web development, IPTV rebranding and 3D animation.", SiteName)),
	)
}

// ButtonLink is the primary or outlined call to action
func ButtonLink(href, label string, primary bool) g.Node {
	return A(
		Href(href),
		c.Classes{"btn": true, "btn-primary": primary, "btn-outline": !primary},
		g.Text(label),
	)
}
