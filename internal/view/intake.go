package view

import (
	"strconv"

	"studio-site/internal/domain"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// Intake form actions posted by the details step
const (
	ActionSave   = "save"
	ActionBack   = "back"
	ActionSubmit = "submit"
)

type vibeOption struct {
	Vibe        domain.Vibe
	Title       string
	Description string
	Gradient    string
}

var vibeOptions = []vibeOption{
	{domain.VibeWeb, "High-Performance Web", "Lightning-fast websites and web applications", "gradient-web"},
	{domain.VibeIPTV, "Brand Transformation", "IPTV rebranding and UI/UX design", "gradient-iptv"},
	{domain.Vibe3D, "Cinematic 3D", "Fashion, interior, and exterior 3D animation", "gradient-3d"},
}

var stepLabels = []string{"Choose Vibe", "Project Details", "Confirmation"}

// IntakeProps is the state the start-project page renders
type IntakeProps struct {
	Form *domain.IntakeForm
	// CanSubmit enables the submit button on the details step
	CanSubmit bool
	Error     string
}

func StartProjectPage(p IntakeProps) g.Node {
	return Page(PageProps{
		Title:       "Start a Project | Studio",
		Description: "Tell us about your project. Web development, IPTV rebranding or cinematic 3D.",
		Path:        "/start-project",
	},
		Section(Class("container section"), Style("max-width:56rem"),
			H1(Style("text-align:center"), g.Text("Let's Build Something "), Span(Class("gradient-text"), g.Text("Amazing"))),
			IntakeForm(p),
		),
	)
}

// IntakeForm renders the progress indicator and the current step
func IntakeForm(p IntakeProps) g.Node {
	var step g.Node
	switch p.Form.Step {
	case domain.StepDetails:
		step = detailsStep(p)
	case domain.StepConfirmation:
		step = confirmationStep()
	default:
		step = vibeStep(p.Form)
	}

	return Div(
		ID("intake"),
		Data("step", strconv.Itoa(int(p.Form.Step))),
		progress(p.Form.Step),
		g.If(p.Error != "", Div(Class("alert"), Role("alert"), g.Text(p.Error))),
		step,
	)
}

func progress(current domain.FormStep) g.Node {
	items := make([]g.Node, 0, len(stepLabels))
	for i, label := range stepLabels {
		n := domain.FormStep(i + 1)

		bubble := strconv.Itoa(int(n))
		if current > n {
			bubble = "✓"
		}

		items = append(items, Li(
			c.Classes{"step": true, "reached": current >= n},
			g.If(current == n, Aria("current", "step")),
			Span(Class("bubble"), g.Text(bubble)),
			Span(g.Text(label)),
		))
	}

	return Ol(Class("steps"), Aria("label", "Progress"), g.Group(items))
}

func vibeStep(form *domain.IntakeForm) g.Node {
	return Div(
		Class("intake-step"),
		Data("intake-step", "vibe"),
		Div(Style("text-align:center"),
			H2(g.Text("What's the Vibe?")),
			P(Class("muted"), g.Text("Choose the service that best fits your project")),
		),
		Form(
			Method("post"),
			Action("/start-project/vibe"),
			Class("grid-3 vibes"),
			g.Map(vibeOptions, func(o vibeOption) g.Node {
				selected := form.Vibe == o.Vibe
				return Button(
					Type("submit"),
					Name("vibe"),
					Value(string(o.Vibe)),
					c.Classes{"glass": true, "selected": selected},
					g.If(selected, Aria("pressed", "true")),
					Div(Class("icon "+o.Gradient)),
					H3(g.Text(o.Title)),
					P(Class("muted"), g.Text(o.Description)),
				)
			}),
		),
	)
}

func detailsStep(p IntakeProps) g.Node {
	form := p.Form

	return Div(
		Class("intake-step"),
		Data("intake-step", "details"),
		Div(Style("text-align:center"),
			H2(g.Text("Tell Us About Your Project")),
			P(Class("muted"), g.Text("We'll get back to you within 24 hours")),
		),
		Form(
			Method("post"),
			Action("/start-project/details"),
			Class("glass"),
			Style("padding:2rem"),
			Data("intake-details", ""),
			field("name", "Your Name *", "text", form.Name, "John Doe", true),
			field("email", "Email Address *", "email", form.Email, "john@example.com", true),
			field("company", "Company (Optional)", "text", form.Company, "Acme Inc.", false),
			Div(Class("field"),
				Label(For("brief"), g.Text("Project Brief *")),
				Textarea(ID("brief"), Name("brief"), g.Attr("rows", "5"), Required(),
					Placeholder("Tell us about your project, goals, and timeline..."),
					g.Text(form.Brief),
				),
			),
			Div(Class("actions"),
				Button(Type("submit"), Name("action"), Value(ActionBack), Class("btn btn-outline"), g.Attr("formnovalidate"), g.Text("← Back")),
				Button(Type("submit"), Name("action"), Value(ActionSave), Class("btn btn-outline"), g.Attr("formnovalidate"), g.Text("Save Progress")),
				Button(Type("submit"), Name("action"), Value(ActionSubmit), Class("btn btn-primary"),
					g.If(!p.CanSubmit || form.Submitting, Disabled()),
					g.If(form.Submitting, g.Text("Sending…")),
					g.If(!form.Submitting, g.Text("Submit Project →")),
				),
			),
		),
	)
}

func field(name, label, typ, value, placeholder string, required bool) g.Node {
	return Div(Class("field"),
		Label(For(name), g.Text(label)),
		Input(ID(name), Name(name), Type(typ), Value(value), Placeholder(placeholder),
			g.If(required, Required()),
		),
	)
}

func confirmationStep() g.Node {
	return Div(
		Class("intake-step glass"),
		Style("padding:3rem;text-align:center"),
		Data("intake-step", "confirmation"),
		Div(Class("bubble gradient-web"), Style("margin:0 auto 1.5rem;width:4rem;height:4rem;border-radius:50%;display:flex;align-items:center;justify-content:center;font-size:2rem"), g.Text("✓")),
		H2(g.Text("Project Submitted!")),
		P(Class("muted"), g.Text("Thanks for reaching out. We'll review your brief and get back to you within 24 hours.")),
		Form(Method("post"), Action("/start-project/reset"),
			Button(Type("submit"), Class("btn btn-outline"), g.Text("Submit Another Project")),
		),
	)
}
