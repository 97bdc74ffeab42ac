package domain

import (
	"time"

	"github.com/google/uuid"
)

// Events
const (
	EventLandingPersonalized = "landing.personalized"
	EventIntakeSubmitted     = "intake.submitted"
)

// Industry configuration
type IndustryTheme struct {
	Primary   string
	Secondary string
	Accent    string
}

type VideoCategory string

const (
	VideoCategoryNone     VideoCategory = ""
	VideoCategoryFashion  VideoCategory = "fashion"
	VideoCategoryInterior VideoCategory = "interior"
	VideoCategoryExterior VideoCategory = "exterior"
)

type IndustryConfig struct {
	ID            string
	Name          string
	Description   string
	Theme         IndustryTheme
	Headline      string
	Subheadline   string
	Services      []string
	VideoCategory VideoCategory
	CTA           string
}

// PersonalizationContext is derived from the query of a magic link
type PersonalizationContext struct {
	IndustryKey   string
	CompanyName   string
	ReferenceCode string
}

// Personalized reports whether the page view came from a tracked magic link
func (p PersonalizationContext) Personalized() bool {
	return p.CompanyName != "" && p.ReferenceCode != ""
}

// Video assets
type VideoConfig struct {
	Src     string
	Poster  string
	CDNID   string
	Quality string
	Format  string
}

type GalleryItem struct {
	ID          string
	Title       string
	Category    VideoCategory
	Thumbnail   string
	Description string
	Video       VideoConfig
}

// Intake form vibes
type Vibe string

const (
	VibeNone Vibe = ""
	VibeWeb  Vibe = "web"
	VibeIPTV Vibe = "iptv"
	Vibe3D   Vibe = "3d"
)

// Valid reports whether v is one of the selectable vibes
func (v Vibe) Valid() bool {
	switch v {
	case VibeWeb, VibeIPTV, Vibe3D:
		return true
	}
	return false
}

// Intake form steps
type FormStep int

const (
	StepSelectVibe   FormStep = 1
	StepDetails      FormStep = 2
	StepConfirmation FormStep = 3
)

type IntakeDetails struct {
	Name    string
	Email   string
	Company string
	Brief   string
}

// IntakeForm is the live state of one visitor's intake form
type IntakeForm struct {
	SessionID string
	Step      FormStep
	Vibe      Vibe
	IntakeDetails
	Submitting bool
	Submitted  bool
}

// IntakeProgress is the persisted snapshot of an in-progress form
type IntakeProgress struct {
	Vibe    Vibe   `json:"vibe"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Brief   string `json:"brief"`
}

type IntakeSubmission struct {
	ID        uuid.UUID `db:"id"`
	SessionID string    `db:"session_id"`
	Vibe      Vibe      `db:"vibe"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Company   string    `db:"company"`
	Brief     string    `db:"brief"`
	CreatedAt time.Time `db:"created_at"`
}

// IPTV themes
type ThemeColors struct {
	Primary    string
	Secondary  string
	Background string
	Surface    string
	Text       string
	TextMuted  string
	Accent     string
	Border     string
}

type ThemeTypography struct {
	FontFamily    string
	HeadingWeight string
}

type ThemeSpacing struct {
	BorderRadius string
	CardPadding  string
}

type ThemeEffects struct {
	Shadow string
	Glow   string
}

type IPTVTheme struct {
	ID          string
	Name        string
	Description string
	Colors      ThemeColors
	Typography  ThemeTypography
	Spacing     ThemeSpacing
	Effects     ThemeEffects
}

type Channel struct {
	ID       int
	Name     string
	Category string
	Viewers  string
}
