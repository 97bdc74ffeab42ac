package ogimage

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
	"sync"

	"studio-site/internal/catalog"
	"studio-site/internal/domain"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Social card dimensions
const (
	Width  = 1200
	Height = 630
)

const (
	background   = "#0a0a0a"
	subtleText   = "#a0a0a0"
	footerText   = "#666666"
	studioFooter = "Multi-Disciplinary Creative Agency"
)

type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
}

var loadFonts = sync.OnceValues(func() (*fontSet, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &fontSet{regular: regular, bold: bold}, nil
})

func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

// Render draws the 1200x630 PNG card for an industry, personalized when company is set
func Render(w io.Writer, cfg domain.IndustryConfig, company string) error {
	fonts, err := loadFonts()
	if err != nil {
		return err
	}

	primary, err := parseHex(cfg.Theme.Primary)
	if err != nil {
		return err
	}
	secondary, err := parseHex(cfg.Theme.Secondary)
	if err != nil {
		return err
	}

	dc := gg.NewContext(Width, Height)

	dc.SetHexColor(background)
	dc.Clear()

	// theme wash at ~12% opacity
	wash := gg.NewLinearGradient(0, 0, Width, Height)
	wash.AddColorStop(0, withAlpha(primary, 0x20))
	wash.AddColorStop(1, withAlpha(secondary, 0x20))
	dc.SetFillStyle(wash)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()

	const logoSize = 120.0
	logoX, logoY := (Width-logoSize)/2, 70.0
	tile := gg.NewLinearGradient(logoX, logoY, logoX+logoSize, logoY+logoSize)
	tile.AddColorStop(0, primary)
	tile.AddColorStop(1, secondary)
	dc.SetFillStyle(tile)
	dc.DrawRoundedRectangle(logoX, logoY, logoSize, logoSize, 30)
	dc.Fill()

	dc.SetColor(color.White)
	dc.SetFontFace(face(fonts.bold, 60))
	dc.DrawStringAnchored("S", Width/2, logoY+logoSize/2, 0.5, 0.35)

	headlineSize := 56.0
	if company != "" {
		headlineSize = 48
	}
	dc.SetFontFace(face(fonts.bold, headlineSize))
	dc.DrawStringWrapped(catalog.OGHeadline(cfg, company), Width/2, 240, 0.5, 0, 900, 1.25, gg.AlignCenter)

	dc.SetHexColor(subtleText)
	dc.SetFontFace(face(fonts.regular, 28))
	dc.DrawStringWrapped(cfg.Subheadline, Width/2, 400, 0.5, 0, 800, 1.3, gg.AlignCenter)

	drawFooter(dc, fonts, primary)
	drawBadge(dc, fonts, cfg.Name+" Solutions", primary)

	return dc.EncodePNG(w)
}

func drawFooter(dc *gg.Context, fonts *fontSet, accent color.Color) {
	dc.SetFontFace(face(fonts.regular, 20))

	left, right := "Studio", studioFooter
	lw, _ := dc.MeasureString(left)
	rw, _ := dc.MeasureString(right)
	dot, gap := "•", 10.0
	dw, _ := dc.MeasureString(dot)

	x := (Width - (lw + dw + rw + 2*gap)) / 2
	y := 560.0

	dc.SetHexColor(footerText)
	dc.DrawString(left, x, y)
	dc.SetColor(accent)
	dc.DrawString(dot, x+lw+gap, y)
	dc.SetHexColor(footerText)
	dc.DrawString(right, x+lw+dw+2*gap, y)
}

func drawBadge(dc *gg.Context, fonts *fontSet, label string, accent color.RGBA) {
	dc.SetFontFace(face(fonts.bold, 18))
	tw, th := dc.MeasureString(label)

	w, h := tw+48, th+24
	x, y := Width-40-w, Height-40-h

	dc.SetColor(withAlpha(accent, 0x30))
	dc.DrawRoundedRectangle(x, y, w, h, h/2)
	dc.FillPreserve()
	dc.SetColor(accent)
	dc.SetLineWidth(2)
	dc.Stroke()

	dc.DrawStringAnchored(label, x+w/2, y+h/2, 0.5, 0.35)
}

// parseHex accepts #rgb and #rrggbb
func parseHex(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// withAlpha returns c at the given opacity, premultiplied as color.RGBA expects
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(a) / 0xff) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}
