package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

const (
	messageWidth = 60
	callerWidth  = 22
)

var (
	timestampColor = color.New(color.FgHiCyan, color.Italic)
	callerColor    = color.New(color.FgHiMagenta)
	messageColor   = color.New(color.FgWhite)
	fieldKeyColor  = color.New(color.FgHiYellow)
	fieldValColor  = color.New(color.FgCyan)
	unknownColor   = color.New(color.FgHiWhite)
)

type levelStyle struct {
	label string
	mark  string
	color *color.Color
}

var levelStyles = map[string]levelStyle{
	zerolog.LevelTraceValue: {"TRAC", "◇", color.New(color.FgHiBlack, color.Bold)},
	zerolog.LevelDebugValue: {"DEBG", "◈", color.New(color.FgHiBlue, color.Bold)},
	zerolog.LevelInfoValue:  {"INFO", "◉", color.New(color.FgHiGreen, color.Bold)},
	zerolog.LevelWarnValue:  {"WARN", "◎", color.New(color.FgHiYellow, color.Bold)},
	zerolog.LevelErrorValue: {"ERRO", "✖", color.New(color.FgHiRed, color.Bold)},
	zerolog.LevelFatalValue: {"FATL", "☠", color.New(color.FgHiRed, color.Bold)},
	zerolog.LevelPanicValue: {"PANC", "☠", color.New(color.FgWhite, color.BgRed, color.Bold)},
}

type Config struct {
	Level          string
	DateTimeLayout string
	Colored        bool
	JSONFormat     bool
	UseEmoji       bool

	// Output defaults to os.Stdout
	Output io.Writer
}

// ZLogX is a zerolog logger with the site's console layout and a few
// purpose-built entry helpers
type ZLogX struct {
	*zerolog.Logger
	config *Config
}

// New builds a logger from config; nil config means info level on a colored console
func New(config *Config) (*ZLogX, error) {
	if config == nil {
		config = &Config{Level: "info", DateTimeLayout: time.RFC3339, Colored: true}
	}

	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	if config.Output == nil {
		config.Output = os.Stdout
	}

	var out io.Writer = config.Output
	if !config.JSONFormat {
		out = newConsoleWriter(config)
	}

	logger := zerolog.New(out).With().Timestamp().CallerWithSkipFrameCount(3).Logger()

	return &ZLogX{Logger: &logger, config: config}, nil
}

func newConsoleWriter(config *Config) zerolog.ConsoleWriter {
	w := zerolog.ConsoleWriter{
		Out:        config.Output,
		NoColor:    !config.Colored,
		TimeFormat: config.DateTimeLayout,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
	}
	if !config.Colored {
		return w
	}

	layout := config.DateTimeLayout
	emoji := config.UseEmoji

	w.FormatTimestamp = func(i any) string {
		s := fmt.Sprint(i)
		if ts, err := time.Parse(time.RFC3339, s); err == nil && layout != "" {
			s = ts.Local().Format(layout)
		}
		return timestampColor.Sprintf("[ %s ]", s)
	}

	w.FormatLevel = func(i any) string {
		style, ok := levelStyles[fmt.Sprint(i)]
		if !ok {
			return unknownColor.Sprint(" ???? ")
		}
		if emoji {
			return style.color.Sprintf(" %s %s ", style.mark, style.label)
		}
		return style.color.Sprintf(" %s ", style.label)
	}

	w.FormatCaller = func(i any) string {
		s, ok := i.(string)
		if !ok || s == "" {
			return ""
		}
		return callerColor.Sprintf("┤ %s ├", fit(strings.Replace(filepath.Base(s), ".go:", ":", 1), callerWidth))
	}

	w.FormatMessage = func(i any) string {
		msg, _ := i.(string)
		if msg == "" {
			return messageColor.Sprint("│")
		}
		lines := strings.Split(msg, "\n")
		if len(lines) == 1 {
			lines[0] = fit(msg, messageWidth)
		}
		for n, line := range lines {
			lines[n] = messageColor.Sprint("│ " + line)
		}
		return strings.Join(lines, "\n")
	}

	w.FormatFieldName = func(i any) string {
		return fieldKeyColor.Sprint(i)
	}

	w.FormatFieldValue = func(i any) string {
		switch v := i.(type) {
		case string:
			// the writer has already quoted values that need it
			return "=" + fieldValColor.Sprint(v)
		case bool:
			if v {
				return "=" + color.HiGreenString("true")
			}
			return "=" + color.HiRedString("false")
		case nil:
			return "=" + color.HiBlackString("null")
		default:
			return "=" + fieldValColor.Sprint(v)
		}
	}

	return w
}

// fit pads or cuts s to exactly width runes
func fit(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func (zl *ZLogX) decorate(mark, msg string) string {
	if zl.config.UseEmoji && mark != "" {
		return mark + " " + msg
	}
	return msg
}

// Success logs a completed outbound action at info level
func (zl *ZLogX) Success(msg string) {
	zl.Info().Msg(zl.decorate("✅", msg))
}

// Failure logs a failed outbound action at error level
func (zl *ZLogX) Failure(msg string) {
	zl.Error().Msg(zl.decorate("❌", msg))
}

// Benchmark logs how long an operation took at debug level
func (zl *ZLogX) Benchmark(name string, duration time.Duration) {
	zl.Debug().
		Str("duration", duration.String()).
		Msg(zl.decorate(durationMark(duration), "timing: "+name))
}

// API logs one HTTP request; the level follows the status class
func (zl *ZLogX) API(method, path, remoteAddr string, statusCode int, duration time.Duration) {
	level, mark := statusClass(statusCode)

	zl.WithLevel(level).
		Str("method", method).
		Str("path", path).
		Str("remote_addr", remoteAddr).
		Int("status_code", statusCode).
		Str("duration", duration.Round(time.Millisecond).String()).
		Msg(zl.decorate(mark, "http request"))
}

var durationMarks = []struct {
	below time.Duration
	mark  string
}{
	{time.Millisecond, "⚡"},
	{10 * time.Millisecond, "🚀"},
	{100 * time.Millisecond, "🏃"},
	{time.Second, "🚶"},
}

func durationMark(d time.Duration) string {
	for _, m := range durationMarks {
		if d < m.below {
			return m.mark
		}
	}
	return "🐌"
}

func statusClass(code int) (zerolog.Level, string) {
	switch {
	case code >= 500:
		return zerolog.ErrorLevel, "❌"
	case code >= 400:
		return zerolog.WarnLevel, "⚠️"
	case code >= 300:
		return zerolog.InfoLevel, "🔄"
	case code >= 200:
		return zerolog.InfoLevel, "✅"
	default:
		return zerolog.InfoLevel, "❓"
	}
}
