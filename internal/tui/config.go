package tui

import (
	"context"
	"log/slog"

	"github.com/Veraticus/smart-farming/internal/advisor"
	"github.com/Veraticus/smart-farming/internal/model"
	"github.com/Veraticus/smart-farming/internal/session"
	"github.com/Veraticus/smart-farming/internal/tui/themes"
)

// Advisor produces recommendations for a completed profile.
type Advisor interface {
	Generate(ctx context.Context, profile model.FarmerProfile) advisor.Result
}

// Config holds TUI configuration.
type Config struct {
	Context  context.Context
	Theme    themes.Theme
	Advisor  Advisor
	Session  *session.Session
	Logger   *slog.Logger
	Width    int
	Height   int
	ShowHelp bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Context:  context.Background(),
		Theme:    themes.Default,
		Width:    100,
		Height:   32,
		ShowHelp: true,
	}
}

// WithAdvisor sets the recommendation provider.
func WithAdvisor(a Advisor) Option {
	return func(c *Config) {
		c.Advisor = a
	}
}

// WithSession sets the session state. A fresh session is used otherwise.
func WithSession(s *session.Session) Option {
	return func(c *Config) {
		c.Session = s
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithContext sets the context passed to the advisor.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		c.Context = ctx
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithHelp toggles the help line.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
