package tui

import "log/slog"

// Theme captures optional formatting hints applied when printing messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
	ValidMark   string
	InvalidMark string
}

// DefaultTheme is used when no theme is configured.
var DefaultTheme = Theme{
	ErrorPrefix: "! ",
	ValidMark:   "[ok]",
	InvalidMark: "[!!]",
}

// Option configures the renderer and the prompt session.
type Option func(*config)

type config struct {
	driver      PromptDriver
	theme       Theme
	maxAttempts int
	confirm     bool
	logger      *slog.Logger
}

func newConfig(options []Option) config {
	cfg := config{theme: DefaultTheme, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.driver == nil {
		cfg.driver = NewSurveyDriver(nil)
	}
	return cfg
}

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(cfg *config) {
		if driver != nil {
			cfg.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes and status marks.
func WithTheme(theme Theme) Option {
	return func(cfg *config) {
		cfg.theme = theme
	}
}

// WithMaxAttempts limits how often a single field is re-prompted while it
// stays invalid. Zero or less means no limit.
func WithMaxAttempts(n int) Option {
	return func(cfg *config) {
		cfg.maxAttempts = n
	}
}

// WithConfirm asks for confirmation before a session finishes.
func WithConfirm(enabled bool) Option {
	return func(cfg *config) {
		cfg.confirm = enabled
	}
}

// WithLogger sets the logger used for session diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
