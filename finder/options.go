package finder

import (
	"errors"
	"log/slog"
	"time"

	"github.com/erraggy/caseswap/casing"
)

// DefaultMatchTimeout bounds a single scan when WithMatchTimeout is not given.
const DefaultMatchTimeout = 5 * time.Second

// Option configures a Finder built by New.
type Option func(*config) error

type config struct {
	registry     *casing.Registry
	logger       *slog.Logger
	matchTimeout time.Duration
}

func defaultConfig() *config {
	return &config{
		registry:     casing.Default(),
		logger:       slog.New(slog.DiscardHandler),
		matchTimeout: DefaultMatchTimeout,
	}
}

// WithRegistry classifies and renders with r instead of casing.Default().
func WithRegistry(r *casing.Registry) Option {
	return func(cfg *config) error {
		if r == nil {
			return errors.New("registry cannot be nil")
		}
		cfg.registry = r
		return nil
	}
}

// WithLogger sets the logger used for debug output about each replacement.
// A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		cfg.logger = logger
		return nil
	}
}

// WithMatchTimeout bounds the time a single FindAll or ReplaceAll may spend
// matching. d must be positive.
func WithMatchTimeout(d time.Duration) Option {
	return func(cfg *config) error {
		if d <= 0 {
			return errors.New("match timeout must be positive")
		}
		cfg.matchTimeout = d
		return nil
	}
}
