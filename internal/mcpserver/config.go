package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/caseswap/casing"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded from environment variables via loadConfig().
type serverConfig struct {
	// Classification.
	StrictScreamingSnake bool

	// find_regex default dialect name.
	PatternDialect string

	// rewrite_text limits.
	MaxInputSize int64
	MatchTimeout time.Duration

	// rewrite_text match listing.
	MatchLimit int
	MaxLimit   int
}

// cfg is the active server configuration. Run reloads it before serving.
var cfg = loadConfig()

// loadConfig reads configuration from CASESWAP_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		StrictScreamingSnake: envBool("CASESWAP_STRICT_SCREAMING_SNAKE", false),
		PatternDialect:       envDialect("CASESWAP_PATTERN_DIALECT"),
		MaxInputSize:         envInt64("CASESWAP_MAX_INPUT_SIZE", 1<<20),
		MatchTimeout:         envDuration("CASESWAP_MATCH_TIMEOUT", 5*time.Second),
		MatchLimit:           envInt("CASESWAP_MATCH_LIMIT", 100),
		MaxLimit:             envInt("CASESWAP_MAX_LIMIT", 1000),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}

// envDialect returns a canonical dialect name, or "vim" when unset or invalid.
func envDialect(key string) string {
	v := os.Getenv(key)
	d, err := casing.ParseDialect(v)
	if err != nil {
		slog.Warn("invalid dialect env var, using default", "key", key, "value", v, "default", casing.DialectVim.String()) //nolint:gosec // G706: values are structured log fields, not format strings
		return casing.DialectVim.String()
	}
	return d.String()
}
