package core

import (
	"fmt"
	"os"
	"time"
)

// Config carries every tunable the pipeline needs. It is built once and
// passed in at construction; nothing reads the environment after startup.
type Config struct {
	CatalogURL       string
	DefaultCourseURL string
	UserAgent        string

	// Catalog queries aggregate more data than a single unit page, so they
	// get the larger timeout.
	FetchTimeout   time.Duration
	CatalogTimeout time.Duration

	OutputDir string
}

// DefaultConfig returns the built-in defaults with COURSEPACK_* environment
// overrides applied.
func DefaultConfig() Config {
	return Config{
		CatalogURL:       envOr("COURSEPACK_CATALOG_URL", "https://learn.microsoft.com/api/catalog/"),
		DefaultCourseURL: envOr("COURSEPACK_COURSE_URL", "https://learn.microsoft.com/en-us/training/courses/ai-102t00"),
		UserAgent:        envOr("COURSEPACK_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.0"),
		FetchTimeout:     envDuration("COURSEPACK_FETCH_TIMEOUT", 30*time.Second),
		CatalogTimeout:   envDuration("COURSEPACK_CATALOG_TIMEOUT", 60*time.Second),
		OutputDir:        envOr("COURSEPACK_OUTPUT_DIR", "output"),
	}
}

// Validate checks the config for values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.CatalogURL == "" {
		return fmt.Errorf("catalog URL must not be empty")
	}
	if c.FetchTimeout <= 0 || c.CatalogTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
