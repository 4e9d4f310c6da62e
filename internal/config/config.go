package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"vimlearn/internal/domain"
)

// Preference backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	DefaultLocale   string
	FallbackLocale  string
	PrefsBackend    string
	PrefsFile       string
	DatabaseURL     string
	TablesDir       string
	ScrollStep      int
	SequenceTimeout time.Duration
	LineHeight      int
	LogFile         string

	// Discord surface.
	Token   string
	GuildID string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment.
	}

	cfg := &Config{
		DefaultLocale:  getenv("DEFAULT_LOCALE", domain.DefaultLocale),
		FallbackLocale: getenv("FALLBACK_LOCALE", domain.FallbackLocale),
		PrefsBackend:   strings.ToLower(getenv("PREFS_BACKEND", BackendFile)),
		PrefsFile:      getenv("PREFS_FILE", filepath.Join(dataDir(), "prefs.toml")),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		TablesDir:      os.Getenv("TABLES_DIR"),
		LogFile:        getenv("LOG_FILE", filepath.Join(dataDir(), "vimlearn.log")),
		Token:          os.Getenv("TOKEN"),
		GuildID:        os.Getenv("GUILD_ID"),
	}

	var err error
	if cfg.ScrollStep, err = intEnv("SCROLL_STEP", domain.ScrollStep); err != nil {
		return nil, err
	}
	if cfg.LineHeight, err = intEnv("LINE_HEIGHT", 20); err != nil {
		return nil, err
	}
	if cfg.SequenceTimeout, err = durationEnv("SEQUENCE_TIMEOUT", domain.SequenceTimeout); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequireDiscord checks the settings needed by the Discord bot.
func (c *Config) RequireDiscord() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}
	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
		}
	}
	return nil
}

// validate applies every rule to the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DefaultLocale) == "" {
		return fmt.Errorf("config: DEFAULT_LOCALE cannot be empty")
	}
	if strings.TrimSpace(c.FallbackLocale) == "" {
		return fmt.Errorf("config: FALLBACK_LOCALE cannot be empty")
	}
	if c.ScrollStep <= 0 {
		return fmt.Errorf("config: SCROLL_STEP must be positive, got %d", c.ScrollStep)
	}
	if c.LineHeight <= 0 {
		return fmt.Errorf("config: LINE_HEIGHT must be positive, got %d", c.LineHeight)
	}
	if c.SequenceTimeout <= 0 {
		return fmt.Errorf("config: SEQUENCE_TIMEOUT must be positive, got %s", c.SequenceTimeout)
	}

	switch c.PrefsBackend {
	case BackendFile:
		if strings.TrimSpace(c.PrefsFile) == "" {
			return fmt.Errorf("config: PREFS_FILE cannot be empty with the file backend")
		}
	case BackendMemory:
	case BackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Handy local default when DATABASE_URL is not provided.
			c.DatabaseURL = "postgres://localhost:5432/vimlearn?sslmode=disable"
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	default:
		return fmt.Errorf("config: unknown PREFS_BACKEND %q (want file, postgres or memory)", c.PrefsBackend)
	}

	return nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer (%q): %w", key, v, err)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a duration (%q): %w", key, v, err)
	}
	return d, nil
}

// dataDir is ~/.vimlearn, or .vimlearn when the home directory is unknown.
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vimlearn"
	}
	return filepath.Join(home, ".vimlearn")
}
