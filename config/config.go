package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort           = "8080"
	defaultOpenAIBaseURL  = "https://api.openai.com/v1"
	defaultOpenAITimeout  = 60 * time.Second
	defaultUploadMaxBytes = 10 << 20
	defaultPreviewBurst   = 3
	defaultSessionIdleTTL = 24 * time.Hour
)

// Config holds the runtime configuration read from environment variables
type Config struct {
	Env  string
	Port string

	// OpenAIAPIKey gates preview generation. Empty means the feature is off.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAITimeout time.Duration

	// DatabaseURL is empty when no database is configured; orders are then kept in memory.
	DatabaseURL string

	GoogleCredentialsPath string
	GraphicsDriveFolderID string

	UploadMaxBytes int64

	// PreviewRatePerMinute limits preview requests per client. Zero disables the limit.
	PreviewRatePerMinute int
	PreviewRateBurst     int

	// SessionIdleTTL is how long an untouched session is kept in memory
	SessionIdleTTL time.Duration
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		Env:                   os.Getenv("ENV"),
		Port:                  normalizePort(os.Getenv("PORT")),
		OpenAIAPIKey:          strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:         strings.TrimRight(os.Getenv("OPENAI_BASE_URL"), "/"),
		OpenAITimeout:         defaultOpenAITimeout,
		GoogleCredentialsPath: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		GraphicsDriveFolderID: os.Getenv("GRAPHICS_DRIVE_FOLDER_ID"),
		UploadMaxBytes:        defaultUploadMaxBytes,
		PreviewRateBurst:      defaultPreviewBurst,
		SessionIdleTTL:        defaultSessionIdleTTL,
	}

	if cfg.OpenAIBaseURL == "" {
		cfg.OpenAIBaseURL = defaultOpenAIBaseURL
	}

	if raw := os.Getenv("OPENAI_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid OPENAI_TIMEOUT %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid OPENAI_TIMEOUT %q: must be positive", raw)
		}
		cfg.OpenAITimeout = d
	}

	if raw := os.Getenv("UPLOAD_MAX_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid UPLOAD_MAX_BYTES %q: %w", raw, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("invalid UPLOAD_MAX_BYTES %q: must be positive", raw)
		}
		cfg.UploadMaxBytes = n
	}

	if raw := os.Getenv("PREVIEW_RATE_PER_MINUTE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid PREVIEW_RATE_PER_MINUTE %q: must be a non-negative integer", raw)
		}
		cfg.PreviewRatePerMinute = n
	}

	if raw := os.Getenv("PREVIEW_RATE_BURST"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid PREVIEW_RATE_BURST %q: must be a positive integer", raw)
		}
		cfg.PreviewRateBurst = n
	}

	if raw := os.Getenv("SESSION_IDLE_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_IDLE_TTL %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid SESSION_IDLE_TTL %q: must be positive", raw)
		}
		cfg.SessionIdleTTL = d
	}

	dbURL, err := databaseURL()
	if err != nil {
		return nil, err
	}
	cfg.DatabaseURL = dbURL

	return cfg, nil
}

// IsProduction reports whether ENV is "production"
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// PreviewConfigured reports whether an image-generation credential is present
func (c *Config) PreviewConfigured() bool {
	return c.OpenAIAPIKey != ""
}

// Addr returns the listen address on all interfaces
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// normalizePort removes a leading colon (PORT from Render doesn't include it, others do)
func normalizePort(port string) string {
	port = strings.TrimSpace(port)
	port = strings.TrimPrefix(port, ":")
	if port == "" {
		return defaultPort
	}
	return port
}

// databaseURL returns DATABASE_URL, or builds a connection string from DB_* variables.
// An empty result with no error means no database is configured.
func databaseURL() (string, error) {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		return connStr, nil
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	if host == "" && user == "" && dbname == "" {
		return "", nil
	}
	if host == "" || user == "" || dbname == "" {
		return "", fmt.Errorf("database connection variables incomplete. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	if port == "" {
		port = "5432"
	}
	if sslmode == "" {
		sslmode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode), nil
}
