package server

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the server settings. Values are resolved from defaults, then
// an optional TOML file, then environment variables. Command line flags are
// applied on top by cmd/exifserver.
type Config struct {
	Port int `toml:"port"`
	// SessionSecret signs session cookies.
	SessionSecret string `toml:"session_secret"`
	// UploadDir holds uploads while they are processed.
	UploadDir string `toml:"upload_dir"`
	// StaticDir holds the HTML pages and assets.
	StaticDir      string `toml:"static_dir"`
	MaxUploadBytes int64  `toml:"max_upload_bytes"`
	// RateLimit is the sustained number of requests per second allowed per
	// client address. Zero disables rate limiting.
	RateLimit float64 `toml:"rate_limit"`
	RateBurst int     `toml:"rate_burst"`
	LogLevel  string  `toml:"log_level"`
	// RecentUploads is the number of upload summaries kept for admins.
	RecentUploads int `toml:"recent_uploads"`
	// PasswordCost is the bcrypt cost of the demo user password hashes.
	PasswordCost int `toml:"password_cost"`
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Port:           3000,
		SessionSecret:  "dev_secret_change_me",
		UploadDir:      "uploads",
		StaticDir:      "public",
		MaxUploadBytes: 32 << 20,
		RateLimit:      10,
		RateBurst:      20,
		LogLevel:       "info",
		RecentUploads:  50,
		PasswordCost:   bcrypt.DefaultCost,
	}
}

// LoadConfig resolves the configuration. An empty path skips the TOML file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.Port = port
	}
	if v := getenv("SESSION_SECRET"); v != "" {
		c.SessionSecret = v
	}
	if v := getenv("UPLOAD_DIR"); v != "" {
		c.UploadDir = v
	}
	if v := getenv("STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MAX_UPLOAD_BYTES: %w", err)
		}
		c.MaxUploadBytes = n
	}
	if v := getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT: %w", err)
		}
		c.RateLimit = f
	}
	if v := getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RATE_BURST: %w", err)
		}
		c.RateBurst = n
	}
	if v := getenv("RECENT_UPLOADS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RECENT_UPLOADS: %w", err)
		}
		c.RecentUploads = n
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate reports settings the server cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Port < 0 || c.Port > 65535:
		return fmt.Errorf("invalid port %d", c.Port)
	case c.SessionSecret == "":
		return fmt.Errorf("empty session secret")
	case c.MaxUploadBytes <= 0:
		return fmt.Errorf("invalid max upload size %d", c.MaxUploadBytes)
	case c.RateLimit < 0:
		return fmt.Errorf("invalid rate limit %v", c.RateLimit)
	case c.UploadDir == "":
		return fmt.Errorf("empty upload directory")
	}
	return nil
}

// Addr returns the listen address.
func (c Config) Addr() string { return ":" + strconv.Itoa(c.Port) }
