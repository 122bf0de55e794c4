package contract

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ElleNealAI/code-health-report/schema"
)

// Default values for configuration.
const (
	DefaultServerURL   = "http://localhost:8000"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
)

// Config holds the runtime configuration for report generation.
// This struct remains the "final, validated" config.
type Config struct {
	ServerURL   string
	HTTPTimeout time.Duration

	Output     schema.OutputMode
	OutputFile string

	ResultLimit int
	Category    schema.Category // empty = all categories

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	Offline bool // Render from the local snapshot store without contacting the engine

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
	Width     int  // Terminal width override (0 = auto-detect)
}

// Clone returns a copy of the config for per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Server         string `mapstructure:"server"`
	Timeout        string `mapstructure:"timeout"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Limit          int    `mapstructure:"limit"`
	Category       string `mapstructure:"category"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	Offline        bool   `mapstructure:"offline"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`
	Width          int    `mapstructure:"width"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateServer(cfg, input); err != nil {
		return err
	}
	if err := validateOutputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateServer checks the engine URL and the HTTP timeout.
func validateServer(cfg *Config, input *ConfigRawInput) error {
	server := input.Server
	if server == "" {
		server = DefaultServerURL
	}
	u, err := url.Parse(server)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server URL %q: must include scheme and host", server)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid server URL scheme %q: must be http or https", u.Scheme)
	}
	cfg.ServerURL = strings.TrimRight(server, "/")

	cfg.HTTPTimeout = DefaultHTTPTimeout
	if input.Timeout != "" {
		d, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", input.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive (received %s)", d)
		}
		cfg.HTTPTimeout = d
	}
	return nil
}

// validateOutputs checks output mode, limits and display toggles.
func validateOutputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Category != "" {
		cat, err := ResolveCategory(input.Category)
		if err != nil {
			return err
		}
		cfg.Category = cat
	}

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.Offline = input.Offline
	cfg.Width = input.Width
	return nil
}

// validateBackendConfig validates the snapshot store backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	return ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ResolveCategory maps a user-supplied category name to its canonical label,
// accepting case-insensitive input with or without spaces.
func ResolveCategory(name string) (schema.Category, error) {
	normalized := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	for _, cat := range schema.CategoryOrder {
		canonical := strings.ToLower(strings.ReplaceAll(string(cat), " ", ""))
		if normalized == canonical {
			return cat, nil
		}
	}
	return "", fmt.Errorf("invalid category '%s'. must be one of: Pages, Components, 'UI Files', 'API Files', Other", name)
}

// ParseBoolString parses yes/no style flag values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1", "on":
		return true, nil
	case "no", "n", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes/no (received %q)", s)
	}
}
