package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"nexus-asset-manager/internal/domain"
)

const (
	StoreModeLocal    = "local"
	StoreModeFallback = "fallback"
	StoreModeStrict   = "strict"

	StoreBackendFile  = "file"
	StoreBackendRedis = "redis"

	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Store     StoreConfig     `yaml:"store"`
	AI        AIConfig        `yaml:"ai"`
	Email     EmailConfig     `yaml:"email"`
	Labels    LabelsConfig    `yaml:"labels"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP and gRPC health server settings
type ServerConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	HealthPort      int    `yaml:"health_port"`
	MaxUploadSizeMB int64  `yaml:"max_upload_size_mb"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // "postgres" (lib/pq) or "pgx"
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// AuthConfig holds the signing secret shared with the hosted auth provider
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	Issuer    string `yaml:"issuer"`
	Audience  string `yaml:"audience"`
}

// StoreConfig selects how the client persists asset records
type StoreConfig struct {
	Mode      string `yaml:"mode"`       // "local", "fallback" or "strict"
	RemoteURL string `yaml:"remote_url"` // base URL of the Nexus API
	Token     string `yaml:"token"`      // bearer token sent to the API
	Backend   string `yaml:"backend"`    // local KV backend: "file" or "redis"
	DataDir   string `yaml:"data_dir"`
	RedisURL  string `yaml:"redis_url"`
	Namespace string `yaml:"namespace"`
}

// AIConfig contains language model settings
type AIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// EmailConfig contains SendGrid settings for renewal digests
type EmailConfig struct {
	SendGridAPIKey string   `yaml:"sendgrid_api_key"`
	From           string   `yaml:"from"`
	FromName       string   `yaml:"from_name"`
	Recipients     []string `yaml:"recipients"`
}

// LabelsConfig contains print output settings
type LabelsConfig struct {
	OutputDir  string `yaml:"output_dir"`
	BaseURL    string `yaml:"base_url"`
	ChromePath string `yaml:"chrome_path"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	RenewalAlerts    string `yaml:"renewal_alerts"`
	InventorySummary string `yaml:"inventory_summary"`
}

// LoadDotEnv loads variables from path (".env" when empty) unless APP_ENV is
// production. Existing environment variables win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if os.Getenv("APP_ENV") == "production" {
		return nil
	}
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from a YAML file. An empty path yields
// defaults plus environment overrides.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_DRIVER"); val != "" {
		c.Database.Driver = val
	}
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Auth
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.Auth.JWTSecret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Store
	if val := os.Getenv("NEXUS_STORE_MODE"); val != "" {
		c.Store.Mode = val
	}
	if val := os.Getenv("NEXUS_API_URL"); val != "" {
		c.Store.RemoteURL = val
	}
	if val := os.Getenv("NEXUS_API_TOKEN"); val != "" {
		c.Store.Token = val
	}
	if val := os.Getenv("NEXUS_DATA_DIR"); val != "" {
		c.Store.DataDir = val
	}
	if val := os.Getenv("REDIS_URL"); val != "" {
		c.Store.RedisURL = val
	}

	// AI
	if val := os.Getenv("API_KEY"); val != "" {
		c.AI.APIKey = val
	}
	if val := os.Getenv("GEMINI_API_KEY"); val != "" {
		c.AI.APIKey = val
	}
	if val := os.Getenv("GEMINI_MODEL"); val != "" {
		c.AI.Model = val
	}

	// Email
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.SendGridAPIKey = val
	}
	if val := os.Getenv("EMAIL_FROM"); val != "" {
		c.Email.From = val
	}
	if val := os.Getenv("EMAIL_RECIPIENTS"); val != "" {
		c.Email.Recipients = splitList(val)
	}

	// Labels
	if val := os.Getenv("CHROME_PATH"); val != "" {
		c.Labels.ChromePath = val
	}
	if val := os.Getenv("LABEL_OUTPUT_DIR"); val != "" {
		c.Labels.OutputDir = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate fills defaults and checks values every binary depends on
func (c *Config) Validate() error {
	// Server defaults
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.HealthPort < 0 || c.Server.HealthPort > 65535 {
		return fmt.Errorf("invalid health port: %d", c.Server.HealthPort)
	}
	if c.Server.MaxUploadSizeMB <= 0 {
		c.Server.MaxUploadSizeMB = 10
	}

	// Database defaults
	if c.Database.Driver == "" {
		c.Database.Driver = DriverPostgres
	}
	if c.Database.Driver != DriverPostgres && c.Database.Driver != DriverPgx {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	// Store validation
	c.Store.Mode = strings.ToLower(strings.TrimSpace(c.Store.Mode))
	switch c.Store.Mode {
	case "", StoreModeFallback:
		if c.Store.RemoteURL == "" {
			c.Store.Mode = StoreModeLocal
		} else {
			c.Store.Mode = StoreModeFallback
		}
	case StoreModeLocal:
	case StoreModeStrict:
		if c.Store.RemoteURL == "" {
			return fmt.Errorf("store remote_url is required in strict mode")
		}
	default:
		return fmt.Errorf("unsupported store mode: %s", c.Store.Mode)
	}
	if c.Store.Backend == "" {
		c.Store.Backend = StoreBackendFile
	}
	switch c.Store.Backend {
	case StoreBackendFile:
		if c.Store.DataDir == "" {
			c.Store.DataDir = "./data"
		}
	case StoreBackendRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("store redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("unsupported store backend: %s", c.Store.Backend)
	}
	if c.Store.Namespace == "" {
		c.Store.Namespace = "nexus_assets"
	}

	// AI defaults
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.5-flash"
	}

	// Labels defaults
	if c.Labels.OutputDir == "" {
		c.Labels.OutputDir = "./labels"
	}

	// Email defaults
	if c.Email.FromName == "" {
		c.Email.FromName = "Nexus Asset Manager"
	}

	// Scheduler defaults
	if c.Scheduler.RenewalAlerts == "" {
		c.Scheduler.RenewalAlerts = "0 0 8 * * *" // Daily at 8 AM UTC
	}
	if c.Scheduler.InventorySummary == "" {
		c.Scheduler.InventorySummary = "0 0 9 * * MON" // Mondays at 9 AM UTC
	}

	return nil
}

// ValidateServer checks the settings the API server cannot start without
func (c *Config) ValidateServer() error {
	if err := c.ValidateDatabase(); err != nil {
		return err
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: JWT secret is required", domain.ErrConfigMissing)
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	return nil
}

// ValidateDatabase checks database connection settings
func (c *Config) ValidateDatabase() error {
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database host is required", domain.ErrConfigMissing)
	}
	if c.Database.User == "" {
		return fmt.Errorf("%w: database user is required", domain.ErrConfigMissing)
	}
	if c.Database.Database == "" {
		return fmt.Errorf("%w: database name is required", domain.ErrConfigMissing)
	}
	return nil
}

// ValidateEmail checks the settings renewal digests need
func (c *Config) ValidateEmail() error {
	if c.Email.SendGridAPIKey == "" {
		return fmt.Errorf("%w: SendGrid API key is required", domain.ErrConfigMissing)
	}
	if c.Email.From == "" {
		return fmt.Errorf("%w: email sender address is required", domain.ErrConfigMissing)
	}
	if len(c.Email.Recipients) == 0 {
		return fmt.Errorf("%w: at least one email recipient is required", domain.ErrConfigMissing)
	}
	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection URL, accepted by both drivers.
// Credentials are escaped so passwords may contain '@', '/' or ':'.
func (c *Config) GetDatabaseConnectionString() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:     "/" + c.Database.Database,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetHealthAddress returns the gRPC health server address, empty when disabled
func (c *Config) GetHealthAddress() string {
	if c.Server.HealthPort == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.HealthPort)
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
