package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Store     StoreConfig
	Firestore FirestoreConfig
	Render    RenderConfig
	Assets    AssetsConfig
	Archive   ArchiveConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// StoreConfig selects the record store backend
type StoreConfig struct {
	Driver string // firestore, memory
}

// FirestoreConfig holds Firestore connection settings
type FirestoreConfig struct {
	ProjectID         string
	CredentialsFile   string
	InvoiceCollection string
	SummaryCollection string
}

// RenderConfig holds document rendering policy
type RenderConfig struct {
	VATRate      float64
	CurrencyUnit string
	OrgName      string
	OrgTagline   string
	OrgLocation  string
	OrgEmail     string
	OrgPhone     string
}

// AssetsConfig locates letterhead images
type AssetsConfig struct {
	Dir       string
	Logo      string // file name within Dir, empty disables the logo block
	Signature string // file name within Dir, empty disables the signature block
}

// ArchiveConfig holds the issued-document archive settings
type ArchiveConfig struct {
	Enabled       bool
	BasePath      string
	RetentionDays int
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with BILLING_ prefix (e.g., BILLING_FIRESTORE_PROJECT_ID)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("BILLING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Store: StoreConfig{
			Driver: v.GetString("store.driver"),
		},
		Firestore: FirestoreConfig{
			ProjectID:         v.GetString("firestore.project_id"),
			CredentialsFile:   v.GetString("firestore.credentials_file"),
			InvoiceCollection: v.GetString("firestore.invoice_collection"),
			SummaryCollection: v.GetString("firestore.summary_collection"),
		},
		Render: RenderConfig{
			VATRate:      v.GetFloat64("render.vat_rate"),
			CurrencyUnit: v.GetString("render.currency_unit"),
			OrgName:      v.GetString("render.org_name"),
			OrgTagline:   v.GetString("render.org_tagline"),
			OrgLocation:  v.GetString("render.org_location"),
			OrgEmail:     v.GetString("render.org_email"),
			OrgPhone:     v.GetString("render.org_phone"),
		},
		Assets: AssetsConfig{
			Dir:       v.GetString("assets.dir"),
			Logo:      v.GetString("assets.logo"),
			Signature: v.GetString("assets.signature"),
		},
		Archive: ArchiveConfig{
			Enabled:       v.GetBool("archive.enabled"),
			BasePath:      v.GetString("archive.base_path"),
			RetentionDays: v.GetInt("archive.retention_days"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "billing-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 30 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "X-Request-ID"}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "memory"
	}
	if cfg.Firestore.InvoiceCollection == "" {
		cfg.Firestore.InvoiceCollection = "invoices"
	}
	if cfg.Firestore.SummaryCollection == "" {
		cfg.Firestore.SummaryCollection = "summary"
	}
	if cfg.Render.VATRate == 0 {
		cfg.Render.VATRate = 0.18
	}
	if cfg.Render.CurrencyUnit == "" {
		cfg.Render.CurrencyUnit = "Shillings"
	}
	if cfg.Render.OrgName == "" {
		cfg.Render.OrgName = "Innovation Consortium Ltd"
	}
	if cfg.Assets.Dir == "" {
		cfg.Assets.Dir = "./assets"
	}
	if cfg.Archive.BasePath == "" {
		cfg.Archive.BasePath = "/data/documents"
	}
	if cfg.Archive.RetentionDays == 0 {
		cfg.Archive.RetentionDays = 90
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Store.Driver {
	case "firestore", "memory":
	default:
		return fmt.Errorf("store.driver must be 'firestore' or 'memory', got %q", c.Store.Driver)
	}

	if c.Render.VATRate < 0 || c.Render.VATRate >= 1 {
		return fmt.Errorf("render.vat_rate must be in [0, 1), got %f", c.Render.VATRate)
	}

	if c.App.Env == "production" {
		if c.Store.Driver == "memory" {
			return fmt.Errorf("store.driver cannot be 'memory' in production")
		}
		if c.Firestore.ProjectID == "" {
			return fmt.Errorf("firestore.project_id is required in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}
