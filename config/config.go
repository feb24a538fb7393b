// Package config handles loading and validation of application configuration
// from environment variables and an optional .env file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knowgrow/agency-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"

	ProviderResend  = "resend"
	ProviderMailgun = "mailgun"

	minKeyLength = 8
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
	// TrustedProxies is a list of CIDR ranges or IPs of trusted reverse proxies.
	// If empty, X-Forwarded-For headers are ignored entirely.
	TrustedProxies         []string `mapstructure:"TRUSTED_PROXIES" yaml:"trusted_proxies"`
	ShutdownTimeoutSeconds int      `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS" yaml:"shutdown_timeout_seconds"`
}

// EmailConfig holds the provider credentials and the fixed envelope used for
// every inquiry email.
type EmailConfig struct {
	Provider       string `mapstructure:"PROVIDER" yaml:"provider"`
	ResendAPIKey   string `mapstructure:"RESEND_API_KEY" yaml:"resend_api_key"`
	MailgunDomain  string `mapstructure:"MAILGUN_DOMAIN" yaml:"mailgun_domain"`
	MailgunAPIKey  string `mapstructure:"MAILGUN_API_KEY" yaml:"mailgun_api_key"`
	MailgunBaseURL string `mapstructure:"MAILGUN_BASE_URL" yaml:"mailgun_base_url"`
	FromAddress    string `mapstructure:"FROM_ADDRESS" yaml:"from_address"`
	FromName       string `mapstructure:"FROM_NAME" yaml:"from_name"`
	ToAddress      string `mapstructure:"TO_ADDRESS" yaml:"to_address"`
	// SendTimeoutSeconds bounds a single provider call. Zero disables the bound.
	SendTimeoutSeconds int `mapstructure:"SEND_TIMEOUT_SECONDS" yaml:"send_timeout_seconds"`
}

// ContactConfig controls request handling on the intake endpoint.
type ContactConfig struct {
	ValidateEmailFormat bool  `mapstructure:"VALIDATE_EMAIL_FORMAT" yaml:"validate_email_format"`
	MaxBodyBytes        int64 `mapstructure:"MAX_BODY_BYTES" yaml:"max_body_bytes"`
}

// RedisConfig holds Redis connection details. Redis backs the optional rate
// limiter and duplicate-submission guard.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"ENABLED" yaml:"enabled"`
	Address  string `mapstructure:"ADDRESS" yaml:"address"`
	Password string `mapstructure:"PASSWORD" yaml:"password"`
	DB       int    `mapstructure:"DB" yaml:"db"`
	UseTLS   bool   `mapstructure:"USE_TLS" yaml:"use_tls"`
	PoolSize int    `mapstructure:"POOL_SIZE" yaml:"pool_size"`
}

// RateLimitConfig holds configuration for rate limiting.
type RateLimitConfig struct {
	Enabled bool `mapstructure:"ENABLED" yaml:"enabled"`
	// Maximum contact submissions per client IP within the window
	ContactRequestsPerWindow int `mapstructure:"CONTACT_REQUESTS_PER_WINDOW" yaml:"contact_requests_per_window"`
	WindowSeconds            int `mapstructure:"WINDOW_SECONDS" yaml:"window_seconds"`
}

// DedupConfig controls the Idempotency-Key seen-set.
type DedupConfig struct {
	Enabled    bool `mapstructure:"ENABLED" yaml:"enabled"`
	TTLSeconds int  `mapstructure:"TTL_SECONDS" yaml:"ttl_seconds"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server    ServerConfig    `mapstructure:"SERVER" yaml:"server"`
	Email     EmailConfig     `mapstructure:"EMAIL" yaml:"email"`
	Contact   ContactConfig   `mapstructure:"CONTACT" yaml:"contact"`
	Redis     RedisConfig     `mapstructure:"REDIS" yaml:"redis"`
	RateLimit RateLimitConfig `mapstructure:"RATE_LIMIT" yaml:"rate_limit"`
	Dedup     DedupConfig     `mapstructure:"DEDUP" yaml:"dedup"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.TRUSTED_PROXIES", []string{})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("SERVER.SHUTDOWN_TIMEOUT_SECONDS", 15)
	v.SetDefault("EMAIL.PROVIDER", ProviderResend)
	v.SetDefault("EMAIL.FROM_ADDRESS", "onboarding@resend.dev")
	v.SetDefault("EMAIL.FROM_NAME", "Contact Form")
	v.SetDefault("EMAIL.SEND_TIMEOUT_SECONDS", 10)
	v.SetDefault("CONTACT.VALIDATE_EMAIL_FORMAT", true)
	v.SetDefault("CONTACT.MAX_BODY_BYTES", 64*1024)
	v.SetDefault("REDIS.ENABLED", false)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.USE_TLS", false)
	v.SetDefault("REDIS.POOL_SIZE", 3)
	v.SetDefault("RATE_LIMIT.ENABLED", false)
	v.SetDefault("RATE_LIMIT.CONTACT_REQUESTS_PER_WINDOW", 5)
	v.SetDefault("RATE_LIMIT.WINDOW_SECONDS", 60)
	v.SetDefault("DEDUP.ENABLED", false)
	v.SetDefault("DEDUP.TTL_SECONDS", 600)
}

// LoadConfig loads configuration from the environment (and a .env file when
// present) using Viper, unmarshals it and validates it. Provider credentials
// are checked here so a misconfigured deployment fails at startup.
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	log := logger.GetLogger()

	SetDefaults(v)

	env := Environment(os.Getenv("SERVER_ENVIRONMENT"))
	if env == "" {
		env = EnvDevelopment
	}
	configFile, err := readConfigFile(v, env)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		log.Infow("Loaded configuration file", "path", configFile)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.TRUSTED_PROXIES", "TRUSTED_PROXIES"},
		{"SERVER.VERSION", "VERSION"},
		// Email config
		{"EMAIL.PROVIDER", "EMAIL_PROVIDER"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		{"EMAIL.MAILGUN_DOMAIN", "MAILGUN_DOMAIN"},
		{"EMAIL.MAILGUN_API_KEY", "MAILGUN_API_KEY"},
		{"EMAIL.MAILGUN_BASE_URL", "MAILGUN_BASE_URL"},
		{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
		{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
		{"EMAIL.TO_ADDRESS", "CONTACT_EMAIL_TO"},
		{"EMAIL.SEND_TIMEOUT_SECONDS", "EMAIL_SEND_TIMEOUT_SECONDS"},
		// Contact config
		{"CONTACT.VALIDATE_EMAIL_FORMAT", "CONTACT_VALIDATE_EMAIL_FORMAT"},
		{"CONTACT.MAX_BODY_BYTES", "CONTACT_MAX_BODY_BYTES"},
		// Redis config
		{"REDIS.ENABLED", "REDIS_ENABLED"},
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
		// Rate limit config
		{"RATE_LIMIT.ENABLED", "RATE_LIMIT_ENABLED"},
		{"RATE_LIMIT.CONTACT_REQUESTS_PER_WINDOW", "RATE_LIMIT_CONTACT_REQUESTS_PER_WINDOW"},
		{"RATE_LIMIT.WINDOW_SECONDS", "RATE_LIMIT_WINDOW_SECONDS"},
		// Dedup config
		{"DEDUP.ENABLED", "DEDUP_ENABLED"},
		{"DEDUP.TTL_SECONDS", "DEDUP_TTL_SECONDS"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", v.GetString("SERVER.ENVIRONMENT"),
		"server_port", v.GetString("SERVER.PORT"),
		"allowed_origins", v.GetStringSlice("SERVER.ALLOWED_ORIGINS"),
		"email_provider", v.GetString("EMAIL.PROVIDER"),
		"email_to", logger.MaskEmail(v.GetString("EMAIL.TO_ADDRESS")),
		"redis_enabled", v.GetBool("REDIS.ENABLED"),
		"rate_limit_enabled", v.GetBool("RATE_LIMIT.ENABLED"),
		"dedup_enabled", v.GetBool("DEDUP.ENABLED"),
	)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration validated successfully")
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if strings.HasPrefix(origin, "*.") {
				continue
			}
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}

	if err := validateEmailConfig(&cfg.Email); err != nil {
		return err
	}

	if cfg.Contact.MaxBodyBytes <= 0 {
		return fmt.Errorf("contact max body bytes must be positive")
	}

	needsRedis := cfg.RateLimit.Enabled || cfg.Dedup.Enabled
	if needsRedis && !cfg.Redis.Enabled {
		return fmt.Errorf("rate limiting and deduplication require redis to be enabled")
	}
	if cfg.Redis.Enabled {
		if cfg.Redis.Address == "" {
			return fmt.Errorf("redis address is required")
		}
		if cfg.Redis.Password == "" && cfg.Redis.UseTLS {
			log.Warn("Redis password is not set, but TLS is enabled. Ensure this is correct for your Redis provider.")
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.ContactRequestsPerWindow <= 0 {
			return fmt.Errorf("rate limit contact requests per window must be positive")
		}
		if cfg.RateLimit.WindowSeconds <= 0 {
			return fmt.Errorf("rate limit window seconds must be positive")
		}
	}

	if cfg.Dedup.Enabled && cfg.Dedup.TTLSeconds <= 0 {
		return fmt.Errorf("dedup ttl seconds must be positive")
	}

	return nil
}

// validateEmailConfig checks the provider credentials and the fixed envelope.
func validateEmailConfig(cfg *EmailConfig) error {
	switch cfg.Provider {
	case ProviderResend:
		if cfg.ResendAPIKey == "" {
			return fmt.Errorf("resend API key is required")
		}
		if len(cfg.ResendAPIKey) < minKeyLength {
			return fmt.Errorf("resend API key must be at least %d characters long", minKeyLength)
		}
	case ProviderMailgun:
		if cfg.MailgunDomain == "" {
			return fmt.Errorf("mailgun domain is required")
		}
		if cfg.MailgunAPIKey == "" {
			return fmt.Errorf("mailgun API key is required")
		}
		if cfg.MailgunBaseURL != "" && !validMailgunBaseURL(cfg.MailgunBaseURL) {
			return fmt.Errorf("mailgun base URL %q must end with an API version such as /v3", cfg.MailgunBaseURL)
		}
	default:
		return fmt.Errorf("unknown email provider %q", cfg.Provider)
	}

	if cfg.FromAddress == "" {
		return fmt.Errorf("email from address is required")
	}
	if cfg.ToAddress == "" {
		return fmt.Errorf("contact recipient address is required")
	}
	if cfg.SendTimeoutSeconds < 0 {
		return fmt.Errorf("email send timeout must not be negative")
	}
	return nil
}

// validMailgunBaseURL reports whether raw is an absolute URL whose path ends
// in /v1 through /v4, the only form the Mailgun client accepts.
func validMailgunBaseURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	path := strings.TrimSuffix(u.Path, "/")
	for _, version := range []string{"/v1", "/v2", "/v3", "/v4"} {
		if strings.HasSuffix(path, version) {
			return true
		}
	}
	return false
}

// containsWildcard checks if the list of allowed origins contains the wildcard "*".
func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
