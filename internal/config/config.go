package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Brevo  BrevoConfig  `mapstructure:"brevo"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BrevoConfig holds email delivery configuration. APIKey, ToEmail and
// FromEmail must all be present before an outbound call is attempted.
type BrevoConfig struct {
	APIKey    string `mapstructure:"api_key"`
	ToEmail   string `mapstructure:"to_email"`
	FromEmail string `mapstructure:"from_email"`
	SiteName  string `mapstructure:"site_name"`
}

// DefaultSiteName is the sender display name used when SITE_NAME is unset.
const DefaultSiteName = "客戶滿意度問卷"

// ErrMissingEnv reports absent required delivery configuration. Its text
// is surfaced verbatim in the HTTP error response.
var ErrMissingEnv = errors.New("Missing environment variables. Please configure BREVO_API_KEY, TO_EMAIL, FROM_EMAIL.")

// Validate checks that the required delivery variables are all set.
func (c BrevoConfig) Validate() error {
	if c.APIKey == "" || c.ToEmail == "" || c.FromEmail == "" {
		return ErrMissingEnv
	}
	return nil
}

// SenderName returns the configured site name, or the default.
func (c BrevoConfig) SenderName() string {
	if c.SiteName != "" {
		return c.SiteName
	}
	return DefaultSiteName
}

// Load reads configuration from environment variables, with an optional
// config file for local development
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Bind environment variables
	v.SetEnvPrefix("SURVEYMAIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The delivery variables keep their historical unprefixed names.
	v.BindEnv("brevo.api_key", "BREVO_API_KEY")
	v.BindEnv("brevo.to_email", "TO_EMAIL")
	v.BindEnv("brevo.from_email", "FROM_EMAIL")
	v.BindEnv("brevo.site_name", "SITE_NAME")

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Delivery defaults (required values stay empty until configured)
	v.SetDefault("brevo.api_key", "")
	v.SetDefault("brevo.to_email", "")
	v.SetDefault("brevo.from_email", "")
	v.SetDefault("brevo.site_name", "")
}
