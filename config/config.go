// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/ideamk/leadmail/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"

	// Mail providers
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"

	// Implicit TLS port. Any other port negotiates STARTTLS when offered.
	smtpsPort = 465
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port        string      `mapstructure:"PORT" yaml:"port"`
	// AllowOrigin is sent verbatim as Access-Control-Allow-Origin.
	AllowOrigin string `mapstructure:"ALLOW_CORS_ORIGIN" yaml:"allow_cors_origin"`
	Version     string `mapstructure:"VERSION" yaml:"version"`
}

// MailConfig holds everything the mail dispatch step needs. Credentials are
// checked when a lead is dispatched, not at startup.
type MailConfig struct {
	Provider       string `mapstructure:"PROVIDER" yaml:"provider"`
	SMTPHost       string `mapstructure:"SMTP_HOST" yaml:"smtp_host"`
	SMTPPort       int    `mapstructure:"SMTP_PORT" yaml:"smtp_port"`
	SMTPSecure     bool   `mapstructure:"-" yaml:"smtp_secure"`
	SMTPUser       string `mapstructure:"SMTP_USER" yaml:"smtp_user"`
	SMTPPassword   string `mapstructure:"SMTP_PASS" yaml:"smtp_pass"`
	TimeoutSeconds int    `mapstructure:"SMTP_TIMEOUT_SECONDS" yaml:"smtp_timeout_seconds"`
	ResendAPIKey   string `mapstructure:"RESEND_API_KEY" yaml:"resend_api_key"`
	ToEmail        string `mapstructure:"TO_EMAIL" yaml:"to_email"`
	FromEmail      string `mapstructure:"FROM_EMAIL" yaml:"from_email"`
	CCPartner      bool   `mapstructure:"-" yaml:"cc_partner"`
}

// SecureTransport reports whether the SMTP connection uses implicit TLS.
func (m *MailConfig) SecureTransport() bool {
	return m.SMTPPort == smtpsPort || m.SMTPSecure
}

// SMTPCredentialsSet reports whether host, user and password are all present.
func (m *MailConfig) SMTPCredentialsSet() bool {
	return m.SMTPHost != "" && m.SMTPUser != "" && m.SMTPPassword != ""
}

// Sender returns the From address, falling back to the SMTP login.
func (m *MailConfig) Sender() string {
	if m.FromEmail != "" {
		return m.FromEmail
	}
	return m.SMTPUser
}

// LeadConfig controls how leads are rendered.
type LeadConfig struct {
	Language      string `mapstructure:"LANGUAGE" yaml:"language"`
	LabelsFile    string `mapstructure:"LABELS_FILE" yaml:"labels_file"`
	DefaultSource string `mapstructure:"DEFAULT_SOURCE" yaml:"default_source"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server ServerConfig `mapstructure:"SERVER" yaml:"server"`
	Mail   MailConfig   `mapstructure:"MAIL" yaml:"mail"`
	Lead   LeadConfig   `mapstructure:"LEAD" yaml:"lead"`
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

// LoadConfig loads configuration from environment variables using Viper,
// unmarshals it and validates the structural values.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOW_CORS_ORIGIN", "*")
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("MAIL.PROVIDER", ProviderSMTP)
	v.SetDefault("MAIL.SMTP_PORT", 587)
	v.SetDefault("MAIL.SMTP_TIMEOUT_SECONDS", 15)
	v.SetDefault("LEAD.LANGUAGE", "en")
	v.SetDefault("LEAD.DEFAULT_SOURCE", "landing")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOW_CORS_ORIGIN", "ALLOW_CORS_ORIGIN"},
		{"SERVER.VERSION", "VERSION"},
		// Mail config
		{"MAIL.PROVIDER", "MAIL_PROVIDER"},
		{"MAIL.SMTP_HOST", "SMTP_HOST"},
		{"MAIL.SMTP_PORT", "SMTP_PORT"},
		{"MAIL.SMTP_SECURE", "SMTP_SECURE"},
		{"MAIL.SMTP_USER", "SMTP_USER"},
		{"MAIL.SMTP_PASS", "SMTP_PASS"},
		{"MAIL.SMTP_TIMEOUT_SECONDS", "SMTP_TIMEOUT_SECONDS"},
		{"MAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		{"MAIL.TO_EMAIL", "TO_EMAIL"},
		{"MAIL.FROM_EMAIL", "FROM_EMAIL"},
		{"MAIL.CC_PARTNER", "CC_PARTNER"},
		// Lead rendering
		{"LEAD.LANGUAGE", "LEAD_LANGUAGE"},
		{"LEAD.LABELS_FILE", "LEAD_LABELS_FILE"},
		{"LEAD.DEFAULT_SOURCE", "LEAD_DEFAULT_SOURCE"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}
	// Flags are "true" (any case) or off, never a parse error.
	cfg.Mail.SMTPSecure = isTrue(v.GetString("MAIL.SMTP_SECURE"))
	cfg.Mail.CCPartner = isTrue(v.GetString("MAIL.CC_PARTNER"))
	cfg.Mail.Provider = strings.ToLower(strings.TrimSpace(cfg.Mail.Provider))
	cfg.Lead.Language = strings.ToLower(strings.TrimSpace(cfg.Lead.Language))

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"allow_origin", cfg.Server.AllowOrigin,
		"mail_provider", cfg.Mail.Provider,
		"smtp_host", cfg.Mail.SMTPHost,
		"smtp_port", cfg.Mail.SMTPPort,
		"smtp_secure", cfg.Mail.SecureTransport(),
		"smtp_user", logger.MaskEmail(cfg.Mail.SMTPUser),
		"cc_partner", cfg.Mail.CCPartner,
		"lead_language", cfg.Lead.Language,
	)

	return &cfg, nil
}

// validateConfig checks structural values only. Missing mail credentials are
// reported per request so the endpoint can answer with the exact message.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if cfg.Server.AllowOrigin == "" {
		cfg.Server.AllowOrigin = "*"
	}

	switch cfg.Mail.Provider {
	case ProviderSMTP:
		if cfg.Mail.SMTPPort <= 0 || cfg.Mail.SMTPPort > 65535 {
			return fmt.Errorf("invalid SMTP port %d", cfg.Mail.SMTPPort)
		}
		if !cfg.Mail.SMTPCredentialsSet() {
			log.Warn("SMTP credentials are not set; lead dispatch will fail until SMTP_HOST, SMTP_USER and SMTP_PASS are provided")
		}
	case ProviderResend:
		if cfg.Mail.ResendAPIKey == "" {
			log.Warn("Resend API key is not set; lead dispatch will fail until RESEND_API_KEY is provided")
		}
		if cfg.Mail.Sender() == "" {
			return fmt.Errorf("FROM_EMAIL is required for the resend provider")
		}
	default:
		return fmt.Errorf("unknown mail provider %q", cfg.Mail.Provider)
	}

	if cfg.Mail.TimeoutSeconds <= 0 {
		return fmt.Errorf("SMTP timeout must be positive")
	}

	switch cfg.Lead.Language {
	case "en", "mk":
	default:
		return fmt.Errorf("unsupported lead language %q", cfg.Lead.Language)
	}

	return nil
}

func isTrue(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
