package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	SQLite SQLiteConfig

	// Auth
	JWT   JWTConfig
	Auth  AuthConfig
	Admin AdminConfig

	// Localization of error messages
	I18n I18nConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	SecureCookie    bool
	// TrustedProxies lists proxy IPs/CIDRs whose X-Forwarded-For is honoured. Empty trusts none.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	// Optional rotated file output
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type SQLiteConfig struct {
	Path string
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

type AuthConfig struct {
	LoginRateLimitPerMin int
	BcryptCost           int
}

// AdminConfig seeds an ADMIN account on startup when Email is set.
type AdminConfig struct {
	Username string
	Email    string
	Password string
}

type I18nConfig struct {
	DefaultLocale string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.SecureCookie = viper.GetBool("http_server.secure_cookie")
	cfg.HTTPServer.TrustedProxies = viper.GetStringSlice("http_server.trusted_proxies")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = viper.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = viper.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = viper.GetInt("logger.max_age_days")

	// Storage
	cfg.SQLite.Path = viper.GetString("sqlite.path")

	// Auth
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")
	cfg.Auth.LoginRateLimitPerMin = viper.GetInt("auth.login_rate_limit_per_min")
	cfg.Auth.BcryptCost = viper.GetInt("auth.bcrypt_cost")
	cfg.Admin.Username = viper.GetString("admin.username")
	cfg.Admin.Email = viper.GetString("admin.email")
	cfg.Admin.Password = viper.GetString("admin.password")

	cfg.I18n.DefaultLocale = viper.GetString("i18n.default_locale")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.JWT.SecretKey == "" {
		return errors.New("jwt.secret_key is required (env JWT_SECRET_KEY)")
	}
	if cfg.JWT.TTL <= 0 {
		return fmt.Errorf("jwt.ttl must be positive, got %s", cfg.JWT.TTL)
	}
	if cfg.Admin.Email != "" && len(cfg.Admin.Password) < 8 {
		return errors.New("admin.password must be at least 8 characters when admin.email is set")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("http_server.secure_cookie", false)
	viper.SetDefault("http_server.trusted_proxies", []string{})
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.max_size_mb", 100)
	viper.SetDefault("logger.max_backups", 5)
	viper.SetDefault("logger.max_age_days", 30)
	viper.SetDefault("sqlite.path", "data/challenge-admin.db")
	viper.SetDefault("jwt.issuer", "challenge-admin")
	viper.SetDefault("jwt.ttl", "24h")
	viper.SetDefault("auth.login_rate_limit_per_min", 10)
	viper.SetDefault("auth.bcrypt_cost", 10)
	viper.SetDefault("admin.username", "admin")
	viper.SetDefault("i18n.default_locale", "ko-KR")
}
