package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Loaded once at startup and treated as read-only afterwards.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Cosmos DB (API for MongoDB)
	CosmosURI          string `mapstructure:"COSMOS_URI"`
	CosmosDatabase     string `mapstructure:"COSMOS_DATABASE"`
	ContainerCarnets   string `mapstructure:"COSMOS_CONTAINER_CARNETS"`
	ContainerCitas     string `mapstructure:"COSMOS_CONTAINER_CITAS"`
	ContainerUsuarios  string `mapstructure:"COSMOS_CONTAINER_USUARIOS"`
	ContainerAuditoria string `mapstructure:"COSMOS_CONTAINER_AUDITORIA"`

	// Auth
	JWTSecret        string `mapstructure:"JWT_SECRET"`
	JWTExpiresDays   int    `mapstructure:"JWT_EXPIRES_DAYS"`    // token de alumnos
	JWTAdminExpHours int    `mapstructure:"JWT_ADMIN_EXP_HOURS"` // token de personal
	MaxLoginAttempts int    `mapstructure:"MAX_LOGIN_ATTEMPTS"`  // bloqueo de cuentas admin
	LockoutMinutes   int    `mapstructure:"LOCKOUT_MINUTES"`

	// Perimeter
	CORSOrigins        string `mapstructure:"CORS_ORIGINS"` // comma-separated
	RateLimitMaxPerMin int    `mapstructure:"RATE_LIMIT_MAX_REQUESTS"`
	LoginRateLimit     int    `mapstructure:"LOGIN_RATE_LIMIT"`
}

// Missing secret or store endpoint aborts startup: without them no request
// can be served safely, so this is a fatal configuration error rather than
// a per-request one.
var (
	ErrMissingSecret    = errors.New("JWT_SECRET es requerido en variables de entorno")
	ErrMissingCosmosURI = errors.New("COSMOS_URI es requerido en variables de entorno")
)

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Keys without a meaningful default still need to be registered, or
	// AutomaticEnv never surfaces them to Unmarshal.
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("COSMOS_URI", "")
	viper.SetDefault("CORS_ORIGINS", "")

	viper.SetDefault("PORT", 3000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("COSMOS_DATABASE", "SASU")
	viper.SetDefault("COSMOS_CONTAINER_CARNETS", "carnets_id")
	viper.SetDefault("COSMOS_CONTAINER_CITAS", "cita_id")
	viper.SetDefault("COSMOS_CONTAINER_USUARIOS", "usuarios")
	viper.SetDefault("COSMOS_CONTAINER_AUDITORIA", "auditoria")
	viper.SetDefault("JWT_EXPIRES_DAYS", 7)
	viper.SetDefault("JWT_ADMIN_EXP_HOURS", 8)
	viper.SetDefault("MAX_LOGIN_ATTEMPTS", 5)
	viper.SetDefault("LOCKOUT_MINUTES", 30)
	viper.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	viper.SetDefault("LOGIN_RATE_LIMIT", 20)

	// Optional .env file for local development; a missing file is not an error
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.CosmosURI == "" {
		return nil, ErrMissingCosmosURI
	}
	return cfg, nil
}
