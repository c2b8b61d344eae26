package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// CORSOrigins lists the origins allowed by the CORS middleware.
	CORSOrigins []string `mapstructure:"cors_origins"`

	// AuthRatePerMinute caps register/login attempts per client IP.
	AuthRatePerMinute int `mapstructure:"auth_rate_per_minute" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is how long an access token stays valid.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// RefreshGraceMinutes is how long after expiry a token may still be
	// exchanged for a fresh one at the refresh endpoint.
	RefreshGraceMinutes int `mapstructure:"refresh_grace_minutes" validate:"gte=0"`

	// RoleCacheTTLMinutes bounds how long resolved role IDs are memoized.
	RoleCacheTTLMinutes int `mapstructure:"role_cache_ttl_minutes" validate:"required,gt=0"`
}
