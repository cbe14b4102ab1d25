package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database        DatabaseConfig
	JWT             JWTConfig
	App             AppConfig
	OAuth2Google    OAuth2GoogleConfig
	OAuth2Microsoft OAuth2MicrosoftConfig
	Invitation      InvitationConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

type OAuth2MicrosoftConfig struct {
	ClientID     string
	ClientSecret string
	TenantID     string
	RedirectURL  string
	Scopes       []string
}

// InvitationConfig holds invitation lifecycle settings
type InvitationConfig struct {
	ExpirationDays      int // non-guest invitations
	GuestExpirationDays int // default when guest_duration_days is not supplied
}

func Load() (*Config, error) {
	// .env is optional; deployments may set env vars directly
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "boardroom_booker"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// OAuth2 Google configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		Scopes:       getEnvSlice("GOOGLE_SCOPES"),
	}

	// OAuth2 Microsoft configuration
	config.OAuth2Microsoft = OAuth2MicrosoftConfig{
		ClientID:     getEnv("MICROSOFT_CLIENT_ID", ""),
		ClientSecret: getEnv("MICROSOFT_CLIENT_SECRET", ""),
		TenantID:     getEnv("MICROSOFT_TENANT_ID", "common"),
		RedirectURL:  getEnv("MICROSOFT_REDIRECT_URL", ""),
		Scopes:       getEnvSlice("MICROSOFT_SCOPES"),
	}

	// Invitation configuration
	invitationDays, err := strconv.Atoi(getEnv("INVITATION_EXPIRATION_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid INVITATION_EXPIRATION_DAYS: %w", err)
	}
	guestDays, err := strconv.Atoi(getEnv("INVITATION_GUEST_EXPIRATION_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid INVITATION_GUEST_EXPIRATION_DAYS: %w", err)
	}
	config.Invitation = InvitationConfig{
		ExpirationDays:      invitationDays,
		GuestExpirationDays: guestDays,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Invitation.ExpirationDays <= 0 {
		return fmt.Errorf("INVITATION_EXPIRATION_DAYS must be positive")
	}
	if c.Invitation.GuestExpirationDays <= 0 {
		return fmt.Errorf("INVITATION_GUEST_EXPIRATION_DAYS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
