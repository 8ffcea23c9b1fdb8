package config

import (
	"os"
	"strconv"
	"time"
)

const (
	AuthModePassword = "password"
	AuthModeCognito  = "cognito"
)

type Config struct {
	Port  string
	DBURL string

	AuthMode       string
	JWTSecret      string
	JWTExpiryHours int

	CognitoRegion      string
	CognitoUserPoolID  string
	CognitoAppClientID string
	JWKSCacheTTL       time.Duration

	FrontendURL string

	AutoClose bool

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
}

func Load() *Config {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DBURL:              os.Getenv("DB_URL"),
		AuthMode:           getEnv("AUTH_MODE", AuthModePassword),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTExpiryHours:     getEnvInt("JWT_EXPIRY_HOURS", 24),
		CognitoRegion:      getEnv("COGNITO_REGION", "us-east-1"),
		CognitoUserPoolID:  os.Getenv("COGNITO_USER_POOL_ID"),
		CognitoAppClientID: os.Getenv("COGNITO_APP_CLIENT_ID"),
		JWKSCacheTTL:       time.Duration(getEnvInt("JWKS_CACHE_TTL_MINUTES", 60)) * time.Minute,
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
		AutoClose:          getEnv("AUTO_CLOSE", "false") == "true",
		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:  os.Getenv("TWILIO_PHONE_NUMBER"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
