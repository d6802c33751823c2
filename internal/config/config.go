package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// AI field extraction
	OpenAIAPIKey string
	OpenAIAPIURL string
	OpenAIModel  string
	AITimeout    time.Duration

	// Claim notification emails
	MailAPIKey string
	MailAPIURL string
	MailFrom   string

	// Admin
	AdminEmails string
	AdminToken  string

	// Server
	Port        string
	CORSOrigins string

	// Log retention
	LogRetentionDays int
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "discvault"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m")),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h")),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIAPIURL: getEnv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AITimeout:    parseDuration(getEnv("AI_TIMEOUT", "30s")),

		MailAPIKey: getEnv("MAIL_API_KEY", ""),
		MailAPIURL: getEnv("MAIL_API_URL", "https://api.resend.com/emails"),
		MailFrom:   getEnv("MAIL_FROM", "DiscVault <claims@discvault.app>"),

		AdminEmails: getEnv("ADMIN_EMAILS", ""),
		AdminToken:  getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30")),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 30
	}
	return n
}
