package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Mail      MailConfig
	Security  SecurityConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Uploads   UploadConfig
	Enquiry   EnquiryConfig
}

type AppConfig struct {
	Env  string // "development" or "production"
	Port string
	Host string
}

func (a *AppConfig) IsProduction() bool { return a.Env == "production" }

func (a *AppConfig) Addr() string { return fmt.Sprintf("%s:%s", a.Host, a.Port) }

type DatabaseConfig struct {
	URL string
}

type AuthConfig struct {
	JWTSecret          string
	TokenExpiryMinutes int
}

type MailConfig struct {
	Host               string
	Port               int
	Secure             bool // implicit TLS (port 465 style)
	User               string
	Pass               string
	FromName           string
	FromEmail          string
	InternalTo         string
	RejectUnauthorized bool
	ConfirmEnabled     bool // customer confirmation email
}

// Configured reports whether enough is set to attempt SMTP delivery.
func (m *MailConfig) Configured() bool { return m.Host != "" && m.FromEmail != "" }

func (m *MailConfig) Addr() string { return fmt.Sprintf("%s:%d", m.Host, m.Port) }

type SecurityConfig struct {
	IPSalt     string
	CORSOrigin string
}

type RedisConfig struct {
	Addr string
	DB   int
}

type RateLimitConfig struct {
	SubmissionLimit  int
	SubmissionWindow time.Duration
	GeneralLimit     int
	GeneralWindow    time.Duration
}

type UploadConfig struct {
	Dir string
}

type EnquiryConfig struct {
	// DefaultConsentText is stored when the form sends no consent
	// wording of its own.
	DefaultConsentText string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return d
	}
	return b
}

func getenvInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return n
}

// Load reads configuration from the environment. A .env file is
// loaded first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Env:  getenv("APP_ENV", "development"),
			Port: getenv("APP_PORT", "8080"),
			Host: getenv("APP_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL: getenv("DATABASE_URL", ""),
		},
		Auth: AuthConfig{
			JWTSecret:          getenv("JWT_SECRET", ""),
			TokenExpiryMinutes: getenvInt("TOKEN_EXPIRY_MINUTES", 720),
		},
		Mail: MailConfig{
			Host:               getenv("MAIL_HOST", ""),
			Port:               getenvInt("MAIL_PORT", 587),
			Secure:             getenvBool("MAIL_SECURE", false),
			User:               getenv("MAIL_USER", ""),
			Pass:               getenv("MAIL_PASS", ""),
			FromName:           getenv("MAIL_FROM_NAME", "Ashgrove Homes"),
			FromEmail:          getenv("MAIL_FROM_EMAIL", ""),
			InternalTo:         getenv("MAIL_INTERNAL_TO", ""),
			RejectUnauthorized: getenvBool("MAIL_REJECT_UNAUTHORIZED", true),
			ConfirmEnabled:     getenvBool("CUSTOMER_CONFIRM_ENABLED", false),
		},
		Security: SecurityConfig{
			IPSalt:     getenv("IP_SALT", ""),
			CORSOrigin: getenv("CORS_ORIGIN", "*"),
		},
		Redis: RedisConfig{
			Addr: getenv("REDIS_ADDR", ""),
			DB:   getenvInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			SubmissionLimit:  getenvInt("RATE_LIMIT_SUBMISSIONS", 10),
			SubmissionWindow: time.Duration(getenvInt("RATE_LIMIT_SUBMISSIONS_WINDOW_MINUTES", 60)) * time.Minute,
			GeneralLimit:     getenvInt("RATE_LIMIT_GENERAL", 100),
			GeneralWindow:    time.Duration(getenvInt("RATE_LIMIT_GENERAL_WINDOW_MINUTES", 15)) * time.Minute,
		},
		Uploads: UploadConfig{
			Dir: getenv("UPLOAD_DIR", "./uploads"),
		},
		Enquiry: EnquiryConfig{
			DefaultConsentText: getenv("CONSENT_TEXT_DEFAULT",
				"I agree to Ashgrove Homes storing my details to respond to my enquiry."),
		},
	}
}

// Validate fails fast on configuration the process cannot run
// without. Production additionally requires real secrets.
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return errors.New("APP_PORT must be set")
	}
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL must be set")
	}
	if c.Auth.TokenExpiryMinutes <= 0 {
		return errors.New("TOKEN_EXPIRY_MINUTES must be greater than 0")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.App.IsProduction() {
		if len(c.Auth.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
		if c.Security.IPSalt == "" {
			return errors.New("IP_SALT must be set in production")
		}
		if !c.Mail.Configured() {
			return errors.New("MAIL_HOST and MAIL_FROM_EMAIL must be set in production")
		}
		if c.Mail.InternalTo == "" {
			return errors.New("MAIL_INTERNAL_TO must be set in production")
		}
	}
	return nil
}
