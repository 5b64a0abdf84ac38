package config

import (
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	HTTPPort  string
	JWTSecret string

	Env            string
	AllowedOrigins []string
	CookieSameSite http.SameSite
	AppBaseURL     string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	PexelsAPIKey string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:       mustEnv("MONGO_URI"),
		MongoDB:        getEnv("MONGO_DB", "lumix"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		JWTSecret:      mustEnv("JWT_SECRET"),
		Env:            getEnv("APP_ENV", "development"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		CookieSameSite: parseSameSite(getEnv("COOKIE_SAMESITE", "lax")),
		AppBaseURL:     getEnv("APP_BASE_URL", "http://localhost:5173"),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPass:       getEnv("SMTP_PASS", ""),
		MailFrom:       getEnv("MAIL_FROM", "no-reply@lumix.app"),
		PexelsAPIKey:   getEnv("PEXELS_API_KEY", ""),
	}
}

// Production reports whether cookies must carry the Secure attribute.
func (c *Config) Production() bool {
	return c.Env == "production"
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatal().Str("key", key).Msg("required environment variable is not set")
	}
	return v
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
