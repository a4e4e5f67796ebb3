package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Env carries all process configuration. Every field has a default that
// keeps the service bootable against a local MySQL instance.
type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string
	TokenTTL  time.Duration

	CORSAllowedOrigins []string
	RateLimitRPS       float64

	// RedisAddr empty means seat holds are disabled.
	RedisAddr string
	// KafkaBrokers empty means booking events run in mock (log-only) mode.
	KafkaBrokers []string

	SeedDemo bool
}

func LoadEnv() Env {
	env := Env{
		AppAddr:      getenv("APP_ADDR", ":8080"),
		GinMode:      strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:       getenv("DB_USER", "root"),
		DBPass:       strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:       getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:       getenv("DB_NAME", "busline"),
		JWTSecret:    getenv("JWT_SECRET", "super-secret-key-change-me"),
		TokenTTL:     getDuration("TOKEN_TTL", 24*time.Hour),
		RateLimitRPS: getFloat("RATE_LIMIT_RPS", 100),
		RedisAddr:    strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		SeedDemo:     getBool("SEED_DEMO"),
	}

	env.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if len(env.CORSAllowedOrigins) == 0 {
		env.CORSAllowedOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	env.KafkaBrokers = splitList(os.Getenv("KAFKA_BROKERS"))

	return env
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

func getBool(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes"
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
