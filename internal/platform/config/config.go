package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// SMTP holds outbound mail transport settings. The sender address doubles as
// the authenticated user unless SMTP_FROM overrides it.
type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Redis holds optional session-store settings. An empty URL means sessions
// stay in process memory.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Config is everything main needs to wire the service.
type Config struct {
	Addr          string
	PublicBaseURL string
	TimeZone      string
	Institution   string
	ChannelLabel  string

	AdminPassword string
	JWTSigningKey string

	SMTP        SMTP
	Redis       Redis
	PostgresDSN string
	ArchiveDir  string

	KafkaBrokers string
	KafkaTopic   string
}

// Load reads .env when present (development convenience) and then builds the
// config from the environment so main stays lean.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		Addr:          getenv("VINCULA_ADDR", ":8080"),
		PublicBaseURL: os.Getenv("VINCULA_PUBLIC_BASE_URL"),
		TimeZone:      getenv("VINCULA_TIMEZONE", "America/Bogota"),
		Institution:   getenv("VINCULA_INSTITUTION", "Ferreinox S.A.S. BIC"),
		ChannelLabel:  getenv("VINCULA_CHANNEL", "Portal Web (Verificado)"),

		AdminPassword: os.Getenv("VINCULA_ADMIN_PASSWORD"),
		JWTSigningKey: getenv("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),

		SMTP: SMTP{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getint("SMTP_PORT", 465),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenv("SMTP_FROM", os.Getenv("SMTP_USER")),
		},
		Redis: Redis{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getint("REDIS_POOL_SIZE", 10),
			MinIdleConns: getint("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getduration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getduration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getduration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		ArchiveDir:  getenv("VINCULA_ARCHIVE_DIR", "archive"),

		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   getenv("KAFKA_TRACE_TOPIC", "vincula.trace"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
