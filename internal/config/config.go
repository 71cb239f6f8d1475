package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultDatabaseURL = "sqlite://debug_database.db"

type Config struct {
	ServiceName string

	ServerHost string
	ServerPort int

	DatabaseURL string

	Debug    bool
	LogLevel string

	SecretKey string

	KafkaBrokers []string
	KafkaTopic   string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	EnforceStock bool
}

// Load reads .env (when present) and the process environment once.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "qa-api"),

		ServerHost: os.Getenv("SERVER_HOST"),
		ServerPort: EnvIntDefault("SERVER_PORT", 5000),

		DatabaseURL: EnvDefault("DATABASE_URL", DefaultDatabaseURL),

		Debug:    EnvBoolDefault("DEBUG", false),
		LogLevel: EnvDefault("LOG_LEVEL", "info"),

		SecretKey: os.Getenv("SECRET_KEY"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   EnvDefault("KAFKA_TOPIC", "qa_events"),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    EnvDefault("ES_INDEX", "products"),

		EnforceStock: EnvBoolDefault("ENFORCE_STOCK", false),
	}
}

func (c Config) Addr() string {
	return c.ServerHost + ":" + strconv.Itoa(c.ServerPort)
}

// EffectiveLogLevel lets DEBUG=true win over LOG_LEVEL.
func (c Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.LogLevel
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
