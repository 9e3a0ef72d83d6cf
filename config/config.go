package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	SessionsRedis  = "redis"
	SessionsMemory = "memory"
)

type Config struct {
	Postgres    PostgresConfig
	Redis       RedisConfig
	HTTP        HTTPConfig
	Log         LogConfig
	Replies     RepliesConfig
	StorageType string
	Sessions    SessionsConfig
}

type PostgresConfig struct {
	User     string
	Password string
	DB       string
	Host     string
	Port     int
	SSLMode  string

	ConnectAttempts int
}

func (pc PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.User,
		pc.Password,
		pc.Host,
		pc.Port,
		pc.DB,
		pc.SSLMode,
	)
}

type RedisConfig struct {
	URL string
}

type HTTPConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type RepliesConfig struct {
	StreamBuffer    int
	StreamKeepAlive time.Duration
}

type SessionsConfig struct {
	Store string
	TTL   time.Duration
}

// LoadConfig reads the environment. Missing required values panic.
func LoadConfig() Config {
	storageType := getEnv("STORAGE_TYPE", StorageMemory)
	sessionStore := getEnv("SESSION_STORE", SessionsMemory)

	cfg := Config{
		StorageType: storageType,
		HTTP: HTTPConfig{
			Port:            getEnv("HTTP_PORT", "8080"),
			ShutdownTimeout: getDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Replies: RepliesConfig{
			StreamBuffer:    getInt("REPLY_STREAM_BUFFER", 64),
			StreamKeepAlive: getDuration("REPLY_STREAM_KEEPALIVE", 15*time.Second),
		},
		Sessions: SessionsConfig{
			Store: sessionStore,
			TTL:   getDuration("SESSION_TTL", 24*time.Hour),
		},
	}

	switch storageType {
	case StoragePostgres:
		cfg.Postgres = PostgresConfig{
			User:            mustGetEnv("POSTGRES_USER"),
			Password:        mustGetEnv("POSTGRES_PASSWORD"),
			DB:              mustGetEnv("POSTGRES_DB"),
			Host:            mustGetEnv("POSTGRES_HOST"),
			Port:            mustGetInt("POSTGRES_PORT"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			ConnectAttempts: getInt("POSTGRES_CONNECT_ATTEMPTS", 5),
		}
	case StorageMemory:
	default:
		panic("unknown STORAGE_TYPE: " + storageType)
	}

	switch sessionStore {
	case SessionsRedis:
		cfg.Redis = RedisConfig{
			URL: mustGetEnv("REDIS_URL"),
		}
	case SessionsMemory:
	default:
		panic("unknown SESSION_STORE: " + sessionStore)
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic("missing required env var: " + key)
	}
	return val
}

func mustGetInt(key string) int {
	val := mustGetEnv(key)
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	if os.Getenv(key) == "" {
		return def
	}
	return mustGetInt(key)
}

func getDuration(key string, def time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		panic("invalid duration for env var " + key + ": " + val)
	}
	return d
}
