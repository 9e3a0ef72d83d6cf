package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"STORAGE_TYPE", "SESSION_STORE", "HTTP_PORT", "LOG_LEVEL", "LOG_FORMAT",
		"SESSION_TTL", "REPLY_STREAM_BUFFER", "REPLY_STREAM_KEEPALIVE", "HTTP_SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, StorageMemory, cfg.StorageType)
	require.Equal(t, SessionsMemory, cfg.Sessions.Store)
	require.Equal(t, "8080", cfg.HTTP.Port)
	require.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	require.Equal(t, 24*time.Hour, cfg.Sessions.TTL)
	require.Equal(t, 64, cfg.Replies.StreamBuffer)
	require.Equal(t, "json", cfg.Log.Format)
	require.Empty(t, cfg.Postgres.Host)
}

func TestLoadConfig_Postgres(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "postgres")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("POSTGRES_USER", "forum")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "forum")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_SSLMODE", "")
	t.Setenv("SESSION_TTL", "2h")

	cfg := LoadConfig()
	require.Equal(t, "postgres://forum:secret@db:5432/forum?sslmode=disable", cfg.Postgres.GetDSN())
	require.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	require.Equal(t, 2*time.Hour, cfg.Sessions.TTL)
}

func TestLoadConfig_Panics(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing postgres host", map[string]string{"STORAGE_TYPE": "postgres", "POSTGRES_HOST": ""}},
		{"unknown storage", map[string]string{"STORAGE_TYPE": "mongo"}},
		{"redis without url", map[string]string{"STORAGE_TYPE": "memory", "SESSION_STORE": "redis", "REDIS_URL": ""}},
		{"bad duration", map[string]string{"STORAGE_TYPE": "memory", "SESSION_STORE": "memory", "SESSION_TTL": "forever"}},
		{"bad int", map[string]string{"STORAGE_TYPE": "memory", "SESSION_STORE": "memory", "REPLY_STREAM_BUFFER": "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			require.Panics(t, func() { LoadConfig() })
		})
	}
}
