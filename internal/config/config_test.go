package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "")
		t.Setenv("SERVER_PORT", "")

		cfg := Load()

		assert.Equal(t, "http://localhost:5000", cfg.BackendURL)
		assert.Equal(t, ":8080", cfg.Addr())
		assert.Equal(t, 15*time.Second, cfg.BackendTimeout)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("BACKEND_URL", "https://api.salon.test/")
		t.Setenv("BACKEND_TIMEOUT", "3s")
		t.Setenv("BACKEND_RPS", "7.5")
		t.Setenv("CORS_ORIGINS", "https://a.test, https://b.test,,")
		t.Setenv("JWT_SECRET", "s3cret")

		cfg := Load()

		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "https://api.salon.test", cfg.BackendURL)
		assert.Equal(t, 3*time.Second, cfg.BackendTimeout)
		assert.Equal(t, 7.5, cfg.BackendRPS)
		assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSOrigins)
		assert.Equal(t, "s3cret", cfg.JWTSecret)
	})

	t.Run("Malformed Values Fall Back", func(t *testing.T) {
		t.Setenv("BACKEND_TIMEOUT", "soon")
		t.Setenv("BACKEND_RPS", "many")

		cfg := Load()

		assert.Equal(t, 15*time.Second, cfg.BackendTimeout)
		assert.Equal(t, 20.0, cfg.BackendRPS)
	})
}
