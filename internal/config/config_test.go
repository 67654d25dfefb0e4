package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "starlink", cfg.MongoDatabase)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, "https://ipapi.co", cfg.GeoIPBaseURL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://starlinkjewels.com, https://admin.starlinkjewels.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, []string{"https://starlinkjewels.com", "https://admin.starlinkjewels.com"}, cfg.AllowedOrigins)
}

func TestDevModeFlagVariants(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE"} {
		t.Setenv("DEV_MODE", v)
		assert.True(t, Load().DevMode, "value %q", v)
	}
	t.Setenv("DEV_MODE", "no")
	assert.False(t, Load().DevMode)
}
