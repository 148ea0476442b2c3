package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// t.Setenv восстановит исходное значение после теста
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestNew_Defaults(t *testing.T) {
	unsetEnv(t, "ENV", "HOST", "PORT", "HTTP_READ_HEADER_TIMEOUT", "SHUTDOWN_TIMEOUT",
		"HTTP_MAX_HEADER_BYTES", "ALLOWED_CORS_ORIGINS")

	conf := New()

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, "localhost", conf.Http.Host)
	assert.Equal(t, "8080", conf.Http.Port)
	assert.Equal(t, 5*time.Second, conf.Http.ShutdownTimeout)
	assert.Equal(t, 1<<20, conf.Http.MaxHeaderBytes)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.Cors.AllowedOrigins)
	require.NoError(t, conf.Validate())
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9000")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("HTTP_MAX_HEADER_BYTES", "4096")
	t.Setenv("ALLOWED_CORS_ORIGINS", "https://a.example.com,https://b.example.com")

	conf := New()

	assert.Equal(t, "production", conf.Env)
	assert.Equal(t, "0.0.0.0", conf.Http.Host)
	assert.Equal(t, "9000", conf.Http.Port)
	assert.Equal(t, 10*time.Second, conf.Http.ShutdownTimeout)
	assert.Equal(t, 4096, conf.Http.MaxHeaderBytes)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, conf.Cors.AllowedOrigins)
	require.NoError(t, conf.Validate())
}

func TestNew_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("HTTP_MAX_HEADER_BYTES", "lots")

	conf := New()

	assert.Equal(t, 5*time.Second, conf.Http.ShutdownTimeout)
	assert.Equal(t, 1<<20, conf.Http.MaxHeaderBytes)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "unknown env", modify: func(c *Config) { c.Env = "dev" }},
		{name: "non numeric port", modify: func(c *Config) { c.Http.Port = "http" }},
		{name: "zero shutdown timeout", modify: func(c *Config) { c.Http.ShutdownTimeout = 0 }},
		{name: "bad cors origin", modify: func(c *Config) { c.Cors.AllowedOrigins = []string{"not a url"} }},
		{name: "no cors origins", modify: func(c *Config) { c.Cors.AllowedOrigins = nil }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf := New()
			tc.modify(&conf)
			assert.Error(t, conf.Validate())
		})
	}
}
