package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 10*time.Second, parseDuration("10s", time.Minute))
	assert.Equal(t, 2*time.Hour, parseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("not-a-duration", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
}

func TestParseDialTheme(t *testing.T) {
	assert.Equal(t, "pulse", parseDialTheme("pulse"))
	assert.Equal(t, "eclipse", parseDialTheme("eclipse"))
	assert.Equal(t, "orbit", parseDialTheme("disco"))
	assert.Equal(t, "orbit", parseDialTheme(""))
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t,
		[]string{"http://localhost:3000", "https://or.example.com"},
		parseOrigins("http://localhost:3000, https://or.example.com"))
	assert.Equal(t, []string{"http://a"}, parseOrigins("http://a,,"))
	assert.Empty(t, parseOrigins(""))
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "or_control", cfg.Database.Database)
	assert.Equal(t, "orbit", cfg.Dashboard.DialTheme)
	assert.Equal(t, 10*time.Second, cfg.Dashboard.SweepInterval)
	assert.Equal(t, 2*time.Hour, cfg.Dashboard.EndTimeRetention)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}
