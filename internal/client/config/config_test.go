package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := LoadDefaults()
	assert.Equal(t, defaultServerAddr, cfg.ServerAddr)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "http://example.com:9090")

	cfg := LoadDefaults()
	parseEnv(cfg)
	assert.Equal(t, "http://example.com:9090", cfg.ServerAddr)
}

func TestParseFlags(t *testing.T) {
	cfg := LoadDefaults()
	parseFlags(cfg, []string{"-s", "http://flagged:8081"})
	assert.Equal(t, "http://flagged:8081", cfg.ServerAddr)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "http://fromenv:1")

	cfg := LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg, []string{"-s", "http://fromflag:2"})
	assert.Equal(t, "http://fromflag:2", cfg.ServerAddr)
}
