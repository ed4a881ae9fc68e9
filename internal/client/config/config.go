// Package config loads the CLI client configuration. Values are layered:
// defaults, then environment variables, then command-line flags.
package config

import (
	"flag"
	"os"

	"github.com/DarshanchGIT/wordverse/internal/flagx"
)

type Config struct {
	// ServerAddr is the base URL of the Wordverse server.
	ServerAddr string
}

const defaultServerAddr = "http://localhost:8080"

func LoadDefaults() *Config {
	return &Config{ServerAddr: defaultServerAddr}
}

func LoadConfig() *Config {
	cfg := LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}

func parseEnv(cfg *Config) {
	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		cfg.ServerAddr = addr
	}
}

func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	addr := fs.String("s", cfg.ServerAddr, "server base URL")

	err := fs.Parse(flagx.FilterArgs(args, []string{"-s"}))
	if err != nil {
		return
	}

	cfg.ServerAddr = *addr
}
