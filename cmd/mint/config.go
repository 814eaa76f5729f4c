package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const configFile = "mint.toml"

// Config is the optional driver configuration. The evaluator core has no
// configuration surface; these knobs belong to the CLI wrapper.
type Config struct {
	LogLevel     string `toml:"log_level"`
	MaxCallDepth int    `toml:"max_call_depth"`
	Interactive  *bool  `toml:"interactive"` // nil means autodetect from the terminal
}

// loadConfig reads mint.toml from the working directory when present.
func loadConfig() Config {
	var cfg Config
	if _, err := os.Stat(configFile); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s: %v\n", configFile, err)
	}
	return cfg
}

func setupLogging(cfg Config) {
	level := slog.LevelWarn
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
