// Package config loads git-workflow-guidance settings. Every setting is
// optional; with nothing configured the hook inspects the Bash tool and logs
// warnings to stderr.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/krmcbride/git-workflow-guidance/pkg/hook"
	"github.com/krmcbride/git-workflow-guidance/pkg/utils"
)

// EnvPrefix is the prefix of environment variables that override settings.
// GIT_WORKFLOW_GUIDANCE_LOG_LEVEL -> log.level
const EnvPrefix = "GIT_WORKFLOW_GUIDANCE_"

type Config struct {
	Hook HookConfig `koanf:"hook" yaml:"hook"`
	Log  LogConfig  `koanf:"log" yaml:"log"`
}

type HookConfig struct {
	// Tools is a comma-separated list of tool names whose command is inspected.
	Tools string `koanf:"tools" yaml:"tools"`
}

type LogConfig struct {
	Level      string `koanf:"level" yaml:"level"`
	Format     string `koanf:"format" yaml:"format"`
	File       string `koanf:"file" yaml:"file"`
	MaxSize    int    `koanf:"maxsize" yaml:"maxsize"`
	MaxBackups int    `koanf:"maxbackups" yaml:"maxbackups"`
	MaxAge     int    `koanf:"maxage" yaml:"maxage"`
}

// ToolNames returns the configured tool names, or just Bash when none are set.
func (c HookConfig) ToolNames() []string {
	tools := utils.ParseCommaSeparated(c.Tools)
	if len(tools) == 0 {
		return []string{hook.BashTool}
	}
	return tools
}

func defaults() map[string]any {
	return map[string]any{
		"hook.tools":     hook.BashTool,
		"log.level":      "warn",
		"log.format":     "text",
		"log.file":       "",
		"log.maxsize":    1,
		"log.maxbackups": 2,
		"log.maxage":     30,
	}
}

// Default returns the configuration used when nothing else is configured.
func Default() *Config {
	return &Config{
		Hook: HookConfig{Tools: hook.BashTool},
		Log: LogConfig{
			Level:      "warn",
			Format:     "text",
			MaxSize:    1,
			MaxBackups: 2,
			MaxAge:     30,
		},
	}
}

// DefaultPath returns the user config file location, or "" when no config
// directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "git-workflow-guidance", "config.yaml")
}

// Load layers defaults, the YAML files in configPaths and environment
// variables, in that order. Missing files are skipped.
func Load(configPaths ...string) (*Config, error) {
	k := koanf.New(".")

	// Defaults
	_ = k.Load(confmap.Provider(defaults(), "."), nil)

	// YAML files are optional, but one that exists must parse
	for _, path := range configPaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Environment variables override everything
	_ = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, EnvPrefix)),
			"_", ".",
		)
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}
