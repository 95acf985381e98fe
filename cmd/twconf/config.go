package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/twconf"
)

var k = koanf.New(".")

// loadConfig loads tool configuration with precedence: flags > env > file >
// defaults. It must be called after cobra parses flags (in PreRunE or RunE).
//
// This is the CLI's own configuration (.twconf.yaml), not the descriptor
// being checked; the descriptor is loaded through twconf.Load.
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".twconf.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TWCONF_* prefix)
	if err := k.Load(env.Provider("TWCONF_", ".", func(s string) string {
		// TWCONF_CHECK_STRICT -> check.strict
		// TWCONF_DESCRIPTOR -> descriptor
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TWCONF_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// descriptorPath resolves the descriptor file to operate on: positional
// argument first, then flag/env/config, then the conventional name.
func descriptorPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return getStringWithFallback("descriptor", "descriptor", "tailwind.config.yaml")
}

// buildReportConfig constructs the library's ReportConfig from koanf state.
func buildReportConfig() twconf.ReportConfig {
	return twconf.ReportConfig{
		PrintSourceValue: getBoolWithFallback("print-values", "check.print-values", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
