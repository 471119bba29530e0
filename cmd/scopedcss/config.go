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

	"github.com/yacobolo/scopedcss"
)

const defaultConfigPath = ".scopedcss.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags that were explicitly set override file and env values.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads the config file and environment variables.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// SCOPEDCSS_GENERATE_SOURCE -> generate.source
	// SCOPEDCSS_MINIFY -> minify
	if err := k.Load(env.Provider("SCOPEDCSS_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "SCOPEDCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGenerateConfig constructs the library's Config from koanf state.
// The resolver and logger are attached by the caller.
func buildGenerateConfig() scopedcss.Config {
	config := scopedcss.Config{
		SourceDir:   getStringWithFallback("source", "generate.source", "web/styles"),
		OutputDir:   getStringWithFallback("output-dir", "generate.output-dir", "internal/web/ui"),
		PackageName: getStringWithFallback("package", "package", "ui"),
		Minify:      getBoolWithFallback("minify", "minify", true),
	}

	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("generate.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = append([]string(nil), scopedcss.DefaultIncludes...)
	}

	return config
}

// buildResolver layers placeholder values: the config file's vars map, then
// the values file, then --set name=value pairs.
func buildResolver(sets []string) (scopedcss.MapResolver, error) {
	values := scopedcss.MapResolver(k.StringMap("vars"))

	if path := getStringWithFallback("values-file", "values-file", ""); path != "" {
		fromFile, err := scopedcss.LoadValues(path)
		if err != nil {
			return nil, err
		}
		values = values.Merge(fromFile)
	}

	overrides := make(map[string]string, len(sets))
	for _, set := range sets {
		name, value, ok := strings.Cut(set, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --set %q: want name=value", set)
		}
		overrides[strings.TrimSpace(name)] = value
	}

	return values.Merge(overrides), nil
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
