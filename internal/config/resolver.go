package config

import (
	"os"

	"github.com/opmodel/modkit/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a setting with its winning source.
type ResolvedValue struct {
	// Key is the config key.
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions contains the candidate values for one setting.
type ResolveOptions struct {
	// Key is the config key (e.g., "template").
	Key string
	// FlagValue is the flag value, used when FlagSet is true.
	FlagValue string
	// FlagSet reports whether the flag was given on the command line.
	FlagSet bool
	// EnvVar is the environment variable name (e.g., "MODKIT_TEMPLATE").
	EnvVar string
	// ConfigValue is the value from the config file (empty if not set).
	ConfigValue string
	// Default is the built-in default.
	Default string
}

// ResolveValue resolves a setting using precedence:
// (1) flag, (2) environment variable, (3) config file, (4) default.
func ResolveValue(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	var envValue string
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}

	candidates := []struct {
		source ConfigSource
		value  string
		ok     bool
	}{
		{SourceFlag, opts.FlagValue, opts.FlagSet},
		{SourceEnv, envValue, envValue != ""},
		{SourceConfig, opts.ConfigValue, opts.ConfigValue != ""},
		{SourceDefault, opts.Default, true},
	}

	for _, c := range candidates {
		if !c.ok {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		if c.value != "" {
			result.Shadowed[c.source] = c.value
		}
	}

	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) MODKIT_CONFIG env, (3) ~/.modkit/config.yaml default
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	return ResolveValue(ResolveOptions{
		Key:       "config",
		FlagValue: flagValue,
		FlagSet:   flagValue != "",
		EnvVar:    "MODKIT_CONFIG",
		Default:   paths.ConfigFile,
	}), nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
