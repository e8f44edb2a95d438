// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// DefaultsConfig pre-fills the create-module prompts.
// With --no-input a default stands in for a missing flag.
type DefaultsConfig struct {
	Name        string `mapstructure:"name" yaml:"name,omitempty"`
	DisplayName string `mapstructure:"displayName" yaml:"displayName,omitempty"`
	Description string `mapstructure:"description" yaml:"description,omitempty"`
}

// Config represents the modkit configuration.
// Loaded from ~/.modkit/config.yaml and MODKIT_* environment variables.
type Config struct {
	// Template is the built-in template set used when --template is not given.
	// Env: MODKIT_TEMPLATE, Default: basic
	Template string `mapstructure:"template" yaml:"template,omitempty"`

	// TemplateDir is a template root on disk. It overrides Template.
	// Env: MODKIT_TEMPLATE_DIR
	TemplateDir string `mapstructure:"templateDir" yaml:"templateDir,omitempty"`

	// Dir is the parent directory of generated modules.
	// Env: MODKIT_DIR, Default: .
	Dir string `mapstructure:"dir" yaml:"dir,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`

	// Defaults contains prompt pre-fill values.
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults,omitempty"`
}

// Built-in defaults.
const (
	DefaultTemplate = "basic"
	DefaultDir      = "."
)

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Template: DefaultTemplate,
		Dir:      DefaultDir,
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Template == "" {
		out.Template = DefaultTemplate
	}
	if out.Dir == "" {
		out.Dir = DefaultDir
	}
	return &out
}

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed into every sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded configuration with defaults applied.
	Config *Config

	// Loader is the loader that produced Config.
	Loader *Loader

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Verbose is the --verbose flag.
	Verbose bool
}

// FileValue returns value when key was set in the config file, else "".
func (g *GlobalConfig) FileValue(key, value string) string {
	if g.Loader == nil || !g.Loader.InFile(key) {
		return ""
	}
	return value
}
