package config

import (
	"fmt"
	"strconv"
)

// ConfigSource names the layer a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// Defaults.
const (
	DefaultDataFile       = "tasklist.json"
	DefaultColor          = true
	DefaultValidateSchema = true
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
)

// Config holds the effective configuration.
type Config struct {
	// Storage
	DataFile       string `toml:"data_file"`
	ValidateSchema bool   `toml:"validate_schema"`

	// Output
	Color bool `toml:"color"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
	LogFile       string `toml:"log_file"`

	// Computed, not read from files
	WorkDir     string `toml:"-"`
	UserFile    string `toml:"-"`
	ProjectFile string `toml:"-"`
}

// ConfigWithSources pairs a Config with the source of each value.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Warnings lists unknown keys found in config files.
	Warnings []string
}

// Entry is one configuration value as shown by "tasklist config".
type Entry struct {
	Name   string
	Value  string
	Source ConfigSource
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"data_file",
		"validate_schema",
		"color",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"log_file",
	}
}

// value returns the field's current value formatted for display.
func (c *Config) value(field string) string {
	switch field {
	case "data_file":
		return c.DataFile
	case "validate_schema":
		return strconv.FormatBool(c.ValidateSchema)
	case "color":
		return strconv.FormatBool(c.Color)
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return strconv.FormatBool(c.LogTimestamps)
	case "log_caller":
		return strconv.FormatBool(c.LogCaller)
	case "log_file":
		return c.LogFile
	default:
		panic(fmt.Sprintf("config: unknown field %q", field))
	}
}

// Entries returns every configuration value in a stable order.
func (cws *ConfigWithSources) Entries() []Entry {
	fields := configFields()
	entries := make([]Entry, 0, len(fields))
	for _, f := range fields {
		source := cws.Sources[f]
		if source == "" {
			source = SourceDefault
		}
		entries = append(entries, Entry{Name: f, Value: cws.Config.value(f), Source: source})
	}
	return entries
}

// GetConfigFile returns the active config file path, project file first.
func (cws *ConfigWithSources) GetConfigFile() string {
	if cws.Config.ProjectFile != "" {
		return cws.Config.ProjectFile
	}
	return cws.Config.UserFile
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.DataFile = DefaultDataFile
	cfg.ValidateSchema = DefaultValidateSchema
	cfg.Color = DefaultColor
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
	cfg.LogFile = ""
}
