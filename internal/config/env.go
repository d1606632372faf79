package config

import (
	"fmt"
	"os"
	"strconv"
)

// loadFromEnv overrides config from environment variables. Empty variables
// are ignored.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	setString := func(env, field string, target *string) {
		if v := os.Getenv(env); v != "" {
			*target = v
			sources[field] = SourceEnv
		}
	}
	setBool := func(env, field string, target *bool) error {
		v := os.Getenv(env)
		if v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", env, v)
		}
		*target = b
		sources[field] = SourceEnv
		return nil
	}

	setString("TASKLIST_FILE", "data_file", &cfg.DataFile)
	setString("TASKLIST_LOG_LEVEL", "log_level", &cfg.LogLevel)
	setString("TASKLIST_LOG_FORMAT", "log_format", &cfg.LogFormat)
	setString("TASKLIST_LOG_FILE", "log_file", &cfg.LogFile)

	// NO_COLOR disables color; an explicit TASKLIST_COLOR still wins.
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
		sources["color"] = SourceEnv
	}

	bools := []struct {
		env    string
		field  string
		target *bool
	}{
		{"TASKLIST_COLOR", "color", &cfg.Color},
		{"TASKLIST_VALIDATE_SCHEMA", "validate_schema", &cfg.ValidateSchema},
		{"TASKLIST_LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps},
		{"TASKLIST_LOG_CALLER", "log_caller", &cfg.LogCaller},
	}
	for _, b := range bools {
		if err := setBool(b.env, b.field, b.target); err != nil {
			return err
		}
	}
	return nil
}
