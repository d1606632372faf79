package config

// ExampleConfig returns a commented example config file.
func ExampleConfig() string {
	return `# tasklist configuration
#
# Place this file at ~/.tasklist/tasklist.toml for user settings, or at
# ./tasklist.toml to override them for one directory. Environment variables
# (TASKLIST_*) and flags override both.

# Task file, relative to the working directory. "~" is expanded.
data_file = "tasklist.json"

# Check the task file against the embedded JSON Schema when loading.
validate_schema = true

# Show priority and due tags as color swatches. NO_COLOR=1 turns this off.
color = true

# Diagnostics: debug, info, warn, error or fatal.
log_level = "warn"

# text, json or logfmt.
log_format = "text"

log_timestamps = false
log_caller = false

# Append logs to a file instead of stderr.
# log_file = "~/.tasklist/tasklist.log"
`
}
