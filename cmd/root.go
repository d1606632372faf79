// Package cmd implements the CLI command structure for tasklist.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nibzard/tasklist-go/internal/config"
	"github.com/nibzard/tasklist-go/internal/logging"
	"github.com/nibzard/tasklist-go/internal/session"
	"github.com/nibzard/tasklist-go/internal/store"
	"github.com/nibzard/tasklist-go/internal/table"
	"github.com/nibzard/tasklist-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Process streams and clock, replaced in tests.
var (
	stdin   io.Reader = os.Stdin
	stdout  io.Writer = os.Stdout
	stderr  io.Writer = os.Stderr
	timeNow           = time.Now
)

const defaultRefresh = 2 * time.Second

// Run executes the tasklist CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}
	cfg := cws.Config

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()
	for _, w := range cws.Warnings {
		logger.Warn(w)
	}
	logger.Debug("config loaded", "file", cws.GetConfigFile(), "data_file", cfg.DataFile)

	// Determine the subcommand
	// If no args or first arg is a flag, use "run" as default
	subcommand := "run"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "run":
		return runCommand(ctx, cfg, logger, remainingArgs)
	case "print":
		return printCommand(cfg, remainingArgs)
	case "view":
		return viewCommand(ctx, cfg, remainingArgs)
	case "validate":
		return validateCommand(cfg, remainingArgs)
	case "config":
		return configCommand(cws, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	opts.Formatter = logging.ParseFormatter(cfg.LogFormat)
	opts.ReportTimestamp = cfg.LogTimestamps
	opts.ReportCaller = cfg.LogCaller
	opts.File = cfg.LogFile
	opts.Output = stderr

	logger, err := logging.New(opts)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

// dataPath parses a subcommand's flags and returns the task file path,
// either the single positional argument or the configured one.
func dataPath(cfg *config.Config, fs *flag.FlagSet, args []string) (string, error) {
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		return "", fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	path := cfg.DataFile
	if len(remaining) == 1 {
		path = remaining[0]
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.WorkDir, path)
	}
	return path, nil
}

func loadOptions(cfg *config.Config) store.LoadOptions {
	return store.LoadOptions{Schema: cfg.ValidateSchema}
}

func tableOptions(cfg *config.Config) table.Options {
	return table.Options{Color: cfg.Color}
}

// runCommand runs the interactive session and saves the list when it ends
// normally.
func runCommand(ctx context.Context, cfg *config.Config, logger *logging.Logger, args []string) error {
	fs := flag.NewFlagSet("tasklist run", flag.ContinueOnError)
	path, err := dataPath(cfg, fs, args)
	if err != nil {
		return err
	}

	list, err := store.Load(path, loadOptions(cfg))
	if err != nil {
		return fmt.Errorf("loading task file: %w", err)
	}
	logger.Info("task file loaded", "path", path, "tasks", list.Len())

	s := session.New(stdin, stdout, list,
		session.WithClock(timeNow),
		session.WithTableOptions(tableOptions(cfg)),
		session.WithLogger(logger.Logger),
	)
	if err := s.Run(ctx); err != nil {
		logger.Warn("session stopped, changes not saved", "err", err)
		return err
	}

	if err := list.Save(path); err != nil {
		return fmt.Errorf("saving task file: %w", err)
	}
	logger.Info("task file saved", "path", path, "tasks", list.Len())
	return nil
}

// printCommand renders the table once.
func printCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist print", flag.ContinueOnError)
	path, err := dataPath(cfg, fs, args)
	if err != nil {
		return err
	}

	list, err := store.Load(path, loadOptions(cfg))
	if err != nil {
		return fmt.Errorf("loading task file: %w", err)
	}
	return table.Write(stdout, list.Tasks(), timeNow(), tableOptions(cfg))
}

// viewCommand launches the read-only viewer.
func viewCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist view", flag.ContinueOnError)
	refresh := fs.Duration("refresh", defaultRefresh, "Reload the task file at this interval (0 disables)")
	path, err := dataPath(cfg, fs, args)
	if err != nil {
		return err
	}

	load := func() (*store.List, error) {
		return store.Load(path, loadOptions(cfg))
	}
	return ui.RunViewer(ctx, stdin, stdout, path, load,
		ui.WithClock(timeNow),
		ui.WithTableOptions(tableOptions(cfg)),
		ui.WithRefreshInterval(*refresh),
	)
}

// validateCommand checks the task file and reports every problem found.
func validateCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist validate", flag.ContinueOnError)
	schema := fs.Bool("schema", cfg.ValidateSchema, "Validate against the JSON Schema")
	path, err := dataPath(cfg, fs, args)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Task file: %s\n", path)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(stdout, "  Not found (starts as an empty list)")
			return nil
		}
		return fmt.Errorf("reading task file: %w", err)
	}

	result := store.Validate(data, store.ValidationOptions{Schema: *schema})
	for _, w := range result.Warnings {
		fmt.Fprintf(stdout, "  Warning: %s\n", w)
	}
	if !result.Valid {
		fmt.Fprintln(stdout, "  Validation failed:")
		for _, e := range result.Errors {
			fmt.Fprintf(stdout, "    - %v\n", e)
		}
		return result.Err()
	}

	tasks, err := store.Decode(data)
	if err != nil {
		return err
	}
	checks := "task checks"
	if result.UsedSchema {
		checks = "schema and task checks"
	}
	fmt.Fprintf(stdout, "  Valid (%s): %d tasks\n", checks, len(tasks))
	return nil
}

// configCommand shows the effective configuration or an example file.
func configCommand(cws *config.ConfigWithSources, args []string) error {
	action := "show"
	if len(args) > 0 {
		action = args[0]
	}
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}

	switch action {
	case "show":
		file := cws.GetConfigFile()
		if file == "" {
			file = "(none)"
		}
		fmt.Fprintf(stdout, "Config file: %s\n\n", file)
		for _, e := range cws.Entries() {
			value := e.Value
			if value == "" {
				value = `""`
			}
			fmt.Fprintf(stdout, "  %-16s %s (%s)\n", e.Name, value, e.Source)
		}
		for _, w := range cws.Warnings {
			fmt.Fprintf(stdout, "\nWarning: %s\n", w)
		}
		return nil
	case "example":
		fmt.Fprint(stdout, config.ExampleConfig())
		return nil
	default:
		return fmt.Errorf("unknown config action: %s (expected show|example)", action)
	}
}

func versionCommand() error {
	fmt.Fprintf(stdout, "tasklist version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Tasklist - A terminal task list with priorities and due dates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasklist [options] [command] [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run [file]       Edit tasks interactively (default command)")
	fmt.Fprintln(w, "  print [file]     Print the task table")
	fmt.Fprintln(w, "  view [file]      Browse the task table in a terminal viewer")
	fmt.Fprintln(w, "  validate [file]  Check the task file and list every problem")
	fmt.Fprintln(w, "  config [show|example]  Show effective config or an example file")
	fmt.Fprintln(w, "  version          Show version information")
	fmt.Fprintln(w, "  help             Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "View Options (use with 'view' command):")
	fmt.Fprintln(w, "  -refresh duration")
	fmt.Fprintln(w, "        Reload the task file at this interval, 0 disables (default 2s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Validate Options (use with 'validate' command):")
	fmt.Fprintln(w, "  -schema")
	fmt.Fprintln(w, "        Validate against the JSON Schema (default from config)")
}
