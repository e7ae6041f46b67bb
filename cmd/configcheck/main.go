// Command configcheck validates YAML, TOML and JSON configuration files.
//
// Files that cannot be read end the process immediately with exit status
// 255. Files that do not parse are reported as warnings and the command
// exits with status 1 once every file has been checked, or immediately
// with --fail-fast.
package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ephais/go/errors"
)

// CLI is the configcheck command line.
type CLI struct {
	FailFast bool     `help:"Stop at the first file that does not parse."`
	Verbose  bool     `short:"v" help:"Enable verbose logging."`
	Files    []string `arg:"" name:"file" help:"Configuration files to check." type:"path"`
}

// AfterApply runs after flag parsing; sets up logging once.
//nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// Run checks every file and returns a warning summarizing the rejected ones.
func (c *CLI) Run() error {
	checker := NewChecker(slog.Default(), errors.NewTerminator(), c.FailFast)
	if rejected := checker.CheckAll(c.Files); rejected > 0 {
		return errors.WithMetadata(
			errors.Newf(errors.SeverityWarning, "CHECK", "%d of %d files rejected", rejected, len(c.Files)),
			"rejected", strconv.Itoa(rejected),
		)
	}
	return nil
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("configcheck"),
		kong.Description("Validate YAML, TOML and JSON configuration files."),
		kong.UsageOnError(),
	)

	if err := cli.Run(); err != nil {
		slog.Warn("validation finished with problems", "error", err)
		os.Exit(1)
	}
}
