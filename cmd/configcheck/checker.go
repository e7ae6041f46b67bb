package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ephais/go/errors"
	"github.com/ephais/go/errors/classify"
)

// Checker validates configuration files.
//
// Read failures are not recoverable and go through the Terminator. Parse
// failures are logged as warnings; with failFast the first one is
// terminated as well.
type Checker struct {
	logger     *slog.Logger
	terminator *errors.Terminator
	failFast   bool
}

// NewChecker creates a Checker.
func NewChecker(logger *slog.Logger, terminator *errors.Terminator, failFast bool) *Checker {
	return &Checker{
		logger:     logger,
		terminator: terminator,
		failFast:   failFast,
	}
}

// CheckAll checks paths in order and returns how many were rejected.
func (c *Checker) CheckAll(paths []string) int {
	rejected := 0
	for _, path := range paths {
		if err := c.Check(path); err != nil {
			rejected++
		}
	}
	return rejected
}

// Check validates a single file. It returns nil when the file parses and
// the warning that was logged otherwise.
func (c *Checker) Check(path string) errors.Error {
	data := classify.Map(
		errors.Of(os.ReadFile(path)),
		errors.SeverityCritical, "READ", "cannot read configuration file",
	).OrExitWith(c.terminator)

	if err := parse(path, data); err != nil {
		rejected := errors.WithMetadata(
			classify.Wrap(err, errors.SeverityWarning, "PARSE", "configuration does not parse"),
			"file", path,
		)
		c.logger.Warn("configuration rejected", "error", rejected)
		if c.failFast {
			c.terminator.Terminate(rejected)
		}
		return rejected
	}

	c.logger.Debug("configuration accepted", "file", path, "bytes", len(data))
	return nil
}

func parse(path string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		var doc any
		return yaml.Unmarshal(data, &doc)
	case ".toml":
		var doc map[string]any
		return toml.Unmarshal(data, &doc)
	case ".json":
		var doc any
		return json.Unmarshal(data, &doc)
	default:
		return errors.WithMetadata(errors.DataFormat("EXT", "unsupported file extension"), "ext", ext)
	}
}
