package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ephais/go/errors"
)

type exitCall int

type harness struct {
	checker *Checker
	logs    *bytes.Buffer
	stderr  *bytes.Buffer
}

func newHarness(failFast bool) *harness {
	h := &harness{logs: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	logger := slog.New(slog.NewTextHandler(h.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	terminator := errors.NewTerminator(
		errors.WithOutput(h.stderr),
		errors.WithExitFunc(func(code int) { panic(exitCall(code)) }),
	)
	h.checker = NewChecker(logger, terminator, failFast)
	return h
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCheck_Valid(t *testing.T) {
	files := map[string]string{
		"app.yaml":    "server:\n  port: 8080\n",
		"app.yml":     "debug: true\n",
		"app.toml":    "[server]\nport = 8080\n",
		"app.json":    `{"server": {"port": 8080}}`,
		"UPPER.JSON":  `[]`,
		"nested.toml": "title = \"x\"\n[a.b]\nc = 1\n",
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			h := newHarness(false)
			require.Nil(t, h.checker.Check(writeFile(t, name, content)))
			require.Contains(t, h.logs.String(), "configuration accepted")
			require.Empty(t, h.stderr.String())
		})
	}
}

func TestCheck_ParseFailureIsWarning(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "bad.yaml", content: "server: [8080\n"},
		{name: "toml", file: "bad.toml", content: "port = \n"},
		{name: "json", file: "bad.json", content: `{"port": }`},
		{name: "unsupported", file: "app.ini", content: "port=8080\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(false)
			path := writeFile(t, tt.file, tt.content)

			err := h.checker.Check(path)
			require.NotNil(t, err)
			require.Equal(t, errors.SeverityWarning, err.Severity())
			require.Equal(t, errors.CategoryDataFormat, err.Category())
			require.Equal(t, "FMT-PARSE", err.Reference())
			require.Equal(t, path, err.Metadata()["file"])

			require.Contains(t, h.logs.String(), "configuration rejected")
			require.Contains(t, h.logs.String(), "error.reference=FMT-PARSE")
			require.Empty(t, h.stderr.String(), "parse failures must not terminate")
		})
	}
}

func TestCheck_FailFastTerminates(t *testing.T) {
	h := newHarness(true)
	path := writeFile(t, "bad.json", `{`)

	require.PanicsWithValue(t, exitCall(errors.ExitCode), func() {
		h.checker.Check(path)
	})

	out := h.stderr.String()
	require.True(t, strings.HasPrefix(out, "[DATA FORMAT] WARN | Ref: FMT-PARSE | configuration does not parse | Source: "))
	require.Equal(t, 1, strings.Count(out, "\n"))
	require.Contains(t, h.logs.String(), "configuration rejected")
}

func TestCheck_ReadFailureTerminates(t *testing.T) {
	h := newHarness(false)
	path := filepath.Join(t.TempDir(), "missing.yaml")

	require.PanicsWithValue(t, exitCall(errors.ExitCode), func() {
		h.checker.Check(path)
	})

	out := h.stderr.String()
	require.True(t, strings.HasPrefix(out,
		"[FILE SYSTEM] CRIT | Ref: FSY-READ | cannot read configuration file | Source: open "+path))
	require.True(t, strings.HasSuffix(out, "\n"))
	require.Empty(t, h.logs.String())
}

func TestCheckAll(t *testing.T) {
	h := newHarness(false)
	paths := []string{
		writeFile(t, "ok.yaml", "a: 1\n"),
		writeFile(t, "bad.yaml", "a: [1\n"),
		writeFile(t, "ok.json", `{}`),
		writeFile(t, "bad.toml", "= 1\n"),
	}

	require.Equal(t, 2, h.checker.CheckAll(paths))
	require.Equal(t, 2, strings.Count(h.logs.String(), "configuration rejected"))
}

func TestCLI_Run(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		cli := &CLI{Files: []string{writeFile(t, "ok.toml", "a = 1\n")}}
		require.NoError(t, cli.Run())
	})

	t.Run("rejected files", func(t *testing.T) {
		cli := &CLI{Files: []string{
			writeFile(t, "ok.toml", "a = 1\n"),
			writeFile(t, "bad.json", "{"),
		}}

		err := cli.Run()
		require.Error(t, err)
		require.Equal(t, errors.SeverityWarning, errors.GetSeverity(err))
		require.Equal(t, "[WARN] Ref: CHECK | 1 of 2 files rejected", err.Error())
		require.Equal(t, "1", errors.GetMetadata(err)["rejected"])
	})
}
