package errors

import (
	"io"
	"os"
	"strings"
)

// ExitCode is the status a Terminator exits with by default.
// It is the byte-sized rendering of -1 (all bits set).
const ExitCode = 255

// Terminator reports a failure on the process error stream and ends the
// process. It is the only part of this package with side effects and is
// always invoked explicitly at a call site designated non-recoverable.
type Terminator struct {
	out  io.Writer
	exit func(int)
	code int
}

// TerminatorOption configures a Terminator.
type TerminatorOption func(*Terminator)

// WithOutput sets the stream the report is written to.
// Defaults to os.Stderr.
func WithOutput(w io.Writer) TerminatorOption {
	return func(t *Terminator) {
		t.out = w
	}
}

// WithExitFunc replaces os.Exit. Intended for tests.
func WithExitFunc(fn func(int)) TerminatorOption {
	return func(t *Terminator) {
		t.exit = fn
	}
}

// WithExitCode sets the exit status. Defaults to ExitCode.
func WithExitCode(code int) TerminatorOption {
	return func(t *Terminator) {
		t.code = code
	}
}

// NewTerminator creates a Terminator writing to os.Stderr and exiting with
// ExitCode unless configured otherwise.
func NewTerminator(opts ...TerminatorOption) *Terminator {
	t := &Terminator{
		out:  os.Stderr,
		exit: os.Exit,
		code: ExitCode,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// lineBreaks flattens a report onto a single line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// defaultTerminator backs Exit, OrExit and Result.OrExit.
var defaultTerminator = NewTerminator()

// Terminate writes exactly one formatted line for err and exits.
// It returns immediately when err is nil.
//
// Line breaks inside the formatted error, typically from a multi-line
// cause, are replaced with spaces so the report stays on one line.
// The line is written with a single Write call so concurrent writers cannot
// interleave with it. Write failures are ignored: the process is ending and
// there is nowhere left to report them. No cleanup is performed; deferred
// functions of the caller do not run.
//
// If the configured exit function returns, Terminate panics with err so
// that control never resumes at the call site.
func (t *Terminator) Terminate(err error) {
	if err == nil {
		return
	}

	line := lineBreaks.Replace(Format(err)) + "\n"
	_, _ = io.WriteString(t.out, line)

	t.exit(t.code)
	panic(err)
}

// Code returns the exit status used by the Terminator.
func (t *Terminator) Code() int {
	return t.code
}

// Exit terminates the process through the default Terminator when err is
// not nil. It returns normally when err is nil.
//
// Example:
//
//	cfg, err := loadConfig(path)
//	errors.Exit(errors.Wrap(err, errors.SeverityCritical, "CFG-LOAD", "cannot start without configuration"))
func Exit(err error) {
	defaultTerminator.Terminate(err)
}

// OrExit returns value when err is nil and otherwise terminates the process
// through the default Terminator. It accepts a conventional (value, error)
// pair directly:
//
//	f := errors.OrExit(os.Open(path))
func OrExit[T any](value T, err error) T {
	defaultTerminator.Terminate(err)
	return value
}
