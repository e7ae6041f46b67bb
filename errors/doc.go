// Package errors provides the unified error model for ecosystem components.
//
// Every component describes failures with the same vocabulary: a severity,
// a stable reference code, a human-readable description, optional string
// metadata and an optional nested cause. Logs, CLI output and error-handling
// code therefore behave the same regardless of which component raised the
// error. The package stays compatible with the standard library errors
// package (errors.Is, errors.As, errors.Unwrap).
//
// # Features
//
//   - Closed set of severities (Critical, Error, Warning, Info)
//   - Optional category tag (Network, DataFormat, FileSystem, Unknown,
//     External, Auth) with reference prefixes
//   - Immutable errors with copy-on-write metadata and cause builders
//   - Conversion of arbitrary lower-level failures into the unified model
//   - Explicit, opt-in process termination for non-recoverable call sites
//   - Structured rendering for log/slog
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.SeverityWarning, "PARSE-100", "Invalid format")
//	fmt.Println(err) // [WARN] Ref: PARSE-100 | Invalid format
//
//	err := errors.External("FS-404", "Storage operation failed", cause)
//	fmt.Println(err)
//	// [EXTERNAL] ERR | Ref: EXT-FS-404 | Storage operation failed | Source: File not found
//
// Adding metadata:
//
//	err = errors.WithMetadata(err, "filename", "data.json")
//	err = errors.WithMetadata(err, "line", "42")
//
// Metadata is never part of the formatted line. Read it with Metadata or
// render the error through slog.
//
// Converting lower-level failures:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.SeverityError, "CFG-READ", "failed to read configuration")
//	}
//
// Or with Result:
//
//	n, err := errors.Of(strconv.Atoi(raw)).MapInfo("CFG-RETRIES", "invalid retry count").Get()
//
// # Termination Policy
//
// Conversion never ends the process, whatever the severity. Call sites that
// cannot recover opt in explicitly:
//
//	port := errors.Of(strconv.Atoi(raw)).
//	    MapError("CFG-PORT", "invalid port").
//	    OrExit()
//
// On failure exactly one formatted line is written to os.Stderr and the
// process exits with ExitCode (255). Deferred functions do not run. Use a
// Terminator built with NewTerminator to change the stream, the exit code or
// the exit function.
//
// # Cause Chains
//
// Causes are owned by the error wrapping them and builders always return new
// values, so a chain can never loop back on itself:
//
//	for e := range errors.Chain(err) {
//	    fmt.Println(e)
//	}
//
// # Classification
//
// The classify subpackage picks a category for failures coming from the
// standard library and common third-party libraries.
package errors
