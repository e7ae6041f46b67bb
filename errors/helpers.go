package errors

import (
	stderrors "errors"
	"iter"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var unified errors.Error
//	if errors.As(err, &unified) {
//	    ref := unified.Reference()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
// This is a convenience wrapper around the standard library errors.Unwrap.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Cause returns the nested failure attached to err.
// Returns nil if err is nil, is not an Error, or has no cause.
func Cause(err error) error {
	unified, ok := err.(Error) //nolint:errorlint // the cause of err itself, not of its chain
	if !ok {
		return nil
	}
	return unified.Cause()
}

// Chain returns an iterator over err and every nested cause reachable
// through single-error Unwrap methods, outermost first.
//
// Causes are owned values that cannot reference the error wrapping them,
// so the sequence always terminates.
//
// Example:
//
//	for e := range errors.Chain(err) {
//	    fmt.Println(e)
//	}
func Chain(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		for e := err; e != nil; e = stderrors.Unwrap(e) {
			if !yield(e) {
				return
			}
		}
	}
}

// Root returns the innermost error of err's chain.
// Returns nil if err is nil.
func Root(err error) error {
	var root error
	for e := range Chain(err) {
		root = e
	}
	return root
}

// GetSeverity extracts the Severity of the outermost Error in err's chain.
// Returns SeverityInfo if err is nil and SeverityError if the chain holds no
// Error.
//
// Example:
//
//	if errors.GetSeverity(err) == errors.SeverityCritical {
//	    errors.Exit(err)
//	}
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityInfo
	}

	var unified Error
	if stderrors.As(err, &unified) {
		return unified.Severity()
	}

	return SeverityError
}

// GetReference extracts the reference code of the outermost Error in err's
// chain. Returns an empty string if there is none.
func GetReference(err error) string {
	var unified Error
	if err != nil && stderrors.As(err, &unified) {
		return unified.Reference()
	}
	return ""
}

// GetCategory extracts the Category of the outermost Error in err's chain.
// Returns CategoryNone if there is none.
func GetCategory(err error) Category {
	var unified Error
	if err != nil && stderrors.As(err, &unified) {
		return unified.Category()
	}
	return CategoryNone
}

// GetMetadata returns a copy of the metadata of the outermost Error in err's
// chain. Returns nil if there is none.
func GetMetadata(err error) map[string]string {
	var unified Error
	if err != nil && stderrors.As(err, &unified) {
		return unified.Metadata()
	}
	return nil
}
