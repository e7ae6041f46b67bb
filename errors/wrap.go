package errors

import "fmt"

// Wrap converts a lower-level failure into an Error at the given severity.
// The result is a context-only Error built with New that owns err as its
// cause, so errors.Is and errors.As still reach the original failure.
//
// Wrap is the single conversion primitive: the Result Map* methods only fix
// the severity argument. It never terminates the process.
//
// Returns nil if err is nil.
//
// Example:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.SeverityError, "CFG-READ", "failed to read configuration")
//	}
func Wrap(err error, severity Severity, reference, description string) Error {
	if err == nil {
		return nil
	}

	return &unifiedError{
		category:    CategoryNone,
		severity:    severity,
		reference:   reference,
		description: description,
		cause:       err,
	}
}

// Wrapf converts a lower-level failure into an Error with a formatted
// description.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := conn.Dial(); err != nil {
//	    return errors.Wrapf(err, errors.SeverityError, "NET-DIAL", "failed to connect to %s:%d", host, port)
//	}
func Wrapf(err error, severity Severity, reference, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}

	return Wrap(err, severity, reference, fmt.Sprintf(format, args...))
}

// WrapWithMetadata converts a lower-level failure and attaches metadata in a
// single operation. The metadata map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := decode(data); err != nil {
//	    return errors.WrapWithMetadata(err, errors.SeverityWarning, "PARSE-100", "Invalid format", map[string]string{
//	        "filename": name,
//	    })
//	}
func WrapWithMetadata(err error, severity Severity, reference, description string, md map[string]string) Error {
	if err == nil {
		return nil
	}

	// Create defensive copy of metadata
	var metadataCopy map[string]string
	if md != nil {
		metadataCopy = make(map[string]string, len(md))
		for k, v := range md {
			metadataCopy[k] = v
		}
	}

	return &unifiedError{
		category:    CategoryNone,
		severity:    severity,
		reference:   reference,
		description: description,
		metadata:    metadataCopy,
		cause:       err,
	}
}
