package errors

import "fmt"

// New creates a context-only Error with the given severity, reference and
// description. The error has no metadata, no cause and no category.
//
// Example:
//
//	err := errors.New(errors.SeverityWarning, "PARSE-100", "Invalid format")
//	fmt.Println(err) // [WARN] Ref: PARSE-100 | Invalid format
func New(severity Severity, reference, description string) Error {
	return &unifiedError{
		category:    CategoryNone,
		severity:    severity,
		reference:   reference,
		description: description,
	}
}

// Newf creates a context-only Error with a formatted description.
//
// Example:
//
//	err := errors.Newf(errors.SeverityError, "CFG-PORT", "port out of range: %d", port)
func Newf(severity Severity, reference, format string, args ...interface{}) Error {
	return New(severity, reference, fmt.Sprintf(format, args...))
}

// FromCategory creates a categorized Error. The reference is prefixed with
// the category prefix (for example "NET-" for CategoryNetwork).
//
// CategoryFileSystem and CategoryExternal errors are expected to carry a
// cause; a nil cause is recorded as absent. Passing CategoryNone yields the
// same result as New followed by WithCause.
func FromCategory(category Category, severity Severity, reference, description string, cause error) Error {
	return &unifiedError{
		category:    category,
		severity:    severity,
		reference:   category.Prefix() + reference,
		description: description,
		cause:       cause,
	}
}

// Network creates a network Error without a cause.
// Use WithCause to attach the underlying failure.
//
// Example:
//
//	err := errors.Network("TIMEOUT", "Connection timed out")
//	fmt.Println(err) // [NETWORK] ERR | Ref: NET-TIMEOUT | Connection timed out
func Network(reference, description string) Error {
	return FromCategory(CategoryNetwork, getDefaultSeverity(CategoryNetwork), reference, description, nil)
}

// DataFormat creates a data format Error without a cause.
func DataFormat(reference, description string) Error {
	return FromCategory(CategoryDataFormat, getDefaultSeverity(CategoryDataFormat), reference, description, nil)
}

// Auth creates an authentication or authorization Error without a cause.
func Auth(reference, description string) Error {
	return FromCategory(CategoryAuth, getDefaultSeverity(CategoryAuth), reference, description, nil)
}

// Unknown creates an unclassified Error with a caller-chosen severity.
func Unknown(reference, description string, severity Severity) Error {
	return FromCategory(CategoryUnknown, severity, reference, description, nil)
}

// FileSystem creates a file system Error wrapping the failure that caused it.
//
// Example:
//
//	if _, err := os.Stat(path); err != nil {
//	    return errors.FileSystem("PERM", "Cannot access file", err)
//	}
func FileSystem(reference, description string, cause error) Error {
	return FromCategory(CategoryFileSystem, getDefaultSeverity(CategoryFileSystem), reference, description, cause)
}

// External creates an Error for a failure inside an external library or
// service, wrapping the failure that caused it.
//
// Example:
//
//	err := errors.External("FS-404", "Storage operation failed", cause)
//	fmt.Println(err)
//	// [EXTERNAL] ERR | Ref: EXT-FS-404 | Storage operation failed | Source: File not found
func External(reference, description string, cause error) Error {
	return FromCategory(CategoryExternal, getDefaultSeverity(CategoryExternal), reference, description, cause)
}
