package errors

// Category tags an error with the kind of failure it represents.
// Categories are informational: they select the formatting tag and the
// reference prefix but never change conversion or termination policy.
type Category string

const (
	// CategoryNone marks a context-only error without a variant tag.
	CategoryNone Category = ""

	// CategoryNetwork indicates a network operation failed.
	CategoryNetwork Category = "NETWORK"

	// CategoryDataFormat indicates input could not be parsed or decoded.
	CategoryDataFormat Category = "DATA FORMAT"

	// CategoryFileSystem indicates a file system operation failed.
	// Errors in this category are expected to carry a cause.
	CategoryFileSystem Category = "FILE SYSTEM"

	// CategoryUnknown indicates an unclassified failure.
	CategoryUnknown Category = "UNKNOWN"

	// CategoryExternal indicates a failure inside an external library or
	// service. Errors in this category are expected to carry a cause.
	CategoryExternal Category = "EXTERNAL"

	// CategoryAuth indicates an authentication or authorization failure.
	CategoryAuth Category = "AUTH"
)

// referencePrefixes maps each category to the prefix its constructors add
// to reference codes.
var referencePrefixes = map[Category]string{
	CategoryNetwork:    "NET-",
	CategoryDataFormat: "FMT-",
	CategoryFileSystem: "FSY-",
	CategoryUnknown:    "UNK-",
	CategoryExternal:   "EXT-",
	CategoryAuth:       "AUTH-",
}

// Prefix returns the reference prefix for the category.
// Returns an empty string for CategoryNone and unrecognized values.
func (c Category) Prefix() string {
	return referencePrefixes[c]
}

// RequiresCause reports whether errors of this category must wrap a cause.
func (c Category) RequiresCause() bool {
	return c == CategoryFileSystem || c == CategoryExternal
}

// Valid reports whether c is one of the closed set of categories,
// including CategoryNone.
func (c Category) Valid() bool {
	if c == CategoryNone {
		return true
	}
	_, ok := referencePrefixes[c]
	return ok
}
