package errors

// Error is the unified failure value shared by every ecosystem component.
//
// An Error carries a severity, a stable reference code, a human-readable
// description, optional string metadata and an optional nested cause. It is
// immutable once constructed: the With* builders return new values.
//
// Error is compatible with the standard library error helpers (errors.Is,
// errors.As, errors.Unwrap) through Unwrap.
type Error interface {
	error

	// Severity returns the classification level fixed at construction.
	Severity() Severity

	// Reference returns the stable reference code, including any
	// category prefix.
	Reference() string

	// Description returns the human-readable explanation.
	Description() string

	// Category returns the variant tag, or CategoryNone for context-only
	// errors.
	Category() Category

	// Context returns a copy of the shared error payload.
	Context() ErrorContext

	// Metadata returns a copy of the attached metadata.
	// Returns nil if no metadata has been attached.
	Metadata() map[string]string

	// Cause returns the nested failure, or nil if none was attached.
	Cause() error

	// Unwrap returns the nested failure for errors.Is and errors.As.
	Unwrap() error
}
