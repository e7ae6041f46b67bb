package errors

import (
	"maps"
	"strings"
)

// ErrorContext is the payload shared by every error occurrence.
type ErrorContext struct {
	// Reference is a short stable identifier, unique enough to grep for.
	// Uniqueness is never validated; callers choose codes.
	Reference string

	// Severity is fixed at construction.
	Severity Severity

	// Description is the human-readable explanation.
	Description string

	// Metadata holds observational key/value pairs. It is never
	// interpreted by this package and never shown by Format.
	Metadata map[string]string
}

// String renders the context as "SEV | Ref: REF | DESC".
func (c ErrorContext) String() string {
	return c.Severity.String() + " | Ref: " + c.Reference + " | " + c.Description
}

// unifiedError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type unifiedError struct {
	category    Category
	severity    Severity
	reference   string
	description string
	metadata    map[string]string
	cause       error
}

// Error returns the formatted error line.
//
// Context-only errors render as "[SEV] Ref: REF | DESC" and never show their
// cause. Categorized errors render as "[CAT] SEV | Ref: REF | DESC" followed
// by " | Source: CAUSE" when a cause is attached. Metadata is never included.
func (e *unifiedError) Error() string {
	var b strings.Builder
	if e.category == CategoryNone {
		b.WriteString("[")
		b.WriteString(e.severity.String())
		b.WriteString("] Ref: ")
		b.WriteString(e.reference)
		b.WriteString(" | ")
		b.WriteString(e.description)
		return b.String()
	}

	b.WriteString("[")
	b.WriteString(string(e.category))
	b.WriteString("] ")
	b.WriteString(e.severity.String())
	b.WriteString(" | Ref: ")
	b.WriteString(e.reference)
	b.WriteString(" | ")
	b.WriteString(e.description)
	if e.cause != nil {
		b.WriteString(" | Source: ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Severity returns the error severity.
func (e *unifiedError) Severity() Severity {
	return e.severity
}

// Reference returns the reference code.
func (e *unifiedError) Reference() string {
	return e.reference
}

// Description returns the description.
func (e *unifiedError) Description() string {
	return e.description
}

// Category returns the variant tag.
func (e *unifiedError) Category() Category {
	return e.category
}

// Context returns the shared payload with a copy of the metadata.
func (e *unifiedError) Context() ErrorContext {
	return ErrorContext{
		Reference:   e.reference,
		Severity:    e.severity,
		Description: e.description,
		Metadata:    e.Metadata(),
	}
}

// Metadata returns a defensive copy of the metadata map.
// Returns nil if no metadata has been attached (maintains immutability).
func (e *unifiedError) Metadata() map[string]string {
	if e.metadata == nil {
		return nil
	}
	return maps.Clone(e.metadata)
}

// Cause returns the nested failure.
func (e *unifiedError) Cause() error {
	return e.cause
}

// Unwrap returns the nested failure for standard library compatibility.
func (e *unifiedError) Unwrap() error {
	return e.cause
}

// clone returns a shallow copy sharing the metadata map.
// Callers that modify metadata must replace the map, never mutate it.
func (e *unifiedError) clone() *unifiedError {
	c := *e
	return &c
}

// Format returns the formatted line for any error.
// Returns an empty string for nil and err.Error() for errors that are not
// an Error.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
