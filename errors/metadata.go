package errors

// ReferenceUnclassified is the reference given to plain errors lifted into
// the unified model by the With* builders.
const ReferenceUnclassified = "UNCLASSIFIED"

// lift returns err as a *unifiedError.
// Errors that are not an Error become a context-only error with
// SeverityError, ReferenceUnclassified and err as the cause. Only err itself
// is inspected so that wrapping added with fmt.Errorf is not lost.
func lift(err error) *unifiedError {
	unified, ok := err.(Error) //nolint:errorlint // only the outermost value is lifted
	if !ok {
		return &unifiedError{
			category:    CategoryNone,
			severity:    SeverityError,
			reference:   ReferenceUnclassified,
			description: err.Error(),
			cause:       err,
		}
	}

	if u, ok := unified.(*unifiedError); ok {
		return u
	}

	// Foreign Error implementation: copy through the interface.
	return &unifiedError{
		category:    unified.Category(),
		severity:    unified.Severity(),
		reference:   unified.Reference(),
		description: unified.Description(),
		metadata:    unified.Metadata(),
		cause:       unified.Cause(),
	}
}

// WithMetadata adds a single metadata field to an error.
// Returns a new Error with the field set; an existing value for key is
// overwritten. The original error is unchanged.
//
// If err is not an Error, it is lifted to one with ReferenceUnclassified.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.SeverityWarning, "PARSE-100", "Invalid format")
//	err = errors.WithMetadata(err, "filename", "data.json")
//	err = errors.WithMetadata(err, "line", "42")
func WithMetadata(err error, key, value string) Error {
	if err == nil {
		return nil
	}

	base := lift(err)
	newMetadata := make(map[string]string, len(base.metadata)+1)
	for k, v := range base.metadata {
		newMetadata[k] = v
	}
	newMetadata[key] = value

	out := base.clone()
	out.metadata = newMetadata
	return out
}

// WithMetadataMap adds multiple metadata fields to an error.
// Existing fields are preserved; fields in md override existing ones with
// the same key. The map is copied to prevent external mutation.
//
// If err is not an Error, it is lifted to one with ReferenceUnclassified.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithMetadataMap(err, map[string]string{
//	    "host": "db-1",
//	    "port": "5432",
//	})
func WithMetadataMap(err error, md map[string]string) Error {
	if err == nil {
		return nil
	}

	base := lift(err)
	newMetadata := make(map[string]string, len(base.metadata)+len(md))
	for k, v := range base.metadata {
		newMetadata[k] = v
	}
	for k, v := range md {
		newMetadata[k] = v
	}

	out := base.clone()
	out.metadata = newMetadata
	return out
}

// WithCause returns a copy of err owning cause as its nested failure.
// Calling WithCause on an error that already has a cause replaces it in the
// returned copy; the original error keeps its cause.
//
// A nil cause leaves the cause unchanged. If err is not an Error, it is
// lifted to one with ReferenceUnclassified. Returns nil if err is nil.
//
// Example:
//
//	err := errors.Network("TIMEOUT", "Connection timed out")
//	err = errors.WithCause(err, ioErr)
func WithCause(err, cause error) Error {
	if err == nil {
		return nil
	}

	base := lift(err)
	if cause == nil {
		return base
	}

	out := base.clone()
	out.cause = cause
	return out
}
