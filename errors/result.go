package errors

// Result carries either a success value or a failure.
// It is the ecosystem's standard fallible return shape for pipelines that
// convert and optionally terminate in a single expression:
//
//	port := errors.Of(strconv.Atoi(raw)).
//	    MapError("CFG-PORT", "invalid port").
//	    OrExit()
//
// A Result is a plain value; methods never mutate the receiver.
type Result[T any] struct {
	value T
	err   error
}

// Of builds a Result from a conventional (value, error) pair.
func Of[T any](value T, err error) Result[T] {
	return Result[T]{value: value, err: err}
}

// Ok builds a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail builds a failed Result.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Get returns the conventional (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Value returns the success value, or the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// IsOk reports whether the Result holds a success value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Convert lifts a failure into an Error with the given severity, reference
// and description, attaching the original failure as the cause.
// A successful Result is returned unchanged and no Error is allocated.
// Convert always returns a recoverable Result; it never terminates.
func (r Result[T]) Convert(severity Severity, reference, description string) Result[T] {
	if r.err == nil {
		return r
	}
	return Result[T]{value: r.value, err: Wrap(r.err, severity, reference, description)}
}

// MapInfo is Convert with SeverityInfo.
func (r Result[T]) MapInfo(reference, description string) Result[T] {
	return r.Convert(SeverityInfo, reference, description)
}

// MapWarning is Convert with SeverityWarning.
func (r Result[T]) MapWarning(reference, description string) Result[T] {
	return r.Convert(SeverityWarning, reference, description)
}

// MapError is Convert with SeverityError.
// It does not terminate; chain OrExit to make termination explicit.
func (r Result[T]) MapError(reference, description string) Result[T] {
	return r.Convert(SeverityError, reference, description)
}

// MapCritical is Convert with SeverityCritical.
// It does not terminate; chain OrExit to make termination explicit.
func (r Result[T]) MapCritical(reference, description string) Result[T] {
	return r.Convert(SeverityCritical, reference, description)
}

// MapWith converts a failure using fn, typically a categorized constructor:
//
//	r.MapWith(func(cause error) errors.Error {
//	    return errors.External("FS-404", "Storage operation failed", cause)
//	})
//
// A successful Result is returned unchanged and fn is not called.
func (r Result[T]) MapWith(fn func(cause error) Error) Result[T] {
	if r.err == nil {
		return r
	}
	converted := fn(r.err)
	if converted == nil {
		return r
	}
	return Result[T]{value: r.value, err: converted}
}

// OrExit returns the success value, or reports the failure and terminates
// the process through the default Terminator. It never returns on failure.
func (r Result[T]) OrExit() T {
	return r.OrExitWith(defaultTerminator)
}

// OrExitWith is OrExit with an explicit Terminator.
// A nil Terminator falls back to the default one.
func (r Result[T]) OrExitWith(t *Terminator) T {
	if t == nil {
		t = defaultTerminator
	}
	if r.err != nil {
		t.Terminate(r.err)
	}
	return r.value
}
