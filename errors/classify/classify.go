package classify

import (
	"github.com/ephais/go/errors"
)

// Classifier recognizes failures from a single source.
//
// Classify returns the category for err, optional metadata describing it,
// and whether err was recognized at all. Implementations must inspect the
// whole chain (errors.Is, errors.As) rather than only err itself.
type Classifier interface {
	Classify(err error) (errors.Category, map[string]string, bool)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(err error) (errors.Category, map[string]string, bool)

// Classify calls f(err).
func (f ClassifierFunc) Classify(err error) (errors.Category, map[string]string, bool) {
	return f(err)
}

// Registry is an ordered, immutable list of classifiers.
// It is safe for concurrent use.
type Registry struct {
	classifiers []Classifier
}

// NewRegistry creates a Registry consulting classifiers in order.
func NewRegistry(classifiers ...Classifier) *Registry {
	cs := make([]Classifier, len(classifiers))
	copy(cs, classifiers)
	return &Registry{classifiers: cs}
}

// defaultRegistry checks the most specific sources first: library
// sentinels before generic network and file system types, and those before
// decoder errors that may wrap them.
var defaultRegistry = NewRegistry(
	Git(),
	GitHub(),
	Network(),
	FileSystem(),
	YAML(),
	TOML(),
	Std(),
)

// Default returns the registry used by the package-level functions.
func Default() *Registry {
	return defaultRegistry
}

// With returns a new Registry that consults classifiers before the ones
// already registered.
func (r *Registry) With(classifiers ...Classifier) *Registry {
	cs := make([]Classifier, 0, len(classifiers)+len(r.classifiers))
	cs = append(cs, classifiers...)
	cs = append(cs, r.classifiers...)
	return &Registry{classifiers: cs}
}

// Classify returns the category of err and the metadata the matching
// classifier extracted.
//
// If err already carries a categorized errors.Error anywhere in its chain,
// even beneath context-only errors, that category is kept. Returns CategoryNone for a nil err and CategoryUnknown
// when no classifier matches.
func (r *Registry) Classify(err error) (errors.Category, map[string]string) {
	if err == nil {
		return errors.CategoryNone, nil
	}

	if category := existingCategory(err); category != errors.CategoryNone {
		return category, nil
	}

	for _, c := range r.classifiers {
		if category, md, ok := c.Classify(err); ok {
			return category, md
		}
	}

	return errors.CategoryUnknown, nil
}

// existingCategory returns the category of the first categorized Error in
// err's chain. Context-only errors added by errors.Wrap are skipped.
func existingCategory(err error) errors.Category {
	for e := range errors.Chain(err) {
		if unified, ok := e.(errors.Error); ok && unified.Category() != errors.CategoryNone { //nolint:errorlint // Chain already walks the wrapping
			return unified.Category()
		}
	}
	return errors.CategoryNone
}

// Wrap converts err into a categorized errors.Error owning err as its cause.
// The category and metadata come from Classify; severity, reference and
// description are used as given. The reference receives the category prefix.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := yaml.Unmarshal(data, &cfg); err != nil {
//	    return registry.Wrap(err, errors.SeverityWarning, "CONFIG", "invalid configuration")
//	}
//	// [DATA FORMAT] WARN | Ref: FMT-CONFIG | invalid configuration | Source: yaml: line 3: ...
func (r *Registry) Wrap(err error, severity errors.Severity, reference, description string) errors.Error {
	if err == nil {
		return nil
	}

	category, md := r.Classify(err)
	converted := errors.FromCategory(category, severity, reference, description, err)
	if len(md) > 0 {
		converted = errors.WithMetadataMap(converted, md)
	}
	return converted
}

// Converter returns a function suitable for errors.Result.MapWith.
//
// Example:
//
//	data := errors.Of(os.ReadFile(path)).
//	    MapWith(registry.Converter(errors.SeverityError, "CONFIG", "cannot read configuration")).
//	    OrExit()
func (r *Registry) Converter(severity errors.Severity, reference, description string) func(error) errors.Error {
	return func(cause error) errors.Error {
		return r.Wrap(cause, severity, reference, description)
	}
}

// Classify classifies err with the default registry.
func Classify(err error) (errors.Category, map[string]string) {
	return defaultRegistry.Classify(err)
}

// Wrap converts err with the default registry.
// Returns nil if err is nil.
func Wrap(err error, severity errors.Severity, reference, description string) errors.Error {
	return defaultRegistry.Wrap(err, severity, reference, description)
}

// Map converts the failure of r with the default registry.
// A successful Result is returned unchanged.
func Map[T any](r errors.Result[T], severity errors.Severity, reference, description string) errors.Result[T] {
	return r.MapWith(defaultRegistry.Converter(severity, reference, description))
}
