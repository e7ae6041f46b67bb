package errors

import (
	"log/slog"
	"slices"
)

// LogValue implements slog.LogValuer so that errors render as a structured
// group when passed to a slog logger:
//
//	slog.Warn("config rejected", "error", err)
//
// The group holds reference, severity, category (when set), description,
// metadata (when present, keys sorted) and cause (when present). This package
// never logs on its own.
func (e *unifiedError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs,
		slog.String("reference", e.reference),
		slog.String("severity", e.severity.Name()),
	)
	if e.category != CategoryNone {
		attrs = append(attrs, slog.String("category", string(e.category)))
	}
	attrs = append(attrs, slog.String("description", e.description))

	if len(e.metadata) > 0 {
		keys := make([]string, 0, len(e.metadata))
		for k := range e.metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		md := make([]any, 0, len(keys))
		for _, k := range keys {
			md = append(md, slog.String(k, e.metadata[k]))
		}
		attrs = append(attrs, slog.Group("metadata", md...))
	}

	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}

	return slog.GroupValue(attrs...)
}
