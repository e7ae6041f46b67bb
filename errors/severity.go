package errors

// Severity classifies the urgency of an error.
// The set is closed; the order only drives formatting tags and is not a
// numeric comparison contract.
type Severity int

const (
	// SeverityCritical marks failures the application cannot continue from.
	SeverityCritical Severity = iota

	// SeverityError marks failures of the requested operation.
	SeverityError

	// SeverityWarning marks degraded results the caller may accept.
	SeverityWarning

	// SeverityInfo marks informational, fully recoverable conditions.
	SeverityInfo
)

// String returns the short tag used in formatted output.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRIT"
	case SeverityError:
		return "ERR"
	case SeverityWarning:
		return "WARN"
	case SeverityInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// Name returns the lowercase severity name used in structured log output.
func (s Severity) Name() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// defaultSeverities maps categories to the severity their constructors use.
// CategoryUnknown is absent: its constructor takes the severity explicitly.
var defaultSeverities = map[Category]Severity{
	CategoryNetwork:    SeverityError,
	CategoryDataFormat: SeverityError,
	CategoryFileSystem: SeverityError,
	CategoryExternal:   SeverityError,
	CategoryAuth:       SeverityError,
}

// getDefaultSeverity returns the default severity for a category.
// Returns SeverityError if the category has no entry.
func getDefaultSeverity(category Category) Severity {
	if sev, ok := defaultSeverities[category]; ok {
		return sev
	}
	return SeverityError
}
