package logger

// Expose the error formatting helpers to the external test package.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
