package i

// Logger defines the leveled logging surface shared by every component.
type Logger interface {
	// Info logs a routine operational message.
	Info(msg string)

	// Warning logs a recoverable anomaly.
	Warning(msg string)

	// Error logs a failure that degraded or aborted an operation.
	Error(msg string)
}
