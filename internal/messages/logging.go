package messages

// Logging messages.
const (
	LoggingConsoleOnly        = "log file unavailable, logging to console only"
	LoggingCreateDirFailedFmt = "create log directory: %w"
	LoggingOpenFileFailedFmt  = "open log file: %w"
)
