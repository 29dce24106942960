package messages

// Process runner messages.
const (
	ProcCommandRequired      = "command is required"
	ProcCanceledFmt          = "command %q canceled: %w"
	ProcStartFailedFmt       = "failed to run %q: %w"
	ProcCommandErrorFmt      = "%s: command %q failed with exit status %d"
	ProcCommandErrorCauseFmt = "%s: command %q could not run: %v"
	ProcTimeoutFmt           = "command %q timed out after %s"

	// ProcBannerTitle heads the fatal diagnostic block.
	ProcBannerTitle         = "React on Rails FATAL ERROR!"
	ProcBannerCommandFmt    = "cmd: %s\n"
	ProcBannerStdoutFmt     = "stdout: %s\n"
	ProcBannerStderrFmt     = "stderr: %s\n"
	ProcBannerExitStatusFmt = "exitstatus: %s\n"
	ProcBannerTimedOut      = "timed out"
)

// Version comparison messages.
const (
	VersionsInvalidFmt = "invalid version %q: %w"
)
