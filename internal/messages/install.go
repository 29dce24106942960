package messages

// Installation orchestrator messages.
const (
	InstallLockHeld             = "another installation is already running for this app"
	InstallLockHeldFmt          = "%w: %s (lock %s)"
	InstallLockDirFailedFmt     = "create lock directory for %s: %w"
	InstallLockFailedFmt        = "acquire install lock %s: %w"
	InstallLockReleaseFailedFmt = "release install lock %s: %w"
	InstallStepNotRegistered    = "no implementation registered"
	InstallAlreadyRun           = "installer has already run"
	InstallPreflightRequired    = "preflight checker is required"
	InstallStepsRequired        = "step registry is required"
	InstallAppDirRequired       = "app directory is required"
	InstallAppDirInvalidFmt     = "resolve app directory %s: %w"
	InstallPreflightBlockedFmt  = "installation prerequisites not met (%d fatal)"
	InstallStepFailedFmt        = "step %s failed: %v"
	InstallStepHeaderFmt        = "==> %s\n"
	InstallDryRunPlanFmt        = "Dry run, no files written. Plan: %s\n"
)
