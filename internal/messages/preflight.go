package messages

// Preflight messages. The "** " prefix marks installer diagnostics.
const (
	PreflightToolRequired        = "tool name is required"
	PreflightRunnerRequired      = "process runner is required"
	PreflightProbeFailedFmt      = "look up %s: %w"
	PreflightToolMissingFmt      = "** %s is required. Please install it before continuing."
	PreflightToolAdvisedFmt      = "** %s is advised. Please consider installing it."
	PreflightMessageWithCauseFmt = "%s (%v)"
	PreflightUncommittedChanges  = "** You have uncommitted code. Please commit or stash your changes before continuing"

	PreflightVersionCommandFailedFmt = "could not read %s version"
	PreflightVersionUnknownFmt       = "** could not determine the %s version: %v"
	PreflightVersionUnparsedFmt      = "** could not find a version in the output of %q for %s"
	PreflightToolOutdatedFmt         = "** %s %s is older than the recommended %s. Please consider upgrading."
)
