package messages

// Generation step messages.
const (
	StepsNilStep                 = "step is required"
	StepsDuplicateFmt            = "step %s is already registered"
	StepsAppDirRequired          = "app directory is required"
	StepsReadTemplateFailedFmt   = "failed to read template %s: %w"
	StepsReadFailedFmt           = "failed to read %s: %w"
	StepsCreateDirFailedFmt      = "failed to create directory for %s: %w"
	StepsWriteFailedFmt          = "failed to write %s: %w"
	StepsGitignoreMalformedFmt   = "managed block in %s is malformed: %w"
	StepsGitignoreDuplicateStart = "duplicate managed block start marker"
	StepsGitignoreMissingEnd     = "managed block end marker is missing"

	// StepsActionLineFmt mirrors the Rails generator layout: right-aligned action, then path.
	StepsActionLineFmt    = "%12s  %s\n"
	StepsDiffTruncatedFmt = "... (truncated to %d lines)"
)
