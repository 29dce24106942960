package messages

// Filesystem helper messages.
const (
	FsutilCreateTempFailedFmt = "create temp file for %s: %w"
	FsutilWriteTempFailedFmt  = "write temp file for %s: %w"
	FsutilChmodFailedFmt      = "set permissions for %s: %w"
	FsutilRenameFailedFmt     = "replace %s: %w"
)
