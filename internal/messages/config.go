package messages

// Configuration messages.
const (
	ConfigValidationFailed         = "config validation failed"
	ConfigLoadDefaultsFailedFmt    = "failed to load default config: %w"
	ConfigLoadFileFailedFmt        = "failed to load config from %s: %w"
	ConfigLoadEnvFailedFmt         = "failed to load config from environment: %w"
	ConfigUnmarshalFailedFmt       = "failed to decode config: %w"
	ConfigMissingFileFmt           = "config file %s not found: %w"
	ConfigExpandPathFailedFmt      = "expand path %s: %w"
	ConfigNegativeTimeoutFmt       = "command_timeout must not be negative (got %s)"
	ConfigEmptyToolFmt             = "%s[%d] must not be empty"
	ConfigMinNodeVersionInvalidFmt = "preflight.min_node_version: %w"
	ConfigManifestPathRequired     = "assets.manifest_path is required when assets.use_manifest is true"
	ConfigMarshalFailedFmt         = "failed to encode config: %w"
	ConfigFileExistsFmt            = "%s already exists; re-run with --force to overwrite"
	ConfigStatFailedFmt            = "failed to check %s: %w"
)
