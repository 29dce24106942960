package messages

// Bundle asset path messages.
const (
	AssetsNotConfigured                = "generated assets directory is not configured"
	AssetsBundleNameRequired           = "bundle name is required"
	AssetsBundleNotConfiguredFmt       = "resolve bundle %s: %w"
	AssetsServerBundleNotConfiguredFmt = "server bundle: %w"
	AssetsManifestReadFailedFmt        = "read manifest %s: %w"
	AssetsManifestParseFailedFmt       = "parse manifest %s: %w"
)
