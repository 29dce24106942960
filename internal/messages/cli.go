package messages

// Root command and version output.
const (
	RootUse             = "ror"
	RootShort           = "Install React on Rails into a Rails application"
	RootLong            = "ror checks the local toolchain and working tree, then generates the React on Rails files selected by the install options."
	RootVerboseUsage    = "increase log verbosity (-v info, -vv debug, -vvv trace)"
	RootConfigUsage     = "config file to load instead of APP_DIR/.ror.toml"
	VersionTemplate     = "{{.Version}}\n"
	VersionCommitFmt    = "commit %s"
	VersionBuildFmt     = "built %s"
	VersionFullFmt      = "%s (%s)"
	AppDirResolveFmt    = "failed to resolve app directory %s: %w"
	WorkingDirFailedFmt = "failed to determine working directory: %w"
)

// install command.
const (
	InstallUse                 = "install [APP_DIR]"
	InstallShort               = "Run preflight checks and generate React on Rails files"
	InstallFlagRedux           = "generate a Redux store, reducers and container"
	InstallFlagNoRedux         = "generate a plain component even when config enables Redux"
	InstallFlagServerRendering = "configure server-side rendering"
	InstallFlagNoServer        = "disable server-side rendering even when config enables it"
	InstallFlagSkipJSLinters   = "skip the JavaScript linter setup"
	InstallFlagRubyLinters     = "install rubocop setup"
	InstallFlagForce           = "overwrite files that differ from the generated version"
	InstallFlagDryRun          = "run preflight and print the plan without writing files"
	InstallFlagInteractive     = "choose install options in an interactive form"
	InstallFlagTimeout         = "timeout for each external command (0 disables)"
	InstallConflictingFlagsFmt = "--%s and --%s cannot be used together"
	InstallNegativeTimeoutFmt  = "--timeout must not be negative, got %s"
	InstallCompleteFmt         = "React on Rails installed: %s\n"
	InstallDryRunCompleteFmt   = "Dry run complete: %d steps planned\n"
	InstallCancelledNotice     = "Install cancelled, nothing was written."
)

// plan command.
const (
	PlanUse   = "plan"
	PlanShort = "Print the generation steps for the given options"
)

// bundle-path command.
const (
	BundlePathUse        = "bundle-path NAME [APP_DIR] | --server [APP_DIR]"
	BundlePathShort      = "Print where a compiled bundle is served from"
	BundlePathFlagServer = "print the configured server rendering bundle instead of NAME"
)

// config commands.
const (
	ConfigUse           = "config"
	ConfigShort         = "Manage the .ror.toml configuration"
	ConfigInitUse       = "init [APP_DIR]"
	ConfigInitShort     = "Write a default .ror.toml"
	ConfigInitForce     = "overwrite an existing config file"
	ConfigInitWroteFmt  = "Wrote %s\n"
	ConfigShowUse       = "show [APP_DIR]"
	ConfigShowShort     = "Print the resolved configuration"
	ConfigShowSourceFmt = "# source: %s\n"
	ConfigShowDefaults  = "# source: built-in defaults and environment"
)

// App root discovery.
const (
	RootResolveFailedFmt = "failed to resolve %s: %w"
	RootMarkerIsDirFmt   = "%s is a directory, expected a file"
	RootStatFailedFmt    = "failed to stat %s: %w"
)
