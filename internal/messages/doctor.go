package messages

// Doctor messages.
const (
	DoctorUse                      = "doctor [APP_DIR]"
	DoctorShort                    = "Check that the environment is ready for an install"
	DoctorHealthCheckFmt           = "Checking %s\n"
	DoctorCheckNameConfig          = "config"
	DoctorCheckNameAppDir          = "app_dir"
	DoctorConfigLoadFailedFmt      = "failed to load configuration: %v"
	DoctorConfigLoadRecommend      = "Fix the config file or run `ror config init --force` to reset it."
	DoctorConfigDefaults           = "no config file, using defaults"
	DoctorConfigLoadedFmt          = "loaded %s"
	DoctorAppDirMissingFmt         = "%s is not accessible: %v"
	DoctorAppDirNotDirFmt          = "%s is not a directory"
	DoctorAppDirNoGemfileFmt       = "%s has no Gemfile"
	DoctorAppDirNoGemfileRecommend = "Run ror from the root of a Rails application."
	DoctorAppDirOKFmt              = "%s"
	DoctorPreflightPassed          = "ok"
	DoctorStatusOKLabel            = "[OK]  "
	DoctorStatusWarnLabel          = "[WARN]"
	DoctorStatusFailLabel          = "[FAIL]"
	DoctorResultLineFmt            = "%s %s: %s\n"
	DoctorRecommendationPrefix     = "       -> "
	DoctorRecommendationIndent     = "          "
	DoctorFailureSummary           = "Some checks failed. Fix the issues above before installing."
	DoctorSuccessSummary           = "All checks passed."
	DoctorFailureError             = "doctor found failing checks"
)
