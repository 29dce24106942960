// Package doctor turns configuration, app directory and preflight state into
// status lines for `ror doctor`.
package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/ror-installer/internal/config"
	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/preflight"
)

// Status is the severity of a doctor result.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one doctor line.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// Preflight runs the environment checks.
type Preflight interface {
	CheckAll(ctx context.Context) preflight.Report
}

// CheckConfig reports how configuration was resolved. cfg is nil when loadErr is set.
func CheckConfig(cfg *config.Config, loadErr error) Result {
	if loadErr != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, loadErr),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}
	}
	if cfg == nil || cfg.Source == "" {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   messages.DoctorConfigDefaults,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, cfg.Source),
	}
}

// CheckAppDir verifies appDir is a directory and looks like a Rails app.
func CheckAppDir(appDir string) Result {
	info, err := os.Stat(appDir)
	if err != nil {
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameAppDir,
			Message:   fmt.Sprintf(messages.DoctorAppDirMissingFmt, appDir, err),
		}
	}
	if !info.IsDir() {
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameAppDir,
			Message:   fmt.Sprintf(messages.DoctorAppDirNotDirFmt, appDir),
		}
	}
	if _, err := os.Stat(filepath.Join(appDir, "Gemfile")); err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameAppDir,
			Message:        fmt.Sprintf(messages.DoctorAppDirNoGemfileFmt, appDir),
			Recommendation: messages.DoctorAppDirNoGemfileRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameAppDir,
		Message:   fmt.Sprintf(messages.DoctorAppDirOKFmt, appDir),
	}
}

// CheckPreflight runs p and maps each check to a result: Pass is OK,
// Advisory is WARN, Fatal is FAIL.
func CheckPreflight(ctx context.Context, p Preflight) []Result {
	report := p.CheckAll(ctx)
	results := make([]Result, 0, len(report.Results))
	for _, r := range report.Results {
		res := Result{CheckName: r.Check}
		switch r.Outcome {
		case preflight.Pass:
			res.Status = StatusOK
			res.Message = messages.DoctorPreflightPassed
		case preflight.Advisory:
			res.Status = StatusWarn
			res.Message = r.Message
		default:
			res.Status = StatusFail
			res.Message = r.Message
		}
		results = append(results, res)
	}
	return results
}

// Failed reports whether any result is a FAIL.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
