// Package logging configures the installer's structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/terminal"
)

// LevelFor maps the -v count to a log level.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// FilePath returns the log file location under the XDG state directory.
func FilePath() string {
	return filepath.Join(xdg.StateHome, "ror", "ror.log")
}

// Setup returns a logger writing to stderr and to the log file, tagged with a
// fresh run_id. If the log file cannot be opened the logger is console-only
// and says so. The returned func closes the log file.
func Setup(verbosity int, stderr io.Writer) (zerolog.Logger, func()) {
	if stderr == nil {
		stderr = os.Stderr
	}
	console := zerolog.ConsoleWriter{
		Out:        stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !terminal.IsTerminalWriter(stderr),
	}
	writers := []io.Writer{console}

	path := FilePath()
	file, fileErr := openLogFile(path)
	closer := func() {}
	if fileErr == nil {
		writers = append(writers, file)
		closer = func() { _ = file.Close() }
	}

	logger := zerolog.New(io.MultiWriter(writers...)).
		Level(LevelFor(verbosity)).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
	if verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}
	if fileErr != nil {
		logger.Warn().Err(fileErr).Str("path", path).Msg(messages.LoggingConsoleOnly)
	}
	logger.Debug().Int("verbosity", verbosity).Str("log_file", path).Msg("logger initialized")
	return logger, closer
}

// For returns l tagged with component.
func For(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf(messages.LoggingCreateDirFailedFmt, err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf(messages.LoggingOpenFileFailedFmt, err)
	}
	return file, nil
}
