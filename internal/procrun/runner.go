// Package procrun runs shell commands to completion and captures their output.
package procrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/conn-castle/ror-installer/internal/messages"
)

// Result is the captured outcome of one command.
type Result struct {
	Stdout     string
	Stderr     string
	ExitStatus int
	// Signal names the terminating signal when the process did not exit normally.
	Signal string
}

// Success reports whether the command exited with status zero.
func (r Result) Success() bool {
	return r.ExitStatus == 0
}

// Runner executes a command line and blocks until it completes.
// A non-zero exit status is reported in Result, not as an error; errors are
// reserved for commands that could not be started, were canceled, or timed out.
type Runner interface {
	Run(ctx context.Context, command string) (Result, error)
}

// waitDelay bounds how long Wait blocks on inherited pipes once the shell has
// exited or been killed. It is only applied when the run can be cut short.
const waitDelay = 500 * time.Millisecond

var execCommandContext = exec.CommandContext

// ExecRunner runs commands through the platform shell.
type ExecRunner struct {
	// Dir is the working directory; empty means the caller's directory.
	Dir string
	// Env replaces the process environment when non-empty.
	Env []string
	// Timeout bounds each command. Zero blocks until the command exits.
	Timeout time.Duration
}

// Run executes command and captures stdout and stderr.
func (r ExecRunner) Run(ctx context.Context, command string) (Result, error) {
	if strings.TrimSpace(command) == "" {
		return Result{}, errors.New(messages.ProcCommandRequired)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	runCtx := ctx
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	name, args := shellCommand(command)
	// #nosec G204 -- commands are composed by the installer, not taken from untrusted input.
	cmd := execCommandContext(runCtx, name, args...)
	cmd.Dir = r.Dir
	if len(r.Env) > 0 {
		cmd.Env = r.Env
	}
	if r.Timeout > 0 || ctx.Done() != nil {
		cmd.WaitDelay = waitDelay
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return result, nil
	}
	// A background child still holding stdout does not fail a command that exited 0.
	if errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState != nil && cmd.ProcessState.Success() {
		return result, nil
	}
	if r.Timeout > 0 && errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return result, &TimeoutError{
			Command: command,
			Timeout: r.Timeout,
			Stdout:  result.Stdout,
			Stderr:  result.Stderr,
		}
	}
	if ctx.Err() != nil {
		return result, fmt.Errorf(messages.ProcCanceledFmt, command, ctx.Err())
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitStatus = exitErr.ExitCode()
		if result.ExitStatus < 0 {
			result.Signal = signalName(exitErr.ProcessState)
		}
		return result, nil
	}
	return result, fmt.Errorf(messages.ProcStartFailedFmt, command, err)
}

// shellCommand returns the shell invocation for command on the current platform.
func shellCommand(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}

// RunOrFail runs command and converts a non-zero exit into a CommandExecutionError
// carrying failureMessage and the captured output. Timeouts are returned unchanged
// as *TimeoutError.
func RunOrFail(ctx context.Context, runner Runner, command string, failureMessage string) (Result, error) {
	result, err := runner.Run(ctx, command)
	if err != nil {
		var timeout *TimeoutError
		if errors.As(err, &timeout) {
			return result, err
		}
		return result, &CommandExecutionError{
			FailureMessage: failureMessage,
			Command:        command,
			Stdout:         result.Stdout,
			Stderr:         result.Stderr,
			ExitStatus:     -1,
			Cause:          err,
		}
	}
	if !result.Success() {
		return result, &CommandExecutionError{
			FailureMessage: failureMessage,
			Command:        command,
			Stdout:         result.Stdout,
			Stderr:         result.Stderr,
			ExitStatus:     result.ExitStatus,
		}
	}
	return result, nil
}
