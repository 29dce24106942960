package procrun

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell fixtures require sh")
	}
}

func TestExecRunnerCapturesOutput(t *testing.T) {
	skipOnWindows(t)
	result, err := ExecRunner{}.Run(context.Background(), "printf 'out'; printf 'err' >&2")
	require.NoError(t, err)
	assert.Equal(t, "out", result.Stdout)
	assert.Equal(t, "err", result.Stderr)
	assert.Equal(t, 0, result.ExitStatus)
	assert.True(t, result.Success())
}

func TestExecRunnerNonZeroExitIsNotAnError(t *testing.T) {
	skipOnWindows(t)
	result, err := ExecRunner{}.Run(context.Background(), "echo partial; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitStatus)
	assert.Equal(t, "partial\n", result.Stdout)
	assert.False(t, result.Success())
}

func TestExecRunnerUsesDir(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	result, err := ExecRunner{Dir: dir}.Run(context.Background(), "pwd -P")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(result.Stdout))
}

func TestExecRunnerWaitsForBackgroundOutputWithoutTimeout(t *testing.T) {
	skipOnWindows(t)
	result, err := ExecRunner{}.Run(context.Background(), "(sleep 1; echo late) & echo early")
	require.NoError(t, err)
	assert.Equal(t, "early\nlate\n", result.Stdout)
	assert.True(t, result.Success())
}

func TestExecRunnerBackgroundChildDoesNotFailCancellableRun(t *testing.T) {
	skipOnWindows(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	result, err := RunOrFail(ctx, ExecRunner{}, "(sleep 2; echo late) & echo early", "background child")
	require.NoError(t, err)
	assert.Equal(t, "early\n", result.Stdout)
	assert.Equal(t, 0, result.ExitStatus)
}

func TestExecRunnerEmptyCommand(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), "   ")
	require.Error(t, err)
}

func TestExecRunnerTimeout(t *testing.T) {
	skipOnWindows(t)
	start := time.Now()
	_, err := ExecRunner{Timeout: 100 * time.Millisecond}.Run(context.Background(), "echo started; sleep 5")
	require.Error(t, err)

	var timeout *TimeoutError
	require.True(t, errors.As(err, &timeout))
	assert.Equal(t, "echo started; sleep 5", timeout.Command)
	assert.Equal(t, 100*time.Millisecond, timeout.Timeout)
	assert.True(t, IsTimeout(err))
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestExecRunnerCanceledContext(t *testing.T) {
	skipOnWindows(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ExecRunner{}.Run(ctx, "true")
	require.Error(t, err)
	assert.False(t, IsTimeout(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecRunnerReportsSignal(t *testing.T) {
	skipOnWindows(t)
	result, err := ExecRunner{}.Run(context.Background(), "kill -TERM $$")
	require.NoError(t, err)
	assert.Equal(t, -1, result.ExitStatus)
	assert.Equal(t, "SIGTERM", result.Signal)
}

func TestExecRunnerStartFailure(t *testing.T) {
	original := execCommandContext
	t.Cleanup(func() { execCommandContext = original })
	execCommandContext = func(ctx context.Context, _ string, _ ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "/nonexistent/ror-test-binary")
	}

	_, err := ExecRunner{}.Run(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anything")
}

func TestRunOrFailReturnsResultOnSuccess(t *testing.T) {
	skipOnWindows(t)
	result, err := RunOrFail(context.Background(), ExecRunner{}, "echo ok", "should not fail")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", result.Stdout)
}

func TestRunOrFailWrapsNonZeroExit(t *testing.T) {
	skipOnWindows(t)
	command := "echo ' some out '; echo ' some err ' >&2; exit 7"
	_, err := RunOrFail(context.Background(), ExecRunner{}, command, "npm install failed")
	require.Error(t, err)

	var execErr *CommandExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "npm install failed", execErr.FailureMessage)
	assert.Equal(t, command, execErr.Command)
	assert.Equal(t, " some out \n", execErr.Stdout)
	assert.Equal(t, " some err \n", execErr.Stderr)
	assert.Equal(t, 7, execErr.ExitStatus)
	assert.Nil(t, execErr.Unwrap())
	assert.Contains(t, execErr.Error(), "exit status 7")
}

type scriptedRunner struct {
	result Result
	err    error
}

func (s scriptedRunner) Run(context.Context, string) (Result, error) {
	return s.result, s.err
}

func TestRunOrFailStartErrorHasCause(t *testing.T) {
	cause := errors.New("exec: not found")
	_, err := RunOrFail(context.Background(), scriptedRunner{err: cause}, "missing-tool", "lookup failed")

	var execErr *CommandExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, -1, execErr.ExitStatus)
	assert.ErrorIs(t, err, cause)
}

func TestRunOrFailPassesTimeoutThrough(t *testing.T) {
	timeout := &TimeoutError{Command: "sleep 9", Timeout: time.Second}
	_, err := RunOrFail(context.Background(), scriptedRunner{err: timeout}, "sleep 9", "slow")

	var execErr *CommandExecutionError
	assert.False(t, errors.As(err, &execErr))
	assert.True(t, IsTimeout(err))
}
