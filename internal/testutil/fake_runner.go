package testutil

import (
	"context"
	"sync"

	"github.com/conn-castle/ror-installer/internal/procrun"
)

// FakeRunner is a scripted procrun.Runner. Commands without a scripted response
// exit 1 with no output, which tool probes read as "not found".
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	calls     []string
}

type fakeResponse struct {
	result procrun.Result
	err    error
}

// NewFakeRunner returns a FakeRunner with no scripted commands.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: make(map[string]fakeResponse)}
}

// On scripts the result returned for command.
func (f *FakeRunner) On(command string, result procrun.Result) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[command] = fakeResponse{result: result}
	return f
}

// OnStdout scripts a successful command that prints stdout.
func (f *FakeRunner) OnStdout(command string, stdout string) *FakeRunner {
	return f.On(command, procrun.Result{Stdout: stdout})
}

// OnError scripts an error returned for command.
func (f *FakeRunner) OnError(command string, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[command] = fakeResponse{err: err}
	return f
}

// Forget removes the scripted response for command.
func (f *FakeRunner) Forget(command string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.responses, command)
	return f
}

// WithHealthyHost scripts node, npm, nvm on PATH and a clean git working tree.
func (f *FakeRunner) WithHealthyHost() *FakeRunner {
	return f.
		OnStdout("which node", "/usr/local/bin/node\n").
		OnStdout("which npm", "/usr/local/bin/npm\n").
		OnStdout("which nvm", "/home/dev/.nvm/nvm.sh\n").
		OnStdout("git status", "On branch main\nnothing to commit, working directory clean\n")
}

// Run records the call and returns the scripted response.
func (f *FakeRunner) Run(_ context.Context, command string) (procrun.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, command)
	response, ok := f.responses[command]
	if !ok {
		return procrun.Result{ExitStatus: 1}, nil
	}
	return response.result, response.err
}

// Calls returns the commands run so far, in order.
func (f *FakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// CallCount returns how many commands were run.
func (f *FakeRunner) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// Called reports whether command was run at least once.
func (f *FakeRunner) Called(command string) bool {
	for _, call := range f.Calls() {
		if call == command {
			return true
		}
	}
	return false
}
