package preflight

import (
	"github.com/conn-castle/ror-installer/internal/testutil"
)

type fakeSystem map[string]string

func (f fakeSystem) LookupEnv(key string) (string, bool) {
	value, ok := f[key]
	return value, ok
}

func newChecker(runner *testutil.FakeRunner, env fakeSystem) *Checker {
	cfg := DefaultConfig()
	cfg.LookupCommand = "which"
	return &Checker{Runner: runner, System: env, Config: cfg}
}
