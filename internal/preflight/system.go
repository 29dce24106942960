package preflight

import "os"

// System abstracts the environment lookups needed by preflight checks.
type System interface {
	LookupEnv(key string) (string, bool)
}

// RealSystem implements System using the process environment.
type RealSystem struct{}

// LookupEnv returns the value and presence of an environment variable.
func (RealSystem) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
