//go:build !unix

package procrun

import "os"

func signalName(_ *os.ProcessState) string {
	return ""
}
