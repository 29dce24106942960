package procrun

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/ror-installer/internal/messages"
)

const bannerWidth = 80

// Banner renders the fatal diagnostic block for a CommandExecutionError or
// TimeoutError. ok is false for any other error.
func Banner(err error) (banner string, ok bool) {
	var execErr *CommandExecutionError
	if errors.As(err, &execErr) {
		return renderBanner(execErr.FailureMessage, execErr.Command, execErr.Stdout, execErr.Stderr,
			fmt.Sprintf("%d", execErr.ExitStatus)), true
	}
	var timeout *TimeoutError
	if errors.As(err, &timeout) {
		return renderBanner(timeout.Error(), timeout.Command, timeout.Stdout, timeout.Stderr,
			messages.ProcBannerTimedOut), true
	}
	return "", false
}

func renderBanner(failureMessage, command, stdout, stderr, status string) string {
	rule := strings.Repeat("Z", bannerWidth)
	var b strings.Builder
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(messages.ProcBannerTitle)
	b.WriteString("\n")
	if failureMessage != "" {
		b.WriteString(failureMessage)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, messages.ProcBannerCommandFmt, command)
	fmt.Fprintf(&b, messages.ProcBannerStdoutFmt, strings.TrimSpace(stdout))
	fmt.Fprintf(&b, messages.ProcBannerStderrFmt, strings.TrimSpace(stderr))
	fmt.Fprintf(&b, messages.ProcBannerExitStatusFmt, status)
	b.WriteString(rule)
	b.WriteString("\n")
	return b.String()
}
