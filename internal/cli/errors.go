package cli

import "fmt"

// UsageExitCode is the status for invalid flags and configuration
const UsageExitCode = 2

// ExitError carries a process status from a command to main. It is not an
// error to report: the command has already printed its outcome.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitStatus returns nil for code 0 and an *ExitError otherwise
func ExitStatus(code int) error {
	if code == 0 {
		return nil
	}
	return &ExitError{Code: code}
}
