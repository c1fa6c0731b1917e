//go:build unix

package execution

import (
	"os/exec"
	"syscall"
)

// isolate starts the subject in its own process group so cancellation kills
// wrapper scripts together with everything they spawned
func isolate(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
