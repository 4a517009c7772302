//go:build unix

package platform

import (
	"os/exec"
	"syscall"
)

// detach starts the process in a new session so it outlives the launcher
// and its terminal
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
