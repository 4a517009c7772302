//go:build windows

package platform

import (
	"os/exec"
	"syscall"

	"github.com/ytget/desktop-groups/internal/model"
)

// buildCommand passes command lines to CreateProcess untouched
func buildCommand(command model.Command) (*exec.Cmd, error) {
	if command.IsVector() {
		args, err := SplitCommand(command)
		if err != nil {
			return nil, err
		}
		return exec.Command(args[0], args[1:]...), nil
	}

	program := WindowsProgram(command.Line())
	if program == "" {
		return nil, ErrEmptyCommand
	}
	cmd := exec.Command(program)
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: command.Line()}
	return cmd, nil
}

// detach starts the process in its own process group
func detach(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.CreationFlags |= syscall.CREATE_NEW_PROCESS_GROUP
}
