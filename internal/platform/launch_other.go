//go:build !windows

package platform

import (
	"os/exec"

	"github.com/ytget/desktop-groups/internal/model"
)

// buildCommand splits command lines into words; nothing goes through a shell
func buildCommand(command model.Command) (*exec.Cmd, error) {
	args, err := SplitCommand(command)
	if err != nil {
		return nil, err
	}
	return exec.Command(args[0], args[1:]...), nil
}
