//go:build !unix && !windows

package platform

import "os/exec"

func detach(cmd *exec.Cmd) {}
