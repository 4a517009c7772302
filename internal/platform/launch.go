package platform

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/shlex"

	"github.com/ytget/desktop-groups/internal/model"
)

// ErrEmptyCommand is returned when there is nothing to start
var ErrEmptyCommand = errors.New("empty command")

// Spawner starts the command of a launched item
type Spawner interface {
	Spawn(command model.Command) error
}

// ExecSpawner starts commands as independent OS processes. Commands never
// go through a shell; the launcher does not wait for them, does not capture
// their output and does not look at their exit status.
type ExecSpawner struct {
	// Dir is the working directory of started processes; empty means the
	// launcher's own working directory
	Dir string
}

// NewExecSpawner creates a spawner that starts real processes
func NewExecSpawner() *ExecSpawner {
	return &ExecSpawner{}
}

// Spawn starts the command and returns as soon as the process exists
func (s *ExecSpawner) Spawn(command model.Command) error {
	if command.IsZero() {
		return ErrEmptyCommand
	}

	cmd, err := buildCommand(command)
	if err != nil {
		return err
	}
	cmd.Dir = s.Dir
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", command, err)
	}
	log.Printf("Started %s (pid %d)", command, cmd.Process.Pid)

	return cmd.Process.Release()
}

// SplitCommand returns the argument vector of a command. Vectors are
// returned as given; command lines are split into words honouring quotes
// and backslash escapes, without any shell expansion.
func SplitCommand(command model.Command) ([]string, error) {
	if command.IsVector() {
		args := command.Args()
		if len(args) == 0 {
			return nil, ErrEmptyCommand
		}
		return args, nil
	}

	args, err := shlex.Split(command.Line())
	if err != nil {
		return nil, fmt.Errorf("failed to split command %q: %w", command.Line(), err)
	}
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}
	return args, nil
}

// WindowsProgram returns the program part of a Windows command line, the
// way CreateProcess reads it: a quoted first token, or everything up to the
// first space
func WindowsProgram(line string) string {
	line = strings.TrimLeft(line, " \t")
	if strings.HasPrefix(line, `"`) {
		rest := line[1:]
		if end := strings.IndexByte(rest, '"'); end >= 0 {
			return rest[:end]
		}
		return rest
	}
	if end := strings.IndexAny(line, " \t"); end >= 0 {
		return line[:end]
	}
	return line
}
