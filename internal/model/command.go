package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ErrInvalidCommand is returned when a command is neither a string nor a
// list of strings
var ErrInvalidCommand = errors.New("command must be a string or an array of strings")

// Command is what an item runs when it is launched. Group files may give it
// either as a single command line or as an argument vector; the form used in
// the file is kept so it can be written back unchanged.
type Command struct {
	line   string
	args   []string
	vector bool
}

// CommandLine creates a command from a single command line string
func CommandLine(line string) Command {
	return Command{line: line}
}

// CommandVector creates a command from an argument vector
func CommandVector(args ...string) Command {
	cp := make([]string, len(args))
	copy(cp, args)
	return Command{args: cp, vector: true}
}

// IsVector reports whether the command was given as an argument vector
func (c Command) IsVector() bool {
	return c.vector
}

// IsZero reports whether the command is empty
func (c Command) IsZero() bool {
	if c.vector {
		return len(c.args) == 0
	}
	return strings.TrimSpace(c.line) == ""
}

// Line returns the command line. For vectors the arguments are joined with
// spaces, which is only meant for display.
func (c Command) Line() string {
	if c.vector {
		return strings.Join(c.args, " ")
	}
	return c.line
}

// Args returns a copy of the argument vector, or nil for command lines
func (c Command) Args() []string {
	if !c.vector {
		return nil
	}
	cp := make([]string, len(c.args))
	copy(cp, c.args)
	return cp
}

// String returns the display form of the command
func (c Command) String() string {
	return c.Line()
}

// Equal reports whether two commands have the same form and content
func (c Command) Equal(other Command) bool {
	if c.vector != other.vector {
		return false
	}
	if !c.vector {
		return c.line == other.line
	}
	if len(c.args) != len(other.args) {
		return false
	}
	for i := range c.args {
		if c.args[i] != other.args[i] {
			return false
		}
	}
	return true
}

// MarshalJSON writes the command in the form it was created with
func (c Command) MarshalJSON() ([]byte, error) {
	if c.vector {
		args := c.args
		if args == nil {
			args = []string{}
		}
		return json.Marshal(args)
	}
	return json.Marshal(c.line)
}

// UnmarshalJSON accepts a JSON string or an array of strings
func (c *Command) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidCommand
	}

	switch data[0] {
	case '"':
		var line string
		if err := json.Unmarshal(data, &line); err != nil {
			return err
		}
		*c = CommandLine(line)
		return nil
	case '[':
		var args []string
		if err := json.Unmarshal(data, &args); err != nil {
			return ErrInvalidCommand
		}
		*c = CommandVector(args...)
		return nil
	default:
		return ErrInvalidCommand
	}
}
