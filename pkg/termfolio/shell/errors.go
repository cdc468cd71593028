package shell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingOperand is reported when a command needs an argument it did not get.
var ErrMissingOperand = errors.New("missing file operand")

// UnknownCommandError is reported when no handler matches the command name.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("bash: %s: command not found", e.Name)
}

// Message adds a hint listing the core commands.
func (e *UnknownCommandError) Message() string {
	return fmt.Sprintf("%s\nAvailable commands: %s (type 'help' for details)",
		e.Error(), strings.Join(CoreCommands(), ", "))
}
