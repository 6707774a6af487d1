// Package power performs the session action chosen when the browser exits.
package power

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redmie/lutrisview/command"
)

// Action is what happens to the session after the browser closes
type Action int

const (
	// Desktop leaves the session running
	Desktop Action = iota
	// Shutdown powers the machine off
	Shutdown
	// Reboot restarts the machine
	Reboot
)

// ErrUnknownAction is returned by ParseAction for unrecognized names
var ErrUnknownAction = errors.New("unknown exit action")

// String returns the config name of the action
func (a Action) String() string {
	switch a {
	case Desktop:
		return "desktop"
	case Shutdown:
		return "shutdown"
	case Reboot:
		return "reboot"
	default:
		return "unknown"
	}
}

// ParseAction maps a config name to an Action. Matching ignores case and
// surrounding space; "" is Desktop.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "desktop":
		return Desktop, nil
	case "shutdown", "poweroff":
		return Shutdown, nil
	case "reboot", "restart":
		return Reboot, nil
	default:
		return Desktop, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
}

// Command returns the argv that performs action, prefixed with privilege
// (e.g. ["sudo", "-n"]). Desktop has no command and returns nil.
func Command(action Action, privilege []string) []string {
	var argv []string
	switch action {
	case Shutdown:
		argv = []string{"systemctl", "poweroff"}
	case Reboot:
		argv = []string{"systemctl", "reboot"}
	default:
		return nil
	}
	if len(privilege) == 0 {
		return argv
	}
	full := make([]string, 0, len(privilege)+len(argv))
	full = append(full, privilege...)
	return append(full, argv...)
}

// Runner executes an external command
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Perform carries out action. Failures are returned for the caller to log;
// they are never retried.
func Perform(ctx context.Context, action Action, privilege []string, run Runner) error {
	argv := Command(action, privilege)
	if argv == nil {
		return nil
	}
	if run == nil {
		run = command.Run
	}
	if _, err := run(ctx, argv[0], argv[1:]...); err != nil {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	return nil
}
