package catalog

import (
	"context"

	"github.com/redmie/lutrisview/command"
)

// Default inventory command
const (
	DefaultCommand = "lutris"
)

// DefaultListArgs lists installed games as JSON on stdout.
var DefaultListArgs = []string{"--list-games", "--installed", "--json"}

// Loader runs the inventory command and parses its output.
type Loader struct {
	Command string
	Args    []string
}

// NewLoader returns a loader for the given command. Empty values fall back
// to DefaultCommand and DefaultListArgs.
func NewLoader(cmd string, args []string) *Loader {
	if cmd == "" {
		cmd = DefaultCommand
	}
	if len(args) == 0 {
		args = DefaultListArgs
	}
	return &Loader{Command: cmd, Args: args}
}

// Load runs the inventory command and returns a fresh catalog.
// It blocks for as long as the external tool runs and must not be called
// from the render loop. Failures are *command.ExternalToolError or
// *ParseError.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	out, err := command.Run(ctx, l.Command, l.Args...)
	if err != nil {
		return nil, err
	}
	return Parse(out)
}
