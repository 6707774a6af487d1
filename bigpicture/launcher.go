package bigpicture

import (
	"context"
	"log"
	"strconv"

	"github.com/redmie/lutrisview/catalog"
	"github.com/redmie/lutrisview/command"
	"go.uber.org/atomic"
)

// RunFunc runs an external command to completion
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Launcher starts games through the external tool on a background
// goroutine. Only one launch runs at a time.
type Launcher struct {
	command string
	args    []string // "{id}" and "{slug}" are substituted
	run     RunFunc

	running  atomic.Bool
	finished atomic.Bool
}

// NewLauncher creates a launcher for command with args. A nil run uses
// command.Run.
func NewLauncher(cmd string, args []string, run RunFunc) *Launcher {
	if run == nil {
		run = command.Run
	}
	return &Launcher{
		command: cmd,
		args:    args,
		run:     run,
	}
}

// Args returns the arguments used to launch g
func (l *Launcher) Args(g *catalog.Game) []string {
	return command.Expand(l.args, map[string]string{
		"id":   strconv.Itoa(g.ID),
		"slug": g.Slug,
	})
}

// Launch starts g in the background. It returns false if a launch is
// already running. The command blocks its goroutine until the game exits;
// a failure is logged and otherwise treated like a normal exit.
func (l *Launcher) Launch(g *catalog.Game) bool {
	if !l.running.CompareAndSwap(false, true) {
		return false
	}

	args := l.Args(g)
	log.Printf("Launching %q (%d)", g.Name, g.ID)
	go func() {
		if _, err := l.run(context.Background(), l.command, args...); err != nil {
			log.Printf("Failed to launch %q: %v", g.Name, err)
		}
		l.running.Store(false)
		l.finished.Store(true)
	}()
	return true
}

// TakeFinished reports, once, that a launch has returned since the last
// call
func (l *Launcher) TakeFinished() bool {
	return l.finished.CompareAndSwap(true, false)
}
