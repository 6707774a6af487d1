// Package command runs the external tools lutrisview shells out to and
// reports their failures as ExternalToolError values.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ExternalToolError describes an external command that could not be started
// or exited with a non-zero status.
type ExternalToolError struct {
	Command  string
	Args     []string
	ExitCode int    // -1 when the process never ran to completion
	Stderr   string // Trimmed standard error output, may be empty
	Err      error
}

func (e *ExternalToolError) Error() string {
	line := strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
	if e.ExitCode < 0 {
		return fmt.Sprintf("failed to run %q: %v", line, e.Err)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("%q exited with status %d: %s", line, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%q exited with status %d", line, e.ExitCode)
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// Run executes name with args and returns its standard output.
// It blocks until the process exits. A failure to start and a non-zero exit
// status are both returned as *ExternalToolError.
func Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), newToolError(name, args, err, stderr.String())
	}
	return stdout.Bytes(), nil
}

func newToolError(name string, args []string, err error, stderr string) *ExternalToolError {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &ExternalToolError{
		Command:  name,
		Args:     append([]string(nil), args...),
		ExitCode: code,
		Stderr:   lastLine(stderr),
		Err:      err,
	}
}

// lastLine keeps error messages to one line. Tools usually print the
// relevant message last, after any warnings.
func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}

// Expand replaces every "{key}" placeholder in args with the matching value.
// Arguments without placeholders are returned unchanged.
func Expand(args []string, values map[string]string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		for k, v := range values {
			arg = strings.ReplaceAll(arg, "{"+k+"}", v)
		}
		out[i] = arg
	}
	return out
}
