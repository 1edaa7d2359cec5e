package provider

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Command is a Completer that runs an external model CLI. The prompt is
// written to the process's stdin and stdout is the response.
type Command struct {
	name string
	path string
	args []string
	env  []string
}

// NewCommand creates a Command from cfg.
// Returns an error wrapping ErrUnavailable if the binary cannot be found.
func NewCommand(cfg Config) (*Command, error) {
	if cfg.Command == "" {
		return nil, fmt.Errorf("%w: no command configured", ErrUnavailable)
	}

	path, err := exec.LookPath(cfg.Command)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	name := cfg.Name
	if name == "" {
		name = "command"
	}

	env := os.Environ()
	for k, v := range cfg.Env {
		env = append(env, k+"="+v)
	}

	return &Command{
		name: name,
		path: path,
		args: append([]string(nil), cfg.Args...),
		env:  env,
	}, nil
}

// Complete implements Completer.
func (c *Command) Complete(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, c.path, c.args...)
	cmd.Env = c.env
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Check for context cancellation first
		if ctxErr := ctx.Err(); ctxErr != nil {
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				return "", NewError(c.name, "complete", fmt.Errorf("%w: %w", ErrTimeout, ctxErr), true)
			}
			return "", NewError(c.name, "complete", ctxErr, false)
		}

		msg := sanitizeStderr(stderr.String())
		return "", NewError(c.name, "complete", fmt.Errorf("%w: %s", err, msg), isRetryableMessage(msg))
	}

	return stdout.String(), nil
}

// maxStderrLength limits stderr output in error messages.
const maxStderrLength = 500

// sanitizeStderr truncates long stderr output for inclusion in errors.
func sanitizeStderr(stderr string) string {
	if len(stderr) > maxStderrLength {
		stderr = stderr[:maxStderrLength] + "... (truncated)"
	}
	return strings.TrimSpace(stderr)
}
