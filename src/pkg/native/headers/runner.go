package headers

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/print"
)

// Command is one external process invocation
type Command struct {
	Name string
	Args []string
	Dir  string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner runs a command to completion. A non-zero exit status is an error.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner spawns real processes with their output streamed to Stdout and
// Stderr.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner attached to the terminal
func NewExecRunner() ExecRunner {
	return ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r ExecRunner) Run(ctx context.Context, command Command) error {
	print.Verb("running", command)

	cmd := exec.CommandContext(ctx, command.Name, command.Args...) //nolint:gas
	cmd.Dir = command.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return errors.Errorf("%s exited with status %d", command.Name, exitErr.ExitCode())
	}
	if err != nil {
		return errors.Wrapf(err, "failed to run %s", command.Name)
	}
	return nil
}
