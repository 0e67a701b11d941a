package adapters

import (
	"context"
	"os"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"collection-env/internal/ports"
)

type CommandExecAdapter struct{}

func NewCommandExecAdapter() CommandExecAdapter {
	return CommandExecAdapter{}
}

func (a CommandExecAdapter) Run(ctx context.Context, argv []string, environ []string) (int, error) {
	if len(argv) == 0 {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("command is empty")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = environ
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return 0, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("failed to start command").
		WithCause(err)
}

var _ ports.CommandRunnerPort = CommandExecAdapter{}
