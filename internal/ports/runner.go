package ports

import "context"

// CommandRunnerPort executes a child process inside a prepared
// environment.
type CommandRunnerPort interface {
	// Run executes argv with the given environment and returns the
	// child's exit code. An error is returned only when the command
	// never ran; a non-zero child status is reported through the code.
	Run(ctx context.Context, argv []string, environ []string) (int, error)
}
