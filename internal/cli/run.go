package cli

import (
	"context"

	"github.com/spf13/cobra"

	"collection-env/internal/app"
)

func newRunCommand() *cobra.Command {
	opts := setupOptions{}
	cmd := &cobra.Command{
		Use:          "run command [args...]",
		Short:        "Prepare the environment, then run a command inside it",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd.Context(), cmd, opts, args)
		},
	}
	// Stop flag parsing at the first positional argument so the child
	// command's own flags pass through untouched.
	cmd.Flags().SetInterspersed(false)
	addSetupFlags(cmd, &opts)
	return cmd
}

func runRun(ctx context.Context, cmd *cobra.Command, opts setupOptions, argv []string) error {
	req, err := buildSetupRequest(cmd, opts)
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Run(ctx, app.RunRequest{Setup: req, Argv: argv})
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}
