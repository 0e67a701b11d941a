package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"collection-env/internal/app"
)

type setupOptions struct {
	StartPath       string
	UserCollections string
	Python          string
	Ignore          []string
	Refresh         bool
	InjectOnly      bool
	Format          string
	EnvFile         string
}

func newSetupCommand() *cobra.Command {
	opts := setupOptions{}
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Resolve the collection layout and emit the environment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd.Context(), cmd, opts)
		},
	}
	addSetupFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.Format, "format", "export", "Output format: export or dotenv")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "Write dotenv lines to this file instead of stdout")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("env_file", cmd.Flags().Lookup("env-file"))
	return cmd
}

// addSetupFlags registers the flags shared by setup and run.
func addSetupFlags(cmd *cobra.Command, opts *setupOptions) {
	cmd.Flags().StringVar(&opts.StartPath, "start-path", ".", "Collection checkout root")
	cmd.Flags().StringVar(&opts.UserCollections, "user-collections", "~/.ansible/collections", "User-level collections path appended to the published list")
	cmd.Flags().StringVar(&opts.Python, "python", "python3", "Python interpreter used to probe for ansible")
	cmd.Flags().StringSliceVar(&opts.Ignore, "ignore", nil, "Glob patterns for start-path entries to skip when linking")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "Re-create symlinks for an already-synthesized tree")
	cmd.Flags().BoolVar(&opts.InjectOnly, "inject-only", false, "Only inject the current ANSIBLE_COLLECTIONS_PATHS")
	_ = viper.BindPFlag("start_path", cmd.Flags().Lookup("start-path"))
	_ = viper.BindPFlag("user_collections", cmd.Flags().Lookup("user-collections"))
	_ = viper.BindPFlag("python", cmd.Flags().Lookup("python"))
	_ = viper.BindPFlag("ignore", cmd.Flags().Lookup("ignore"))
	_ = viper.BindPFlag("refresh", cmd.Flags().Lookup("refresh"))
	_ = viper.BindPFlag("inject_only", cmd.Flags().Lookup("inject-only"))
}

func runSetup(ctx context.Context, cmd *cobra.Command, opts setupOptions) error {
	req, err := buildSetupRequest(cmd, opts)
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Setup(ctx, req)
	if err != nil {
		return err
	}
	format := resolveString(cmd, opts.Format, "format", "format")
	envFile := resolveString(cmd, opts.EnvFile, "env_file", "env-file")
	if envFile != "" {
		return service.EnvFile.Write(envFile, result.Env.DotenvLines())
	}
	var lines []string
	switch format {
	case "export":
		lines = result.Env.ExportLines()
	case "dotenv":
		lines = result.Env.DotenvLines()
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown output format: %s", format))
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// buildSetupRequest resolves the shared setup flags against viper and
// anchors the start path. Both setup and run go through it.
func buildSetupRequest(cmd *cobra.Command, opts setupOptions) (app.SetupRequest, error) {
	startPath := resolveString(cmd, opts.StartPath, "start_path", "start-path")
	if strings.TrimSpace(startPath) == "" {
		startPath = "."
	}
	absStart, err := filepath.Abs(startPath)
	if err != nil {
		return app.SetupRequest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to resolve start path").
			WithCause(err)
	}
	return app.SetupRequest{
		StartPath:       absStart,
		InjectOnly:      resolveBool(cmd, opts.InjectOnly, "inject_only", "inject-only"),
		Refresh:         resolveBool(cmd, opts.Refresh, "refresh", "refresh"),
		Ignore:          resolveStrings(cmd, opts.Ignore, "ignore", "ignore"),
		UserCollections: resolveString(cmd, opts.UserCollections, "user_collections", "user-collections"),
		Python:          resolveString(cmd, opts.Python, "python", "python"),
		Environ:         os.Environ(),
	}, nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
