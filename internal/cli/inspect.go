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
	"collection-env/internal/types"
)

type inspectOptions struct {
	StartPath       string
	UserCollections string
	Python          string
	Ignore          []string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report identity, tree state and publishable paths without mutating",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.StartPath, "start-path", ".", "Collection checkout root")
	cmd.Flags().StringVar(&opts.UserCollections, "user-collections", "~/.ansible/collections", "User-level collections path appended to the published list")
	cmd.Flags().StringVar(&opts.Python, "python", "python3", "Python interpreter used to probe for ansible")
	cmd.Flags().StringSliceVar(&opts.Ignore, "ignore", nil, "Glob patterns for start-path entries to skip when linking")
	_ = viper.BindPFlag("start_path", cmd.Flags().Lookup("start-path"))
	_ = viper.BindPFlag("user_collections", cmd.Flags().Lookup("user-collections"))
	_ = viper.BindPFlag("python", cmd.Flags().Lookup("python"))
	_ = viper.BindPFlag("ignore", cmd.Flags().Lookup("ignore"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	startPath := resolveString(cmd, opts.StartPath, "start_path", "start-path")
	if strings.TrimSpace(startPath) == "" {
		startPath = "."
	}
	absStart, err := filepath.Abs(startPath)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to resolve start path").
			WithCause(err)
	}
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		StartPath:       absStart,
		UserCollections: resolveString(cmd, opts.UserCollections, "user_collections", "user-collections"),
		Python:          resolveString(cmd, opts.Python, "python", "python"),
		Ignore:          resolveStrings(cmd, opts.Ignore, "ignore", "ignore"),
	})
	if err != nil {
		return err
	}

	if result.Identity == (types.CollectionIdentity{}) {
		fmt.Println("identity: (unresolved)")
	} else {
		fmt.Printf("identity: %s.%s\n", result.Identity.Namespace, result.Identity.Name)
	}
	if result.Galaxy.Version != "" {
		fmt.Printf("version: %s\n", result.Galaxy.Version)
	}
	if result.Runtime.Installed {
		finder := "collection finder supported"
		if !result.Runtime.SupportsFinder {
			finder = "collection finder not supported"
		}
		fmt.Printf("ansible: %s (%s)\n", result.Runtime.Version, finder)
	} else {
		fmt.Println("ansible: not installed")
	}
	if result.Tree.State != "" {
		fmt.Printf("tree: %s\n", result.Tree.State)
		if len(result.Tree.Stale) > 0 {
			fmt.Printf("stale entries: %s\n", strings.Join(result.Tree.Stale, ", "))
		}
		fmt.Printf("collections dir: %s\n", result.Tree.CollectionsDir)
		fmt.Printf("paths: %s\n", strings.Join(result.Paths, string(os.PathListSeparator)))
	}
	return nil
}
