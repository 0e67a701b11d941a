package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"collection-env/internal/ports"
	"collection-env/internal/session"
	"collection-env/internal/shared"
)

// finderPathVar is the single-form variable the collection finder reads
// ahead of the legacy plural form.
const finderPathVar = "ANSIBLE_COLLECTIONS_PATH"

type FinderEnvAdapter struct{}

func NewFinderEnvAdapter() FinderEnvAdapter {
	return FinderEnvAdapter{}
}

func (a FinderEnvAdapter) Install(ctx context.Context, env *session.Environment, paths []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if env == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("session environment is nil")
	}
	if len(paths) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("finder path list is empty")
	}
	env.Set(finderPathVar, shared.JoinPathList(paths))
	return nil
}

var _ ports.CollectionFinderPort = FinderEnvAdapter{}
