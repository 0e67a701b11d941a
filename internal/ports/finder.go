package ports

import (
	"context"

	"collection-env/internal/session"
)

// CollectionFinderPort points the ansible collection loader at a set of
// collection roots for the prepared session.
type CollectionFinderPort interface {
	Install(ctx context.Context, env *session.Environment, paths []string) error
}
