package ports

import (
	"context"

	"collection-env/internal/types"
)

// CollectionTreePort materializes and inspects the conventional
// collections/ansible_collections/<namespace>/<name> layout.
type CollectionTreePort interface {
	// Ensure makes the layout reachable for startPath, synthesizing a
	// symlinked tree beneath it when the path is not already inside
	// one. Creation is idempotent: an existing leaf directory is left
	// as-is unless opts.Refresh is set.
	Ensure(ctx context.Context, startPath string, id types.CollectionIdentity, opts types.TreeOptions) (types.TreeResult, error)

	// Status reports the layout state without mutating the filesystem.
	Status(ctx context.Context, startPath string, id types.CollectionIdentity, opts types.TreeOptions) (types.TreeStatus, error)
}
