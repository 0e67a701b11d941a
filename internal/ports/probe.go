package ports

import (
	"context"

	"collection-env/internal/types"
)

// AnsibleProbePort inspects a Python interpreter for an importable
// ansible installation.
type AnsibleProbePort interface {
	// Detect probes python for the ansible release version. A non-nil
	// error means the probe could not establish an installation;
	// callers treat that as "not installed" rather than a hard stop.
	Detect(ctx context.Context, python string) (types.AnsibleRuntime, error)
}
