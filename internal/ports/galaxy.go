package ports

import "collection-env/internal/types"

// GalaxySourcePort loads collection metadata manifests.
type GalaxySourcePort interface {
	// Load reads the galaxy.yml manifest at path. A missing file is
	// reported with CodeNotFound so callers can fail soft.
	Load(path string) (types.Galaxy, error)
}
