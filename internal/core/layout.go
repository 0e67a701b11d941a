package core

import (
	"path/filepath"

	"collection-env/internal/types"
)

const (
	collectionsSegment   = "collections"
	namespaceRootSegment = "ansible_collections"
)

// InTree reports whether startPath's last four segments already form
// collections/ansible_collections/<namespace>/<name>. When they do, the
// returned collections directory is the ancestor three levels above the
// start path.
func InTree(startPath string, id types.CollectionIdentity) (string, bool) {
	suffix := [4]string{collectionsSegment, namespaceRootSegment, id.Namespace, id.Name}
	dir := filepath.Clean(startPath)
	for i := len(suffix) - 1; i >= 0; i-- {
		if filepath.Base(dir) != suffix[i] {
			return "", false
		}
		dir = filepath.Dir(dir)
	}
	return filepath.Join(dir, collectionsSegment), true
}

// SynthesizedPaths returns the collections directory and the leaf
// collection directory for a tree synthesized under startPath.
func SynthesizedPaths(startPath string, id types.CollectionIdentity) (string, string) {
	collectionsDir := filepath.Join(startPath, collectionsSegment)
	leafDir := filepath.Join(collectionsDir, namespaceRootSegment, id.Namespace, id.Name)
	return collectionsDir, leafDir
}
