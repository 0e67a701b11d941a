package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collection-env/internal/types"
)

func TestInTree(t *testing.T) {
	id := types.CollectionIdentity{Namespace: "foo", Name: "bar"}

	dir, ok := InTree("/repo/collections/ansible_collections/foo/bar", id)
	require.True(t, ok)
	assert.Equal(t, "/repo/collections", dir)

	// Trailing separators are tolerated.
	dir, ok = InTree("/repo/collections/ansible_collections/foo/bar/", id)
	require.True(t, ok)
	assert.Equal(t, "/repo/collections", dir)
}

func TestInTreeRejectsOtherLayouts(t *testing.T) {
	id := types.CollectionIdentity{Namespace: "foo", Name: "bar"}

	for _, start := range []string{
		"/repo/src/foo/bar",
		"/repo/collections/ansible_collections/foo/baz",
		"/repo/collections/ansible_collections/other/bar",
		"/collections/ansible_collections/foo",
		"/repo",
	} {
		_, ok := InTree(start, id)
		assert.False(t, ok, "start path %s", start)
	}
}

func TestSynthesizedPaths(t *testing.T) {
	id := types.CollectionIdentity{Namespace: "foo", Name: "bar"}
	collectionsDir, leafDir := SynthesizedPaths("/work/checkout", id)

	assert.Equal(t, filepath.Join("/work/checkout", "collections"), collectionsDir)
	assert.Equal(t, filepath.Join("/work/checkout", "collections", "ansible_collections", "foo", "bar"), leafDir)
}
