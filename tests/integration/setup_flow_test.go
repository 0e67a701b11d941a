package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collection-env/internal/app"
	"collection-env/internal/types"
	"collection-env/tests/testutil"
)

var sep = string(os.PathListSeparator)

// newFlowService wires the real adapters with a stub interpreter so
// the flow runs without an ansible installation on the host.
func newFlowService(t *testing.T, ansibleVersion string) (app.Service, string) {
	t.Helper()
	python := testutil.StubPython(t, ansibleVersion)
	return app.NewService(), python
}

func stageFixture(t *testing.T) string {
	t.Helper()
	start := t.TempDir()
	testutil.CopyDir(t, filepath.Join(testutil.RepoRoot(t), "fixtures", "sample-collection"), start)
	return start
}

func TestSetupFlow_SynthesizesAndPublishes(t *testing.T) {
	service, python := newFlowService(t, "2.16.3")
	start := stageFixture(t)

	result, err := service.Setup(t.Context(), app.SetupRequest{
		StartPath:       start,
		UserCollections: "~/.ansible/collections",
		Python:          python,
		Environ:         []string{"PYTHONPATH=/base"},
	})
	require.NoError(t, err)

	assert.Equal(t, types.OutcomeSynthesizedTree, result.Outcome)
	assert.Equal(t, types.CollectionIdentity{Namespace: "acme", Name: "sysutils"}, result.Identity)

	collectionsDir := filepath.Join(start, "collections")
	assert.Equal(t, collectionsDir, result.CollectionsDir)

	// The leaf holds a symlink per top-level fixture entry.
	leaf := filepath.Join(collectionsDir, "ansible_collections", "acme", "sysutils")
	for _, name := range []string{"galaxy.yml", "README.md", "plugins", "roles"} {
		target, err := os.Readlink(filepath.Join(leaf, name))
		require.NoError(t, err, "entry %s", name)
		assert.Equal(t, filepath.Join(start, name), target)
	}

	// Both environment variables and the search path are published.
	wantJoined := collectionsDir + sep + "~/.ansible/collections"
	value, ok := result.Env.Get("ANSIBLE_COLLECTIONS_PATHS")
	require.True(t, ok)
	assert.Equal(t, wantJoined, value)
	value, ok = result.Env.Get("ANSIBLE_COLLECTIONS_PATH")
	require.True(t, ok)
	assert.Equal(t, wantJoined, value)
	assert.Equal(t, []string{collectionsDir, "/base"}, result.Env.SearchPaths())

	// Second invocation is a no-op on an unchanged checkout.
	again, err := service.Setup(t.Context(), app.SetupRequest{
		StartPath: start,
		Python:    python,
	})
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeExistingTree, again.Outcome)
	assert.Empty(t, again.Stale)
}

func TestSetupFlow_InsideCollectionsTree(t *testing.T) {
	service, python := newFlowService(t, "2.16.3")
	root := t.TempDir()
	start := filepath.Join(root, "collections", "ansible_collections", "acme", "sysutils")
	require.NoError(t, os.MkdirAll(start, 0o755))
	testutil.CopyDir(t, filepath.Join(testutil.RepoRoot(t), "fixtures", "sample-collection"), start)

	result, err := service.Setup(t.Context(), app.SetupRequest{
		StartPath: start,
		Python:    python,
	})
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeExistingTree, result.Outcome)
	assert.Equal(t, filepath.Join(root, "collections"), result.CollectionsDir)

	// No tree is synthesized under the start path itself.
	_, err = os.Stat(filepath.Join(start, "collections"))
	assert.True(t, os.IsNotExist(err))
}

func TestSetupFlow_StaleDetectionAndRefresh(t *testing.T) {
	service, python := newFlowService(t, "2.16.3")
	start := stageFixture(t)

	_, err := service.Setup(t.Context(), app.SetupRequest{StartPath: start, Python: python})
	require.NoError(t, err)

	// A file added after synthesis is stale until a refresh run.
	require.NoError(t, os.WriteFile(filepath.Join(start, "CHANGELOG.md"), []byte("# changes"), 0o644))

	result, err := service.Setup(t.Context(), app.SetupRequest{StartPath: start, Python: python})
	require.NoError(t, err)
	assert.Equal(t, []string{"CHANGELOG.md"}, result.Stale)

	refreshed, err := service.Setup(t.Context(), app.SetupRequest{StartPath: start, Python: python, Refresh: true})
	require.NoError(t, err)
	assert.Empty(t, refreshed.Stale)

	leaf := filepath.Join(start, "collections", "ansible_collections", "acme", "sysutils")
	target, err := os.Readlink(filepath.Join(leaf, "CHANGELOG.md"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(start, "CHANGELOG.md"), target)
}

func TestSetupFlow_MissingManifestDoesNotMutate(t *testing.T) {
	service, python := newFlowService(t, "2.16.3")
	start := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(start, "README.md"), []byte("# empty"), 0o644))

	result, err := service.Setup(t.Context(), app.SetupRequest{StartPath: start, Python: python})
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeNotActivated, result.Outcome)

	entries, err := os.ReadDir(start)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "README.md", entries[0].Name())
}

func TestSetupFlow_InjectOnly(t *testing.T) {
	service, _ := newFlowService(t, "2.16.3")
	start := stageFixture(t)

	result, err := service.Setup(t.Context(), app.SetupRequest{
		StartPath:  start,
		InjectOnly: true,
		Environ:    []string{"ANSIBLE_COLLECTIONS_PATHS=/a" + sep + "/b"},
	})
	require.NoError(t, err)

	assert.Equal(t, types.OutcomeInjectOnly, result.Outcome)
	assert.Equal(t, []string{"/b", "/a"}, result.Env.SearchPaths())

	// Inject-only never writes to the checkout.
	_, err = os.Stat(filepath.Join(start, "collections"))
	assert.True(t, os.IsNotExist(err))
}

func TestSetupFlow_EnvFileRoundTrip(t *testing.T) {
	service, python := newFlowService(t, "2.16.3")
	start := stageFixture(t)

	result, err := service.Setup(t.Context(), app.SetupRequest{
		StartPath:       start,
		UserCollections: "~/.ansible/collections",
		Python:          python,
	})
	require.NoError(t, err)

	envFile := filepath.Join(t.TempDir(), "collection.env")
	require.NoError(t, service.EnvFile.Write(envFile, result.Env.DotenvLines()))

	data, err := os.ReadFile(envFile)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "ANSIBLE_COLLECTIONS_PATHS="+filepath.Join(start, "collections")+sep+"~/.ansible/collections")
	assert.Contains(t, content, "PYTHONPATH="+filepath.Join(start, "collections"))
}
