package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/gobwas/glob"

	"collection-env/internal/core"
	"collection-env/internal/ports"
	"collection-env/internal/types"
)

type CollectionTreeAdapter struct{}

func NewCollectionTreeAdapter() CollectionTreeAdapter {
	return CollectionTreeAdapter{}
}

func (a CollectionTreeAdapter) Ensure(ctx context.Context, startPath string, id types.CollectionIdentity, opts types.TreeOptions) (types.TreeResult, error) {
	absStart, err := filepath.Abs(startPath)
	if err != nil {
		return types.TreeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to resolve start path").
			WithCause(err)
	}
	if dir, ok := core.InTree(absStart, id); ok {
		return types.TreeResult{CollectionsDir: dir, State: types.TreeStateInTree}, nil
	}
	matchers, err := compileIgnorePatterns(opts.Ignore)
	if err != nil {
		return types.TreeResult{}, err
	}
	collectionsDir, leafDir := core.SynthesizedPaths(absStart, id)
	info, statErr := os.Stat(leafDir)
	switch {
	case statErr == nil && !info.IsDir():
		return types.TreeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg("collection tree path exists but is not a directory")
	case statErr == nil && opts.Refresh:
		if err := os.RemoveAll(leafDir); err != nil {
			return types.TreeResult{}, treeFSError("failed to remove collection tree", err)
		}
		linked, err := a.linkEntries(absStart, leafDir, matchers)
		if err != nil {
			return types.TreeResult{}, err
		}
		return types.TreeResult{CollectionsDir: collectionsDir, State: types.TreeStateRefreshed, Linked: linked}, nil
	case statErr == nil:
		stale, err := a.staleEntries(absStart, leafDir, matchers)
		if err != nil {
			return types.TreeResult{}, err
		}
		return types.TreeResult{CollectionsDir: collectionsDir, State: types.TreeStateExisting, Stale: stale}, nil
	case os.IsNotExist(statErr):
		linked, err := a.linkEntries(absStart, leafDir, matchers)
		if err != nil {
			return types.TreeResult{}, err
		}
		return types.TreeResult{CollectionsDir: collectionsDir, State: types.TreeStateCreated, Linked: linked}, nil
	default:
		return types.TreeResult{}, treeFSError("failed to inspect collection tree", statErr)
	}
}

func (a CollectionTreeAdapter) Status(ctx context.Context, startPath string, id types.CollectionIdentity, opts types.TreeOptions) (types.TreeStatus, error) {
	absStart, err := filepath.Abs(startPath)
	if err != nil {
		return types.TreeStatus{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to resolve start path").
			WithCause(err)
	}
	if dir, ok := core.InTree(absStart, id); ok {
		return types.TreeStatus{CollectionsDir: dir, State: types.TreeStateInTree}, nil
	}
	matchers, err := compileIgnorePatterns(opts.Ignore)
	if err != nil {
		return types.TreeStatus{}, err
	}
	collectionsDir, leafDir := core.SynthesizedPaths(absStart, id)
	info, statErr := os.Stat(leafDir)
	switch {
	case statErr == nil && !info.IsDir():
		return types.TreeStatus{}, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg("collection tree path exists but is not a directory")
	case statErr == nil:
		stale, err := a.staleEntries(absStart, leafDir, matchers)
		if err != nil {
			return types.TreeStatus{}, err
		}
		return types.TreeStatus{CollectionsDir: collectionsDir, State: types.TreeStateExisting, Stale: stale}, nil
	case os.IsNotExist(statErr):
		return types.TreeStatus{CollectionsDir: collectionsDir, State: types.TreeStateAbsent}, nil
	default:
		return types.TreeStatus{}, treeFSError("failed to inspect collection tree", statErr)
	}
}

// linkEntries mirrors every top-level entry of the start path into the
// leaf directory as absolute symlinks. The collections directory itself
// and ignored names are skipped.
func (a CollectionTreeAdapter) linkEntries(startPath, leafDir string, matchers []glob.Glob) ([]string, error) {
	if err := os.MkdirAll(leafDir, 0o755); err != nil {
		return nil, treeFSError("failed to create collection tree", err)
	}
	entries, err := os.ReadDir(startPath)
	if err != nil {
		return nil, treeFSError("failed to read start path", err)
	}
	var linked []string
	for _, entry := range entries {
		name := entry.Name()
		if skipTreeEntry(name, matchers) {
			continue
		}
		if err := os.Symlink(filepath.Join(startPath, name), filepath.Join(leafDir, name)); err != nil {
			return nil, treeFSError("failed to link collection entry", err)
		}
		linked = append(linked, name)
	}
	sort.Strings(linked)
	return linked, nil
}

// staleEntries reports links whose target is gone plus start-path
// entries that never got linked, so callers can suggest a refresh.
func (a CollectionTreeAdapter) staleEntries(startPath, leafDir string, matchers []glob.Glob) ([]string, error) {
	links, err := os.ReadDir(leafDir)
	if err != nil {
		return nil, treeFSError("failed to read collection tree", err)
	}
	present := make(map[string]bool, len(links))
	var stale []string
	for _, link := range links {
		name := link.Name()
		present[name] = true
		if _, err := os.Stat(filepath.Join(leafDir, name)); err != nil {
			if os.IsNotExist(err) {
				stale = append(stale, name)
				continue
			}
			return nil, treeFSError("failed to inspect collection entry", err)
		}
	}
	entries, err := os.ReadDir(startPath)
	if err != nil {
		return nil, treeFSError("failed to read start path", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if skipTreeEntry(name, matchers) || present[name] {
			continue
		}
		stale = append(stale, name)
	}
	sort.Strings(stale)
	return stale, nil
}

func skipTreeEntry(name string, matchers []glob.Glob) bool {
	if name == "collections" {
		return true
	}
	for _, matcher := range matchers {
		if matcher.Match(name) {
			return true
		}
	}
	return false
}

func compileIgnorePatterns(patterns []string) ([]glob.Glob, error) {
	matchers := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		matcher, err := glob.Compile(pattern)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid ignore pattern: %s", pattern)).
				WithCause(err)
		}
		matchers = append(matchers, matcher)
	}
	return matchers, nil
}

func treeFSError(msg string, err error) error {
	code := errbuilder.CodeInternal
	if os.IsPermission(err) {
		code = errbuilder.CodePermissionDenied
	}
	return errbuilder.New().
		WithCode(code).
		WithMsg(msg).
		WithCause(err)
}

var _ ports.CollectionTreePort = CollectionTreeAdapter{}
