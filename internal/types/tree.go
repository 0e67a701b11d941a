package types

// TreeOptions carries the per-invocation knobs for tree synthesis.
type TreeOptions struct {
	// Refresh re-creates the symlinks of an already-synthesized tree.
	Refresh bool
	// Ignore lists glob patterns for start-path entries to skip, in
	// addition to the literal "collections" entry.
	Ignore []string
}

// TreeResult reports what Ensure did for one invocation.
type TreeResult struct {
	CollectionsDir string
	State          TreeState
	// Linked lists the entry names symlinked during this invocation;
	// empty when the tree already existed.
	Linked []string
	// Stale lists start-path entries that have no symlink in an
	// already-synthesized tree. Populated only when the tree was left
	// as-is (no refresh).
	Stale []string
}

// TreeStatus is the read-only view used by inspect.
type TreeStatus struct {
	CollectionsDir string
	State          TreeState
	Stale          []string
}
