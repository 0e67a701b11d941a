package types

type SetupOutcome string

const (
	// OutcomeNotActivated means metadata or the ansible runtime was
	// missing and no path injection happened.
	OutcomeNotActivated SetupOutcome = "not-activated"
	// OutcomeExistingTree means the start path was already inside a
	// collections tree.
	OutcomeExistingTree SetupOutcome = "existing-tree"
	// OutcomeSynthesizedTree means the collections tree lives under the
	// start path itself, synthesized from symlinks.
	OutcomeSynthesizedTree SetupOutcome = "synthesized-tree"
	// OutcomeInjectOnly means only the previously exported path list was
	// re-published.
	OutcomeInjectOnly SetupOutcome = "inject-only"
)

type TreeState string

const (
	TreeStateInTree    TreeState = "in-tree"
	TreeStateCreated   TreeState = "created"
	TreeStateExisting  TreeState = "existing"
	TreeStateRefreshed TreeState = "refreshed"
	TreeStateAbsent    TreeState = "absent"
)
