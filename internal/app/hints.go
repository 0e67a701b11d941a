package app

import (
	"fmt"
	"os"

	"collection-env/internal/types"
)

// checkSetupHints returns actionable hints derived from a completed
// setup flow.
func checkSetupHints(result SetupResult) []string {
	var hints []string
	if len(result.Stale) > 0 {
		hints = append(hints, fmt.Sprintf(
			"hint: %d collection tree entries are stale; rerun with --refresh to re-link",
			len(result.Stale),
		))
	}
	if result.Outcome != types.OutcomeNotActivated &&
		result.Outcome != types.OutcomeInjectOnly &&
		result.Runtime.Installed && !result.Runtime.SupportsFinder {
		hints = append(hints, fmt.Sprintf(
			"hint: ansible %s predates the collection finder; only search paths were configured",
			result.Runtime.Version,
		))
	}
	return hints
}

// emitHints writes hint messages to stderr.
func emitHints(hints []string) {
	for _, h := range hints {
		fmt.Fprintln(os.Stderr, h)
	}
}
