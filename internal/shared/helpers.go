// Package shared provides common utility functions used across multiple
// packages in the collection-env codebase.
package shared

import (
	"fmt"
	"os"
	"strings"
)

// JoinPathList joins paths with the platform path-list separator, the
// same convention the consumer uses for ANSIBLE_COLLECTIONS_PATHS.
func JoinPathList(paths []string) string {
	return strings.Join(paths, string(os.PathListSeparator))
}

// SplitPathList splits a path-list value on the platform separator.
// Empty segments are preserved; callers decide whether to skip them.
func SplitPathList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, string(os.PathListSeparator))
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
