// Package session models the process state of the test run being
// prepared: environment variables plus the interpreter search path
// list. All mutations happen on an explicit Environment value instead
// of the process-global environment, so the flow stays unit-testable
// and the caller decides how the result is applied (export lines, a
// dotenv file, or a child process).
package session

import (
	"fmt"
	"sort"
	"strings"

	"collection-env/internal/shared"
)

// SearchPathVar carries the interpreter search path list of the test
// process. Entries inserted at the front take import precedence.
const SearchPathVar = "PYTHONPATH"

type Environment struct {
	vars             map[string]string
	searchPaths      []string
	hadSearchPathVar bool
	modified         map[string]bool
}

// Snapshot builds an Environment from a raw environ slice as returned
// by os.Environ(). The search path list is seeded from SearchPathVar.
func Snapshot(environ []string) *Environment {
	env := &Environment{
		vars:     map[string]string{},
		modified: map[string]bool{},
	}
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		if key == SearchPathVar {
			env.hadSearchPathVar = true
			env.searchPaths = shared.SplitPathList(value)
			continue
		}
		env.vars[key] = value
	}
	return env
}

func (e *Environment) Get(key string) (string, bool) {
	if key == SearchPathVar {
		if !e.hadSearchPathVar && len(e.searchPaths) == 0 {
			return "", false
		}
		return shared.JoinPathList(e.searchPaths), true
	}
	value, ok := e.vars[key]
	return value, ok
}

func (e *Environment) Set(key string, value string) {
	if key == SearchPathVar {
		e.searchPaths = shared.SplitPathList(value)
		e.hadSearchPathVar = true
	} else {
		e.vars[key] = value
	}
	e.modified[key] = true
}

// PrependSearchPath inserts path at the front of the search path list.
// Duplicates are kept; ordering is the caller's contract.
func (e *Environment) PrependSearchPath(path string) {
	e.searchPaths = append([]string{path}, e.searchPaths...)
	e.modified[SearchPathVar] = true
}

// SearchPaths returns a copy of the current search path list.
func (e *Environment) SearchPaths() []string {
	return append([]string(nil), e.searchPaths...)
}

// Environ renders the environment as KEY=VALUE pairs for os/exec. The
// search path variable is included once it has entries or was present
// in the snapshot.
func (e *Environment) Environ() []string {
	keys := make([]string, 0, len(e.vars)+1)
	for key := range e.vars {
		keys = append(keys, key)
	}
	if e.hadSearchPathVar || len(e.searchPaths) > 0 {
		keys = append(keys, SearchPathVar)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		value, _ := e.Get(key)
		out = append(out, key+"="+value)
	}
	return out
}

// Modified returns the names of variables changed since the snapshot,
// sorted for stable rendering.
func (e *Environment) Modified() []string {
	keys := make([]string, 0, len(e.modified))
	for key := range e.modified {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ExportLines renders the modified variables as POSIX export lines.
func (e *Environment) ExportLines() []string {
	var lines []string
	for _, key := range e.Modified() {
		value, _ := e.Get(key)
		lines = append(lines, fmt.Sprintf("export %s=%s", key, shellQuote(value)))
	}
	return lines
}

// DotenvLines renders the modified variables as KEY=VALUE lines.
func (e *Environment) DotenvLines() []string {
	var lines []string
	for _, key := range e.Modified() {
		value, _ := e.Get(key)
		lines = append(lines, key+"="+value)
	}
	return lines
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
