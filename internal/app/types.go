package app

import (
	"collection-env/internal/session"
	"collection-env/internal/types"
)

type SetupRequest struct {
	StartPath       string
	InjectOnly      bool
	Refresh         bool
	Ignore          []string
	UserCollections string
	Python          string
	Environ         []string
}

type SetupResult struct {
	Outcome        types.SetupOutcome
	Identity       types.CollectionIdentity
	Runtime        types.AnsibleRuntime
	CollectionsDir string
	Paths          []string
	Stale          []string
	Env            *session.Environment
}

type RunRequest struct {
	Setup SetupRequest
	Argv  []string
}

type RunResult struct {
	Setup    SetupResult
	ExitCode int
}

type InspectRequest struct {
	StartPath       string
	UserCollections string
	Python          string
	Ignore          []string
}

type InspectResult struct {
	Identity types.CollectionIdentity
	Galaxy   types.Galaxy
	Runtime  types.AnsibleRuntime
	Tree     types.TreeStatus
	Paths    []string
}
