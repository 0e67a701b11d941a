package app

import (
	"collection-env/internal/adapters"
	"collection-env/internal/ports"
)

type Service struct {
	GalaxySource ports.GalaxySourcePort
	Tree         ports.CollectionTreePort
	Probe        ports.AnsibleProbePort
	Finder       ports.CollectionFinderPort
	Runner       ports.CommandRunnerPort
	EnvFile      ports.EnvFileWriterPort
}

func NewService() Service {
	return Service{
		GalaxySource: adapters.NewGalaxyFileAdapter(),
		Tree:         adapters.NewCollectionTreeAdapter(),
		Probe:        adapters.NewAnsibleProbeAdapter(),
		Finder:       adapters.NewFinderEnvAdapter(),
		Runner:       adapters.NewCommandExecAdapter(),
		EnvFile:      adapters.NewEnvFileAdapter(),
	}
}
