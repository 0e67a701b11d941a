package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"collection-env/internal/ports"
	"collection-env/internal/types"
)

type GalaxyFileAdapter struct{}

func NewGalaxyFileAdapter() GalaxyFileAdapter {
	return GalaxyFileAdapter{}
}

func (a GalaxyFileAdapter) Load(path string) (types.Galaxy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Galaxy{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("galaxy manifest not found").
				WithCause(err)
		}
		return types.Galaxy{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read galaxy manifest").
			WithCause(err)
	}
	var galaxy types.Galaxy
	if err := yaml.Unmarshal(data, &galaxy); err != nil {
		return types.Galaxy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse galaxy yaml").
			WithCause(err)
	}
	return galaxy, nil
}

var _ ports.GalaxySourcePort = GalaxyFileAdapter{}
