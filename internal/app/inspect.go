package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"collection-env/internal/types"
)

func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	startPath := strings.TrimSpace(req.StartPath)
	if startPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("start path is required")
	}
	result := InspectResult{}
	runtime, err := s.Probe.Detect(ctx, req.Python)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("ansible probe failed")
	} else {
		result.Runtime = runtime
	}
	identity, galaxy, err := s.resolveIdentity(ctx, startPath)
	if err != nil {
		return InspectResult{}, err
	}
	result.Identity = identity
	result.Galaxy = galaxy
	if identity == (types.CollectionIdentity{}) {
		return result, nil
	}
	status, err := s.Tree.Status(ctx, startPath, identity, types.TreeOptions{Ignore: req.Ignore})
	if err != nil {
		return InspectResult{}, err
	}
	result.Tree = status
	result.Paths = []string{status.CollectionsDir}
	if userDir := strings.TrimSpace(req.UserCollections); userDir != "" {
		result.Paths = append(result.Paths, userDir)
	}
	return result, nil
}
