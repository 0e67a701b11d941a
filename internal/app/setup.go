package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"collection-env/internal/core"
	"collection-env/internal/session"
	"collection-env/internal/shared"
	"collection-env/internal/types"
)

// collectionsPathsVar is the legacy plural variable exported for
// integration tests; the finder itself reads the single form.
const collectionsPathsVar = "ANSIBLE_COLLECTIONS_PATHS"

// galaxyFileName is the manifest the identity is read from, relative to
// the start path.
const galaxyFileName = "galaxy.yml"

func (s Service) Setup(ctx context.Context, req SetupRequest) (SetupResult, error) {
	startPath := strings.TrimSpace(req.StartPath)
	if startPath == "" {
		return SetupResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("start path is required")
	}
	env := session.Snapshot(req.Environ)
	if req.InjectOnly {
		return s.injectOnly(ctx, env)
	}

	runtime, err := s.Probe.Detect(ctx, req.Python)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("ansible probe failed")
		log.Ctx(ctx).Error().Msg("ansible is not installed, plugin not activated")
		return SetupResult{Outcome: types.OutcomeNotActivated, Env: env}, nil
	}
	log.Ctx(ctx).Debug().Str("version", runtime.Version).Msg("ansible detected")

	log.Ctx(ctx).Debug().Str("path", startPath).Msg("start path")
	identity, galaxy, err := s.resolveIdentity(ctx, startPath)
	if err != nil {
		return SetupResult{}, err
	}
	if identity == (types.CollectionIdentity{}) {
		// Tests may not be run from the root of the checkout.
		return SetupResult{Outcome: types.OutcomeNotActivated, Runtime: runtime, Env: env}, nil
	}
	if err := core.ValidateCollectionVersion(galaxy.Version); err != nil {
		log.Ctx(ctx).Warn().Str("version", galaxy.Version).Msg("collection version is not semver")
	}

	tree, err := s.Tree.Ensure(ctx, startPath, identity, types.TreeOptions{
		Refresh: req.Refresh,
		Ignore:  req.Ignore,
	})
	if err != nil {
		return SetupResult{}, err
	}
	outcome := types.OutcomeSynthesizedTree
	if tree.State == types.TreeStateInTree {
		log.Ctx(ctx).Info().Msg("in collection tree")
		outcome = types.OutcomeExistingTree
	} else {
		log.Ctx(ctx).Info().Msg("not in collection tree")
		if tree.State == types.TreeStateExisting {
			outcome = types.OutcomeExistingTree
		}
	}
	if len(tree.Stale) > 0 {
		log.Ctx(ctx).Warn().Strs("entries", tree.Stale).Msg("collection tree is stale")
	}
	log.Ctx(ctx).Info().Str("dir", tree.CollectionsDir).Msg("collections dir")

	paths := []string{tree.CollectionsDir}
	if userDir := strings.TrimSpace(req.UserCollections); userDir != "" {
		paths = append(paths, userDir)
	}
	log.Ctx(ctx).Info().Strs("paths", paths).Msg("collection search paths")

	if runtime.SupportsFinder {
		if err := s.Finder.Install(ctx, env, paths); err != nil {
			return SetupResult{}, err
		}
	} else {
		log.Ctx(ctx).Debug().Str("version", runtime.Version).Msg("collection finder not supported")
	}

	env.PrependSearchPath(tree.CollectionsDir)
	log.Ctx(ctx).Debug().Strs("paths", env.SearchPaths()).Msg("search path updated")

	joined := shared.JoinPathList(paths)
	log.Ctx(ctx).Info().Str("value", joined).Msg("setting ANSIBLE_COLLECTIONS_PATHS")
	env.Set(collectionsPathsVar, joined)

	result := SetupResult{
		Outcome:        outcome,
		Identity:       identity,
		Runtime:        runtime,
		CollectionsDir: tree.CollectionsDir,
		Paths:          paths,
		Stale:          tree.Stale,
		Env:            env,
	}
	emitHints(checkSetupHints(result))
	return result, nil
}

// resolveIdentity reads the galaxy manifest and applies the identity
// rules. Missing manifests and missing or invalid namespace/name pairs
// fail soft: they log at error level and return the zero identity.
func (s Service) resolveIdentity(ctx context.Context, startPath string) (types.CollectionIdentity, types.Galaxy, error) {
	galaxyPath := filepath.Join(startPath, galaxyFileName)
	log.Ctx(ctx).Info().Str("path", galaxyPath).Msg("looking for collection info")
	galaxy, err := s.GalaxySource.Load(galaxyPath)
	if err != nil {
		if errbuilder.CodeOf(err) == errbuilder.CodeNotFound {
			log.Ctx(ctx).Error().Msg("no galaxy.yml file found, plugin not activated")
			return types.CollectionIdentity{}, types.Galaxy{}, nil
		}
		return types.CollectionIdentity{}, types.Galaxy{}, err
	}
	identity := core.ResolveIdentity(galaxy)
	if identity == (types.CollectionIdentity{}) {
		log.Ctx(ctx).Error().Msg("galaxy.yml file does not contain namespace and name")
		return types.CollectionIdentity{}, galaxy, nil
	}
	if err := core.ValidateIdentity(ctx, identity); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("invalid collection identity, plugin not activated")
		return types.CollectionIdentity{}, galaxy, nil
	}
	log.Ctx(ctx).Debug().Msg("galaxy.yml file found, plugin activated")
	log.Ctx(ctx).Info().Str("namespace", identity.Namespace).Msg("collection namespace")
	log.Ctx(ctx).Info().Str("name", identity.Name).Msg("collection name")
	return identity, galaxy, nil
}

// injectOnly re-publishes a previously exported path list instead of
// resolving the checkout: each non-empty segment is inserted at the
// front of the search path in sequence, so the final order reverses the
// variable's order.
func (s Service) injectOnly(ctx context.Context, env *session.Environment) (SetupResult, error) {
	log.Ctx(ctx).Info().Msg("inject only, reusing exported collection paths")
	value, _ := env.Get(collectionsPathsVar)
	var injected []string
	for _, segment := range shared.SplitPathList(value) {
		if segment == "" {
			continue
		}
		env.PrependSearchPath(segment)
		injected = append(injected, segment)
	}
	log.Ctx(ctx).Debug().Strs("paths", env.SearchPaths()).Msg("search path updated")
	if len(injected) > 0 {
		if err := s.Finder.Install(ctx, env, injected); err != nil {
			return SetupResult{}, err
		}
	}
	return SetupResult{Outcome: types.OutcomeInjectOnly, Paths: injected, Env: env}, nil
}
