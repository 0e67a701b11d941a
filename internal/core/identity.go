package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"collection-env/internal/types"
)

// galaxyNameRe is the grammar galaxy enforces for namespaces and
// collection names: lowercase, leading letter, two characters minimum.
var galaxyNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]+$`)

// ResolveIdentity extracts the namespace/name pair from a manifest.
// A missing or whitespace-only value on either side yields the
// unresolved zero identity.
func ResolveIdentity(galaxy types.Galaxy) types.CollectionIdentity {
	namespace := strings.TrimSpace(galaxy.Namespace)
	name := strings.TrimSpace(galaxy.Name)
	if namespace == "" || name == "" {
		return types.CollectionIdentity{}
	}
	return types.CollectionIdentity{Namespace: namespace, Name: name}
}

// ValidateIdentity enforces the galaxy name grammar on a resolved pair.
func ValidateIdentity(ctx context.Context, id types.CollectionIdentity) error {
	assert.NotEmpty(ctx, id.Namespace, "collection namespace must be set")
	assert.NotEmpty(ctx, id.Name, "collection name must be set")
	if !galaxyNameRe.MatchString(id.Namespace) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid collection namespace: %s", id.Namespace))
	}
	if !galaxyNameRe.MatchString(id.Name) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid collection name: %s", id.Name))
	}
	return nil
}
