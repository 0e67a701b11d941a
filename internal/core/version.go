package core

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
)

// finderSpec gates the collection finder capability. The finder shipped
// with ansible-base 2.10; 2.9 and older only support plain search-path
// injection.
const finderSpec = ">=2.10"

// SupportsCollectionFinder reports whether the probed ansible-core
// version ships the collection finder. Unparseable versions report
// false so the capability degrades instead of failing.
func SupportsCollectionFinder(version string) bool {
	parsed, err := pep440.Parse(strings.TrimSpace(version))
	if err != nil {
		return false
	}
	spec, err := pep440.NewSpecifiers(finderSpec)
	if err != nil {
		return false
	}
	return spec.Check(parsed)
}

// ValidateCollectionVersion checks a manifest version against strict
// semver, the format galaxy enforces at publish time. Empty versions
// are allowed for source checkouts.
func ValidateCollectionVersion(version string) error {
	if strings.TrimSpace(version) == "" {
		return nil
	}
	if _, err := semver.StrictNewVersion(version); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("collection version is not semver: %s", version)).
			WithCause(err)
	}
	return nil
}
