package adapters

import (
	"context"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"collection-env/internal/core"
	"collection-env/internal/ports"
	"collection-env/internal/shared"
	"collection-env/internal/types"
)

// probeScript exits non-zero when ansible cannot be imported and prints
// the release version otherwise.
const probeScript = "from ansible.release import __version__; print(__version__)"

type AnsibleProbeAdapter struct{}

func NewAnsibleProbeAdapter() AnsibleProbeAdapter {
	return AnsibleProbeAdapter{}
}

func (a AnsibleProbeAdapter) Detect(ctx context.Context, python string) (types.AnsibleRuntime, error) {
	if strings.TrimSpace(python) == "" {
		return types.AnsibleRuntime{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("python interpreter is empty")
	}
	cmd := exec.CommandContext(ctx, python, "-c", probeScript)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return types.AnsibleRuntime{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("ansible probe failed").
			WithCause(shared.CommandError(output, err))
	}
	version := strings.TrimSpace(string(output))
	return types.AnsibleRuntime{
		Installed:      true,
		Version:        version,
		SupportsFinder: core.SupportsCollectionFinder(version),
	}, nil
}

var _ ports.AnsibleProbePort = AnsibleProbeAdapter{}
