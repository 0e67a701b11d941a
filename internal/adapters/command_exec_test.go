//go:build !windows

package adapters

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandExec_ZeroExit(t *testing.T) {
	code, err := NewCommandExecAdapter().Run(t.Context(), []string{"sh", "-c", "exit 0"}, nil)
	require.NoError(t, err)
	assert.Zero(t, code)
}

func TestCommandExec_PropagatesExitCode(t *testing.T) {
	code, err := NewCommandExecAdapter().Run(t.Context(), []string{"sh", "-c", "exit 7"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestCommandExec_UsesGivenEnvironment(t *testing.T) {
	code, err := NewCommandExecAdapter().Run(t.Context(),
		[]string{"sh", "-c", `test "$PREPARED" = yes`},
		[]string{"PREPARED=yes", "PATH=/usr/bin:/bin"},
	)
	require.NoError(t, err)
	assert.Zero(t, code)
}

func TestCommandExec_MissingBinary(t *testing.T) {
	_, err := NewCommandExecAdapter().Run(t.Context(), []string{"/nonexistent/binary"}, nil)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestCommandExec_EmptyArgv(t *testing.T) {
	_, err := NewCommandExecAdapter().Run(t.Context(), nil, nil)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
