package workspace

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/nx-knip/errors"
)

func TestNxCommandProvider_MissingBinary(t *testing.T) {
	provider := &NxCommandProvider{
		Root:    t.TempDir(),
		Command: []string{"nx-knip-definitely-not-installed", "graph"},
	}

	_, err := provider.Projects(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrNxCommandFailed)
}

func TestNxCommandProvider_EmptyCommand(t *testing.T) {
	provider := &NxCommandProvider{Root: t.TempDir(), Command: []string{" "}}

	_, err := provider.Projects(context.Background())
	assert.ErrorIs(t, err, errUtils.ErrEmptyNxCommand)
}

func TestNxCommandProvider_ReadsWrittenGraph(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell script")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}

	root := t.TempDir()
	writeFiles(t, root, map[string]string{"graph.json": nxGraphJSON})

	// The script stands in for `nx graph`: it copies a fixture to the --file argument.
	script := `for arg in "$@"; do case "$arg" in --file=*) cp graph.json "${arg#--file=}";; esac; done`
	provider := &NxCommandProvider{
		Root:    root,
		Command: []string{"sh", "-c", script, "nx"},
	}

	projects, err := provider.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "lib-a", projects[0].Name)
	assert.Equal(t, filepath.ToSlash("apps/web"), projects[1].Root)
}

func TestNxCommandProvider_FailingCommand(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}

	provider := &NxCommandProvider{
		Root:    t.TempDir(),
		Command: []string{"sh", "-c", "echo 'Cannot find module nx' >&2; exit 3", "nx"},
	}

	_, err := provider.Projects(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrNxCommandFailed)
	assert.Equal(t, 3, errUtils.GetExitCode(err))
}
