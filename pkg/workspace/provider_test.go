package workspace

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/nx-knip/errors"
	"github.com/cloudposse/nx-knip/pkg/schema"
)

func TestNewProvider(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"graph.json": nxGraphJSON})

	tests := []struct {
		name     string
		ws       schema.Workspace
		expected Provider
	}{
		{
			name:     "auto with existing graph file",
			ws:       schema.Workspace{Root: root, GraphFile: "graph.json"},
			expected: &GraphFileProvider{Path: filepath.Join(root, "graph.json")},
		},
		{
			name:     "auto with missing graph file",
			ws:       schema.Workspace{Root: root, Source: schema.WorkspaceSourceAuto, GraphFile: "missing.json"},
			expected: &ProjectFilesProvider{Root: root},
		},
		{
			name:     "explicit graph file keeps absolute path",
			ws:       schema.Workspace{Root: root, Source: schema.WorkspaceSourceGraphFile, GraphFile: "/tmp/graph.json"},
			expected: &GraphFileProvider{Path: "/tmp/graph.json"},
		},
		{
			name:     "project files",
			ws:       schema.Workspace{Root: root, Source: schema.WorkspaceSourceProjectFiles, GraphFile: "graph.json"},
			expected: &ProjectFilesProvider{Root: root},
		},
		{
			name:     "nx",
			ws:       schema.Workspace{Root: root, Source: schema.WorkspaceSourceNx, NxCommand: []string{"pnpm", "nx", "graph"}},
			expected: &NxCommandProvider{Root: root, Command: []string{"pnpm", "nx", "graph"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.ws)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, provider)
		})
	}
}

func TestNewProvider_Errors(t *testing.T) {
	_, err := NewProvider(schema.Workspace{})
	assert.ErrorIs(t, err, errUtils.ErrWorkspaceRootEmpty)

	_, err = NewProvider(schema.Workspace{Root: t.TempDir(), Source: "lerna"})
	assert.ErrorIs(t, err, errUtils.ErrWorkspaceGraph)
}

func TestNewProvider_AutoReadsGraph(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"graph.json": nxGraphJSON})

	provider, err := NewProvider(schema.Workspace{Root: root, GraphFile: "graph.json"})
	require.NoError(t, err)

	projects, err := provider.Projects(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}
