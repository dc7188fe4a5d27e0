// Package workspace reads the Nx project graph that knip plugins inspect.
package workspace

import (
	"context"
	"fmt"
	"path/filepath"

	errUtils "github.com/cloudposse/nx-knip/errors"
	"github.com/cloudposse/nx-knip/pkg/schema"
	u "github.com/cloudposse/nx-knip/pkg/utils"
)

// Provider returns the projects of a workspace.
type Provider interface {
	Projects(ctx context.Context) ([]schema.Project, error)
}

// DefaultNxCommand is the command NxCommandProvider runs when none is configured.
var DefaultNxCommand = []string{"npx", "nx", "graph"}

// NewProvider picks the provider configured by ws.
// In "auto" mode a configured graph file wins, then project.json discovery.
func NewProvider(ws schema.Workspace) (Provider, error) {
	if ws.Root == "" {
		return nil, errUtils.ErrWorkspaceRootEmpty
	}

	graphFile := ws.GraphFile
	if graphFile != "" && !filepath.IsAbs(graphFile) {
		graphFile = filepath.Join(ws.Root, graphFile)
	}

	switch ws.Source {
	case schema.WorkspaceSourceGraphFile:
		return &GraphFileProvider{Path: graphFile}, nil
	case schema.WorkspaceSourceProjectFiles:
		return &ProjectFilesProvider{Root: ws.Root}, nil
	case schema.WorkspaceSourceNx:
		return &NxCommandProvider{Root: ws.Root, Command: ws.NxCommand}, nil
	case "", schema.WorkspaceSourceAuto:
		if graphFile != "" && u.FileExists(graphFile) {
			return &GraphFileProvider{Path: graphFile}, nil
		}
		return &ProjectFilesProvider{Root: ws.Root}, nil
	default:
		return nil, errUtils.Build(fmt.Errorf("%w: unknown workspace source %q", errUtils.ErrWorkspaceGraph, ws.Source)).
			WithHintf("Use one of %q, %q, %q or %q",
				schema.WorkspaceSourceAuto,
				schema.WorkspaceSourceGraphFile,
				schema.WorkspaceSourceProjectFiles,
				schema.WorkspaceSourceNx).
			Err()
	}
}
