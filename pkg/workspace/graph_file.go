package workspace

import (
	"context"
	"sort"

	errUtils "github.com/cloudposse/nx-knip/errors"
	log "github.com/cloudposse/nx-knip/pkg/logger"
	"github.com/cloudposse/nx-knip/pkg/schema"
	u "github.com/cloudposse/nx-knip/pkg/utils"
)

// GraphFileProvider reads the output of `nx graph --file=<path>`.
// The project graph cache format (nodes at the top level) is accepted too.
type GraphFileProvider struct {
	Path string
}

type graphFile struct {
	Graph struct {
		Nodes map[string]graphNode `json:"nodes"`
	} `json:"graph"`
	Nodes map[string]graphNode `json:"nodes"`
}

type graphNode struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data struct {
		Root       string                   `json:"root"`
		SourceRoot string                   `json:"sourceRoot"`
		Targets    map[string]schema.Target `json:"targets"`
	} `json:"data"`
}

// Projects implements Provider. Projects are sorted by name.
func (p *GraphFileProvider) Projects(ctx context.Context) ([]schema.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("Reading project graph file", "path", p.Path)
	graph, err := u.ReadJSONFile[graphFile](p.Path)
	if err != nil {
		return nil, errUtils.Wrap(errUtils.ErrParseGraphFile, err).
			WithContext("path", p.Path).
			WithHint("Generate the file with `nx graph --file=graph.json`").
			Err()
	}

	nodes := graph.Graph.Nodes
	if len(nodes) == 0 {
		nodes = graph.Nodes
	}

	projects := make([]schema.Project, 0, len(nodes))
	for key, node := range nodes {
		name := node.Name
		if name == "" {
			name = key
		}
		projects = append(projects, schema.Project{
			Name:       name,
			Type:       schema.ProjectType(node.Type),
			Root:       node.Data.Root,
			SourceRoot: node.Data.SourceRoot,
			Targets:    node.Data.Targets,
		})
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].Name < projects[j].Name })

	log.Trace("Parsed project graph", "projects", len(projects))
	return projects, nil
}
