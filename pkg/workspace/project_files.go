package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/lo"

	errUtils "github.com/cloudposse/nx-knip/errors"
	log "github.com/cloudposse/nx-knip/pkg/logger"
	"github.com/cloudposse/nx-knip/pkg/schema"
	u "github.com/cloudposse/nx-knip/pkg/utils"
)

const (
	projectFileName = "project.json"
	nxJSONFileName  = "nx.json"
)

// DefaultProjectPatterns are the globs ProjectFilesProvider matches when Patterns is empty.
var DefaultProjectPatterns = []string{"**/" + projectFileName}

// DefaultIgnoredDirs are never descended into.
var DefaultIgnoredDirs = []string{"node_modules", "dist", "tmp", ".nx", ".git", ".angular", "coverage"}

// ProjectFilesProvider builds the project graph from project.json files under Root,
// applying the targetDefaults of Root/nx.json.
type ProjectFilesProvider struct {
	Root string

	// Patterns are doublestar globs relative to Root.
	Patterns []string

	// IgnoredDirs are directory names skipped during discovery.
	IgnoredDirs []string
}

type projectFile struct {
	Name        string                   `json:"name"`
	Root        string                   `json:"root"`
	SourceRoot  string                   `json:"sourceRoot"`
	ProjectType string                   `json:"projectType"`
	Targets     map[string]schema.Target `json:"targets"`
}

type nxJSON struct {
	TargetDefaults map[string]schema.Target `json:"targetDefaults"`
}

// Projects implements Provider. Projects are sorted by name.
func (p *ProjectFilesProvider) Projects(ctx context.Context) ([]schema.Project, error) {
	files, err := p.discover(ctx)
	if err != nil {
		return nil, err
	}

	defaults, err := p.readTargetDefaults()
	if err != nil {
		return nil, err
	}

	projects := make([]schema.Project, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, rel := range files {
		project, err := p.readProject(rel, defaults)
		if err != nil {
			return nil, err
		}
		if other, ok := seen[project.Name]; ok {
			return nil, errUtils.Build(fmt.Errorf("%w: %q is defined in %s and %s", errUtils.ErrDuplicateProject, project.Name, other, rel)).
				WithHint("Give each project a unique `name` in its project.json").
				Err()
		}
		seen[project.Name] = rel
		projects = append(projects, project)
	}

	sort.Slice(projects, func(i, j int) bool { return projects[i].Name < projects[j].Name })
	log.Debug("Discovered projects", "root", p.Root, "count", len(projects))
	return projects, nil
}

// discover returns the slash-separated paths of the project files, relative to Root.
func (p *ProjectFilesProvider) discover(ctx context.Context) ([]string, error) {
	patterns := p.Patterns
	if len(patterns) == 0 {
		patterns = DefaultProjectPatterns
	}
	ignored := p.IgnoredDirs
	if len(ignored) == 0 {
		ignored = DefaultIgnoredDirs
	}

	var files []string
	err := filepath.WalkDir(p.Root, func(full string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := u.ToSlashRel(p.Root, full)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if rel != "." && lo.Contains(ignored, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		for _, pattern := range patterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				files = append(files, rel)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, errUtils.Wrap(errUtils.ErrGlobProjectFiles, err).WithContext("root", p.Root).Err()
	}

	sort.Strings(files)
	log.Trace("Matched project files", "files", files)
	return files, nil
}

func (p *ProjectFilesProvider) readTargetDefaults() (map[string]schema.Target, error) {
	nxPath := filepath.Join(p.Root, nxJSONFileName)
	if !u.FileExists(nxPath) {
		log.Debug("No nx.json found, target defaults are not applied", "path", nxPath)
		return nil, nil
	}

	cfg, err := u.ReadJSONCFile[nxJSON](nxPath)
	if err != nil {
		return nil, errUtils.Wrap(errUtils.ErrParseNxJSON, err).WithContext("path", nxPath).Err()
	}
	return cfg.TargetDefaults, nil
}

func (p *ProjectFilesProvider) readProject(rel string, defaults map[string]schema.Target) (schema.Project, error) {
	full := filepath.Join(p.Root, filepath.FromSlash(rel))
	log.Trace("Reading project file", "path", full)

	file, err := u.ReadJSONCFile[projectFile](full)
	if err != nil {
		return schema.Project{}, errUtils.Wrap(errUtils.ErrReadProjectFile, err).WithContext("path", full).Err()
	}

	root := file.Root
	if root == "" {
		root = path.Dir(rel)
	}
	name := file.Name
	if name == "" {
		name = path.Base(root)
	}
	if name == "." {
		name = filepath.Base(p.Root)
	}

	targets := make(map[string]schema.Target, len(file.Targets))
	for targetName, target := range file.Targets {
		merged, err := applyTargetDefaults(targetName, target, defaults)
		if err != nil {
			return schema.Project{}, errUtils.Wrap(errUtils.ErrReadProjectFile, err).
				WithContext("path", full).
				WithContext("target", targetName).
				Err()
		}
		targets[targetName] = merged
	}

	return schema.Project{
		Name:       name,
		Type:       projectType(file.ProjectType, name),
		Root:       root,
		SourceRoot: file.SourceRoot,
		Targets:    targets,
	}, nil
}

// projectType maps project.json's projectType to the graph node type.
// Nx reports applications named `*-e2e` as e2e projects.
func projectType(declared string, name string) schema.ProjectType {
	switch declared {
	case "application":
		if strings.HasSuffix(name, "-e2e") {
			return schema.ProjectTypeE2E
		}
		return schema.ProjectTypeApp
	default:
		return schema.ProjectTypeLib
	}
}
