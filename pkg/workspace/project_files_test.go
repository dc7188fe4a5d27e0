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

func TestProjectFilesProvider(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"nx.json": `{
  "targetDefaults": {
    "@nx/vite:test": {"options": {"config": "vite.config.ts", "passWithNoTests": true}},
    "lint": {"executor": "@nx/eslint:lint", "options": {"maxWarnings": 0}},
    "build": {"executor": "@nx/webpack:webpack"}
  }
}`,
		"apps/web/project.json": `{
  "name": "web",
  "projectType": "application",
  "sourceRoot": "apps/web/src",
  "targets": {
    "build": {"executor": "@nx/esbuild:esbuild", "options": {"main": "apps/web/src/main.ts"}},
    "test": {"executor": "@nx/vite:test", "options": {"config": "apps/web/vite.config.ts"}},
    "lint": {}
  }
}`,
		"apps/web-e2e/project.json":          `{"name": "web-e2e", "projectType": "application"}`,
		"libs/shared/util/project.json":      `{"projectType": "library", "root": "libs/shared/util"}`,
		"node_modules/some-pkg/project.json": `{"name": "ignored"}`,
		"dist/apps/web/project.json":         `{"name": "also-ignored"}`,
	})

	provider := &ProjectFilesProvider{Root: root}
	projects, err := provider.Projects(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"util", "web", "web-e2e"}, names)

	util := projects[0]
	assert.Equal(t, "libs/shared/util", util.Root)
	assert.Equal(t, schema.ProjectTypeLib, util.Type)
	assert.Empty(t, util.Targets)

	web := projects[1]
	assert.Equal(t, "apps/web", web.Root)
	assert.Equal(t, schema.ProjectTypeApp, web.Type)
	assert.Equal(t, "apps/web/src", web.SourceRoot)

	// Executor-keyed defaults fill in missing options; the project's own values win.
	assert.Equal(t, map[string]any{"config": "apps/web/vite.config.ts", "passWithNoTests": true}, web.Targets["test"].Options)

	// Name-keyed defaults apply to targets without an executor.
	assert.Equal(t, "@nx/eslint:lint", web.Targets["lint"].Executor)
	assert.Equal(t, map[string]any{"maxWarnings": float64(0)}, web.Targets["lint"].Options)

	// Name-keyed defaults for another executor are skipped.
	assert.Equal(t, schema.Target{
		Executor: "@nx/esbuild:esbuild",
		Options:  map[string]any{"main": "apps/web/src/main.ts"},
	}, web.Targets["build"])

	assert.Equal(t, schema.ProjectTypeE2E, projects[2].Type)
}

func TestProjectFilesProvider_RootProject(t *testing.T) {
	root := filepath.Join(t.TempDir(), "my-workspace")
	writeFiles(t, root, map[string]string{
		"project.json": `{"projectType": "application", "targets": {"serve": {"command": "vite"}}}`,
	})

	projects, err := (&ProjectFilesProvider{Root: root}).Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "my-workspace", projects[0].Name)
	assert.Equal(t, ".", projects[0].Root)
	assert.Equal(t, "vite", projects[0].Targets["serve"].Command)
}

func TestProjectFilesProvider_WithoutNxJSON(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"libs/a/project.json": `{"name": "a", "targets": {"test": {"executor": "@nx/vite:test"}}}`,
	})

	projects, err := (&ProjectFilesProvider{Root: root}).Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Nil(t, projects[0].Targets["test"].Options)
}

func TestProjectFilesProvider_Comments(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"nx.json": `{
  // shared defaults
  "targetDefaults": {
    "test": {"executor": "@nx/vite:test",},
  },
}`,
		"libs/a/project.json": `{
  "name": "a", /* generated */
  "targets": {"test": {},},
}`,
	})

	projects, err := (&ProjectFilesProvider{Root: root}).Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "a", projects[0].Name)
	assert.Equal(t, "@nx/vite:test", projects[0].Targets["test"].Executor)
}

func TestProjectFilesProvider_CustomPatterns(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"apps/web/project.json":  `{"name": "web"}`,
		"tools/gen/project.json": `{"name": "gen"}`,
	})

	provider := &ProjectFilesProvider{Root: root, Patterns: []string{"apps/**/project.json"}}
	projects, err := provider.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "web", projects[0].Name)
}

func TestProjectFilesProvider_Errors(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		sentinel error
	}{
		{
			name: "duplicate project names",
			files: map[string]string{
				"apps/a/project.json": `{"name": "shared"}`,
				"libs/b/project.json": `{"name": "shared"}`,
			},
			sentinel: errUtils.ErrDuplicateProject,
		},
		{
			name: "malformed project.json",
			files: map[string]string{
				"apps/a/project.json": `{"name": `,
			},
			sentinel: errUtils.ErrReadProjectFile,
		},
		{
			name: "malformed nx.json",
			files: map[string]string{
				"nx.json":             `{"targetDefaults": [}`,
				"apps/a/project.json": `{"name": "a"}`,
			},
			sentinel: errUtils.ErrParseNxJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFiles(t, root, tt.files)

			_, err := (&ProjectFilesProvider{Root: root}).Projects(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestProjectFilesProvider_MissingRoot(t *testing.T) {
	provider := &ProjectFilesProvider{Root: filepath.Join(t.TempDir(), "missing")}
	_, err := provider.Projects(context.Background())
	assert.ErrorIs(t, err, errUtils.ErrGlobProjectFiles)
}

func TestProjectType(t *testing.T) {
	assert.Equal(t, schema.ProjectTypeApp, projectType("application", "web"))
	assert.Equal(t, schema.ProjectTypeE2E, projectType("application", "web-e2e"))
	assert.Equal(t, schema.ProjectTypeLib, projectType("library", "web-e2e"))
	assert.Equal(t, schema.ProjectTypeLib, projectType("", "anything"))
}
