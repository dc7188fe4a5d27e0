package presets

import (
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/cloudposse/nx-knip/pkg/knip"
	"github.com/cloudposse/nx-knip/pkg/plugin"
	"github.com/cloudposse/nx-knip/pkg/schema"
	u "github.com/cloudposse/nx-knip/pkg/utils"
)

const (
	executorsManifest  = "executors.json"
	generatorsManifest = "generators.json"
)

type executorsFile struct {
	Executors map[string]struct {
		Implementation string `json:"implementation"`
	} `json:"executors"`
}

type generatorsFile struct {
	Generators map[string]struct {
		Factory string `json:"factory"`
	} `json:"generators"`
}

// LocalNxPlugins adds the entry points of Nx plugins developed inside the
// workspace: the package index plus every executor implementation and
// generator factory listed in the optional executors.json and generators.json.
func LocalNxPlugins(names []string) plugin.Plugin {
	return func(opts plugin.Options) knip.Output {
		filter := func(p schema.Project) bool { return lo.Contains(names, p.Name) }
		mapper := func(p schema.Project, rootFolder string) knip.Output {
			return knip.Some(knip.Config{
				"entry": localPluginEntries(opts.WorkspaceRoot, p, rootFolder),
			})
		}
		return plugin.WithProjectMapper(filter, mapper)(opts)
	}
}

func localPluginEntries(workspaceRoot string, p schema.Project, rootFolder string) knip.StringList {
	entries := []string{sourceRoot(p) + "/index.ts"}

	manifestDir := filepath.Join(workspaceRoot, filepath.FromSlash(rootFolder))

	if executors, ok := u.SafeReadJSONFile[executorsFile](filepath.Join(manifestDir, executorsManifest)); ok {
		for _, name := range sortedKeys(executors.Executors) {
			entries = appendImplementation(entries, rootFolder, executors.Executors[name].Implementation)
		}
	}

	if generators, ok := u.SafeReadJSONFile[generatorsFile](filepath.Join(manifestDir, generatorsManifest)); ok {
		for _, name := range sortedKeys(generators.Generators) {
			entries = appendImplementation(entries, rootFolder, generators.Generators[name].Factory)
		}
	}

	return lo.Map(entries, func(entry string, _ int) string { return entry + "!" })
}

// appendImplementation resolves a manifest path (relative to the project root,
// without extension) to a workspace-relative TypeScript file.
func appendImplementation(entries []string, rootFolder, implementation string) []string {
	if implementation == "" {
		return entries
	}
	// "./src/x#export" style references point at a named export of the file.
	implementation, _, _ = strings.Cut(implementation, "#")
	return append(entries, path.Join(rootFolder, implementation+".ts"))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
