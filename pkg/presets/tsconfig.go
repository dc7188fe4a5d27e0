package presets

import (
	"path/filepath"

	"github.com/cloudposse/nx-knip/pkg/knip"
	"github.com/cloudposse/nx-knip/pkg/plugin"
	u "github.com/cloudposse/nx-knip/pkg/utils"
)

// DefaultTsConfigPath is the Nx root TypeScript config.
const DefaultTsConfigPath = "tsconfig.base.json"

type tsConfig struct {
	CompilerOptions struct {
		Paths map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
}

// NxTsPaths copies the path aliases of the workspace tsconfig into the `paths` section.
// A relative tsconfigPath is resolved against the workspace root; an empty one means DefaultTsConfigPath.
func NxTsPaths(tsconfigPath string) plugin.Plugin {
	if tsconfigPath == "" {
		tsconfigPath = DefaultTsConfigPath
	}
	return func(opts plugin.Options) knip.Output {
		full := tsconfigPath
		if !filepath.IsAbs(full) {
			full = filepath.Join(opts.WorkspaceRoot, full)
		}

		cfg, ok := u.SafeReadJSONFile[tsConfig](full)
		if !ok || cfg.CompilerOptions.Paths == nil {
			return knip.None()
		}

		paths := make(knip.Mapping, len(cfg.CompilerOptions.Paths))
		for alias, targets := range cfg.CompilerOptions.Paths {
			paths[alias] = knip.List(targets...)
		}
		return knip.Some(knip.Config{"paths": paths})
	}
}
