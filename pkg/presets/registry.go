// Package presets holds ready-made plugins for common Nx workspace setups.
package presets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	errUtils "github.com/cloudposse/nx-knip/errors"
	"github.com/cloudposse/nx-knip/pkg/knip"
	"github.com/cloudposse/nx-knip/pkg/plugin"
	"github.com/cloudposse/nx-knip/pkg/schema"
)

// Factory builds a preset plugin from the CLI configuration.
type Factory func(cfg *schema.Configuration) plugin.Plugin

const (
	NameNxTsPaths              = "nx-ts-paths"
	NameNxStandards            = "nx-standards"
	NameEsbuildApps            = "esbuild-apps"
	NameEsbuildPublishableLibs = "esbuild-publishable-libs"
	NameVitest                 = "vitest"
	NameNextJS                 = "nextjs"
	NameCypress                = "cypress"
	NameEslint                 = "eslint"
	NameLocalNxPlugins         = "local-nx-plugins"
)

// DefaultPresets are enabled when the configuration names none.
var DefaultPresets = []string{NameNxTsPaths, NameNxStandards, NameEsbuildApps, NameVitest}

var registry = map[string]Factory{
	NameNxTsPaths:              func(cfg *schema.Configuration) plugin.Plugin { return NxTsPaths(cfg.TsConfigPath) },
	NameNxStandards:            func(*schema.Configuration) plugin.Plugin { return NxStandards() },
	NameEsbuildApps:            func(*schema.Configuration) plugin.Plugin { return EsbuildApps() },
	NameEsbuildPublishableLibs: func(*schema.Configuration) plugin.Plugin { return EsbuildPublishableLibs() },
	NameVitest:                 func(*schema.Configuration) plugin.Plugin { return Vitest() },
	NameNextJS:                 func(*schema.Configuration) plugin.Plugin { return NextJS() },
	NameCypress:                func(*schema.Configuration) plugin.Plugin { return Cypress() },
	NameEslint:                 func(*schema.Configuration) plugin.Plugin { return Eslint() },
	NameLocalNxPlugins:         func(cfg *schema.Configuration) plugin.Plugin { return LocalNxPlugins(cfg.LocalNxPlugins) },
}

// Names returns the registered preset names, sorted.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

// Build returns the plugins selected by cfg: the named presets in order,
// then the static `extra` fragment when there is one.
func Build(cfg *schema.Configuration) ([]plugin.Plugin, error) {
	names := cfg.Presets
	if len(names) == 0 {
		names = DefaultPresets
	}

	plugins := make([]plugin.Plugin, 0, len(names)+1)
	for _, name := range lo.Uniq(names) {
		factory, ok := registry[name]
		if !ok {
			return nil, errUtils.Build(fmt.Errorf("%w: %q", errUtils.ErrUnknownPreset, name)).
				WithHintf("Available presets: %s", strings.Join(Names(), ", ")).
				Err()
		}
		plugins = append(plugins, factory(cfg))
	}

	if len(cfg.Extra) > 0 {
		extra, err := knip.FromAny(cfg.Extra)
		if err != nil {
			return nil, errUtils.Build(err).
				WithHint("Every section under `extra` must be a list of strings or a mapping of lists").
				Err()
		}
		plugins = append(plugins, plugin.Static(extra))
	}

	return plugins, nil
}
