package presets

import (
	"github.com/cloudposse/nx-knip/pkg/knip"
	"github.com/cloudposse/nx-knip/pkg/plugin"
)

const (
	vitestCommandPrefix = "vitest "
	vitestConfigGlob    = "vitest*.config.{js,mjs,ts,cjs,mts,cts}"
	viteConfigGlob      = "vite*.config.{js,mjs,ts,cjs,mts,cts}"
	vitestWorkspaceGlob = "vitest.workspace.{js,mjs,ts,cjs,mts,cts}"
	vitestEntryGlob     = "**/*.{test,test-d,spec}.?(c|m)[jt]s?(x)"
)

// Vitest covers both ways an Nx workspace runs Vitest: inferred `vitest ...`
// commands and the @nx/vite:test executor.
func Vitest() plugin.Plugin {
	return plugin.Combine(vitestCommands(), vitestExecutor())
}

func vitestCommands() plugin.Plugin {
	return plugin.WithCommandMapper(vitestCommandPrefix, func(m plugin.TargetMatch) knip.Output {
		return vitestSection(m.RootFolder, knip.List(
			m.RootFolder+"/"+vitestConfigGlob,
			m.RootFolder+"/"+viteConfigGlob,
			vitestWorkspaceGlob,
		))
	})
}

func vitestExecutor() plugin.Plugin {
	return plugin.WithExecutorMapper(ViteTestExecutor, func(m plugin.TargetMatch) knip.Output {
		configs := knip.List(
			m.RootFolder+"/"+vitestConfigGlob,
			m.RootFolder+"/"+viteConfigGlob,
			vitestWorkspaceGlob,
		)
		if cfg := decodeOptions(m.Target.Options).Config; cfg != "" {
			configs = knip.List(cfg, vitestWorkspaceGlob)
		}
		return vitestSection(m.RootFolder, configs)
	})
}

func vitestSection(root string, configs knip.StringList) knip.Output {
	return knip.Some(knip.Config{
		"vitest": knip.Mapping{
			"config": configs,
			"entry":  knip.List(root + "/" + vitestEntryGlob),
		},
	})
}
