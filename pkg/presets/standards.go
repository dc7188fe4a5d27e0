package presets

import (
	"github.com/cloudposse/nx-knip/pkg/knip"
	"github.com/cloudposse/nx-knip/pkg/plugin"
)

// NxStandards contributes the baseline every Nx workspace needs: project
// sources, ignored build output and the config files of the usual tooling.
func NxStandards() plugin.Plugin {
	return func(plugin.Options) knip.Output {
		return knip.Some(knip.Config{
			"project":            knip.List("**/*.{ts,js,tsx,jsx}"),
			"ignore":             knip.List("tmp/**", "node_modules/**"),
			"ignoreDependencies": knip.List("prettier"),
			"eslint": knip.Mapping{
				"config": knip.List("**/.eslintrc.{json,js}", ".eslintrc.{json,js}"),
			},
			"vite": knip.Mapping{
				"config": knip.List("**/vite.config.{ts,js}"),
			},
			"vitest": knip.Mapping{
				"config": knip.List("**/vitest.config.{ts,js}", "**/vite.config.{ts,js}"),
			},
			"tailwind": knip.Mapping{
				"config": knip.List("**/tailwind.config.{js,cjs,mjs,ts}"),
			},
			"postcss": knip.Mapping{
				"config": knip.List("**/postcss.config.js", "**/postcss.config.json"),
			},
			"babel": knip.Mapping{
				"config": knip.List(
					"**/babel.config.json",
					"**/babel.config.js",
					"**/.babelrc.json",
					"**/.babelrc.js",
					"**/.babelrc",
				),
			},
			"storybook": knip.Mapping{
				"config": knip.List(
					"**/.storybook/{main,test-runner}.{js,ts}",
					".storybook/{main,test-runner}.{js,ts}",
				),
				"entry": knip.List(
					"**/.storybook/{manager,preview}.{js,jsx,ts,tsx}",
					"**/*.stories.{js,jsx,ts,tsx}",
					".storybook/{manager,preview}.{js,jsx,ts,tsx}",
				),
				"project": knip.List(
					".storybook/**/*.{js,jsx,ts,tsx}",
					"**/.storybook/**/*.{js,jsx,ts,tsx}",
				),
			},
		})
	}
}
