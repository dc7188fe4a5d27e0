package presets

import (
	"github.com/cloudposse/nx-knip/pkg/knip"
	"github.com/cloudposse/nx-knip/pkg/plugin"
	"github.com/cloudposse/nx-knip/pkg/schema"
)

const (
	EsbuildExecutor      = "@nx/esbuild:esbuild"
	NextBuildExecutor    = "@nx/next:build"
	CypressExecutor      = "@nx/cypress:cypress"
	ViteTestExecutor     = "@nx/vite:test"
	LinterEslintExecutor = "@nx/linter:eslint"
	EslintLintExecutor   = "@nx/eslint:lint"
)

// EsbuildApps adds the `main` option of esbuild-built applications as production entries.
func EsbuildApps() plugin.Plugin {
	return plugin.WithExecutorMapper(EsbuildExecutor, func(m plugin.TargetMatch) knip.Output {
		if m.Project.Type != schema.ProjectTypeApp {
			return knip.None()
		}
		main := decodeOptions(m.Target.Options).Main
		if main == "" {
			return knip.None()
		}
		return knip.Some(knip.Config{
			"entry": knip.List(main + "!"),
		})
	})
}

// NextJS adds the Next.js conventional entry files of Next.js applications.
func NextJS() plugin.Plugin {
	return plugin.WithExecutorMapper(NextBuildExecutor, func(m plugin.TargetMatch) knip.Output {
		if m.Project.Type != schema.ProjectTypeApp {
			return knip.None()
		}
		root := m.RootFolder
		entries := make(knip.StringList, 0, len(nextEntryPatterns))
		for _, pattern := range nextEntryPatterns {
			entries = append(entries, root+"/"+pattern+"!")
		}
		return knip.Some(knip.Config{
			"next": knip.Mapping{"entry": entries},
		})
	})
}

var nextEntryPatterns = []string{
	"next.config.{js,ts,cjs,mjs}",
	"index.d.ts",
	"next-env.d.ts",
	"middleware.{js,ts}",
	"app/**/route.{js,ts}",
	"app/**/{error,layout,loading,not-found,page,template}.{js,jsx,ts,tsx}",
	"instrumentation.{js,ts}",
	"app/{manifest,sitemap,robots}.{js,ts}",
	"app/**/{icon,apple-icon}.{js,ts,tsx}",
	"app/**/{opengraph,twitter}-image.{js,ts,tsx}",
	"pages/**/*.{js,jsx,ts,tsx}",
	"src/middleware.{js,ts}",
	"src/app/**/route.{js,ts}",
	"src/app/**/{error,layout,loading,not-found,page,template}.{js,jsx,ts,tsx}",
	"src/instrumentation.{js,ts}",
	"src/app/{manifest,sitemap,robots}.{js,ts}",
	"src/app/**/{icon,apple-icon}.{js,ts,tsx}",
	"src/app/**/{opengraph,twitter}-image.{js,ts,tsx}",
	"src/pages/**/*.{js,jsx,ts,tsx}",
}

// Cypress adds the Cypress config file and the spec sources of Cypress targets.
func Cypress() plugin.Plugin {
	return plugin.WithExecutorMapper(CypressExecutor, func(m plugin.TargetMatch) knip.Output {
		section := knip.Mapping{
			"entry": knip.List(sourceRoot(m.Project) + "/**/*.{js,ts,mjs,cjs}"),
		}
		if cfg := decodeOptions(m.Target.Options).CypressConfig; cfg != "" {
			section["config"] = knip.List(cfg)
		}
		return knip.Some(knip.Config{"cypress": section})
	})
}

// Eslint adds the ESLint config used by lint targets, falling back to the
// conventional .eslintrc files of the project and the workspace.
func Eslint() plugin.Plugin {
	mapper := func(m plugin.TargetMatch) knip.Output {
		configs := knip.List(m.RootFolder+"/.eslintrc.{json,js}", ".eslintrc.{json,js}")
		if cfg := decodeOptions(m.Target.Options).EslintConfig; cfg != "" {
			configs = knip.List(cfg)
		}
		return knip.Some(knip.Config{
			"eslint": knip.Mapping{"config": configs},
		})
	}
	return plugin.Combine(
		plugin.WithExecutorMapper(LinterEslintExecutor, mapper),
		plugin.WithExecutorMapper(EslintLintExecutor, mapper),
	)
}

// EsbuildPublishableLibs adds the `main` of libraries that have a `publish`
// target and an esbuild `build` target.
func EsbuildPublishableLibs() plugin.Plugin {
	filter := func(p schema.Project) bool {
		if p.Type != schema.ProjectTypeLib {
			return false
		}
		if _, ok := p.Targets["publish"]; !ok {
			return false
		}
		build, ok := p.Targets["build"]
		return ok && build.Executor == EsbuildExecutor
	}
	return plugin.WithProjectMapper(filter, func(p schema.Project, _ string) knip.Output {
		main := decodeOptions(p.Targets["build"].Options).Main
		if main == "" {
			return knip.None()
		}
		return knip.Some(knip.Config{"entry": knip.List(main + "!")})
	})
}

func sourceRoot(p schema.Project) string {
	if p.SourceRoot != "" {
		return p.SourceRoot
	}
	return p.Root + "/src"
}
