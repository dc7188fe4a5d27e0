package plugin

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/cloudposse/nx-knip/pkg/knip"
	"github.com/cloudposse/nx-knip/pkg/merge"
	"github.com/cloudposse/nx-knip/pkg/schema"
)

// RunCommandsExecutor is the Nx executor that runs an arbitrary shell command.
const RunCommandsExecutor = "nx:run-commands"

// ProjectFilter selects projects for WithProjectMapper.
type ProjectFilter func(project schema.Project) bool

// ProjectMapperFunc maps a project (and its root folder) to a fragment.
type ProjectMapperFunc func(project schema.Project, rootFolder string) knip.Output

// TargetMatch is a (project, target) pair selected by a target mapper.
type TargetMatch struct {
	Project    schema.Project
	TargetName string
	Target     schema.Target
	RootFolder string

	// Executor is the target executor, empty for command-only targets.
	Executor string

	// Command is the effective shell command, empty when the target has none.
	Command string
}

// TargetMapperFunc maps a matched target to a fragment.
type TargetMapperFunc func(match TargetMatch) knip.Output

// WithProjectMapper builds a plugin that maps every project accepted by filter
// and merges the results. A nil filter accepts every project.
func WithProjectMapper(filter ProjectFilter, fn ProjectMapperFunc) Plugin {
	if filter == nil {
		filter = func(schema.Project) bool { return true }
	}
	return func(opts Options) knip.Output {
		outputs := lo.FilterMap(opts.Projects, func(project schema.Project, _ int) (knip.Output, bool) {
			if !filter(project) {
				return knip.None(), false
			}
			return fn(project, project.Root), true
		})
		return knip.Some(merge.Configs(outputs...))
	}
}

// WithExecutorMapper builds a plugin that maps every target whose executor is
// exactly executor. Targets without an executor never match.
func WithExecutorMapper(executor string, fn TargetMapperFunc) Plugin {
	return withTargetMapper(func(target schema.Target) (string, bool) {
		if target.Executor == "" || target.Executor != executor {
			return "", false
		}
		command, _ := EffectiveCommand(target)
		return command, true
	}, fn)
}

// WithCommandMapper builds a plugin that maps every target whose effective
// command starts with prefix. See EffectiveCommand.
func WithCommandMapper(prefix string, fn TargetMapperFunc) Plugin {
	return withTargetMapper(func(target schema.Target) (string, bool) {
		command, ok := EffectiveCommand(target)
		return command, ok && strings.HasPrefix(command, prefix)
	}, fn)
}

// EffectiveCommand resolves the shell command a target runs.
// A literal command wins; otherwise `options.command` is used for run-commands targets.
func EffectiveCommand(target schema.Target) (string, bool) {
	if target.Command != "" {
		return target.Command, true
	}
	if target.Executor != RunCommandsExecutor {
		return "", false
	}
	command, ok := target.Options["command"].(string)
	if !ok || command == "" {
		return "", false
	}
	return command, true
}

type targetSelector func(target schema.Target) (command string, ok bool)

func withTargetMapper(selectTarget targetSelector, fn TargetMapperFunc) Plugin {
	return func(opts Options) knip.Output {
		var outputs []knip.Output
		for _, project := range opts.Projects {
			names := lo.Keys(project.Targets)
			sort.Strings(names)

			for _, name := range names {
				target := project.Targets[name]
				command, ok := selectTarget(target)
				if !ok {
					continue
				}
				outputs = append(outputs, fn(TargetMatch{
					Project:    project,
					TargetName: name,
					Target:     target,
					RootFolder: project.Root,
					Executor:   target.Executor,
					Command:    command,
				}))
			}
		}
		return knip.Some(merge.Configs(outputs...))
	}
}
