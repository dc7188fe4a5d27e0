// Package plugin defines knip configuration plugins and the ways to compose them.
package plugin

import (
	"github.com/cloudposse/nx-knip/pkg/knip"
	"github.com/cloudposse/nx-knip/pkg/merge"
	"github.com/cloudposse/nx-knip/pkg/schema"
)

// Options is the read-only input every plugin receives.
type Options struct {
	// Projects is the workspace project graph snapshot.
	Projects []schema.Project

	// WorkspaceRoot is the directory project roots are relative to.
	WorkspaceRoot string
}

// Plugin inspects the workspace and contributes a configuration fragment, or nothing.
// Plugins must not have side effects and must return equivalent output for equal input.
type Plugin func(opts Options) knip.Output

// Combine returns a plugin that runs every plugin with the same options and merges
// what they contribute. Plugins returning None are skipped.
func Combine(plugins ...Plugin) Plugin {
	return func(opts Options) knip.Output {
		outputs := make([]knip.Output, 0, len(plugins))
		for _, p := range plugins {
			if p == nil {
				continue
			}
			if out := p(opts); !out.IsNone() {
				outputs = append(outputs, out)
			}
		}
		return knip.Some(merge.Configs(outputs...))
	}
}

// Static returns a plugin that always contributes cfg.
func Static(cfg knip.Config) Plugin {
	return func(Options) knip.Output {
		return knip.Some(cfg.CloneMapping())
	}
}
