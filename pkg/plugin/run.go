package plugin

import (
	"context"
	"fmt"
	"io"
	"os"

	errUtils "github.com/cloudposse/nx-knip/errors"
	"github.com/cloudposse/nx-knip/pkg/knip"
	log "github.com/cloudposse/nx-knip/pkg/logger"
	"github.com/cloudposse/nx-knip/pkg/merge"
	"github.com/cloudposse/nx-knip/pkg/schema"
	u "github.com/cloudposse/nx-knip/pkg/utils"
)

const debugSeparator = "---------"

// ProjectProvider supplies the workspace project graph.
type ProjectProvider interface {
	Projects(ctx context.Context) ([]schema.Project, error)
}

// RunOptions configures Run.
type RunOptions struct {
	// WorkspaceRoot is passed to every plugin.
	WorkspaceRoot string

	// Debug dumps the merged configuration to DebugWriter before returning it.
	Debug bool

	// DebugWriter defaults to os.Stderr.
	DebugWriter io.Writer
}

// Run reads the project graph from provider, runs every plugin against it and
// returns the merged configuration. Only the provider call may fail.
func Run(ctx context.Context, provider ProjectProvider, opts RunOptions, plugins ...Plugin) (knip.Config, error) {
	projects, err := provider.Projects(ctx)
	if err != nil {
		return nil, errUtils.Wrap(errUtils.ErrWorkspaceGraph, err).
			WithHint("Make sure the workspace root contains a valid Nx workspace").
			WithExitCode(errUtils.ExitCodeConfig).
			Err()
	}
	log.Debug("Loaded workspace projects", "count", len(projects))

	pluginOpts := Options{
		Projects:      projects,
		WorkspaceRoot: opts.WorkspaceRoot,
	}

	outputs := make([]knip.Output, 0, len(plugins))
	fragments := make([]knip.Config, 0, len(plugins))
	for _, p := range plugins {
		if p == nil {
			continue
		}
		output := p(pluginOpts)
		outputs = append(outputs, output)
		if cfg, ok := output.Get(); ok {
			fragments = append(fragments, cfg)
		}
	}
	log.Debug("Merging plugin outputs", "plugins", len(outputs), "fragments", len(fragments))

	final := merge.Configs(outputs...)

	if opts.Debug {
		for _, path := range merge.ShapeConflicts(fragments...) {
			log.Warn("Plugins disagree on the shape of a section, the last one wins", "path", path)
		}
		dumpDebug(opts.DebugWriter, final)
	}

	return final, nil
}

func dumpDebug(w io.Writer, cfg knip.Config) {
	if w == nil {
		w = os.Stderr
	}

	out, err := u.ConvertToJSON(cfg.ToAny())
	if err != nil {
		log.Error("Failed to encode the merged configuration", "error", err)
		return
	}
	if u.IsTerminal(w) {
		if highlighted, err := u.HighlightCode(out, "json"); err == nil {
			out = highlighted
		}
	}

	fmt.Fprintln(w, debugSeparator)
	fmt.Fprintln(w, out)
	fmt.Fprintln(w, debugSeparator)
}
