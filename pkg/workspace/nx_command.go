package workspace

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	errUtils "github.com/cloudposse/nx-knip/errors"
	log "github.com/cloudposse/nx-knip/pkg/logger"
	"github.com/cloudposse/nx-knip/pkg/schema"
)

// NxCommandProvider asks Nx for the project graph by running `<Command> --file=<tmp>/graph.json`
// in Root and reading the result with GraphFileProvider.
type NxCommandProvider struct {
	Root string

	// Command defaults to DefaultNxCommand.
	Command []string
}

// Projects implements Provider. The command is killed when ctx is done.
func (p *NxCommandProvider) Projects(ctx context.Context) ([]schema.Project, error) {
	command := p.Command
	if len(command) == 0 {
		command = DefaultNxCommand
	}
	if strings.TrimSpace(command[0]) == "" {
		return nil, errUtils.ErrEmptyNxCommand
	}

	tmpDir, err := os.MkdirTemp("", "nx-knip-graph-")
	if err != nil {
		return nil, errUtils.Wrap(errUtils.ErrNxCommandFailed, err).Err()
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			log.Debug("Failed to remove temporary graph directory", "dir", tmpDir, "error", err)
		}
	}()

	graphPath := filepath.Join(tmpDir, "graph.json")
	args := append(append([]string{}, command[1:]...), "--file="+graphPath)

	log.Debug("Running Nx to compute the project graph", "command", strings.Join(command, " "), "dir", p.Root)
	cmd := exec.CommandContext(ctx, command[0], args...)
	cmd.Dir = p.Root
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, errUtils.Wrap(errUtils.ErrNxCommandFailed, err).
			WithExplanation(strings.TrimSpace(string(out))).
			WithContext("command", strings.Join(command, " ")).
			WithHint("Run the command manually in the workspace root to see the full output").
			Err()
	}

	graph := &GraphFileProvider{Path: graphPath}
	return graph.Projects(ctx)
}
