package errors

import (
	"errors"
)

var (
	// Workspace graph.
	ErrWorkspaceGraph     = errors.New("failed to read the workspace project graph")
	ErrParseGraphFile     = errors.New("failed to parse the project graph file")
	ErrReadProjectFile    = errors.New("failed to read project.json")
	ErrParseNxJSON        = errors.New("failed to parse nx.json")
	ErrNxCommandFailed    = errors.New("nx graph command failed")
	ErrEmptyNxCommand     = errors.New("nx command cannot be empty")
	ErrDuplicateProject   = errors.New("duplicate project name in workspace")
	ErrGlobProjectFiles   = errors.New("failed to search for project.json files")
	ErrWorkspaceRootEmpty = errors.New("workspace root cannot be empty")

	// Fragments and presets.
	ErrInvalidFragment = errors.New("invalid knip configuration fragment")
	ErrUnknownPreset   = errors.New("unknown preset")

	// Configuration and logging.
	ErrLoadConfig      = errors.New("failed to load nx-knip configuration")
	ErrInvalidLogLevel = errors.New("invalid log level")

	// Output.
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrWriteOutput       = errors.New("failed to write the knip configuration")
	ErrEncodeOutput      = errors.New("failed to encode the knip configuration")
	ErrHighlight         = errors.New("failed to highlight output")
)
