package schema

// ProjectType classifies an Nx project.
type ProjectType string

const (
	ProjectTypeApp ProjectType = "app"
	ProjectTypeLib ProjectType = "lib"
	ProjectTypeE2E ProjectType = "e2e"
)

// Project is a read-only node of the workspace project graph.
type Project struct {
	Name       string            `yaml:"name" json:"name" mapstructure:"name"`
	Type       ProjectType       `yaml:"type" json:"type" mapstructure:"type"`
	Root       string            `yaml:"root" json:"root" mapstructure:"root"`
	SourceRoot string            `yaml:"sourceRoot,omitempty" json:"sourceRoot,omitempty" mapstructure:"sourceRoot"`
	Targets    map[string]Target `yaml:"targets,omitempty" json:"targets,omitempty" mapstructure:"targets"`
}

// Target is a runnable unit attached to a project.
// Executor and Command are empty when the workspace does not define them.
type Target struct {
	Executor string         `yaml:"executor,omitempty" json:"executor,omitempty" mapstructure:"executor"`
	Options  map[string]any `yaml:"options,omitempty" json:"options,omitempty" mapstructure:"options"`
	Command  string         `yaml:"command,omitempty" json:"command,omitempty" mapstructure:"command"`
}

// Configuration is the schema of `.nx-knip.yaml`.
type Configuration struct {
	Workspace      Workspace      `yaml:"workspace" json:"workspace" mapstructure:"workspace"`
	Presets        []string       `yaml:"presets,omitempty" json:"presets,omitempty" mapstructure:"presets"`
	LocalNxPlugins []string       `yaml:"local_nx_plugins,omitempty" json:"local_nx_plugins,omitempty" mapstructure:"local_nx_plugins"`
	TsConfigPath   string         `yaml:"ts_config_path,omitempty" json:"ts_config_path,omitempty" mapstructure:"ts_config_path"`
	Extra          map[string]any `yaml:"extra,omitempty" json:"extra,omitempty" mapstructure:"extra"`
	Output         Output         `yaml:"output" json:"output" mapstructure:"output"`
	Logs           Logs           `yaml:"logs" json:"logs" mapstructure:"logs"`
	Debug          bool           `yaml:"debug" json:"debug" mapstructure:"debug"`

	// ConfigFileUsed is the absolute path of the loaded config file, empty when defaults were used.
	ConfigFileUsed string `yaml:"-" json:"-" mapstructure:"-"`
}

// Workspace selects where the project graph comes from.
type Workspace struct {
	Root string `yaml:"root" json:"root" mapstructure:"root"`
	// Source is one of "auto", "graph-file", "project-files" or "nx".
	Source    string   `yaml:"source" json:"source" mapstructure:"source"`
	GraphFile string   `yaml:"graph_file,omitempty" json:"graph_file,omitempty" mapstructure:"graph_file"`
	NxCommand []string `yaml:"nx_command,omitempty" json:"nx_command,omitempty" mapstructure:"nx_command"`
}

type Output struct {
	Format string `yaml:"format" json:"format" mapstructure:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty" mapstructure:"file"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

const (
	WorkspaceSourceAuto         = "auto"
	WorkspaceSourceGraphFile    = "graph-file"
	WorkspaceSourceProjectFiles = "project-files"
	WorkspaceSourceNx           = "nx"

	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)
