package config

const (
	// ConfigFileName is looked up (as .yaml or .yml) in the working directory.
	ConfigFileName = ".nx-knip"

	EnvPrefix         = "NX_KNIP"
	ConfigPathEnvVar  = "NX_KNIP_CONFIG_PATH"
	DebugEnvVar       = "DEBUG"
	PrefixedDebugVar  = "NX_KNIP_DEBUG"
	DefaultLogsFile   = "/dev/stderr"
	DefaultLogsLevel  = "Info"
	DefaultOutputType = "json"
)
