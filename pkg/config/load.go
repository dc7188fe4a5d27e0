package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	errUtils "github.com/cloudposse/nx-knip/errors"
	"github.com/cloudposse/nx-knip/pkg/knip"
	log "github.com/cloudposse/nx-knip/pkg/logger"
	"github.com/cloudposse/nx-knip/pkg/merge"
	"github.com/cloudposse/nx-knip/pkg/presets"
	"github.com/cloudposse/nx-knip/pkg/schema"
)

// LoadOptions tells LoadConfig where to look.
type LoadOptions struct {
	// WorkDir is searched for .nx-knip.yaml. Defaults to the current directory.
	WorkDir string

	// ConfigPath is an explicit config file merged on top of the one in WorkDir.
	ConfigPath string

	// Flags are bound to their configuration keys; only flags set on the command line override.
	Flags *pflag.FlagSet
}

// flagBindings maps CLI flag names to configuration keys.
var flagBindings = map[string]string{
	"root":       "workspace.root",
	"source":     "workspace.source",
	"graph-file": "workspace.graph_file",
	"preset":     "presets",
	"format":     "output.format",
	"output":     "output.file",
	"logs-level": "logs.level",
	"logs-file":  "logs.file",
	"debug":      "debug",
}

// LoadConfig loads the configuration from (lowest to highest priority):
// defaults, .nx-knip.yaml in the working directory, the explicit config file
// (the ConfigPath option, or NX_KNIP_CONFIG_PATH), environment variables, and command-line flags.
func LoadConfig(opts LoadOptions) (*schema.Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaultConfiguration(v)

	var files []string

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errUtils.Wrap(errUtils.ErrLoadConfig, err).Err()
		}
		workDir = wd
	}

	used, err := readWorkDirConfig(v, workDir)
	if err != nil {
		return nil, err
	}
	if used != "" {
		files = append(files, used)
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = os.Getenv(ConfigPathEnvVar)
	}
	if configPath != "" {
		if err := readExplicitConfig(v, configPath); err != nil {
			return nil, err
		}
		files = append(files, configPath)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("debug", PrefixedDebugVar, DebugEnvVar); err != nil {
		return nil, errUtils.Wrap(errUtils.ErrLoadConfig, err).Err()
	}

	if opts.Flags != nil {
		for flag, key := range flagBindings {
			if f := opts.Flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errUtils.Wrap(errUtils.ErrLoadConfig, err).Err()
				}
			}
		}
	}

	// Only "true" and "1" turn debug mode on.
	v.Set("debug", isTruthy(v.GetString("debug")))

	var cfg schema.Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errUtils.Wrap(errUtils.ErrLoadConfig, err).Err()
	}

	// Viper lowercases keys, so the `extra` fragment is read from the files directly.
	cfg.Extra, err = readExtra(files)
	if err != nil {
		return nil, err
	}

	if len(files) > 0 {
		cfg.ConfigFileUsed = files[len(files)-1]
	}
	if !filepath.IsAbs(cfg.Workspace.Root) {
		cfg.Workspace.Root = filepath.Join(workDir, cfg.Workspace.Root)
	}

	log.Debug("Loaded configuration", "files", files, "root", cfg.Workspace.Root, "presets", cfg.Presets, "debug", cfg.Debug)
	return &cfg, nil
}

func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("workspace.root", ".")
	v.SetDefault("workspace.source", schema.WorkspaceSourceAuto)
	v.SetDefault("workspace.graph_file", "")
	v.SetDefault("workspace.nx_command", []string{})
	v.SetDefault("presets", presets.DefaultPresets)
	v.SetDefault("local_nx_plugins", []string{})
	v.SetDefault("ts_config_path", presets.DefaultTsConfigPath)
	v.SetDefault("output.format", DefaultOutputType)
	v.SetDefault("output.file", "")
	v.SetDefault("logs.file", DefaultLogsFile)
	v.SetDefault("logs.level", DefaultLogsLevel)
	v.SetDefault("debug", false)
}

// readWorkDirConfig merges .nx-knip.yaml from dir, returning the file used or "".
func readWorkDirConfig(v *viper.Viper, dir string) (string, error) {
	v.AddConfigPath(dir)
	v.SetConfigName(ConfigFileName)
	err := v.MergeInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Debug("No config file found, using defaults", "dir", dir)
			return "", nil
		}
		return "", errUtils.Wrap(errUtils.ErrLoadConfig, err).WithContext("dir", dir).Err()
	}
	return v.ConfigFileUsed(), nil
}

func readExplicitConfig(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return errUtils.Wrap(errUtils.ErrLoadConfig, err).
			WithContext("file", path).
			WithHintf("Check that %s exists and is valid YAML", path).
			Err()
	}
	return nil
}

// readExtra merges the `extra` sections of the config files in order.
func readExtra(files []string) (map[string]any, error) {
	var fragments []knip.Config
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errUtils.Wrap(errUtils.ErrLoadConfig, err).WithContext("file", file).Err()
		}

		var raw struct {
			Extra map[string]any `yaml:"extra"`
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errUtils.Wrap(errUtils.ErrLoadConfig, err).WithContext("file", file).Err()
		}
		if len(raw.Extra) == 0 {
			continue
		}

		fragment, err := knip.FromAny(raw.Extra)
		if err != nil {
			return nil, errUtils.Wrap(errUtils.ErrLoadConfig, err).WithContext("file", file).Err()
		}
		fragments = append(fragments, fragment)
	}

	if len(fragments) == 0 {
		return nil, nil
	}
	return merge.Fragments(fragments...).ToAny(), nil
}

func isTruthy(value string) bool {
	return value == "true" || value == "1"
}
