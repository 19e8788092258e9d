package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/itinerary/internal/paths"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "ITINERARY"

	cfgKeyBackend    = "backend"
	cfgKeyDataDir    = "data_dir"
	cfgKeyLogLevel   = "log_level"
	cfgKeySeedSample = "seed_sample"
	cfgKeyLogFile    = "log_file"

	defaultLogLevel = "info"

	// boardLogFile receives board logs, under the data dir, when log_file
	// is not set. The board owns the terminal while it runs.
	boardLogFile = "itinerary.log"
)

// configFile is the shape written to config.yaml on first run.
type configFile struct {
	Backend    string `yaml:"backend"`
	DataDir    string `yaml:"data_dir,omitempty"`
	LogLevel   string `yaml:"log_level"`
	SeedSample bool   `yaml:"seed_sample"`
	LogFile    string `yaml:"log_file,omitempty"`
}

const configHeader = `# itinerary configuration
# backend: sqlite | files | memory
# data_dir: where trips are stored (overridable by --data-dir)
# log_file: append logs to this file instead of stderr
`

// loadConfig reads config.yaml from configDir, creating the directory and a
// default file first if needed. Environment variables ITINERARY_BACKEND,
// ITINERARY_LOG_LEVEL, ITINERARY_LOG_FILE and ITINERARY_SEED_SAMPLE
// override the file.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := writeDefaultConfig(paths.ConfigFile(configDir)); err != nil {
		return nil, fmt.Errorf("write default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeySeedSample, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for _, k := range []string{cfgKeyBackend, cfgKeyLogLevel, cfgKeyLogFile, cfgKeySeedSample} {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", k, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeDefaultConfig creates config.yaml with defaults unless it exists.
func writeDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		Backend:  types.BackendSQLite,
		LogLevel: defaultLogLevel,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append([]byte(configHeader), data...), 0o644)
}
