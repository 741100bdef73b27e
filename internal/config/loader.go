package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".txreport"

// XDGConfigFile is the configuration file name inside XDGConfigDir.
const XDGConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfigFile reads and strictly decodes the YAML file at path. Unknown
// keys are rejected so that a misspelled setting does not silently fall
// back to its default. An empty file yields an empty File.
func LoadConfigFile(path string) (*File, error) {
	f, err := os.Open(path) //nolint:gosec // path is chosen by the operator
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var cf File
	if err := dec.Decode(&cf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}
	return &cf, nil
}

// configCandidates lists the implicit configuration locations, most
// specific first: the working directory, the home directory, then the XDG
// config directory.
func configCandidates() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, DefaultConfigFile))
	}
	return append(paths, filepath.Join(XDGConfigDir(), XDGConfigFile))
}

// FindConfigFile returns the configuration file to load. An explicit
// configPath is returned only if it exists. Otherwise the first existing
// file among the working directory, home directory and XDG config
// directory wins. The empty string means no file was found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if isFile(configPath) {
			return configPath
		}
		return ""
	}

	for _, path := range configCandidates() {
		if isFile(path) {
			return path
		}
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Load builds the effective configuration from defaults, the config file
// and the environment. CLI flags are applied by the caller afterwards.
//
// An explicitly given configPath must exist; a missing default file is
// not an error. envFile names a dotenv file; when empty, ".env" in the
// current directory is used if present.
func Load(configPath, envFile string) (*Config, error) {
	cfg := NewConfig()
	cfg.ConfigFilePath = configPath

	path := FindConfigFile(configPath)
	if configPath != "" && path == "" {
		return nil, ErrConfigNotFound
	}
	if path != "" {
		cf, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cf.Apply(cfg)
		cfg.ConfigFilePath = path
	}

	if err := LoadEnv(cfg, envFile); err != nil {
		return nil, err
	}

	return cfg, nil
}
