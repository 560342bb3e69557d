// Package configloader resolves the site configuration: the stanza.yaml
// file under the site root (or an explicit path), environment overrides,
// and validation of the result.
package configloader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/stanzadev/stanza/pkg/config"
)

// configFileNames are tried in order under the site root.
var configFileNames = []string{"stanza.yaml", "stanza.yml"}

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// Root is the site root directory. Defaults to the current working
	// directory.
	Root string

	// ExplicitPath is a config file path from the --config flag. When set,
	// discovery under Root is skipped and the file must exist.
	ExplicitPath string

	// IgnoreEnv skips STANZA_* environment overrides.
	IgnoreEnv bool
}

// LoadResult is the resolved configuration plus provenance.
type LoadResult struct {
	// Config is the final configuration.
	Config *config.Config

	// Path is the config file that was loaded, empty when running on pure
	// defaults.
	Path string
}

// Load resolves the configuration. Precedence, highest first: environment
// variables, the config file, defaults. A missing discovered file is fine;
// a missing explicit file is an error.
func Load(opts LoadOptions) (*LoadResult, error) {
	root := opts.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		root = wd
	}

	cfg := config.NewConfig()
	result := &LoadResult{Config: cfg}

	path, err := resolveConfigPath(root, opts.ExplicitPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
		result.Path = path
	}

	if !opts.IgnoreEnv {
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return result, nil
}

func resolveConfigPath(root, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	for _, name := range configFileNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("config file %s: %w", path, err)
		}
	}
	return "", nil
}

func loadFile(path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
