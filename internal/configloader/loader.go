// Package configloader resolves the effective mdoutline configuration:
// built-in defaults, then a discovered or explicitly named project config
// file, then environment variables. CLI flags are applied last by the
// caller.
package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/inkdown/mdoutline/pkg/config"
)

// Config file names searched for in the working directory and its parents.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{".mdoutline.yml", ".mdoutline.yaml"}

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory to search upward from for a project
	// config. Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is a config file path from the --config flag.
	// If set, discovery is skipped and a missing file is an error.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool
}

// LoadResult holds the resolved configuration and where it came from.
type LoadResult struct {
	Config config.Config

	// LoadedFrom is the path of the config file used, empty when only
	// defaults and environment applied.
	LoadedFrom string
}

// Load resolves the effective configuration.
func Load(opts LoadOptions) (LoadResult, error) {
	result := LoadResult{Config: config.Default()}

	path, err := resolvePath(opts)
	if err != nil {
		return result, err
	}

	if path != "" {
		cfg, err := loadFile(path)
		if err != nil {
			return result, err
		}
		result.Config = *cfg
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(&result.Config); err != nil {
			return result, err
		}
	}

	if err := result.Config.Validate(); err != nil {
		return result, fmt.Errorf("invalid configuration: %w", err)
	}

	return result, nil
}

// resolvePath returns the config file to load, or "" when none applies.
func resolvePath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.ExplicitPath, err)
		}
		return opts.ExplicitPath, nil
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	return discover(workDir), nil
}

// discover walks from dir upward to the filesystem root looking for a
// project config file. Returns "" when none is found.
func discover(dir string) string {
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func loadFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s does not exist: %w", path, err)
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}
