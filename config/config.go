// Package config loads the analyzer's optional per-project settings
// file, cminor.toml.
package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"cminor/common"
)

// tomlProject is a project's settings as encoded in cminor.toml.
type tomlProject struct {
	BucketCount int    `toml:"bucket-count"`
	LogLevel    string `toml:"log-level"`
	OutputDir   string `toml:"output-dir"`
}

// ProjectConfig is a loaded and validated cminor.toml.
type ProjectConfig struct {
	// BucketCount overrides symtab.DefaultBucketCount for every scope
	// this run creates. 0 means "use the default".
	BucketCount int

	// LogLevel is one of "silent", "error", "warn", "verbose".
	LogLevel string

	// OutputDir is where *_log.txt and *_error.txt are written; empty
	// means alongside the source file.
	OutputDir string
}

// defaultConfig is returned when no cminor.toml is present: analysis
// proceeds with the analyzer's built-in defaults rather than failing.
func defaultConfig() *ProjectConfig {
	return &ProjectConfig{LogLevel: "verbose"}
}

// Load reads cminor.toml from dir, if present. A missing file is not
// an error — it yields defaultConfig().
func Load(dir string) (*ProjectConfig, error) {
	path := filepath.Join(dir, common.ProjectFileName)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to open project file at %q: %w", path, err)
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading project file at %q: %w", path, err)
	}

	tomlProj := &tomlProject{}
	if err := toml.Unmarshal(buff, tomlProj); err != nil {
		return nil, fmt.Errorf("error parsing project file at %q: %w", path, err)
	}

	cfg := &ProjectConfig{
		BucketCount: tomlProj.BucketCount,
		LogLevel:    tomlProj.LogLevel,
		OutputDir:   tomlProj.OutputDir,
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "verbose"
	}

	return cfg, nil
}
