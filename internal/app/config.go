package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/hclcad/internal/externals"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RootPath    string   // root source file
	SearchPaths []string // directories holding external source files

	LogFormat string
	LogLevel  string

	PrintSymbols bool
	Interactive  bool
	NoColor      bool
}

// NewConfig validates cfg and fills in defaults. Without search paths, the
// directory of the root file is searched.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RootPath == "" && !cfg.Interactive {
		return nil, errors.New("RootPath is a required configuration field and cannot be empty")
	}
	if cfg.RootPath != "" && filepath.Ext(cfg.RootPath) != externals.Extension {
		return nil, fmt.Errorf("root file %q must have the %s extension", cfg.RootPath, externals.Extension)
	}

	var paths []string
	for _, p := range cfg.SearchPaths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		if cfg.RootPath != "" {
			paths = []string{filepath.Dir(cfg.RootPath)}
		} else {
			paths = []string{"."}
		}
	}
	cfg.SearchPaths = paths

	return &cfg, nil
}
