package config

import (
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "stele.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/stele"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
	// SolverPathEnv overrides the solver binary path from the environment
	SolverPathEnv = "STELE_SOLVER"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	log commonlog.Logger
}

func NewLoader() *Loader {
	return &Loader{log: commonlog.GetLogger("config")}
}

// Load resolves configuration with layered precedence:
// defaults, then the user config under ~/.config/stele, then the
// project stele.yaml found in the current or a parent directory, then
// an explicit path when given. STELE_SOLVER overrides the solver
// binary path last. Later layers win field by field.
func (l *Loader) Load(explicit string) (*Config, error) {
	cfg := DefaultConfig()

	userPath := l.userConfigPath()
	if userCfg, err := LoadFromFile(userPath); err == nil {
		l.log.Debugf("loaded user config from %s", userPath)
		cfg.Merge(userCfg)
	} else if !os.IsNotExist(err) {
		l.log.Warningf("failed to load user config %s: %v", userPath, err)
	}

	if projectPath := l.findProjectConfig(); projectPath != "" {
		projectCfg, err := LoadFromFile(projectPath)
		if err != nil {
			return nil, err
		}
		l.log.Debugf("loaded project config from %s", projectPath)
		cfg.Merge(projectCfg)
	}

	if explicit != "" {
		explicitCfg, err := LoadFromFile(explicit)
		if err != nil {
			return nil, err
		}
		cfg.Merge(explicitCfg)
	}

	if path := os.Getenv(SolverPathEnv); path != "" {
		cfg.Solver.Path = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig walks from the working directory to the root
// looking for stele.yaml.
func (l *Loader) findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
