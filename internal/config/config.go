package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults used when portal.yaml is absent or leaves a field empty.
const (
	DefaultEntrypoint   = "Home.py"
	DefaultPort         = 8501
	DefaultVenvDir      = "venv"
	DefaultRequirements = "requirements.txt"
)

// Portal is the launcher configuration. Every field is optional; zero values
// fall back to the defaults above.
type Portal struct {
	Entrypoint   string            `yaml:"entrypoint"`
	Port         int               `yaml:"port"`
	VenvDir      string            `yaml:"venv_dir"`
	Requirements string            `yaml:"requirements"`
	Python       string            `yaml:"python"`
	Headless     bool              `yaml:"headless"`
	Env          map[string]string `yaml:"env"`
}

// Read loads the launcher config. Lookup order: PORTAL_CONFIG if set,
// otherwise portal.yaml in the working directory. A missing file is not an
// error; defaults are applied either way.
func Read() (Portal, string, error) {
	cfg := Portal{Env: map[string]string{}}
	path := strings.TrimSpace(os.Getenv("PORTAL_CONFIG"))
	if path == "" {
		path = "portal.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return withDefaults(cfg), "", nil
		}
		return withDefaults(cfg), path, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return withDefaults(cfg), path, err
	}
	if cfg.Env == nil {
		cfg.Env = map[string]string{}
	}
	return withDefaults(cfg), filepath.Clean(path), nil
}

func withDefaults(cfg Portal) Portal {
	if strings.TrimSpace(cfg.Entrypoint) == "" {
		cfg.Entrypoint = DefaultEntrypoint
	}
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	if strings.TrimSpace(cfg.VenvDir) == "" {
		cfg.VenvDir = DefaultVenvDir
	}
	if strings.TrimSpace(cfg.Requirements) == "" {
		cfg.Requirements = DefaultRequirements
	}
	return cfg
}
