package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// PathEnv names the variable that points at the YAML config file.
	PathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load resolves the config file from CONFIG_PATH and delegates to LoadPath.
func Load() (*Config, error) {
	return LoadPath(os.Getenv(PathEnv))
}

// LoadPath builds a Config from the YAML file at path, then environment
// variables, then env-default tags, in decreasing priority. An empty path
// means ./config.yaml, which may be absent; an explicit path must exist.
func LoadPath(path string) (*Config, error) {
	var cfg Config
	if err := read(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func read(path string, cfg *Config) error {
	optional := path == ""
	if optional {
		path = defaultPath
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	default:
		return fmt.Errorf("config: file %s: %w", path, err)
	}
	return nil
}

// WriteEnvUsage lists every environment variable the server reads, with
// its default.
func WriteEnvUsage(w io.Writer) error {
	header := "Environment variables (override " + PathEnv + " file values):"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return fmt.Errorf("config: describe env: %w", err)
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
