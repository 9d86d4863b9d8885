package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. With no paths it reads ./.env
// and a missing file is not an error.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err == nil {
		return nil
	}
	if len(paths) == 0 && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load dotenv: %w", err)
}

// ApplyEnv overwrites fields of p whose PRISONERS_* variable is set.
func ApplyEnv(p *Profile) error {
	if err := env.Parse(p); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load resolves defaults, then the YAML profile, then the environment.
func Load(profilePath string) (Profile, error) {
	p, err := LoadProfile(profilePath, Default())
	if err != nil {
		return Profile{}, err
	}
	if err := ApplyEnv(&p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
