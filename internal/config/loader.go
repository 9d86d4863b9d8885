package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadProfile overlays the YAML file at path onto base. Keys absent from the
// file keep base's values. An empty path returns base unchanged.
func LoadProfile(path string, base Profile) (Profile, error) {
	if path == "" {
		return base, nil
	}
	p := base
	if err := loadYAML(path, &p); err != nil {
		return Profile{}, fmt.Errorf("load profile %s: %w", path, err)
	}
	return p, nil
}
