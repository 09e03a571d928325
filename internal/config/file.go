// SPDX-License-Identifier: MIT

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// mergeFile overlays values from the YAML file at path onto cfg. Only keys
// present in the file are applied; absent keys keep their current value.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from operator flag
	if err != nil {
		return err
	}

	// yaml.Unmarshal leaves fields untouched when the document does not
	// mention them, so decoding into cfg keeps defaults for absent keys.
	return yaml.Unmarshal(data, cfg)
}
