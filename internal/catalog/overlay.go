package catalog

import (
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

type overlayFile struct {
	Libraries map[string]struct {
		Description string            `yaml:"description"`
		APIs        map[string]string `yaml:"apis"`
	} `yaml:"libraries"`
	Dangerous []string `yaml:"dangerous"`
}

// Load merges a user-supplied YAML catalog into c. New libraries and
// functions are added, existing descriptions are overridden, and extra
// dangerous names are appended. Keys are lower-cased on the way in.
func (c *Catalog) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog file: %w", err)
	}

	var overlay overlayFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parse catalog file: %w", err)
	}

	for name, entry := range overlay.Libraries {
		key := strings.ToLower(name)
		lib, ok := c.Libraries[key]
		if !ok {
			lib = Library{APIs: make(map[string]string)}
		}
		if entry.Description != "" {
			lib.Description = entry.Description
		}
		for fn, desc := range entry.APIs {
			lib.APIs[strings.ToLower(fn)] = desc
		}
		c.Libraries[key] = lib
	}

	for _, fn := range overlay.Dangerous {
		key := strings.ToLower(fn)
		if !c.IsDangerous(key) {
			c.Dangerous = append(c.Dangerous, key)
		}
	}

	return nil
}
